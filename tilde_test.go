// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zlob

package zlob

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGlobTildeHome(t *testing.T) {
	root := writeTree(t, map[string]string{
		"sub/d.txt": "d",
		"sub/e.log": "e",
	})
	t.Setenv("HOME", root)

	res, err := Glob("~/sub/*.txt", FlagTilde)
	require.NoError(t, err)
	require.Equal(t, []string{root + "/sub/d.txt"}, res.Strings())
}

func TestGlobTildeUnknownUser(t *testing.T) {
	t.Parallel()

	_, err := Glob("~no_such_user_zz/*", FlagTilde|FlagTildeCheck)
	require.ErrorIs(t, err, ErrNoSuchUser)

	// Without the check flag the tilde stays a literal path component.
	res, err := Glob("~no_such_user_zz/*", FlagTilde)
	require.NoError(t, err)
	require.Nil(t, res)
}

func TestGlobTildeDisabled(t *testing.T) {
	t.Parallel()

	// Without FlagTilde "~" has no special meaning and names nothing here.
	res, err := Glob("~/definitely_missing_zz_*", 0)
	require.NoError(t, err)
	require.Nil(t, res)
}

func TestCompileTildeSegments(t *testing.T) {
	root := t.TempDir()
	t.Setenv("HOME", root)

	p, err := Compile("~/docs/*.md", FlagTilde)
	require.NoError(t, err)
	require.True(t, p.rooted)
	require.True(t, p.hasSlash)

	// Home components become leading literal segments.
	home := splitPath(root)
	require.Len(t, p.segments, len(home)+2)
	for i, comp := range home {
		require.Equal(t, comp, p.segments[i].literal)
	}

	require.Equal(t, "docs", p.segments[len(home)].literal)
	require.True(t, p.HasMagic())
}
