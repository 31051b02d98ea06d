// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zlob

package zlob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPathsBasename(t *testing.T) {
	t.Parallel()

	paths := []string{"src/lib.rs", "src/main.rs", "README.md", "src/core/util.rs"}

	res, err := MatchPaths("*.rs", paths, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"src/lib.rs", "src/main.rs", "src/core/util.rs"}, res.Strings())
}

func TestMatchPathsInputOrder(t *testing.T) {
	t.Parallel()

	// List matching never sorts; matches keep the caller's order.
	paths := []string{"z.rs", "a.rs", "m.rs"}

	res, err := MatchPaths("*.rs", paths, 0)
	require.NoError(t, err)
	require.Equal(t, paths, res.Strings())
}

func TestMatchPathsBrace(t *testing.T) {
	t.Parallel()

	paths := []string{"foo.rs", "bar.rs", "baz.rs"}

	res, err := MatchPaths("{foo,bar}.rs", paths, FlagBrace)
	require.NoError(t, err)
	require.Equal(t, []string{"foo.rs", "bar.rs"}, res.Strings())

	// Without FlagBrace the group is a literal name and matches nothing.
	res, err = MatchPaths("{foo,bar}.rs", paths, 0)
	require.NoError(t, err)
	require.Nil(t, res)
}

func TestMatchPathsQuestion(t *testing.T) {
	t.Parallel()

	paths := []string{"ab.rs", "ac.rs", "a.rs", "abc.rs", "ad.rs"}

	res, err := MatchPaths("a?.rs", paths, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"ab.rs", "ac.rs", "ad.rs"}, res.Strings())
}

func TestMatchPathsExtglob(t *testing.T) {
	t.Parallel()

	paths := []string{"a.rs", "b.md", "c.txt"}

	res, err := MatchPaths("*.!(md|txt)", paths, FlagExtglob)
	require.NoError(t, err)
	require.Equal(t, []string{"a.rs"}, res.Strings())
}

func TestMatchPathsAtBase(t *testing.T) {
	t.Parallel()

	paths := []string{
		"/work/src/lib.rs",
		"/work/src/main.rs",
		"/work/README.md",
		"/work/src/core/util.rs",
		"/other/stray.rs",
	}

	res, err := MatchPathsAt("/work", "src/*.rs", paths, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"/work/src/lib.rs", "/work/src/main.rs"}, res.Strings())

	// Candidates outside the base never match, whatever their basename.
	res, err = MatchPathsAt("/work", "**/*.rs", paths, FlagDoublestarRecursive)
	require.NoError(t, err)
	require.Equal(t, []string{"/work/src/lib.rs", "/work/src/main.rs", "/work/src/core/util.rs"}, res.Strings())
}

func TestMatchPathsAtDotSlashPrefix(t *testing.T) {
	t.Parallel()

	paths := []string{"/w/src/lib.rs", "/w/src/core/util.rs", "/w/README.md"}

	plain, err := MatchPathsAt("/w", "**/*.rs", paths, FlagDoublestarRecursive)
	require.NoError(t, err)

	dotted, err := MatchPathsAt("/w", "./**/*.rs", paths, FlagDoublestarRecursive)
	require.NoError(t, err)

	require.Equal(t, plain.Strings(), dotted.Strings())
	require.Len(t, dotted.Strings(), 2)
}

func TestMatchPathsDotSlashWithoutBase(t *testing.T) {
	t.Parallel()

	paths := []string{"src/lib.rs", "README.md"}

	res, err := MatchPaths("./src/*.rs", paths, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"src/lib.rs"}, res.Strings())
}

func TestMatchPathsNoMatch(t *testing.T) {
	t.Parallel()

	res, err := MatchPaths("*.zig", []string{"a.rs", "b.go"}, 0)
	require.NoError(t, err)
	require.Nil(t, res)

	res, err = MatchPaths("*.rs", nil, 0)
	require.NoError(t, err)
	require.Nil(t, res)
}

func TestMatchPathsFallbacks(t *testing.T) {
	t.Parallel()

	paths := []string{"a.rs"}

	res, err := MatchPaths("*.zig", paths, FlagNoCheck)
	require.NoError(t, err)
	require.Equal(t, []string{"*.zig"}, res.Strings())

	res, err = MatchPaths("missing.rs", paths, FlagNoMagic)
	require.NoError(t, err)
	require.Equal(t, []string{"missing.rs"}, res.Strings())

	// NOMAGIC alone stays empty for a wildcard pattern.
	res, err = MatchPaths("*.zig", paths, FlagNoMagic)
	require.NoError(t, err)
	require.Nil(t, res)
}

func TestMatchPathsOutputFlags(t *testing.T) {
	t.Parallel()

	res, err := MatchPaths("*.rs", []string{"a.rs"}, FlagNoSort)
	require.NoError(t, err)
	assert.True(t, res.Flags().Has(FlagMagChar))
	assert.True(t, res.Flags().Has(FlagNoSort))

	res, err = MatchPaths("a.rs", []string{"a.rs"}, 0)
	require.NoError(t, err)
	assert.False(t, res.Flags().Has(FlagMagChar))
}

func TestMatchPathsGitignoreFilter(t *testing.T) {
	t.Parallel()

	// No rule files exist for list matching against an unused base, so the
	// filter must pass everything through.
	paths := []string{"/nope/a.rs"}

	res, err := MatchPathsAt("/nope", "*.rs", paths, FlagGitignore)
	require.NoError(t, err)
	require.Equal(t, paths, res.Strings())
}

func TestMatchPathsBadPattern(t *testing.T) {
	t.Parallel()

	_, err := MatchPaths("[abc", []string{"a"}, 0)
	require.ErrorIs(t, err, ErrBadPattern)
}
