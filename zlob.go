// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zlob

package zlob

import (
	"fmt"
	"strings"
)

// GlobOptions carries per-call collaborators and result layout settings for
// GlobWith and GlobAtWith.
type GlobOptions struct {
	// Source replaces the real filesystem for the whole traversal when
	// FlagAltDirFunc is set.
	Source DirSource
	// ErrFunc is invoked for unreadable directories; returning true
	// aborts the operation.
	ErrFunc ErrFunc
	// Result is the prior result appended to under FlagAppend.
	Result *Result
	// Offs is the reserved leading slot count under FlagDoOffs.
	Offs int
}

// Glob finds filesystem paths matching a glob pattern, starting from the
// current working directory (or the root for "/"-anchored patterns).
//
// Returns the collected result, or (nil, nil) when the pattern is valid but
// nothing matched. Results are sorted byte-lexicographically unless
// FlagNoSort is set.
func Glob(pattern string, flags Flags) (*Result, error) {
	return GlobWith(pattern, flags, GlobOptions{})
}

// GlobWith is Glob with explicit collaborators.
func GlobWith(pattern string, flags Flags, opts GlobOptions) (*Result, error) {
	return globWith("", pattern, flags, opts)
}

// GlobAt finds paths matching a pattern relative to an absolute base
// directory. Matched paths are relative to base.
func GlobAt(base, pattern string, flags Flags) (*Result, error) {
	return GlobAtWith(base, pattern, flags, GlobOptions{})
}

// GlobAtWith is GlobAt with explicit collaborators.
func GlobAtWith(base, pattern string, flags Flags, opts GlobOptions) (*Result, error) {
	if !strings.HasPrefix(base, "/") {
		return nil, fmt.Errorf("%w: base path %q is not absolute", ErrAborted, base)
	}

	return globWith(strings.TrimSuffix(base, "/"), pattern, flags, opts)
}

// globWith compiles the pattern and drives one traversal.
func globWith(base, pattern string, flags Flags, opts GlobOptions) (*Result, error) {
	pat, err := Compile(pattern, flags)
	if err != nil {
		return nil, err
	}

	res := opts.Result
	if !flags.Has(FlagAppend) || res == nil {
		res = &Result{}
		if flags.Has(FlagDoOffs) && opts.Offs > 0 {
			res.offs = opts.Offs
		}
	}

	res.flags = outputFlags(flags, pat)
	start := res.Len()

	w := &walker{
		pat:   pat,
		flags: flags,
		src:   osSource{},
		errFn: opts.ErrFunc,
		res:   res,
		base:  base,
	}
	if flags.Has(FlagAltDirFunc) && opts.Source != nil {
		w.src = opts.Source
		w.custom = true
	}

	if flags.Has(FlagGitignore) {
		w.ignore = newIgnoreIndex(base)
	}

	if err := w.run(); err != nil {
		return nil, err
	}

	if res.Len() == start {
		if !literalFallback(res, pattern, pat, flags) {
			if start == 0 {
				return nil, nil
			}

			return res, nil
		}
	}

	if !flags.Has(FlagNoSort) {
		res.sortFrom(start)
	}

	return res, nil
}
