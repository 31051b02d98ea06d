// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zlob

package zlob

import "strings"

// MatchPaths filters a list of path strings against a glob pattern with no
// filesystem access.
//
// Matched paths are the caller's own strings, not copies, and are returned
// in input order; list matching has no sort step. A nil result with nil
// error means nothing matched.
func MatchPaths(pattern string, paths []string, flags Flags) (*Result, error) {
	return matchPathList("", pattern, paths, flags)
}

// MatchPathsAt filters a list of absolute path strings against a pattern
// expressed relative to base.
//
// The base prefix plus one separator is stripped from each candidate before
// matching; a leading "./" on the pattern is stripped as well. Matches
// retain the original full path strings.
func MatchPathsAt(base, pattern string, paths []string, flags Flags) (*Result, error) {
	return matchPathList(base, pattern, paths, flags)
}

// matchPathList is the shared list-matching core.
func matchPathList(base, pattern string, paths []string, flags Flags) (*Result, error) {
	base = strings.TrimSuffix(base, "/")
	src := strings.TrimPrefix(pattern, "./")

	pat, err := Compile(src, flags)
	if err != nil {
		return nil, err
	}

	res := &Result{flags: outputFlags(flags, pat)}

	var ignore *ignoreIndex
	if flags.Has(FlagGitignore) {
		ignore = newIgnoreIndex(base)
	}

	for _, p := range paths {
		candidate := p
		if base != "" {
			rel, ok := strings.CutPrefix(p, base+"/")
			if !ok {
				continue
			}

			candidate = rel
		}

		if !pat.Match(candidate) {
			continue
		}

		if ignore != nil && ignore.Ignored(candidate, strings.HasSuffix(candidate, "/")) {
			continue
		}

		res.append(p)
	}

	if res.Len() == 0 {
		if !literalFallback(res, pattern, pat, flags) {
			return nil, nil
		}
	}

	return res, nil
}

// literalFallback applies the NOMAGIC / NOCHECK synthetic match policy when
// nothing matched. NOMAGIC is the more specific condition and wins when both
// are set.
func literalFallback(res *Result, pattern string, pat *Pattern, flags Flags) bool {
	switch {
	case flags.Has(FlagNoMagic) && !pat.hasMagic:
		res.append(pattern)
		return true
	case flags.Has(FlagNoCheck):
		res.append(pattern)
		return true
	}

	return false
}

// outputFlags computes the result flag word, mirroring metacharacter
// presence into FlagMagChar.
func outputFlags(flags Flags, pat *Pattern) Flags {
	out := flags &^ FlagMagChar
	if pat.hasMagic {
		out |= FlagMagChar
	}

	return out
}
