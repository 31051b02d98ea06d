// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zlob

package zlob

import (
	"iter"
	"slices"
)

// Result is the ordered collection of matched paths from one glob or
// path-list operation.
//
// Filesystem results own their path strings; path-list results alias the
// caller's input strings and stay valid as long as those do. A Result is
// immutable once returned and safe for concurrent reads.
type Result struct {
	paths []string
	lens  []int
	offs  int
	flags Flags
}

// Len returns the number of matched paths.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}

	return len(r.paths)
}

// At returns the match at index i. Reserved offset slots are not counted.
func (r *Result) At(i int) string {
	return r.paths[i]
}

// PathLen returns the byte length of the match at index i without
// re-measuring the string.
func (r *Result) PathLen(i int) int {
	return r.lens[i]
}

// Offs returns the number of reserved leading slots requested via
// FlagDoOffs.
func (r *Result) Offs() int {
	if r == nil {
		return 0
	}

	return r.offs
}

// Flags returns the operation flags with output bits applied; FlagMagChar is
// set when the pattern contained metacharacters.
func (r *Result) Flags() Flags {
	if r == nil {
		return 0
	}

	return r.flags
}

// All returns a restartable iterator over the matched paths in result order.
func (r *Result) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if r == nil {
			return
		}

		for _, p := range r.paths {
			if !yield(p) {
				return
			}
		}
	}
}

// Strings returns a copy of the matched paths.
func (r *Result) Strings() []string {
	if r == nil {
		return nil
	}

	return slices.Clone(r.paths)
}

// Slice returns the raw result layout: Offs leading empty slots followed by
// the matches in order.
func (r *Result) Slice() []string {
	if r == nil {
		return nil
	}

	out := make([]string, r.offs+len(r.paths))
	copy(out[r.offs:], r.paths)
	return out
}

// Free releases the match storage and resets the result for reuse with
// FlagAppend. Reserved offsets and flags are kept.
func (r *Result) Free() {
	if r == nil {
		return
	}

	r.paths = nil
	r.lens = nil
}

// append records one matched path with its byte length.
func (r *Result) append(path string) {
	r.paths = append(r.paths, path)
	r.lens = append(r.lens, len(path))
}

// sortFrom sorts matches appended after index start by byte-lexicographic
// order, leaving earlier entries untouched for FlagAppend semantics.
func (r *Result) sortFrom(start int) {
	if start < 0 || start >= len(r.paths) {
		return
	}

	slices.Sort(r.paths[start:])
	for i := start; i < len(r.paths); i++ {
		r.lens[i] = len(r.paths[i])
	}
}
