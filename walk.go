// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zlob

package zlob

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrFunc is the caller-supplied read-error callback. It receives the
// failing path and the underlying error; returning true aborts the whole
// traversal, returning false skips the unreadable directory.
type ErrFunc func(path string, err error) bool

// walker drives one traversal of a compiled pattern over an entry source.
// All walker state is scoped to a single glob call.
type walker struct {
	pat     *Pattern
	flags   Flags
	src     DirSource
	errFn   ErrFunc
	res     *Result
	ignore  *ignoreIndex
	visited map[string]struct{}
	// base is the filesystem prefix for relative lookups; empty means the
	// current working directory.
	base string
	// custom disables real-filesystem stat fast paths when the entry
	// source is caller-supplied.
	custom bool
}

// run walks the whole pattern from its start directory.
func (w *walker) run() error {
	start := ""
	if w.pat.rooted && w.base == "" {
		start = "/"
	}

	if len(w.pat.segments) == 0 {
		return nil
	}

	return w.walk(start, 0)
}

// walk advances one pattern segment at one directory.
func (w *walker) walk(dir string, si int) error {
	seg := &w.pat.segments[si]

	if seg.doublestar {
		return w.walkDoublestar(dir, si)
	}

	if seg.literal != "" && !w.custom {
		return w.walkLiteral(dir, si)
	}

	entries, err := w.readDir(dir)
	if err != nil {
		return err
	}

	return w.walkEntries(dir, si, entries)
}

// walkEntries advances one non-recursive segment over already-read entries.
func (w *walker) walkEntries(dir string, si int, entries []Dirent) error {
	seg := &w.pat.segments[si]
	last := si == len(w.pat.segments)-1
	for _, e := range entries {
		if !matchSegment(seg, e.Name, w.flags) {
			continue
		}

		child := joinRel(dir, e.Name)
		if last {
			if err := w.emit(child, e.Type); err != nil {
				return err
			}

			continue
		}

		if !w.entryIsDir(child, e.Type) {
			continue
		}

		if err := w.walk(child, si+1); err != nil {
			return err
		}
	}

	return nil
}

// walkLiteral resolves a metacharacter-free segment by direct lookup instead
// of enumerating the directory.
func (w *walker) walkLiteral(dir string, si int) error {
	seg := &w.pat.segments[si]
	child := joinRel(dir, seg.literal)

	fi, err := os.Lstat(w.fsPath(child))
	if err != nil {
		// Absent is a plain no-match; anything else follows error policy.
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return w.readError(w.fsPath(child), err)
	}

	if si == len(w.pat.segments)-1 {
		return w.emit(child, entryTypeOf(fi.Mode().Type()))
	}

	if !w.entryIsDir(child, entryTypeOf(fi.Mode().Type())) {
		return nil
	}

	return w.walk(child, si+1)
}

// walkDoublestar resolves a "**" segment: the remaining suffix is attempted
// at the current directory and at every descendant directory.
func (w *walker) walkDoublestar(dir string, si int) error {
	rest := si + 1
	for rest < len(w.pat.segments) && w.pat.segments[rest].doublestar {
		rest++
	}

	if !w.markVisited(dir) {
		return nil
	}

	if rest == len(w.pat.segments) {
		// Trailing "**": the directory itself plus every descendant.
		if dir != "" && dir != "/" {
			if err := w.emit(dir, EntryDir); err != nil {
				return err
			}
		}

		return w.walkAll(dir)
	}

	// One enumeration serves both the zero-level attempt and the descent.
	entries, err := w.readDir(dir)
	if err != nil {
		return err
	}

	if err := w.walkEntries(dir, rest, entries); err != nil {
		return err
	}

	for _, e := range entries {
		if hiddenBlocked(e.Name, w.flags) {
			continue
		}

		child := joinRel(dir, e.Name)
		if !w.entryIsDir(child, e.Type) {
			continue
		}

		if err := w.walkDoublestar(child, si); err != nil {
			return err
		}
	}

	return nil
}

// walkAll emits every descendant entry of dir, depth first.
func (w *walker) walkAll(dir string) error {
	entries, err := w.readDir(dir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if hiddenBlocked(e.Name, w.flags) {
			continue
		}

		child := joinRel(dir, e.Name)
		isDir := w.entryIsDir(child, e.Type)
		if err := w.emit(child, e.Type); err != nil {
			return err
		}

		if !isDir {
			continue
		}

		if !w.markVisited(child) {
			continue
		}

		if err := w.walkAll(child); err != nil {
			return err
		}
	}

	return nil
}

// readDir enumerates one directory through the entry source, applying the
// read-error policy. A nil slice with nil error means "skip this directory".
func (w *walker) readDir(dir string) ([]Dirent, error) {
	h, err := w.src.OpenDir(w.fsPath(dir))
	if err != nil {
		return nil, w.readError(w.fsPath(dir), err)
	}

	var entries []Dirent
	for {
		e, err := h.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			_ = h.Close()
			return nil, w.readError(w.fsPath(dir), err)
		}

		if e.Name == "" || e.Name == "." || e.Name == ".." {
			continue
		}

		entries = append(entries, e)
	}

	_ = h.Close()
	return entries, nil
}

// readError applies the abort policy for one unreadable path.
func (w *walker) readError(path string, err error) error {
	if w.errFn != nil && w.errFn(path, err) {
		return fmt.Errorf("%w: %s: %v", ErrAborted, path, err)
	}

	if w.flags.Has(FlagErr) {
		return fmt.Errorf("%w: %s: %v", ErrAborted, path, err)
	}

	return nil
}

// emit records one matched path, applying directory-only filtering, mark
// decoration and gitignore exclusion.
func (w *walker) emit(rel string, t EntryType) error {
	var isDir bool
	if w.flags&(FlagOnlyDir|FlagMark|FlagGitignore) != 0 || w.pat.dirOnly {
		isDir = w.entryIsDir(rel, t)
	}

	if (w.flags.Has(FlagOnlyDir) || w.pat.dirOnly) && !isDir {
		return nil
	}

	if w.ignore != nil && w.ignore.Ignored(rel, isDir) {
		return nil
	}

	if w.flags.Has(FlagMark) && isDir {
		rel += "/"
	}

	w.res.append(rel)
	return nil
}

// entryIsDir reports whether an entry resolves to a directory, following
// symlinks. Custom sources are probed by opening the path.
func (w *walker) entryIsDir(rel string, t EntryType) bool {
	switch t {
	case EntryDir:
		return true
	case EntryRegular:
		return false
	}

	if w.custom {
		h, err := w.src.OpenDir(w.fsPath(rel))
		if err != nil {
			return false
		}

		_ = h.Close()
		return true
	}

	fi, err := os.Stat(w.fsPath(rel))
	return err == nil && fi.IsDir()
}

// markVisited records one directory identity for the current traversal and
// reports whether it is new. Symlinked directories resolve to the same
// identity, breaking cycles under "**".
func (w *walker) markVisited(dir string) bool {
	key := dir
	if !w.custom {
		if resolved, err := filepath.EvalSymlinks(w.fsPath(dir)); err == nil {
			key = resolved
		}
	}

	if w.visited == nil {
		w.visited = make(map[string]struct{})
	}

	if _, seen := w.visited[key]; seen {
		return false
	}

	w.visited[key] = struct{}{}
	return true
}

// fsPath maps a result-space relative path to the entry-source path.
func (w *walker) fsPath(rel string) string {
	if strings.HasPrefix(rel, "/") {
		return rel
	}

	if rel == "" {
		if w.base != "" {
			return w.base
		}

		return "."
	}

	if w.base != "" {
		return w.base + "/" + rel
	}

	return rel
}

// joinRel joins a result-space directory and entry name.
func joinRel(dir, name string) string {
	switch dir {
	case "":
		return name
	case "/":
		return "/" + name
	default:
		return dir + "/" + name
	}
}
