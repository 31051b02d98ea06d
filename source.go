// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zlob

package zlob

import (
	"io/fs"
	"os"
)

// EntryType is a coarse directory entry type tag.
type EntryType uint8

const (
	// EntryUnknown means the source could not classify the entry.
	EntryUnknown EntryType = iota
	// EntryDir is a directory.
	EntryDir
	// EntryRegular is a regular file.
	EntryRegular
	// EntrySymlink is a symbolic link.
	EntrySymlink
)

// Dirent is one directory entry produced by a DirSource. It is a transient
// view valid for one traversal step only.
type Dirent struct {
	// Name is the entry name without any path separators.
	Name string
	// Type is the coarse entry type; EntryUnknown forces the walker to
	// probe when it needs to know.
	Type EntryType
}

// DirHandle iterates entries of one opened directory.
type DirHandle interface {
	// Next returns the next entry, or io.EOF when the directory is
	// exhausted.
	Next() (Dirent, error)
	// Close releases the handle.
	Close() error
}

// DirSource opens directories for traversal. The default implementation
// reads the real filesystem; a caller-substituted source (FlagAltDirFunc)
// lets the walker glob virtual trees.
type DirSource interface {
	OpenDir(path string) (DirHandle, error)
}

// osSource is the real-filesystem DirSource.
type osSource struct{}

func (osSource) OpenDir(path string) (DirHandle, error) {
	if path == "" {
		path = "."
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return &osDirHandle{f: f}, nil
}

// osDirHandle reads entries in batches to bound memory on huge directories.
type osDirHandle struct {
	f       *os.File
	entries []os.DirEntry
	idx     int
}

func (h *osDirHandle) Next() (Dirent, error) {
	for h.idx >= len(h.entries) {
		entries, err := h.f.ReadDir(128)
		if err != nil {
			// io.EOF passes through as the end-of-directory marker.
			return Dirent{}, err
		}

		h.entries = entries
		h.idx = 0
	}

	e := h.entries[h.idx]
	h.idx++
	return Dirent{Name: e.Name(), Type: entryTypeOf(e.Type())}, nil
}

func (h *osDirHandle) Close() error {
	return h.f.Close()
}

// entryTypeOf maps a fs.FileMode type to the coarse entry tag.
func entryTypeOf(mode fs.FileMode) EntryType {
	switch {
	case mode.IsDir():
		return EntryDir
	case mode&fs.ModeSymlink != 0:
		return EntrySymlink
	case mode.IsRegular():
		return EntryRegular
	default:
		return EntryUnknown
	}
}
