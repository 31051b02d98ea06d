// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zlob

package zlob

// Flags is a bitset of matching options for one glob operation.
//
// Bit positions are a wire-compatibility contract shared with non-Go
// consumers of the result layout and must never be renumbered. Bits 15-23
// are reserved; extension flags start at bit 24.
type Flags uint32

const (
	// FlagErr aborts the whole operation when a directory cannot be read.
	// Without it unreadable directories are skipped silently.
	FlagErr Flags = 1 << 0

	// FlagMark appends "/" to every matched directory path.
	FlagMark Flags = 1 << 1

	// FlagNoSort skips the lexicographic sort of filesystem matches.
	FlagNoSort Flags = 1 << 2

	// FlagDoOffs reserves GlobOptions.Offs leading empty slots in the
	// result slice layout.
	FlagDoOffs Flags = 1 << 3

	// FlagNoCheck returns the pattern itself as the sole match when
	// nothing matched.
	FlagNoCheck Flags = 1 << 4

	// FlagAppend adds matches to GlobOptions.Result instead of building a
	// fresh result.
	FlagAppend Flags = 1 << 5

	// FlagNoEscape treats backslash as a literal byte instead of an escape.
	FlagNoEscape Flags = 1 << 6

	// FlagPeriod lets wildcards match a leading "." in entry names.
	FlagPeriod Flags = 1 << 7

	// FlagMagChar is an output-only flag recorded on the result when the
	// pattern contained unescaped metacharacters.
	FlagMagChar Flags = 1 << 8

	// FlagAltDirFunc enables the caller-supplied DirSource from
	// GlobOptions.Source for the whole traversal.
	FlagAltDirFunc Flags = 1 << 9

	// FlagBrace enables "{a,b,c}" alternation groups.
	FlagBrace Flags = 1 << 10

	// FlagNoMagic returns the pattern itself when it contains no
	// metacharacters and nothing matched.
	FlagNoMagic Flags = 1 << 11

	// FlagTilde expands leading "~" and "~user" to home directories.
	FlagTilde Flags = 1 << 12

	// FlagOnlyDir drops non-directory matches.
	FlagOnlyDir Flags = 1 << 13

	// FlagTildeCheck is like FlagTilde but fails the compile when the
	// named user cannot be resolved.
	FlagTildeCheck Flags = 1 << 14

	// FlagGitignore filters matches through layered .gitignore rule files
	// discovered along the traversal path.
	FlagGitignore Flags = 1 << 24

	// FlagDoublestarRecursive makes a bare "**" component match zero or
	// more directory levels. Without it "**" degrades to "*".
	FlagDoublestarRecursive Flags = 1 << 25

	// FlagExtglob enables "?()", "*()", "+()", "@()" and "!()" groups.
	FlagExtglob Flags = 1 << 26

	// FlagRecommended is the composite of modern defaults.
	FlagRecommended = FlagBrace | FlagDoublestarRecursive | FlagNoSort | FlagTilde | FlagTildeCheck
)

// Has reports whether all bits are set.
func (f Flags) Has(bits Flags) bool {
	return f&bits == bits
}
