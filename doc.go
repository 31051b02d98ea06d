// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zlob

/*
Package zlob implements glob pattern matching over real and virtual
filesystems, plus zero-copy filtering of in-memory path lists.

The engine compiles a pattern once into an immutable segment-oriented
program, then either walks a directory tree collecting matches or filters
caller-provided path strings without touching the filesystem.

Basic flow:
  - find files on disk: `Glob` / `GlobAt`
  - filter a known path list: `MatchPaths` / `MatchPathsAt`
  - compile once and reuse: `Compile` + `(*Pattern).Match`
  - probe a pattern: `HasWildcards`

Supported syntax: "*", "?", "[abc]", "[!abc]", "[a-z]", plus flag-gated
extensions: "**" recursion (FlagDoublestarRecursive), "{a,b}" alternation
(FlagBrace), "?() *() +() @() !()" groups (FlagExtglob), and "~"/"~user"
home expansion (FlagTilde). Matching is byte-oriented.

Traversal behavior is controlled by Flags: sorting, directory marking,
hidden-entry handling, literal fallback on no match, gitignore-style
exclusion (FlagGitignore), and caller-substituted directory sources
(FlagAltDirFunc) for globbing virtual trees.

One call runs synchronously to completion. Compiled patterns and returned
results are immutable and safe for concurrent read access; concurrent
traversals of the same live directory tree carry the usual filesystem race
caveats.
*/
package zlob
