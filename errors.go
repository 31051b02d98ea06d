// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zlob

package zlob

import "errors"

// Sentinel errors for zlob operations.
var (
	// ErrBadPattern indicates malformed pattern syntax, such as an
	// unterminated character class or group. Surfaced before any
	// traversal begins, so it never leaves partial results.
	ErrBadPattern = errors.New("malformed pattern")
	// ErrAborted indicates an aborted traversal: an unreadable directory
	// under FlagErr, an error callback requesting abort, or an invalid
	// base directory.
	ErrAborted = errors.New("operation aborted")
	// ErrNoSuchUser indicates an unresolvable "~user" under FlagTildeCheck.
	ErrNoSuchUser = errors.New("unknown user in tilde expansion")
)
