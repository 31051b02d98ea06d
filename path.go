// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zlob

package zlob

import (
	"path"
	"strings"
)

// normalizePath normalizes a candidate path to slash-separated relative
// clean form for rule evaluation.
func normalizePath(raw string) string {
	raw = strings.TrimPrefix(raw, "./")
	raw = strings.TrimPrefix(raw, "/")
	if raw == "" {
		return ""
	}

	// Fast path for already-normalized relative paths.
	if isSimpleNormalizedPath(raw) {
		return raw
	}

	raw = path.Clean("/" + raw)
	raw = strings.TrimPrefix(raw, "/")
	if raw == "." {
		return ""
	}

	return strings.TrimSuffix(raw, "/")
}

// isSimpleNormalizedPath reports whether a path is already normalized enough
// to skip path.Clean.
func isSimpleNormalizedPath(p string) bool {
	if p == "" ||
		p == "." ||
		p == ".." ||
		strings.HasPrefix(p, "/") ||
		strings.HasSuffix(p, "/") ||
		strings.HasPrefix(p, "./") ||
		strings.HasPrefix(p, "../") ||
		strings.Contains(p, "//") ||
		strings.Contains(p, "/./") ||
		strings.Contains(p, "/../") ||
		strings.HasSuffix(p, "/..") {
		return false
	}

	return true
}
