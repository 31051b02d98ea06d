// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zlob

package zlob

import (
	"fmt"
	"os"
	"os/user"
	"strings"
)

// expandTilde resolves a leading "~" or "~user" pattern component to a home
// directory at compile time.
//
// Returns the resolved home path and the remaining pattern after the tilde
// component. When the home cannot be resolved and FlagTildeCheck is not set,
// home is empty and the pattern is left to match literally.
func expandTilde(pattern string, flags Flags) (home, rest string, err error) {
	comp := pattern[1:]
	if i := strings.IndexByte(comp, '/'); i >= 0 {
		rest = comp[i+1:]
		comp = comp[:i]
	}

	if comp == "" {
		home, err = os.UserHomeDir()
		if err != nil {
			if flags.Has(FlagTildeCheck) {
				return "", "", fmt.Errorf("%w: home directory: %v", ErrNoSuchUser, err)
			}

			return "", pattern, nil
		}

		return home, rest, nil
	}

	u, err := user.Lookup(comp)
	if err != nil {
		if flags.Has(FlagTildeCheck) {
			return "", "", fmt.Errorf("%w: %q", ErrNoSuchUser, comp)
		}

		return "", pattern, nil
	}

	return u.HomeDir, rest, nil
}
