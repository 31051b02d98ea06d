// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zlob

package zlob

import "strings"

// Match reports whether the compiled pattern matches a slash-separated path.
//
// Patterns without a "/" match the final path component only, so "*.rs"
// matches "src/lib.rs". Patterns with a "/" are anchored and must cover the
// whole candidate path. No filesystem access is performed.
func (p *Pattern) Match(path string) bool {
	if len(p.segments) == 0 {
		return false
	}

	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return false
	}

	comps := splitPath(path)

	if !p.hasSlash {
		return matchComponent(&p.segments[0], comps[len(comps)-1], p.flags)
	}

	return matchSegments(p.segments, 0, comps, 0, p.flags)
}

// splitPath splits a slash path into components, dropping empty ones.
func splitPath(path string) []string {
	comps := make([]string, 0, strings.Count(path, "/")+1)
	for comp := range strings.SplitSeq(path, "/") {
		if comp == "" || comp == "." {
			continue
		}

		comps = append(comps, comp)
	}

	return comps
}

// matchComponent matches one segment program against one path component.
func matchComponent(seg *segment, comp string, flags Flags) bool {
	if seg.doublestar {
		// A degraded or walker-less "**" behaves as a single-level "*".
		return !hiddenBlocked(comp, flags)
	}

	if seg.literal != "" {
		return comp == seg.literal
	}

	return matchSegment(seg, comp, flags)
}

// matchSegments matches segment programs against path components, resolving
// "**" as zero or more whole components.
func matchSegments(segs []segment, si int, comps []string, ci int, flags Flags) bool {
	for si < len(segs) {
		seg := &segs[si]
		if seg.doublestar {
			// Collapse consecutive recursion markers.
			for si+1 < len(segs) && segs[si+1].doublestar {
				si++
			}

			if si == len(segs)-1 {
				// Trailing "**" covers any remainder, hidden levels
				// excepted.
				for _, c := range comps[ci:] {
					if hiddenBlocked(c, flags) {
						return false
					}
				}

				return true
			}

			for k := ci; ; k++ {
				if matchSegments(segs, si+1, comps, k, flags) {
					return true
				}

				if k >= len(comps) || hiddenBlocked(comps[k], flags) {
					return false
				}
			}
		}

		if ci >= len(comps) {
			return false
		}

		if !matchComponent(seg, comps[ci], flags) {
			return false
		}

		si++
		ci++
	}

	return ci == len(comps)
}

// hiddenBlocked reports whether a wildcard may not consume this component
// because of leading-dot suppression.
func hiddenBlocked(comp string, flags Flags) bool {
	return comp != "" && comp[0] == '.' && !flags.Has(FlagPeriod)
}
