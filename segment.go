// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zlob

package zlob

import "strings"

// matchSegment reports whether one compiled segment program matches a single
// entry name. Matching is byte-oriented; multi-byte character boundaries are
// not considered.
func matchSegment(seg *segment, name string, flags Flags) bool {
	if seg.literal != "" {
		return name == seg.literal
	}

	if len(seg.atoms) == 0 {
		return name == ""
	}

	// Hidden-entry suppression: a wildcard first atom may not consume a
	// leading dot. An explicit "." literal always may.
	if name != "" && name[0] == '.' && !flags.Has(FlagPeriod) {
		switch seg.atoms[0].kind {
		case atomAnyChar, atomAnyRun, atomClass:
			return false
		}
	}

	return matchFrom(seg.atoms, 0, name, 0)
}

// matchFrom matches atoms[ai:] against name[ni:], requiring both to be fully
// consumed. Runs and groups backtrack; the worst case is exponential in
// adversarial nested patterns, which the grammar accepts as inherent.
func matchFrom(atoms []atom, ai int, name string, ni int) bool {
	for ai < len(atoms) {
		a := &atoms[ai]
		switch a.kind {
		case atomLiteral:
			if !strings.HasPrefix(name[ni:], a.text) {
				return false
			}

			ni += len(a.text)
			ai++

		case atomAnyChar:
			if ni >= len(name) {
				return false
			}

			ni++
			ai++

		case atomClass:
			if ni >= len(name) || !a.class.contains(name[ni]) {
				return false
			}

			ni++
			ai++

		case atomAnyRun:
			if ai == len(atoms)-1 {
				// Trailing run consumes the rest unconditionally.
				return true
			}

			// Literal-follow fast path: jump between occurrences of the
			// next literal instead of probing every offset.
			if atoms[ai+1].kind == atomLiteral {
				return matchRunBeforeLiteral(atoms, ai, name, ni)
			}

			for k := ni; k <= len(name); k++ {
				if matchFrom(atoms, ai+1, name, k) {
					return true
				}
			}

			return false

		case atomBrace, atomExtglob:
			return matchGroup(a, atoms, ai+1, name, ni)
		}
	}

	return ni == len(name)
}

// matchRunBeforeLiteral resolves "*literal..." by scanning for literal
// occurrences, a linear pass for the common case.
func matchRunBeforeLiteral(atoms []atom, ai int, name string, ni int) bool {
	lit := atoms[ai+1].text
	for k := ni; k+len(lit) <= len(name); k++ {
		idx := strings.Index(name[k:], lit)
		if idx < 0 {
			return false
		}

		k += idx
		if matchFrom(atoms, ai+2, name, k+len(lit)) {
			return true
		}
	}

	return false
}

// matchGroup resolves one brace or extglob atom followed by the remaining
// program atoms[rest:].
func matchGroup(a *atom, atoms []atom, rest int, name string, ni int) bool {
	switch {
	case a.kind == atomBrace || a.op == '@':
		// Exactly one alternative covers the span.
		return matchAlts(a.alts, atoms, rest, name, ni)

	case a.op == '?':
		if matchFrom(atoms, rest, name, ni) {
			return true
		}

		return matchAlts(a.alts, atoms, rest, name, ni)

	case a.op == '*':
		return matchRepeat(a.alts, atoms, rest, name, ni, false)

	case a.op == '+':
		return matchRepeat(a.alts, atoms, rest, name, ni, true)

	case a.op == '!':
		// The span must match no alternative while the rest matches the
		// remainder.
		for end := ni; end <= len(name); end++ {
			if !matchFrom(atoms, rest, name, end) {
				continue
			}

			if !anyAltExact(a.alts, name[ni:end]) {
				return true
			}
		}

		return false
	}

	return false
}

// matchAlts tries each alternative as one exact span followed by the rest of
// the program.
func matchAlts(alts [][]atom, atoms []atom, rest int, name string, ni int) bool {
	for _, alt := range alts {
		for end := ni; end <= len(name); end++ {
			if !matchExact(alt, name[ni:end]) {
				continue
			}

			if matchFrom(atoms, rest, name, end) {
				return true
			}
		}
	}

	return false
}

// matchRepeat resolves zero-or-more / one-or-more alternative repetition.
// Every occurrence must consume at least one byte to guarantee progress.
func matchRepeat(alts [][]atom, atoms []atom, rest int, name string, ni int, needOne bool) bool {
	if !needOne && matchFrom(atoms, rest, name, ni) {
		return true
	}

	for _, alt := range alts {
		for end := ni + 1; end <= len(name); end++ {
			if !matchExact(alt, name[ni:end]) {
				continue
			}

			if matchRepeat(alts, atoms, rest, name, end, false) {
				return true
			}
		}
	}

	return false
}

// matchExact reports whether a sub-program matches the whole span.
func matchExact(alt []atom, span string) bool {
	return matchFrom(alt, 0, span, 0)
}

// anyAltExact reports whether any alternative matches the whole span.
func anyAltExact(alts [][]atom, span string) bool {
	for _, alt := range alts {
		if matchExact(alt, span) {
			return true
		}
	}

	return false
}
