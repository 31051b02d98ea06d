// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zlob

package zlob

import (
	"fmt"
	"strings"
)

// atomKind enumerates compiled pattern atom kinds.
type atomKind uint8

const (
	atomLiteral atomKind = iota
	atomAnyChar
	atomAnyRun
	atomClass
	atomBrace
	atomExtglob
)

// atom is one matching instruction inside a segment program.
type atom struct {
	// text holds unescaped literal bytes for atomLiteral.
	text string
	// class is the membership set for atomClass.
	class *charClass
	// alts holds one sub-program per alternative for atomBrace and atomExtglob.
	alts [][]atom
	// kind selects the instruction.
	kind atomKind
	// op is the extglob operator byte: '?', '*', '+', '@' or '!'.
	op byte
}

// charClass is a 256-bit byte membership set with optional negation.
type charClass struct {
	bits    [4]uint64
	negated bool
}

// contains tests byte membership honoring negation.
func (c *charClass) contains(b byte) bool {
	in := c.bits[b>>6]&(1<<(b&63)) != 0
	return in != c.negated
}

// add inserts one byte into the set.
func (c *charClass) add(b byte) {
	c.bits[b>>6] |= 1 << (b & 63)
}

// addRange inserts an inclusive byte range into the set.
func (c *charClass) addRange(lo, hi byte) {
	for b := int(lo); b <= int(hi); b++ {
		c.add(byte(b))
	}
}

// segment is the compiled program for one "/"-delimited pattern component.
type segment struct {
	// atoms is the ordered instruction sequence for this component.
	atoms []atom
	// literal holds the unescaped component text when the component
	// contains no metacharacters, enabling direct-lookup traversal.
	literal string
	// doublestar marks a component that is exactly "**" under
	// FlagDoublestarRecursive. Consumed by the walker, not the matcher.
	doublestar bool
}

// Pattern is an immutable compiled glob pattern. It owns no filesystem state
// and is safe for concurrent use by any number of matching operations.
type Pattern struct {
	// source is the original pattern string.
	source string
	// segments are per-component programs in path order.
	segments []segment
	// flags are the options the pattern was compiled with.
	flags Flags
	// hasMagic reports whether any unescaped metacharacter was seen.
	hasMagic bool
	// hasSlash reports whether the pattern addresses a path rather than a
	// single name component.
	hasSlash bool
	// rooted reports whether matching starts at the filesystem root.
	rooted bool
	// dirOnly reports a trailing "/" in the source pattern.
	dirOnly bool
}

// Source returns the original pattern string.
func (p *Pattern) Source() string {
	return p.source
}

// HasMagic reports whether the pattern contained unescaped metacharacters.
func (p *Pattern) HasMagic() bool {
	return p.hasMagic
}

// Compile parses a glob pattern into its segment programs.
//
// The grammar is selected by flags: "{a,b}" groups need FlagBrace, extended
// "?() *() +() @() !()" groups need FlagExtglob, a bare "**" component is a
// recursion marker only under FlagDoublestarRecursive and degrades to "*"
// otherwise. A leading "~" or "~user" component is resolved to a home
// directory under FlagTilde.
func Compile(pattern string, flags Flags) (*Pattern, error) {
	p := &Pattern{source: pattern, flags: flags}

	src := pattern
	if flags.Has(FlagTilde) && strings.HasPrefix(src, "~") {
		home, rest, err := expandTilde(src, flags)
		if err != nil {
			return nil, err
		}

		if home != "" {
			for comp := range strings.SplitSeq(strings.Trim(home, "/"), "/") {
				if comp == "" {
					continue
				}

				p.segments = append(p.segments, literalSegment(comp))
			}

			p.rooted = true
			src = rest
		}
	}

	if strings.HasPrefix(src, "/") {
		p.rooted = true
		src = strings.TrimLeft(src, "/")
	}

	if strings.HasSuffix(src, "/") {
		p.dirOnly = true
		src = strings.TrimRight(src, "/")
	}

	for comp := range splitComponents(src, flags) {
		if comp == "" {
			continue
		}

		seg, err := compileSegment(comp, flags)
		if err != nil {
			return nil, err
		}

		if len(seg.atoms) > 0 || seg.doublestar {
			p.segments = append(p.segments, seg)
		}
	}

	// Anchoring: a rooted pattern or one spanning several components must
	// cover the whole candidate path. Escaped separators stay inside one
	// component and do not anchor.
	p.hasSlash = p.rooted || len(p.segments) > 1

	for i := range p.segments {
		if segmentHasMagic(&p.segments[i]) {
			p.hasMagic = true
			break
		}
	}

	return p, nil
}

// HasWildcards reports whether pattern contains unescaped metacharacters
// under the given flags. Malformed patterns are reported as wildcards since
// only metacharacters can make a pattern malformed.
func HasWildcards(pattern string, flags Flags) bool {
	p, err := Compile(pattern, flags)
	if err != nil {
		return true
	}

	return p.hasMagic
}

// literalSegment builds a segment matching exactly one literal name.
func literalSegment(text string) segment {
	return segment{
		atoms:   []atom{{kind: atomLiteral, text: text}},
		literal: text,
	}
}

// segmentHasMagic reports whether a compiled segment needs the matcher.
func segmentHasMagic(seg *segment) bool {
	if seg.doublestar {
		return true
	}

	return seg.literal == ""
}

// splitComponents yields "/"-delimited pattern components, honoring escaped
// separators when escapes are enabled.
func splitComponents(src string, flags Flags) func(func(string) bool) {
	return func(yield func(string) bool) {
		start := 0
		for i := 0; i < len(src); i++ {
			switch src[i] {
			case '\\':
				if !flags.Has(FlagNoEscape) && i+1 < len(src) {
					i++
				}
			case '/':
				if !yield(src[start:i]) {
					return
				}

				start = i + 1
			}
		}

		yield(src[start:])
	}
}

// compileSegment compiles one pattern component into its program.
func compileSegment(comp string, flags Flags) (segment, error) {
	if comp == "**" && flags.Has(FlagDoublestarRecursive) {
		return segment{doublestar: true}, nil
	}

	atoms, next, magic, err := compileAtoms(comp, 0, flags, "")
	if err != nil {
		return segment{}, err
	}

	if next != len(comp) {
		// A terminator byte surfaced outside any group.
		return segment{}, fmt.Errorf("%w: unexpected %q in %q", ErrBadPattern, comp[next], comp)
	}

	seg := segment{atoms: atoms}
	if !magic && len(atoms) == 1 && atoms[0].kind == atomLiteral {
		seg.literal = atoms[0].text
	}

	return seg, nil
}

// compileAtoms parses atoms from comp starting at i until the end of input
// or one of the stop bytes. Stop bytes delimit group alternatives and are
// not consumed.
func compileAtoms(comp string, i int, flags Flags, stop string) (atoms []atom, next int, magic bool, err error) {
	var lit []byte

	flush := func() {
		if len(lit) > 0 {
			atoms = append(atoms, atom{kind: atomLiteral, text: string(lit)})
			lit = nil
		}
	}

	for i < len(comp) {
		c := comp[i]
		if stop != "" && strings.IndexByte(stop, c) >= 0 {
			break
		}

		switch c {
		case '\\':
			if flags.Has(FlagNoEscape) || i+1 >= len(comp) {
				lit = append(lit, c)
				i++
				continue
			}

			lit = append(lit, comp[i+1])
			i += 2

		case '?', '*', '+', '@', '!':
			if flags.Has(FlagExtglob) && i+1 < len(comp) && comp[i+1] == '(' {
				flush()

				alts, end, err := compileAlternatives(comp, i+2, flags, ')')
				if err != nil {
					return nil, 0, false, err
				}

				atoms = append(atoms, atom{kind: atomExtglob, op: c, alts: alts})
				magic = true
				i = end
				continue
			}

			switch c {
			case '?':
				flush()
				atoms = append(atoms, atom{kind: atomAnyChar})
				magic = true
			case '*':
				flush()
				// Consecutive stars collapse into one run. Inside a
				// component "**" has no recursive meaning.
				if len(atoms) == 0 || atoms[len(atoms)-1].kind != atomAnyRun {
					atoms = append(atoms, atom{kind: atomAnyRun})
				}
				magic = true
			default:
				lit = append(lit, c)
			}
			i++

		case '[':
			class, end, err := parseClass(comp, i, flags)
			if err != nil {
				return nil, 0, false, err
			}

			flush()
			atoms = append(atoms, atom{kind: atomClass, class: class})
			magic = true
			i = end

		case '{':
			if !flags.Has(FlagBrace) {
				lit = append(lit, c)
				i++
				continue
			}

			flush()

			alts, end, err := compileAlternatives(comp, i+1, flags, '}')
			if err != nil {
				return nil, 0, false, err
			}

			atoms = append(atoms, atom{kind: atomBrace, alts: alts})
			magic = true
			i = end

		default:
			lit = append(lit, c)
			i++
		}
	}

	flush()
	return atoms, i, magic, nil
}

// compileAlternatives parses group alternatives up to the closing byte.
// The separator is "," for brace groups and "|" for extglob groups.
func compileAlternatives(comp string, i int, flags Flags, closing byte) ([][]atom, int, error) {
	sep := byte(',')
	if closing == ')' {
		sep = '|'
	}

	stop := string([]byte{sep, closing})
	var alts [][]atom

	for {
		alt, next, _, err := compileAtoms(comp, i, flags, stop)
		if err != nil {
			return nil, 0, err
		}

		if next >= len(comp) {
			return nil, 0, fmt.Errorf("%w: unterminated group in %q", ErrBadPattern, comp)
		}

		alts = append(alts, alt)
		i = next + 1
		if comp[next] == closing {
			return alts, i, nil
		}
	}
}

// parseClass parses a "[...]" character class starting at the opening
// bracket and returns the compiled set with the index past the closing one.
func parseClass(comp string, i int, flags Flags) (*charClass, int, error) {
	class := &charClass{}
	j := i + 1

	if j < len(comp) && (comp[j] == '!' || comp[j] == '^') {
		class.negated = true
		j++
	}

	first := true
	for j < len(comp) {
		b := comp[j]
		if b == ']' && !first {
			return class, j + 1, nil
		}

		first = false
		if b == '\\' && !flags.Has(FlagNoEscape) && j+1 < len(comp) {
			j++
			b = comp[j]
		}

		// "a-z" style range, unless "-" is the trailing literal.
		if j+2 < len(comp) && comp[j+1] == '-' && comp[j+2] != ']' {
			hi := comp[j+2]
			end := j + 3
			if hi == '\\' && !flags.Has(FlagNoEscape) && j+3 < len(comp) {
				hi = comp[j+3]
				end = j + 4
			}

			if hi < b {
				return nil, 0, fmt.Errorf("%w: inverted range %q-%q", ErrBadPattern, b, hi)
			}

			class.addRange(b, hi)
			j = end
			continue
		}

		class.add(b)
		j++
	}

	return nil, 0, fmt.Errorf("%w: unterminated character class in %q", ErrBadPattern, comp)
}
