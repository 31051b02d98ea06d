// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zlob

package zlob

import "testing"

// compileOne compiles a single-component pattern and returns its program.
func compileOne(t *testing.T, pattern string, flags Flags) *segment {
	t.Helper()

	p, err := Compile(pattern, flags)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}

	if len(p.segments) != 1 {
		t.Fatalf("Compile(%q) produced %d segments, want 1", pattern, len(p.segments))
	}

	return &p.segments[0]
}

func TestMatchSegmentWildcards(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		pattern string
		input   string
		flags   Flags
		want    bool
	}{
		{"literal exact", "lib.rs", "lib.rs", 0, true},
		{"literal miss", "lib.rs", "lib.go", 0, false},
		{"star all", "*", "anything", 0, true},
		{"star suffix", "*.rs", "lib.rs", 0, true},
		{"star suffix miss", "*.rs", "lib.go", 0, false},
		{"star backtrack", "a*b*c", "aXbYc", 0, true},
		{"star empty spans", "a*b*c", "abc", 0, true},
		{"star order", "a*b*c", "acb", 0, false},
		{"star missing tail", "a*b*c", "ab", 0, false},
		{"question one byte", "?x", "ax", 0, true},
		{"question needs byte", "?x", "x", 0, false},
		{"question exact width", "a?.rs", "ab.rs", 0, true},
		{"question too wide", "a?.rs", "abc.rs", 0, false},
		{"class range", "[a-c]x", "bx", 0, true},
		{"class range miss", "[a-c]x", "dx", 0, false},
		{"class negated", "[!a]x", "bx", 0, true},
		{"class negated miss", "[!a]x", "ax", 0, false},
		{"class literal bracket", "[]a]", "]", 0, true},
		{"class literal bracket alt", "[]a]", "a", 0, true},
		{"class literal bracket miss", "[]a]", "b", 0, false},
		{"escaped star", `a\*b`, "a*b", 0, true},
		{"escaped star literal", `a\*b`, "axb", 0, false},
		{"noescape backslash", `a\*b`, `a\b`, FlagNoEscape, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			seg := compileOne(t, tc.pattern, tc.flags)
			if got := matchSegment(seg, tc.input, tc.flags); got != tc.want {
				t.Fatalf("matchSegment(%q, %q) = %v, want %v", tc.pattern, tc.input, got, tc.want)
			}
		})
	}
}

func TestMatchSegmentHidden(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		pattern string
		input   string
		flags   Flags
		want    bool
	}{
		{"star skips dotfile", "*", ".hidden", 0, false},
		{"period allows dotfile", "*", ".hidden", FlagPeriod, true},
		{"explicit dot allows", ".*", ".hidden", 0, true},
		{"question skips dotfile", "?foo", ".foo", 0, false},
		{"class skips dotfile", "[.a]x", ".x", 0, false},
		{"mid dot unaffected", "a*", "a.b", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			seg := compileOne(t, tc.pattern, tc.flags)
			if got := matchSegment(seg, tc.input, tc.flags); got != tc.want {
				t.Fatalf("matchSegment(%q, %q) = %v, want %v", tc.pattern, tc.input, got, tc.want)
			}
		})
	}
}

func TestMatchSegmentBrace(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"first alt", "{foo,bar}.rs", "foo.rs", true},
		{"second alt", "{foo,bar}.rs", "bar.rs", true},
		{"no alt", "{foo,bar}.rs", "baz.rs", false},
		{"nested", "{a,b{c,d}}", "bd", true},
		{"nested first", "{a,b{c,d}}", "a", true},
		{"nested miss", "{a,b{c,d}}", "bc d", false},
		{"alt with star", "{*.rs,*.go}", "lib.go", true},
		{"empty alt", "a{,b}", "a", true},
		{"empty alt tail", "a{,b}", "ab", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			seg := compileOne(t, tc.pattern, FlagBrace)
			if got := matchSegment(seg, tc.input, FlagBrace); got != tc.want {
				t.Fatalf("matchSegment(%q, %q) = %v, want %v", tc.pattern, tc.input, got, tc.want)
			}
		})
	}
}

func TestMatchSegmentExtglob(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"negation passes", "app.!(js|ts)", "app.css", true},
		{"negation empty span", "app.!(js|ts)", "app.", true},
		{"negation blocks first", "app.!(js|ts)", "app.js", false},
		{"negation blocks second", "app.!(js|ts)", "app.ts", false},
		{"exactly one", "@(foo|bar).txt", "foo.txt", true},
		{"exactly one miss", "@(foo|bar).txt", "qux.txt", false},
		{"one or more single", "x+(ab)", "xab", true},
		{"one or more repeated", "x+(ab)", "xababab", true},
		{"one or more needs one", "x+(ab)", "x", false},
		{"one or more partial", "x+(ab)", "xa", false},
		{"zero or more empty", "x*(ab)", "x", true},
		{"zero or more repeated", "x*(ab)", "xabab", true},
		{"zero or more partial", "x*(ab)", "xa", false},
		{"zero or one absent", "?(a)b", "b", true},
		{"zero or one present", "?(a)b", "ab", true},
		{"zero or one twice", "?(a)b", "aab", false},
		{"disabled is literal", "x+(ab)", "xab", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			flags := FlagExtglob
			if tc.name == "disabled is literal" {
				flags = 0
			}

			seg := compileOne(t, tc.pattern, flags)
			if got := matchSegment(seg, tc.input, flags); got != tc.want {
				t.Fatalf("matchSegment(%q, %q) = %v, want %v", tc.pattern, tc.input, got, tc.want)
			}
		})
	}
}
