// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zlob

package zlob

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ignoreFileName is the rule file consulted in each traversed directory.
const ignoreFileName = ".gitignore"

// ignoreRuleFlags restricts rule patterns to POSIX glob semantics: no brace
// or extglob groups, wildcards may match dotfiles, "**" is recursive.
const ignoreRuleFlags = FlagPeriod | FlagDoublestarRecursive

// ignoreRule is one compiled ignore-file rule.
type ignoreRule struct {
	// pat is the rule pattern compiled with ignoreRuleFlags.
	pat *Pattern
	// negate re-includes a path that an earlier rule excluded.
	negate bool
	// dirOnly restricts the rule to directories (trailing "/").
	dirOnly bool
	// anchored pins the rule to the rule set directory (any non-trailing
	// "/" in the source pattern).
	anchored bool
}

// IgnoreRules is the ordered rule list parsed from one ignore file.
// Evaluation is last-match-wins within the list.
type IgnoreRules struct {
	rules []ignoreRule
}

// ParseIgnore parses gitignore-style rules from a reader.
//
// Semantics:
//   - blank lines and "#" comments are skipped
//   - "!" prefixes a negation rule; "\!" and "\#" escape those markers
//   - a trailing "/" restricts the rule to directories
//   - unescaped trailing spaces are trimmed
//   - lines whose pattern fails to compile match nothing and are dropped
func ParseIgnore(r io.Reader) (*IgnoreRules, error) {
	s := bufio.NewScanner(r)
	ir := &IgnoreRules{}

	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		line = trimTrailingSpaces(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, `\#`) {
			line = line[1:]
		}

		negate := false
		if strings.HasPrefix(line, "!") {
			negate = true
			line = line[1:]
		} else if strings.HasPrefix(line, `\!`) {
			line = line[1:]
		}

		if line == "" {
			continue
		}

		rule, ok := compileIgnoreRule(line, negate)
		if !ok {
			continue
		}

		ir.rules = append(ir.rules, rule)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan ignore rules: %w", err)
	}

	return ir, nil
}

// ParseIgnoreString parses rules from string input.
func ParseIgnoreString(src string) (*IgnoreRules, error) {
	return ParseIgnore(strings.NewReader(src))
}

// LoadIgnoreFile reads and parses one ignore rule file.
func LoadIgnoreFile(path string) (*IgnoreRules, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ignore file: %w", err)
	}
	defer func() { _ = f.Close() }()

	ir, err := ParseIgnore(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return ir, nil
}

// compileIgnoreRule compiles one rule line into its matcher.
func compileIgnoreRule(line string, negate bool) (ignoreRule, bool) {
	rule := ignoreRule{negate: negate}

	if strings.HasSuffix(line, "/") {
		rule.dirOnly = true
		line = strings.TrimRight(line, "/")
	}

	// A slash anywhere else anchors the rule to the rule set directory.
	rule.anchored = strings.Contains(line, "/")
	line = strings.TrimPrefix(line, "/")
	if line == "" {
		return ignoreRule{}, false
	}

	pat, err := Compile(line, ignoreRuleFlags)
	if err != nil || len(pat.segments) == 0 {
		return ignoreRule{}, false
	}

	rule.pat = pat
	return rule, true
}

// Ignored reports whether a path is excluded by the rules, last matching
// rule wins. A path ending in "/" is treated as a directory.
func (ir *IgnoreRules) Ignored(path string, isDir bool) bool {
	matched, ignored := ir.decide(path, isDir)
	return matched && ignored
}

// decide evaluates all rules against one path. matched reports whether any
// rule applied; ignored is the verdict of the last applicable rule.
func (ir *IgnoreRules) decide(path string, isDir bool) (matched, ignored bool) {
	if ir == nil {
		return false, false
	}

	if strings.HasSuffix(path, "/") {
		isDir = true
	}

	candidate := normalizePath(path)
	if candidate == "" {
		return false, false
	}

	comps := splitPath(candidate)
	for i := range ir.rules {
		if !ir.rules[i].matches(comps, isDir) {
			continue
		}

		matched = true
		ignored = !ir.rules[i].negate
	}

	return matched, ignored
}

// matches reports whether one rule applies to the candidate components.
func (r *ignoreRule) matches(comps []string, isDir bool) bool {
	if r.anchored {
		return r.matchAt(comps, 0, isDir)
	}

	// Unanchored rules may start at any component boundary.
	for start := 0; start < len(comps); start++ {
		if r.matchAt(comps, start, isDir) {
			return true
		}
	}

	return false
}

// matchAt matches the rule pattern against comps[start:]. A rule matching a
// proper directory prefix of the candidate covers everything below it.
func (r *ignoreRule) matchAt(comps []string, start int, isDir bool) bool {
	return matchIgnoreSegs(r.pat.segments, 0, comps, start, isDir, r.dirOnly)
}

// matchIgnoreSegs is the component-level matcher for ignore rules, with
// prefix coverage: exhausting segments before components means the rule
// matched an ancestor directory of the candidate.
func matchIgnoreSegs(segs []segment, si int, comps []string, ci int, isDir, dirOnly bool) bool {
	if si == len(segs) {
		if ci == len(comps) {
			return !dirOnly || isDir
		}

		// The matched span is a directory containing the candidate.
		return true
	}

	seg := &segs[si]
	if seg.doublestar {
		for k := ci; k <= len(comps); k++ {
			if matchIgnoreSegs(segs, si+1, comps, k, isDir, dirOnly) {
				return true
			}
		}

		return false
	}

	if ci >= len(comps) {
		return false
	}

	if !matchComponent(seg, comps[ci], ignoreRuleFlags) {
		return false
	}

	return matchIgnoreSegs(segs, si+1, comps, ci+1, isDir, dirOnly)
}

// trimTrailingSpaces removes trailing spaces unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + s[len(s)-1:]
			break
		}

		s = s[:len(s)-1]
	}

	return s
}

// ignoreIndex lazily loads ignore rule files along the traversal path and
// layers them from the root downward. State is scoped to one operation.
type ignoreIndex struct {
	// base is the filesystem prefix rule files are read under.
	base string
	// cache stores parsed rule sets by relative directory; nil means the
	// directory has no readable rule file.
	cache map[string]*IgnoreRules
}

// newIgnoreIndex creates an index rooted at base ("" means the working
// directory).
func newIgnoreIndex(base string) *ignoreIndex {
	return &ignoreIndex{
		base:  base,
		cache: make(map[string]*IgnoreRules),
	}
}

// Ignored reports whether rel is excluded by the layered rule sets from the
// root down to its containing directory. Deeper sets are consulted after
// shallower ones; the last matching rule across all sets wins.
func (ix *ignoreIndex) Ignored(rel string, isDir bool) bool {
	candidate := normalizePath(rel)
	if candidate == "" {
		return false
	}

	verdict := false
	apply := func(dir string) {
		rules := ix.load(dir)
		if rules == nil {
			return
		}

		sub := candidate
		if dir != "" {
			// Rules apply to paths below their directory, not to the
			// directory itself.
			if !strings.HasPrefix(candidate, dir+"/") {
				return
			}

			sub = candidate[len(dir)+1:]
		}

		if matched, ignored := rules.decide(sub, isDir); matched {
			verdict = ignored
		}
	}

	apply("")
	for i := 0; i < len(candidate); i++ {
		if candidate[i] == '/' {
			apply(candidate[:i])
		}
	}

	return verdict
}

// load returns the cached or freshly parsed rule set for one relative
// directory. Missing or unreadable rule files resolve to nil.
func (ix *ignoreIndex) load(dir string) *IgnoreRules {
	if rules, ok := ix.cache[dir]; ok {
		return rules
	}

	path := ignoreFileName
	if dir != "" {
		path = dir + "/" + ignoreFileName
	}

	if ix.base != "" {
		path = ix.base + "/" + path
	}

	rules, err := LoadIgnoreFile(path)
	if err != nil {
		rules = nil
	}

	ix.cache[dir] = rules
	return rules
}
