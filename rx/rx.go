// Package rx wraps the standard regexp engine behind the anchored-match
// contract the scanner consumes: a compiled pattern only ever matches
// starting exactly at the offset it is asked about.
package rx

import (
	"fmt"
	"regexp"
)

// Pattern is a compiled regular expression with an implicit start-of-text
// anchor. A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	re          *regexp.Regexp
	source      string
	insensitive bool
}

// Compile compiles src, anchoring it so that matches must begin exactly at
// the offset passed to MatchAt. The pattern syntax is the standard regexp
// (RE2) dialect.
func Compile(src string, caseInsensitive bool) (*Pattern, error) {
	expr := `\A(?:` + src + `)`
	if caseInsensitive {
		expr = `(?i)` + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", src, err)
	}
	return &Pattern{re: re, source: src, insensitive: caseInsensitive}, nil
}

// Source returns the pattern text as supplied to Compile, without the
// injected anchor.
func (p *Pattern) Source() string {
	return p.source
}

// Insensitive reports whether the pattern was compiled case-insensitively.
func (p *Pattern) Insensitive() bool {
	return p.insensitive
}

// MatchAt attempts a match anchored at off within buf. It returns nil if no
// match starts exactly at off.
func (p *Pattern) MatchAt(buf string, off int) *Capture {
	idx := p.re.FindStringSubmatchIndex(buf[off:])
	if idx == nil {
		return nil
	}
	groups := make([]string, 0, len(idx)/2)
	for i := 0; i < len(idx); i += 2 {
		if idx[i] < 0 {
			groups = append(groups, "")
			continue
		}
		groups = append(groups, buf[off+idx[i]:off+idx[i+1]])
	}
	return &Capture{length: idx[1], groups: groups}
}

// Capture holds the result of a successful anchored match: the matched
// length in bytes and the text of each capture group. Group 0 is the whole
// match; unmatched optional groups are empty strings.
type Capture struct {
	length int
	groups []string
}

// Length returns the number of bytes matched.
func (c *Capture) Length() int {
	return c.length
}

// Text returns the full matched text.
func (c *Capture) Text() string {
	return c.groups[0]
}

// Group returns the text of capture group i, or "" if there is no such
// group.
func (c *Capture) Group(i int) string {
	if i < 0 || i >= len(c.groups) {
		return ""
	}
	return c.groups[i]
}

// Groups returns all capture groups, starting with the whole match.
func (c *Capture) Groups() []string {
	return c.groups
}
