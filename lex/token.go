package lex

import "fmt"

// Token is one emitted unit of output: a type tag, the captured text and
// groups, and source locations. Tokens are immutable once created.
type Token[T comparable] struct {
	typ    T
	groups []string
	start  Location
	loc    Location
}

// Type returns the token's type tag.
func (t Token[T]) Type() T {
	return t.typ
}

// Text returns the full matched text.
func (t Token[T]) Text() string {
	if len(t.groups) == 0 {
		return ""
	}
	return t.groups[0]
}

// Group returns the text of capture group i, or "" if the rule's pattern
// has no such group. Group 0 is the whole match.
func (t Token[T]) Group(i int) string {
	if i < 0 || i >= len(t.groups) {
		return ""
	}
	return t.groups[i]
}

// Groups returns all captured groups, starting with the whole match.
func (t Token[T]) Groups() []string {
	return t.groups
}

// Start returns the location at which the match began.
func (t Token[T]) Start() Location {
	return t.start
}

// Location returns the location at which the match ended.
func (t Token[T]) Location() Location {
	return t.loc
}

func (t Token[T]) String() string {
	return fmt.Sprintf("<%v@%s %q>", t.typ, t.start, t.Text())
}

// ScanResult is the outcome of one scan step: the rule that fired, the token
// it produced (nil for untyped rules), and the location scanning resumes at.
type ScanResult[T comparable] struct {
	Rule  *Rule[T]
	Token *Token[T]
	Loc   Location
}
