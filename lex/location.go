// Package lex implements a grammar-driven, stateful lexical scanner.
//
// A Grammar is one lexical state: an ordered list of rules, each mapping an
// anchored pattern to an action (ignore, match, push, pop). Push and pop
// rules move the lexer between grammars at scan time, so nested constructs
// (parenthesized expressions, string escapes, here-docs) each get their own
// rule set. Grammars may inherit rules from other grammars and may declare
// default pop/push fallbacks taken when nothing matches.
//
// Grammars are built once and are read-only while scanning, so a single
// grammar graph may be shared by lexers running concurrently.
package lex

import "fmt"

// Location identifies a point in named source input. Line and Col are
// 1-based; Offset is the byte offset into the buffer.
type Location struct {
	Name   string
	Line   int
	Col    int
	Offset int
}

// Nowhere returns the sentinel location used before any scanning has
// happened. It is the only Location with a zero line and column.
func Nowhere() Location {
	return Location{}
}

// IsNowhere reports whether l is the Nowhere sentinel.
func (l Location) IsNowhere() bool {
	return l.Line == 0 && l.Col == 0
}

func (l Location) String() string {
	if l.Name != "" {
		return fmt.Sprintf("%s:%d:%d", l.Name, l.Line, l.Col)
	}
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}
