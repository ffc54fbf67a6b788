package lex

import (
	"fmt"
	"strings"
)

// PatternError reports a rule pattern that failed to compile. The rule
// builders panic with it at grammar construction time, before any scanning
// begins.
type PatternError struct {
	Source string
	Err    error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("lex: invalid pattern %q: %v", e.Source, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// NoMatchError reports that no rule anywhere in the reachable grammar graph
// matched the input. Loc is the exact position scanning was stuck at, Char
// the offending byte, and GrammarStack the names of the active grammars
// from the bottom of the lexer's stack to the top.
type NoMatchError struct {
	Loc          Location
	Char         byte
	GrammarStack []string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("%s: no lexical rule matched %q (grammar stack: %s)",
		e.Loc, e.Char, strings.Join(e.GrammarStack, " > "))
}

// UnexpectedEndError reports that the scan loop exited with unconsumed
// input, e.g. because a pop rule emptied the grammar stack before the end
// of the buffer. Loc is where scanning stopped.
type UnexpectedEndError struct {
	Loc Location
}

func (e *UnexpectedEndError) Error() string {
	return fmt.Sprintf("%s: grammar stack exhausted before end of input", e.Loc)
}
