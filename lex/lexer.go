package lex

import (
	"fmt"
	"io"
)

// Lexer drives the scan loop over a stack of grammars, producing the token
// sequence for an input buffer. The stack is reinitialized to the root
// grammar at the start of every Lex call, so one Lexer may be reused across
// inputs. A Lexer is not safe for concurrent use; give each goroutine its
// own (the grammar graph itself may be shared freely).
type Lexer[T comparable] struct {
	root       *Grammar[T]
	bestEffort bool
	debug      io.Writer
	stopped    Location
}

// NewLexer creates a lexer bound to root.
func NewLexer[T comparable](root *Grammar[T]) *Lexer[T] {
	return &Lexer[T]{root: root}
}

// BestEffort converts a no-match failure from a hard error into silent
// early termination: Lex returns the tokens accumulated so far with a nil
// error. Callers needing to distinguish a complete scan from a partial one
// compare StoppedAt against the input length.
func (l *Lexer[T]) BestEffort() *Lexer[T] {
	l.bestEffort = true
	return l
}

// Debug echoes each emitted token to w as it is produced, and the active
// grammar stack when no rule matches. Pass nil to disable.
func (l *Lexer[T]) Debug(w io.Writer) *Lexer[T] {
	l.debug = w
	return l
}

// StoppedAt returns the location at which the most recent Lex call stopped
// scanning. After a complete scan its Offset equals the input length.
func (l *Lexer[T]) StoppedAt() Location {
	return l.stopped
}

// Lex tokenizes input and returns the emitted tokens in match order.
// In the default strict mode it fails with a *NoMatchError when no rule
// applies, or a *UnexpectedEndError when the grammar stack empties before
// the buffer is consumed; both carry the exact source location. Tokens
// accumulated before the failure are returned alongside the error.
func (l *Lexer[T]) Lex(input string) ([]Token[T], error) {
	return l.lex("", input)
}

// LexNamed is Lex with a source name carried into token locations and error
// messages.
func (l *Lexer[T]) LexNamed(name, input string) ([]Token[T], error) {
	return l.lex(name, input)
}

// LexReader materializes r into a buffer and tokenizes it.
func (l *Lexer[T]) LexReader(name string, r io.Reader) ([]Token[T], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read source %s: %w", name, err)
	}
	return l.lex(name, string(data))
}

func (l *Lexer[T]) lex(name, input string) ([]Token[T], error) {
	var tokens []Token[T]
	stack := []*Grammar[T]{l.root}
	cur := NewCursor(name, input)

	for len(stack) > 0 && !cur.AtEnd() {
		g := stack[len(stack)-1]
		res, ok := g.Scan(cur.Loc(), input)
		if !ok {
			l.stopped = cur.Loc()
			if l.bestEffort {
				return tokens, nil
			}
			err := &NoMatchError{Loc: cur.Loc(), Char: cur.Peek(1), GrammarStack: grammarNames(stack)}
			if l.debug != nil {
				fmt.Fprintln(l.debug, err)
			}
			return tokens, err
		}

		if res.Rule.action != ActionIgnore && res.Token != nil {
			tokens = append(tokens, *res.Token)
			if l.debug != nil {
				fmt.Fprintln(l.debug, res.Token)
			}
		}

		switch res.Rule.action {
		case ActionPush:
			stack = append(stack, res.Rule.target)
		case ActionPop:
			stack = stack[:len(stack)-1]
		}

		cur.SeekTo(res.Loc)
	}

	l.stopped = cur.Loc()
	if !cur.AtEnd() && !l.bestEffort {
		return tokens, &UnexpectedEndError{Loc: cur.Loc()}
	}
	return tokens, nil
}

func grammarNames[T comparable](stack []*Grammar[T]) []string {
	names := make([]string, len(stack))
	for i, g := range stack {
		names[i] = g.name
	}
	return names
}
