package lex

import (
	"fmt"

	"github.com/dhamidi/stacklex/rx"
)

// Action selects what the lexer does when a rule's pattern matches.
type Action int

const (
	// ActionIgnore consumes the matched text and emits nothing.
	ActionIgnore Action = iota
	// ActionMatch consumes the matched text and emits a token if the rule
	// is typed.
	ActionMatch
	// ActionPush pushes the rule's target grammar onto the lexer's stack.
	ActionPush
	// ActionPop pops the current grammar off the lexer's stack.
	ActionPop
)

func (a Action) String() string {
	switch a {
	case ActionIgnore:
		return "ignore"
	case ActionMatch:
		return "match"
	case ActionPush:
		return "push"
	case ActionPop:
		return "pop"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Rule is a single transition specification: an anchored pattern plus the
// action taken when it matches. Rules are built with Ignore, Match, Push,
// and Pop and modified with ICase and Stay, then attached to a grammar via
// Grammar.Def.
//
// The builders panic with a *PatternError if the pattern does not compile;
// like regexp.MustCompile, a bad pattern is a bug in the grammar definition,
// not a runtime condition.
type Rule[T comparable] struct {
	action  Action
	pattern *rx.Pattern
	stay    bool
	target  *Grammar[T]
}

// Ignore creates a rule that consumes matching text silently.
func Ignore[T comparable](pattern string) *Rule[T] {
	return newRule[T](ActionIgnore, pattern)
}

// Match creates a rule that consumes matching text and, when given a type
// tag via Grammar.Def, emits a token.
func Match[T comparable](pattern string) *Rule[T] {
	return newRule[T](ActionMatch, pattern)
}

// Push creates a rule that pushes target onto the grammar stack when its
// pattern matches. target may be any grammar in the graph, including an
// ancestor or the pushing grammar itself.
func Push[T comparable](pattern string, target *Grammar[T]) *Rule[T] {
	r := newRule[T](ActionPush, pattern)
	r.target = target
	return r
}

// Pop creates a rule that pops the current grammar off the stack when its
// pattern matches.
func Pop[T comparable](pattern string) *Rule[T] {
	return newRule[T](ActionPop, pattern)
}

func newRule[T comparable](action Action, pattern string) *Rule[T] {
	p, err := rx.Compile(pattern, false)
	if err != nil {
		panic(&PatternError{Source: pattern, Err: err})
	}
	return &Rule[T]{action: action, pattern: p}
}

// ICase recompiles the rule's pattern case-insensitively and returns the
// rule.
func (r *Rule[T]) ICase() *Rule[T] {
	p, err := rx.Compile(r.pattern.Source(), true)
	if err != nil {
		panic(&PatternError{Source: r.pattern.Source(), Err: err})
	}
	r.pattern = p
	return r
}

// Stay marks the rule to leave the scan location unchanged when it fires:
// the state transition happens but the matched text is not consumed, so the
// next scan step re-reads it in the new grammar context. Stay is only valid
// on push and pop rules; calling it on an ignore or match rule panics.
func (r *Rule[T]) Stay() *Rule[T] {
	if r.action != ActionPush && r.action != ActionPop {
		panic(fmt.Sprintf("lex: Stay is not valid on %s rules", r.action))
	}
	r.stay = true
	return r
}

// Action returns the rule's action.
func (r *Rule[T]) Action() Action {
	return r.action
}

// Pattern returns the rule's compiled pattern, or nil for the synthetic
// rules behind Grammar.ElsePop and Grammar.ElsePush.
func (r *Rule[T]) Pattern() *rx.Pattern {
	return r.pattern
}

// Target returns the grammar pushed when the rule fires. It is non-nil
// exactly for push rules.
func (r *Rule[T]) Target() *Grammar[T] {
	return r.target
}

// qualifiedRule pairs a rule with its optional token type. Rules without a
// type are silent: they never contribute a token to the output.
type qualifiedRule[T comparable] struct {
	rule  *Rule[T]
	typed bool
	typ   T
}
