// Package grammars provides ready-made lexical grammars for the stacklex
// CLI and language server. All built-ins use string token types so their
// output can be named in command-line output and LSP legends.
package grammars

import (
	"fmt"
	"sort"

	"github.com/dhamidi/stacklex/lex"
)

// Builder constructs a fresh grammar graph. Registry entries hand out
// builders rather than shared grammars so every caller gets its own graph.
type Builder func() *lex.Grammar[string]

var registry = map[string]Builder{
	"sexpr":   Sexpr,
	"ini":     INI,
	"strings": Strings,
}

// Names returns the registered grammar names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the builder registered under name.
func Lookup(name string) (Builder, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown grammar %q (available: %v)", name, Names())
	}
	return b, nil
}

// Sexpr builds a grammar for s-expressions: atoms are words, numbers, and
// quotes; parentheses push into a nested expression state that recurses
// into itself.
func Sexpr() *lex.Grammar[string] {
	root := lex.NewGrammar[string]().Named("root")
	sexpr := root.Sub().Named("sexpr")

	sexpr.Def(lex.Ignore[string](`\s+`)).
		Def(lex.Match[string]("`"), "quote").
		Def(lex.Match[string](`[0-9]*\.?[0-9]+`), "number").
		Def(lex.Match[string](`[-!?+*/A-Za-z_][-!?+*/A-Za-z_0-9]*`), "word").
		Def(lex.Push(`\(`, sexpr), "open-paren").
		Def(lex.Pop[string](`\)`), "close-paren")

	root.Def(lex.Ignore[string](`\s+`)).
		Def(lex.Push(`\(`, sexpr), "open-paren")
	return root
}

// INI builds a grammar for INI-style configuration files: [sections], keys,
// and values, with comments shared between states via inheritance.
func INI() *lex.Grammar[string] {
	common := lex.NewGrammar[string]().Named("common")
	common.Def(lex.Ignore[string](`[ \t\r\n]+`)).
		Def(lex.Match[string](`[;#][^\n]*`), "comment")

	root := lex.NewGrammar[string]().Named("ini")
	section := root.Sub().Named("section")
	value := root.Sub().Named("value")

	section.Def(lex.Match[string](`[A-Za-z_][A-Za-z0-9_.-]*`), "section-name").
		Def(lex.Pop[string](`\]`), "section-close")

	value.Def(lex.Ignore[string](`[ \t]+`)).
		Def(lex.Match[string](`(?:true|false|yes|no|on|off)\b`).ICase(), "bool").
		Def(lex.Match[string](`[0-9]+\b`), "int").
		Def(lex.Match[string](`[^\n]+`), "value").
		Def(lex.Pop[string](`\n`)).
		ElsePop()

	root.Inherit(common).
		Def(lex.Push(`\[`, section), "section-open").
		Def(lex.Match[string](`[A-Za-z_][A-Za-z0-9_.-]*`), "key").
		Def(lex.Push(`[:=]`, value), "assign")
	return root
}

// Strings builds a grammar that picks quoted string literals out of
// arbitrary text, with a nested state for backslash escapes.
func Strings() *lex.Grammar[string] {
	root := lex.NewGrammar[string]().Named("text")
	str := root.Sub().Named("string")
	esc := root.Sub().Named("escape")

	esc.Def(lex.Pop[string](`x[0-9a-f]{2}`).ICase(), "esc-hex").
		Def(lex.Pop[string](`[nrt0"\\]`), "esc-char")

	str.Def(lex.Match[string](`[^"\\]+`), "chars").
		Def(lex.Push(`\\`, esc), "esc-start").
		Def(lex.Pop[string](`"`), "string-close")

	root.Def(lex.Ignore[string](`[^"]+`)).
		Def(lex.Push(`"`, str), "string-open")
	return root
}
