package grammars

import (
	"fmt"
	"testing"

	"github.com/dhamidi/stacklex/lex"
)

func lexWith(t *testing.T, b Builder, input string) []string {
	t.Helper()
	tokens, err := lex.NewLexer(b()).Lex(input)
	if err != nil {
		t.Fatalf("Lex(%q) error = %v", input, err)
	}
	out := make([]string, len(tokens))
	for i, tk := range tokens {
		out[i] = fmt.Sprintf("%s:%s", tk.Type(), tk.Text())
	}
	return out
}

func expectSequence(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSexpr(t *testing.T) {
	got := lexWith(t, Sexpr, "(add 1 (mul x 2.5))")
	expectSequence(t, got, []string{
		"open-paren:(",
		"word:add",
		"number:1",
		"open-paren:(",
		"word:mul",
		"word:x",
		"number:2.5",
		"close-paren:)",
		"close-paren:)",
	})
}

func TestSexprQuote(t *testing.T) {
	got := lexWith(t, Sexpr, "(`a)")
	expectSequence(t, got, []string{"open-paren:(", "quote:`", "word:a", "close-paren:)"})
}

func TestINI(t *testing.T) {
	input := "; config\n[server]\nhost = example.com\nport = 8080\nsecure = YES\n"
	got := lexWith(t, INI, input)
	expectSequence(t, got, []string{
		"comment:; config",
		"section-open:[",
		"section-name:server",
		"section-close:]",
		"key:host",
		"assign:=",
		"value:example.com",
		"key:port",
		"assign:=",
		"int:8080",
		"key:secure",
		"assign:=",
		"bool:YES",
	})
}

func TestINIValueAtEOF(t *testing.T) {
	got := lexWith(t, INI, "key=1")
	expectSequence(t, got, []string{"key:key", "assign:=", "int:1"})
}

func TestStrings(t *testing.T) {
	got := lexWith(t, Strings, `say "hi\n" or "\x41"`)
	expectSequence(t, got, []string{
		`string-open:"`,
		"chars:hi",
		`esc-start:\`,
		"esc-char:n",
		`string-close:"`,
		`string-open:"`,
		`esc-start:\`,
		"esc-hex:x41",
		`string-close:"`,
	})
}

func TestRegistry(t *testing.T) {
	names := Names()
	want := []string{"ini", "sexpr", "strings"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	for _, name := range names {
		b, err := Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q) error = %v", name, err)
			continue
		}
		if b() == nil {
			t.Errorf("Lookup(%q) builder returned nil grammar", name)
		}
	}

	if _, err := Lookup("nope"); err == nil {
		t.Error("Lookup(nope) error = nil, want error")
	}
}

func TestGrammarsExposeTokenTypes(t *testing.T) {
	for _, name := range Names() {
		b, _ := Lookup(name)
		if types := b().TokenTypes(); len(types) == 0 {
			t.Errorf("grammar %q reports no token types", name)
		}
	}
}
