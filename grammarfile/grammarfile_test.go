package grammarfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhamidi/stacklex/lex"
)

const sexprYAML = `
root: top
states:
  top:
    rules:
      - {action: ignore, pattern: '\s+'}
      - {action: push, pattern: '\(', state: sexpr, type: open}
  sexpr:
    rules:
      - {action: ignore, pattern: '\s+'}
      - {action: match, pattern: '[0-9]+', type: number}
      - {action: match, pattern: '[a-z]+', type: word}
      - {action: push, pattern: '\(', state: sexpr, type: open}
      - {action: pop, pattern: '\)', type: close}
`

func lexYAML(t *testing.T, doc, input string) []string {
	t.Helper()
	g, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	tokens, err := lex.NewLexer(g).Lex(input)
	if err != nil {
		t.Fatalf("Lex(%q) error = %v", input, err)
	}
	out := make([]string, len(tokens))
	for i, tk := range tokens {
		out[i] = fmt.Sprintf("%s:%s", tk.Type(), tk.Text())
	}
	return out
}

func TestParseSexpr(t *testing.T) {
	got := lexYAML(t, sexprYAML, "(add (x 12))")
	want := []string{"open:(", "word:add", "open:(", "word:x", "number:12", "close:)", "close:)"}
	if len(got) != len(want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseInheritAndElse(t *testing.T) {
	doc := `
root: main
states:
  common:
    rules:
      - {action: ignore, pattern: '\s+'}
  main:
    inherit: [common]
    rules:
      - {action: match, pattern: '[a-z]+', type: word}
    else: {push: digits}
  digits:
    rules:
      - {action: match, pattern: '[0-9]+', type: number}
    else: {pop: true}
`
	got := lexYAML(t, doc, "ab 12 cd")
	want := []string{"word:ab", "number:12", "word:cd"}
	if len(got) != len(want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseInsensitiveAndStay(t *testing.T) {
	doc := `
root: text
states:
  text:
    rules:
      - {action: ignore, pattern: '[^"]+'}
      - {action: push, pattern: '"', state: str, stay: true}
  str:
    rules:
      - {action: pop, pattern: '"[a-z]*"', type: string, insensitive: true}
`
	got := lexYAML(t, doc, `say "Hi" now`)
	want := []string{`string:"Hi"`}
	if len(got) != len(want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	if got[0] != want[0] {
		t.Errorf("token[0] = %q, want %q", got[0], want[0])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "missing root",
			doc:  "states:\n  a:\n    rules: []\n",
			want: "no root state",
		},
		{
			name: "undefined root",
			doc:  "root: b\nstates:\n  a:\n    rules: []\n",
			want: `root state "b" is not defined`,
		},
		{
			name: "bad pattern",
			doc:  "root: a\nstates:\n  a:\n    rules:\n      - {action: match, pattern: '[', type: t}\n",
			want: "compile pattern",
		},
		{
			name: "unknown action",
			doc:  "root: a\nstates:\n  a:\n    rules:\n      - {action: emit, pattern: 'x'}\n",
			want: `unknown action "emit"`,
		},
		{
			name: "push without state",
			doc:  "root: a\nstates:\n  a:\n    rules:\n      - {action: push, pattern: 'x'}\n",
			want: "push rule needs a state",
		},
		{
			name: "push to unknown state",
			doc:  "root: a\nstates:\n  a:\n    rules:\n      - {action: push, pattern: 'x', state: b}\n",
			want: `unknown state "b"`,
		},
		{
			name: "stay on match",
			doc:  "root: a\nstates:\n  a:\n    rules:\n      - {action: match, pattern: 'x', stay: true}\n",
			want: "stay is only valid",
		},
		{
			name: "state on match",
			doc:  "root: a\nstates:\n  a:\n    rules:\n      - {action: match, pattern: 'x', state: a}\n",
			want: "only valid on push rules",
		},
		{
			name: "inherit unknown state",
			doc:  "root: a\nstates:\n  a:\n    inherit: [b]\n    rules: []\n",
			want: `inherits unknown state "b"`,
		},
		{
			name: "else without pop or push",
			doc:  "root: a\nstates:\n  a:\n    rules: []\n    else: {}\n",
			want: "else must set pop or push",
		},
		{
			name: "else with pop and push",
			doc:  "root: a\nstates:\n  a:\n    rules: []\n    else: {pop: true, push: a}\n",
			want: "cannot both pop and push",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sexpr.yaml")
	if err := os.WriteFile(path, []byte(sexprYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if g.Name() != "top" {
		t.Errorf("Name() = %q, want %q", g.Name(), "top")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("Load() error = nil, want error")
	}
}
