package rx

import (
	"strings"
	"testing"
)

func TestCompileInvalidPattern(t *testing.T) {
	_, err := Compile(`[unterminated`, false)
	if err == nil {
		t.Fatal("Compile() error = nil, want syntax error")
	}
	if !strings.Contains(err.Error(), "[unterminated") {
		t.Errorf("error %q does not mention the pattern source", err)
	}
}

func TestMatchAtAnchoring(t *testing.T) {
	p, err := Compile(`b`, false)
	if err != nil {
		t.Fatal(err)
	}

	if c := p.MatchAt("ab", 0); c != nil {
		t.Errorf("MatchAt(ab, 0) = %q, want no match", c.Text())
	}
	c := p.MatchAt("ab", 1)
	if c == nil {
		t.Fatal("MatchAt(ab, 1) = nil, want match")
	}
	if c.Text() != "b" {
		t.Errorf("Text() = %q, want %q", c.Text(), "b")
	}
	if c.Length() != 1 {
		t.Errorf("Length() = %d, want %d", c.Length(), 1)
	}
}

func TestMatchAtGroups(t *testing.T) {
	p, err := Compile(`([a-z]+)=([0-9]+)`, false)
	if err != nil {
		t.Fatal(err)
	}
	c := p.MatchAt("key=42;", 0)
	if c == nil {
		t.Fatal("MatchAt() = nil, want match")
	}
	want := []string{"key=42", "key", "42"}
	got := c.Groups()
	if len(got) != len(want) {
		t.Fatalf("Groups() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Group(%d) = %q, want %q", i, got[i], want[i])
		}
	}
	if c.Group(3) != "" {
		t.Errorf("Group(3) = %q, want empty", c.Group(3))
	}
}

func TestMatchAtUnmatchedOptionalGroup(t *testing.T) {
	p, err := Compile(`a(b)?c`, false)
	if err != nil {
		t.Fatal(err)
	}
	c := p.MatchAt("ac", 0)
	if c == nil {
		t.Fatal("MatchAt() = nil, want match")
	}
	if c.Group(1) != "" {
		t.Errorf("Group(1) = %q, want empty", c.Group(1))
	}
}

func TestCompileCaseInsensitive(t *testing.T) {
	p, err := Compile(`select`, true)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Insensitive() {
		t.Error("Insensitive() = false, want true")
	}
	c := p.MatchAt("SELECT *", 0)
	if c == nil {
		t.Fatal("MatchAt(SELECT) = nil, want match")
	}
	if c.Text() != "SELECT" {
		t.Errorf("Text() = %q, want %q", c.Text(), "SELECT")
	}
}

func TestSourcePreserved(t *testing.T) {
	p, err := Compile(`[0-9]+`, false)
	if err != nil {
		t.Fatal(err)
	}
	if p.Source() != `[0-9]+` {
		t.Errorf("Source() = %q, want %q", p.Source(), `[0-9]+`)
	}
}

func TestMatchAtEndOfBuffer(t *testing.T) {
	p, err := Compile(`x*`, false)
	if err != nil {
		t.Fatal(err)
	}
	c := p.MatchAt("ab", 2)
	if c == nil {
		t.Fatal("MatchAt() at end of buffer = nil, want zero-width match")
	}
	if c.Length() != 0 {
		t.Errorf("Length() = %d, want 0", c.Length())
	}
}
