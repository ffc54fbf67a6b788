package format

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/width"

	"github.com/dhamidi/stacklex/lex"
)

// TextEncoder writes one token per line: location, type, and the matched
// text as a quoted literal. Columns are aligned by display width so output
// stays readable with East Asian wide characters in the input.
type TextEncoder struct {
	w      io.Writer
	tokens []lex.Token[string]
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(tokens []lex.Token[string]) error {
	e.tokens = tokens
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	locCol, typeCol := 0, 0
	for _, tk := range e.tokens {
		if w := displayWidth(tk.Start().String()); w > locCol {
			locCol = w
		}
		if w := displayWidth(tk.Type()); w > typeCol {
			typeCol = w
		}
	}

	var buf bytes.Buffer
	for _, tk := range e.tokens {
		pad(&buf, tk.Start().String(), locCol)
		buf.WriteString("  ")
		pad(&buf, tk.Type(), typeCol)
		fmt.Fprintf(&buf, "  %q\n", tk.Text())
	}
	return buf.Bytes(), nil
}

func pad(buf *bytes.Buffer, s string, col int) {
	buf.WriteString(s)
	if n := col - displayWidth(s); n > 0 {
		buf.WriteString(strings.Repeat(" ", n))
	}
}

func displayWidth(s string) int {
	total := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			total += 2
		default:
			total++
		}
	}
	return total
}
