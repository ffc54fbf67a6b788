package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/stacklex/lex"
)

type JSONEncoder struct {
	w      io.Writer
	tokens []lex.Token[string]
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(tokens []lex.Token[string]) error {
	e.tokens = tokens
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := e.buildTokenData()
	return json.MarshalIndent(data, "", "  ")
}

type jsonToken struct {
	Type   string       `json:"type"`
	Text   string       `json:"text"`
	Groups []string     `json:"groups,omitempty"`
	Start  jsonLocation `json:"start"`
	End    jsonLocation `json:"end"`
}

type jsonLocation struct {
	Name   string `json:"name,omitempty"`
	Line   int    `json:"line"`
	Col    int    `json:"col"`
	Offset int    `json:"offset"`
}

func (e *JSONEncoder) buildTokenData() []jsonToken {
	result := make([]jsonToken, len(e.tokens))
	for i, tk := range e.tokens {
		result[i] = jsonToken{
			Type:   tk.Type(),
			Text:   tk.Text(),
			Groups: subGroups(tk),
			Start:  buildLocation(tk.Start()),
			End:    buildLocation(tk.Location()),
		}
	}
	return result
}

// subGroups returns the capture groups beyond the whole match, which Text
// already carries.
func subGroups(tk lex.Token[string]) []string {
	groups := tk.Groups()
	if len(groups) <= 1 {
		return nil
	}
	return groups[1:]
}

func buildLocation(loc lex.Location) jsonLocation {
	return jsonLocation{
		Name:   loc.Name,
		Line:   loc.Line,
		Col:    loc.Col,
		Offset: loc.Offset,
	}
}
