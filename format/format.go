// Package format renders token streams for human and machine consumption.
package format

import (
	"encoding"

	"github.com/dhamidi/stacklex/lex"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(tokens []lex.Token[string]) error
}
