package jsontable

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/mapcolors"
)

// Compile-time interface verification.
var _ mapcolors.TableEncoder = (*Encoder)(nil)

// Encoder writes a color table as a single compact JSON line.
// Keys are sorted; HTML characters are not escaped.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes table to w followed by a newline.
func (e *Encoder) Encode(w io.Writer, table mapcolors.ColorTable) error {
	if table == nil {
		table = mapcolors.ColorTable{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(table)
}
