package mock

import (
	"io"

	"github.com/fwojciec/mapcolors"
)

// Compile-time interface verification.
var _ mapcolors.DocumentParser = (*DocumentParser)(nil)

// DocumentParser is a mock implementation of mapcolors.DocumentParser.
type DocumentParser struct {
	ParseFn func(r io.Reader) (*mapcolors.Document, error)
}

func (p *DocumentParser) Parse(r io.Reader) (*mapcolors.Document, error) {
	return p.ParseFn(r)
}
