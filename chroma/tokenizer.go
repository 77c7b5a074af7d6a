// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"errors"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/mapcolors"
)

// Compile-time interface verification.
var _ mapcolors.Tokenizer = (*Tokenizer)(nil)

// StyleFunc maps chroma token types to mapcolors styles.
type StyleFunc func(chromalib.TokenType) mapcolors.Style

// Tokenizer extracts syntax tokens using chroma's JSON lexer.
type Tokenizer struct {
	styleFunc StyleFunc
	lexer     chromalib.Lexer
}

// NewTokenizer creates a new chroma-based JSON tokenizer with the given style function.
// Use StyleFromPalette to create a style function from a mapcolors.Palette.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	lexer := lexers.Get("json")
	if lexer == nil {
		return nil, errors.New("chroma: json lexer not available")
	}
	// Coalesce for better performance with consecutive tokens of the same type
	return &Tokenizer{styleFunc: styleFunc, lexer: chromalib.Coalesce(lexer)}, nil
}

// Tokenize splits JSON source into syntax-highlighted tokens.
// Returns nil if an error occurs.
// Returns an empty slice for empty source (valid input, no tokens).
func (t *Tokenizer) Tokenize(source string) []mapcolors.Token {
	if source == "" {
		return []mapcolors.Token{}
	}

	iterator, err := t.lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []mapcolors.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		tokens = append(tokens, mapcolors.Token{
			Text:  token.Value,
			Style: t.styleFunc(token.Type),
		})
	}

	return tokens
}
