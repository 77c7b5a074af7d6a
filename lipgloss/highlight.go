package lipgloss

import (
	"bytes"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/mapcolors"
	"github.com/muesli/termenv"
)

// Compile-time interface verification.
var _ mapcolors.TableEncoder = (*HighlightEncoder)(nil)

// HighlightEncoder wraps a TableEncoder and colors its output with tokens
// from a Tokenizer. Output is passed through unchanged when the renderer has
// no color support or the tokenizer cannot handle it.
type HighlightEncoder struct {
	encoder   mapcolors.TableEncoder
	tokenizer mapcolors.Tokenizer
	renderer  *lipgloss.Renderer
}

// NewHighlightEncoder creates a HighlightEncoder.
func NewHighlightEncoder(encoder mapcolors.TableEncoder, tokenizer mapcolors.Tokenizer, renderer *lipgloss.Renderer) *HighlightEncoder {
	return &HighlightEncoder{encoder: encoder, tokenizer: tokenizer, renderer: renderer}
}

// Encode writes the highlighted encoding of table to w.
func (e *HighlightEncoder) Encode(w io.Writer, table mapcolors.ColorTable) error {
	if e.renderer.ColorProfile() == termenv.Ascii {
		return e.encoder.Encode(w, table)
	}

	var buf bytes.Buffer
	if err := e.encoder.Encode(&buf, table); err != nil {
		return err
	}

	source := strings.TrimSuffix(buf.String(), "\n")
	tokens := e.tokenizer.Tokenize(source)
	if tokens == nil {
		_, err := w.Write(buf.Bytes())
		return err
	}

	var sb strings.Builder
	for _, tok := range tokens {
		style := styleFromColorPair(mapcolors.ColorPair{Foreground: tok.Style.Foreground}, e.renderer)
		if tok.Style.Bold {
			style = style.Bold(true)
		}
		sb.WriteString(style.Render(tok.Text))
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
