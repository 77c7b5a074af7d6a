package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/mapcolors"
)

// StyleFromPalette returns a function that maps chroma token types to mapcolors styles
// based on the provided palette colors.
func StyleFromPalette(p mapcolors.Palette) StyleFunc {
	return func(tt chromalib.TokenType) mapcolors.Style {
		switch tt {
		// JSON object keys
		case chromalib.NameTag:
			return mapcolors.Style{Foreground: p.Key, Bold: true}

		// Strings
		case chromalib.String, chromalib.StringDouble, chromalib.StringSingle:
			return mapcolors.Style{Foreground: p.String}

		// Punctuation
		case chromalib.Punctuation:
			return mapcolors.Style{Foreground: p.Punctuation}

		default:
			return mapcolors.Style{}
		}
	}
}
