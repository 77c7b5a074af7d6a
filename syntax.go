package mapcolors

// Token represents a syntax-highlighted segment of output.
type Token struct {
	Text  string // The text content of this token
	Style Style  // Visual style to apply (colors, bold, etc.)
}

// Style represents the visual styling for a token.
type Style struct {
	Foreground string // Hex color code (e.g., "#ff0000") or empty for default
	Bold       bool   // Whether the text should be bold
}

// Tokenizer splits serialized output into styled tokens.
type Tokenizer interface {
	// Tokenize returns tokens whose concatenated text equals source,
	// or nil if source cannot be tokenized.
	Tokenize(source string) []Token
}
