package mapcolors

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for each kind of diagnostic line.
type Styles struct {
	Invalid   ColorPair // "ID <N> is not a valid ID."
	Updated   ColorPair // "Updating color for region ..."
	Unchanged ColorPair // "Did not get new color for region ..."
	Region    ColorPair // The region number within a line
}

// Palette holds the colors used to highlight the emitted JSON table.
type Palette struct {
	Key         string // Object keys ("id_1")
	String      string // Color values
	Punctuation string // Braces, colons and commas
}

// Theme provides styles for rendering diagnostics and output.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
