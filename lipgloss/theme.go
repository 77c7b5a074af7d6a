// Package lipgloss renders diagnostics and output using the Lipgloss styling library.
package lipgloss

import "github.com/fwojciec/mapcolors"

// Compile-time interface verification.
var _ mapcolors.Theme = (*Theme)(nil)

// Theme implements mapcolors.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  mapcolors.Styles
	palette mapcolors.Palette
}

// Styles returns the diagnostic styles for this theme.
func (t *Theme) Styles() mapcolors.Styles {
	return t.styles
}

// Palette returns the JSON highlighting palette for this theme.
func (t *Theme) Palette() mapcolors.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds (Catppuccin Mocha).
func DarkTheme() *Theme {
	return &Theme{
		styles: mapcolors.Styles{
			Invalid:   mapcolors.ColorPair{Foreground: "#f38ba8"}, // Red
			Updated:   mapcolors.ColorPair{Foreground: "#a6e3a1"}, // Green
			Unchanged: mapcolors.ColorPair{Foreground: "#6c7086"}, // Muted gray
			Region:    mapcolors.ColorPair{Foreground: "#f9e2af"}, // Yellow
		},
		palette: mapcolors.Palette{
			Key:         "#89b4fa",
			String:      "#a6e3a1",
			Punctuation: "#9399b2",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds (Catppuccin Latte).
func LightTheme() *Theme {
	return &Theme{
		styles: mapcolors.Styles{
			Invalid:   mapcolors.ColorPair{Foreground: "#d20f39"},
			Updated:   mapcolors.ColorPair{Foreground: "#40a02b"},
			Unchanged: mapcolors.ColorPair{Foreground: "#9ca0b0"},
			Region:    mapcolors.ColorPair{Foreground: "#df8e1d"},
		},
		palette: mapcolors.Palette{
			Key:         "#1e66f5",
			String:      "#40a02b",
			Punctuation: "#6c6f85",
		},
	}
}
