package lipgloss

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/mapcolors"
)

// Compile-time interface verification.
var _ mapcolors.Reporter = (*Reporter)(nil)

// Reporter writes one diagnostic line per region to w. On a color-capable
// renderer the message, region number and hex colors are styled; on an
// Ascii renderer the lines are plain text.
type Reporter struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	styles   mapcolors.Styles
}

// NewReporter creates a Reporter writing to w. The renderer decides the color
// profile; pass one created with lipgloss.NewRenderer(w).
func NewReporter(w io.Writer, renderer *lipgloss.Renderer, theme mapcolors.Theme) *Reporter {
	return &Reporter{w: w, renderer: renderer, styles: theme.Styles()}
}

// InvalidRegion writes "ID <N> is not a valid ID.".
func (r *Reporter) InvalidRegion(id int) {
	r.println(r.styled(r.styles.Invalid, "ID ") +
		r.styled(r.styles.Region, strconv.Itoa(id)) +
		r.styled(r.styles.Invalid, " is not a valid ID."))
}

// Updated writes "Updating color for region <N> (original color <old>, new color <new>)".
func (r *Reporter) Updated(id int, oldColor, newColor string) {
	r.printChange(r.styles.Updated, "Updating color for region ", id, oldColor, newColor)
}

// Unchanged writes "Did not get new color for region <N> (original color <old>, new color <new>)".
func (r *Reporter) Unchanged(id int, oldColor, newColor string) {
	r.printChange(r.styles.Unchanged, "Did not get new color for region ", id, oldColor, newColor)
}

func (r *Reporter) printChange(base mapcolors.ColorPair, prefix string, id int, oldColor, newColor string) {
	r.println(r.styled(base, prefix) +
		r.styled(r.styles.Region, strconv.Itoa(id)) +
		r.styled(base, " (original color ") +
		r.swatch(oldColor) +
		r.styled(base, ", new color ") +
		r.swatch(newColor) +
		r.styled(base, ")"))
}

func (r *Reporter) println(line string) {
	fmt.Fprintln(r.w, line)
}

// styled renders text with cp on the reporter's renderer.
func (r *Reporter) styled(cp mapcolors.ColorPair, text string) string {
	return styleFromColorPair(cp, r.renderer).Render(text)
}

// swatch renders a hex color value in its own color. Named colors and
// anything else are left unstyled.
func (r *Reporter) swatch(color string) string {
	if !strings.HasPrefix(color, "#") {
		return color
	}
	return r.styled(mapcolors.ColorPair{Foreground: color}, color)
}

// styleFromColorPair creates a lipgloss style from a ColorPair.
// If renderer is nil, the default lipgloss renderer is used.
func styleFromColorPair(cp mapcolors.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var style lipgloss.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}
