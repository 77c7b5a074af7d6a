package mapcolors

import (
	"errors"
	"fmt"
	"strings"
)

// Gradient errors.
var (
	ErrMissingStopColor = errors.New("zero-offset stop has no stop-color")
	ErrUnknownGradient  = errors.New("unknown gradient")
	ErrGradientCycle    = errors.New("gradient link chain too deep")
)

// MaxGradientDepth bounds the number of links Resolve follows. Inkscape
// rarely chains more than two, so hitting this means a cycle.
const MaxGradientDepth = 64

// gradientTags lists the elements that define named colors.
var gradientTags = []string{"linearGradient", "radialGradient"}

// Gradient is a named color definition. Inkscape stores solid fills as
// single-color gradients, which may link to another gradient instead of
// carrying their own stops.
type Gradient struct {
	IsLink bool   // Value names another gradient
	Value  string // Concrete color, or the linked gradient's id
}

// GradientTable maps gradient ids to their definitions.
type GradientTable map[string]Gradient

// GradientError describes a gradient that could not be built or resolved.
type GradientError struct {
	ID  string // Gradient id being processed
	Err error
}

// Error implements the error interface.
func (e *GradientError) Error() string {
	return fmt.Sprintf("gradient %q: %v", e.ID, e.Err)
}

// Unwrap returns the underlying error.
func (e *GradientError) Unwrap() error {
	return e.Err
}

// BuildGradientTable collects every gradient definition in doc.
// Gradients without an id are skipped. A gradient with no zero-offset stop
// gets no entry; one whose zero-offset stop lacks a stop-color is an error.
func BuildGradientTable(doc *Document) (GradientTable, error) {
	table := make(GradientTable)
	for _, tag := range gradientTags {
		for _, el := range doc.ElementsByTag(tag) {
			id, ok := el.Attr("id")
			if !ok {
				continue
			}

			if ref, ok := gradientLink(el); ok {
				table[id] = Gradient{IsLink: true, Value: strings.TrimPrefix(ref, "#")}
				continue
			}

			for _, stop := range el.ElementsByTag("stop") {
				if offset := stop.Attrs["offset"]; offset != "0" && offset != "0%" {
					continue
				}
				color, ok := ParseInlineStyle(stop.Attrs["style"])["stop-color"]
				if !ok {
					return nil, &GradientError{ID: id, Err: ErrMissingStopColor}
				}
				table[id] = Gradient{Value: color}
			}
		}
	}
	return table, nil
}

// gradientLink returns the href of a gradient that inherits another.
func gradientLink(el *Element) (string, bool) {
	if ref, ok := el.Attr("xlink:href"); ok {
		return ref, true
	}
	return el.Attr("href")
}

// Resolve follows link entries from name until it reaches a concrete color.
func (t GradientTable) Resolve(name string) (string, error) {
	id := name
	for range MaxGradientDepth {
		g, ok := t[id]
		if !ok {
			return "", &GradientError{ID: id, Err: ErrUnknownGradient}
		}
		if !g.IsLink {
			return g.Value, nil
		}
		id = g.Value
	}
	return "", &GradientError{ID: name, Err: ErrGradientCycle}
}
