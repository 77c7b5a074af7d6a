// Package mapcolors provides domain types for merging region colors edited
// in an SVG map back into a color definition table.
package mapcolors

import (
	"io"
	"maps"
	"strconv"
)

// ColorTable maps region keys ("id_<N>") to color values.
type ColorTable map[string]string

// Clone returns a deep copy of the table.
func (t ColorTable) Clone() ColorTable {
	if t == nil {
		return ColorTable{}
	}
	return maps.Clone(t)
}

// RegionKey returns the color table key for a region identifier.
func RegionKey(id int) string {
	return "id_" + strconv.Itoa(id)
}

// DocumentParser parses a vector graphics document into a generic element tree.
type DocumentParser interface {
	Parse(r io.Reader) (*Document, error)
}

// TableLoader loads a persisted color table.
type TableLoader interface {
	Load(path string) (ColorTable, error)
}

// TableEncoder serializes a color table as a single line.
type TableEncoder interface {
	Encode(w io.Writer, table ColorTable) error
}

// TableSaver persists a color table to a file.
type TableSaver interface {
	Save(path string, table ColorTable) error
}

// Reporter receives one notification per region element visited by Merge.
type Reporter interface {
	// InvalidRegion reports a region identifier with no entry in the table.
	InvalidRegion(id int)
	// Updated reports a region whose color differs from the baseline.
	Updated(id int, oldColor, newColor string)
	// Unchanged reports a region whose color matches the baseline.
	Unchanged(id int, oldColor, newColor string)
}
