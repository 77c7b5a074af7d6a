package mapcolors

import (
	"errors"
	"fmt"
	"strings"
)

// regionTag is the element that carries region polygons.
const regionTag = "path"

// MergeResult counts what happened to each region element during Merge.
type MergeResult struct {
	Invalid   int // Region ids with no table entry
	Updated   int // Elements whose color differed from the baseline
	Unchanged int // Elements whose color matched the baseline
}

// Merge walks every region element in doc and writes its effective color into
// table when it differs from the table's original value. Comparison is always
// against a snapshot taken before the walk, so every element reports on its
// own and the last element visited for an id determines the stored color.
//
// Elements that are not regions are skipped silently. Unknown ids are
// reported and skipped. Gradient failures abort the merge; table may then be
// partially updated and must not be emitted.
func Merge(doc *Document, table ColorTable, r Reporter) (MergeResult, error) {
	var result MergeResult

	gradients, err := BuildGradientTable(doc)
	if err != nil {
		return result, fmt.Errorf("building gradient table: %w", err)
	}

	original := table.Clone()

	for _, el := range doc.ElementsByTag(regionTag) {
		id, err := RegionID(el.Attrs["class"])
		if errors.Is(err, ErrNotARegion) {
			continue
		}

		key := RegionKey(id)
		oldColor, ok := original[key]
		if !ok {
			r.InvalidRegion(id)
			result.Invalid++
			continue
		}

		newColor, err := RegionColor(el, gradients)
		if err != nil {
			return result, fmt.Errorf("region %d: %w", id, err)
		}

		if strings.ToLower(oldColor) != newColor {
			table[key] = newColor
			r.Updated(id, oldColor, newColor)
			result.Updated++
		} else {
			r.Unchanged(id, oldColor, newColor)
			result.Unchanged++
		}
	}

	return result, nil
}
