package mapcolors

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotARegion is returned when a class attribute carries no region token.
// Decorative paths hit this routinely; callers skip them.
var ErrNotARegion = errors.New("not a region")

var regionClassRe = regexp.MustCompile(`^path-.*-([0-9]+)$`)

// RegionID extracts the region identifier from a whitespace-separated class
// attribute. The first token shaped like "path-<anything>-<digits>" wins.
func RegionID(class string) (int, error) {
	for _, token := range strings.Fields(class) {
		m := regionClassRe.FindStringSubmatch(token)
		if m == nil {
			continue
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			// Out of int range; no table key can match it anyway.
			continue
		}
		return id, nil
	}
	return 0, ErrNotARegion
}
