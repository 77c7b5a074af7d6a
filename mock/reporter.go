// Package mock provides test doubles for mapcolors interfaces.
package mock

import "github.com/fwojciec/mapcolors"

// Compile-time interface verification.
var _ mapcolors.Reporter = (*Reporter)(nil)

// Reporter is a mock implementation of mapcolors.Reporter.
type Reporter struct {
	InvalidRegionFn func(id int)
	UpdatedFn       func(id int, oldColor, newColor string)
	UnchangedFn     func(id int, oldColor, newColor string)
}

func (r *Reporter) InvalidRegion(id int) {
	r.InvalidRegionFn(id)
}

func (r *Reporter) Updated(id int, oldColor, newColor string) {
	r.UpdatedFn(id, oldColor, newColor)
}

func (r *Reporter) Unchanged(id int, oldColor, newColor string) {
	r.UnchangedFn(id, oldColor, newColor)
}
