// Package jsontable reads and writes color tables as JSON objects.
package jsontable

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/mapcolors"
)

// Compile-time interface verification.
var _ mapcolors.TableLoader = (*Loader)(nil)

// ErrNotAnObject is returned when the file holds JSON null instead of an object.
var ErrNotAnObject = errors.New("color table must be a JSON object")

// Loader loads color tables from JSON files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads a JSON object of region keys to color strings.
func (l *Loader) Load(path string) (mapcolors.ColorTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var table mapcolors.ColorTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if table == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNotAnObject)
	}

	return table, nil
}
