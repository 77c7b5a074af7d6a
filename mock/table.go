package mock

import (
	"io"

	"github.com/fwojciec/mapcolors"
)

// Compile-time interface verification.
var (
	_ mapcolors.TableLoader  = (*TableLoader)(nil)
	_ mapcolors.TableEncoder = (*TableEncoder)(nil)
)

// TableLoader is a mock implementation of mapcolors.TableLoader.
type TableLoader struct {
	LoadFn func(path string) (mapcolors.ColorTable, error)
}

func (l *TableLoader) Load(path string) (mapcolors.ColorTable, error) {
	return l.LoadFn(path)
}

// TableEncoder is a mock implementation of mapcolors.TableEncoder.
type TableEncoder struct {
	EncodeFn func(w io.Writer, table mapcolors.ColorTable) error
}

func (e *TableEncoder) Encode(w io.Writer, table mapcolors.ColorTable) error {
	return e.EncodeFn(w, table)
}

// Compile-time interface verification.
var _ mapcolors.TableSaver = (*TableSaver)(nil)

// TableSaver is a mock implementation of mapcolors.TableSaver.
type TableSaver struct {
	SaveFn func(path string, table mapcolors.ColorTable) error
}

func (s *TableSaver) Save(path string, table mapcolors.ColorTable) error {
	return s.SaveFn(path, table)
}
