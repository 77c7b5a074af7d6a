package jsontable

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/mapcolors"
)

// Compile-time interface verification.
var _ mapcolors.TableSaver = (*Saver)(nil)

// Saver writes color tables to JSON files.
type Saver struct {
	encoder *Encoder
}

// NewSaver creates a new Saver.
func NewSaver() *Saver {
	return &Saver{encoder: NewEncoder()}
}

// Save writes table to path, replacing any existing file and creating parent
// directories if needed.
func (s *Saver) Save(path string, table mapcolors.ColorTable) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.encoder.Encode(f, table); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
