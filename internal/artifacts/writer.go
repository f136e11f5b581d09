package artifacts

import (
	"os"
	"path/filepath"

	cerrors "github.com/bgricker/cukereport/internal/errors"
)

// Writer places generated files in a single destination directory.
type Writer struct {
	Dir string
}

// NewWriter creates the destination directory.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, cerrors.IO("create destination", dir, err)
	}
	return &Writer{Dir: dir}, nil
}

// WriteBytes writes data to name under the destination directory and returns the full path.
// Only the base of name is used, so callers cannot escape the directory.
func (w *Writer) WriteBytes(name string, data []byte) (string, error) {
	path := filepath.Join(w.Dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", cerrors.IO("write file", path, err)
	}
	return path, nil
}

