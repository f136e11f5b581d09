package artifacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/bgricker/cukereport/internal/errors"
)

func TestWriterCreatesDirAndWrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "nested")

	w, err := NewWriter(dir)
	require.NoError(t, err)

	path, err := w.WriteBytes("shot-1-1.png", []byte{0x89, 'P'})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "shot-1-1.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P'}, data)

	path, err = w.WriteBytes("index.html", []byte("<html></html>"))
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}

func TestWriterStaysInsideDir(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	path, err := w.WriteBytes("../escape.txt", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.txt"), path)
}

func TestNewWriterFailsOnFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := NewWriter(filepath.Join(file, "sub"))
	require.Error(t, err)
	assert.True(t, cerrors.Is(err, cerrors.KindIO))
}

func TestWriteBytesFailure(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "index.html"), 0o755))

	_, err = w.WriteBytes("index.html", []byte("x"))
	assert.True(t, cerrors.Is(err, cerrors.KindIO))
}
