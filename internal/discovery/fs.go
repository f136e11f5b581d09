package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	cerrors "github.com/bgricker/cukereport/internal/errors"
)

// Source resolves the cucumber JSON document against root. It must exist and
// must not be a directory.
func Source(root, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", cerrors.Config("source is required", "")
	}
	return resolveFile(root, path, "source")
}

// Template resolves an optional caller template. An empty path returns "".
func Template(root, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return resolveFile(root, path, "template")
}

// Logo resolves an optional logo file. An empty path returns "".
func Logo(root, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return resolveFile(root, path, "logo")
}

// Screenshots lists the files of dir in lexical order. Hidden entries and
// subdirectories are skipped. An empty dir disables screenshots.
func Screenshots(root, dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	abs := absolute(root, dir)
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, cerrors.Config("screenshots directory not found", dir)
		}
		return nil, cerrors.IO("stat screenshots", dir, err)
	}
	if !info.IsDir() {
		return nil, cerrors.Config("screenshots path is not a directory", dir)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, cerrors.IO("read screenshots", dir, err)
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		paths = append(paths, mustRelOrClean(root, filepath.Join(abs, entry.Name())))
	}
	sort.Strings(paths)
	return paths, nil
}

// Dest resolves the destination directory against root without touching the filesystem.
func Dest(root, dir string) string {
	return filepath.Clean(absolute(root, dir))
}

func resolveFile(root, input, what string) (string, error) {
	cleaned := absolute(root, input)
	info, err := os.Stat(cleaned)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", cerrors.Config(what+" not found", input)
		}
		return "", cerrors.IO(fmt.Sprintf("stat %s", what), input, err)
	}
	if info.IsDir() {
		return "", cerrors.Config(what+" is a directory", input)
	}
	return mustRelOrClean(root, cleaned), nil
}

func absolute(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func mustRelOrClean(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.Clean(path)
	}
	rel = filepath.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") {
		return filepath.Clean(path)
	}
	return rel
}
