// Package fsutil has small filesystem helpers.
package fsutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// MakeDirsFor creates the parent directories of path, so that path can be opened for
// writing right away, and returns path unchanged.
//
//	f, err := os.Create(must(fsutil.MakeDirsFor("out/run-1/result.json")))
func MakeDirsFor(path string) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return path, fmt.Errorf("fsutil: make dirs for %q: %w", path, err)
	}
	return path, nil
}

// MakeDirsForLogged is MakeDirsFor that logs the directory it prepared.
func MakeDirsForLogged(logger *slog.Logger, path string) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	path, err := MakeDirsFor(path)
	if err != nil {
		logger.Warn("cannot create parent directories", "path", path, "err", err)
		return path, err
	}
	logger.Debug("parent directories ready", "dir", filepath.Dir(path))
	return path, nil
}
