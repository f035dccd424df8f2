// Package htmlfile persists the rendered map document.
package htmlfile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Writer writes the rendered document to a fixed path. The write goes
// through a temp file in the same directory followed by a rename, so a
// failed run never leaves a truncated document at the target path.
type Writer struct {
	path   string
	logger *slog.Logger
}

// NewWriter creates a Writer targeting path.
func NewWriter(path string, logger *slog.Logger) *Writer {
	return &Writer{path: path, logger: logger}
}

// Write persists the document. Any failure is returned wrapped; the caller
// treats it as fatal.
func (w *Writer) Write(document []byte) error {
	dir := filepath.Dir(w.path)

	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(document); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, w.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename into place: %w", err)
	}

	w.logger.Debug("document written", "path", w.path, "bytes", len(document))
	return nil
}

// Path returns the target path.
func (w *Writer) Path() string { return w.path }
