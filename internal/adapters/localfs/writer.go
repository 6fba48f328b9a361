// Package localfs implements the FileWriter secondary port on the local
// filesystem.
package localfs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer implements secondary.FileWriter.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFile writes content at relPath under root, creating parent
// directories as needed.
func (w *Writer) WriteFile(root, relPath string, content []byte) error {
	fullPath := filepath.Join(root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", relPath, err)
	}
	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", relPath, err)
	}
	return nil
}
