// Package storage provides file handling for briefs, exports and configuration.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// atomicWriter provides crash-safe file writing using temp file + rename.
type atomicWriter struct {
	targetPath string
	tempFile   *os.File
}

// newAtomicWriter creates a new atomic writer for the target path.
func newAtomicWriter(targetPath string) (*atomicWriter, error) {
	dir := filepath.Dir(targetPath)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	return &atomicWriter{
		targetPath: targetPath,
		tempFile:   tempFile,
	}, nil
}

// Write implements io.Writer.
func (w *atomicWriter) Write(p []byte) (n int, err error) {
	return w.tempFile.Write(p)
}

// Commit syncs and renames the temp file to the target path.
func (w *atomicWriter) Commit() error {
	tempPath := w.tempFile.Name()

	if err := w.tempFile.Sync(); err != nil {
		w.tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := w.tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// CreateTemp uses 0600; exports and briefs are meant to be shared.
	if err := os.Chmod(tempPath, 0644); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to set file mode: %w", err)
	}

	if err := os.Rename(tempPath, w.targetPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// abort cancels the write and cleans up the temp file.
func (w *atomicWriter) abort() error {
	tempPath := w.tempFile.Name()
	w.tempFile.Close()
	return os.Remove(tempPath)
}

// AtomicWriteFile writes data to a file atomically.
func AtomicWriteFile(path string, data []byte) error {
	writer, err := newAtomicWriter(path)
	if err != nil {
		return err
	}

	if _, err := writer.Write(data); err != nil {
		writer.abort()
		return err
	}

	return writer.Commit()
}
