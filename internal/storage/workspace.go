package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo contains file metadata for listings.
type FileInfo struct {
	Path    string
	ModTime time.Time
	Size    int64
}

// Workspace reads briefs from and writes exports to a base directory.
type Workspace struct {
	basePath string
}

// NewWorkspace creates a workspace rooted at basePath.
func NewWorkspace(basePath string) *Workspace {
	return &Workspace{basePath: basePath}
}

// Path resolves a workspace-relative path. Absolute paths are returned unchanged.
func (w *Workspace) Path(relativePath string) string {
	if filepath.IsAbs(relativePath) {
		return relativePath
	}
	return filepath.Join(w.basePath, relativePath)
}

// Write stores data atomically and returns the full path written.
func (w *Workspace) Write(relativePath string, data []byte) (string, error) {
	fullPath := w.Path(relativePath)
	if err := AtomicWriteFile(fullPath, data); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", relativePath, err)
	}
	return fullPath, nil
}

// ListFiles lists files under relativePath whose extension is one of exts,
// sorted by path. A missing directory yields an empty list.
func (w *Workspace) ListFiles(relativePath string, exts ...string) ([]FileInfo, error) {
	dirPath := w.Path(relativePath)

	wanted := make(map[string]bool, len(exts))
	for _, ext := range exts {
		wanted[strings.ToLower(ext)] = true
	}

	var files []FileInfo
	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != dirPath && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if len(wanted) > 0 && !wanted[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		relPath, _ := filepath.Rel(w.basePath, path)
		files = append(files, FileInfo{
			Path:    relPath,
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
		return nil
	})

	if err != nil {
		if os.IsNotExist(err) {
			return []FileInfo{}, nil
		}
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// Exists checks if a file or directory exists.
func (w *Workspace) Exists(relativePath string) bool {
	_, err := os.Stat(w.Path(relativePath))
	return err == nil
}
