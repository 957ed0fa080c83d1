package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TestAtomicWriteFile
// =============================================================================

func TestAtomicWriteFile(t *testing.T) {
	t.Run("writes file and verifies content", func(t *testing.T) {
		tempDir := t.TempDir()
		targetPath := filepath.Join(tempDir, "test.txt")
		expectedContent := []byte("FADE IN: MUMBAI ROOFTOP")

		err := AtomicWriteFile(targetPath, expectedContent)
		require.NoError(t, err)

		actualContent, err := os.ReadFile(targetPath)
		require.NoError(t, err)
		assert.Equal(t, expectedContent, actualContent)
	})

	t.Run("verifies file exists after write", func(t *testing.T) {
		tempDir := t.TempDir()
		targetPath := filepath.Join(tempDir, "exists.txt")

		err := AtomicWriteFile(targetPath, []byte("content"))
		require.NoError(t, err)

		_, err = os.Stat(targetPath)
		assert.NoError(t, err, "file should exist after atomic write")
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		tempDir := t.TempDir()
		targetPath := filepath.Join(tempDir, "overwrite.txt")

		// Write initial content
		err := AtomicWriteFile(targetPath, []byte("first draft"))
		require.NoError(t, err)

		// Overwrite with new content
		newContent := []byte("second draft")
		err = AtomicWriteFile(targetPath, newContent)
		require.NoError(t, err)

		actualContent, err := os.ReadFile(targetPath)
		require.NoError(t, err)
		assert.Equal(t, newContent, actualContent)
	})

	t.Run("creates parent directories if they do not exist", func(t *testing.T) {
		tempDir := t.TempDir()
		targetPath := filepath.Join(tempDir, "nested", "dirs", "test.txt")

		err := AtomicWriteFile(targetPath, []byte("content"))
		require.NoError(t, err)

		actualContent, err := os.ReadFile(targetPath)
		require.NoError(t, err)
		assert.Equal(t, []byte("content"), actualContent)
	})
}

// =============================================================================
// TestAtomicWriter
// =============================================================================

func TestAtomicWriter(t *testing.T) {
	t.Run("Write and Commit flow", func(t *testing.T) {
		tempDir := t.TempDir()
		targetPath := filepath.Join(tempDir, "atomic.txt")

		writer, err := newAtomicWriter(targetPath)
		require.NoError(t, err)

		// Write data in multiple chunks
		_, err = writer.Write([]byte("FADE IN: "))
		require.NoError(t, err)

		_, err = writer.Write([]byte("MUMBAI ROOFTOP"))
		require.NoError(t, err)

		// Commit
		err = writer.Commit()
		require.NoError(t, err)

		// Verify content
		content, err := os.ReadFile(targetPath)
		require.NoError(t, err)
		assert.Equal(t, "FADE IN: MUMBAI ROOFTOP", string(content))
	})

	t.Run("Abort cleans up temp file", func(t *testing.T) {
		tempDir := t.TempDir()
		targetPath := filepath.Join(tempDir, "aborted.txt")

		writer, err := newAtomicWriter(targetPath)
		require.NoError(t, err)

		_, err = writer.Write([]byte("discarded draft"))
		require.NoError(t, err)

		// Abort the write
		err = writer.abort()
		require.NoError(t, err)

		// Target file should not exist
		_, err = os.Stat(targetPath)
		assert.True(t, os.IsNotExist(err), "target file should not exist after abort")

		// Verify no temp files left in directory
		entries, err := os.ReadDir(tempDir)
		require.NoError(t, err)
		for _, entry := range entries {
			assert.False(t, filepath.HasPrefix(entry.Name(), ".tmp-"),
				"temp file should be cleaned up after abort")
		}
	})

	t.Run("creates directory if not exists", func(t *testing.T) {
		tempDir := t.TempDir()
		targetPath := filepath.Join(tempDir, "new", "dir", "file.txt")

		writer, err := newAtomicWriter(targetPath)
		require.NoError(t, err)

		_, err = writer.Write([]byte("content"))
		require.NoError(t, err)

		err = writer.Commit()
		require.NoError(t, err)

		content, err := os.ReadFile(targetPath)
		require.NoError(t, err)
		assert.Equal(t, "content", string(content))
	})
}

func TestAtomicWriteFile_Permissions(t *testing.T) {
	targetPath := filepath.Join(t.TempDir(), "script.txt")

	require.NoError(t, AtomicWriteFile(targetPath, []byte("FADE IN")))

	info, err := os.Stat(targetPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

// =============================================================================
// TestWorkspace
// =============================================================================

func TestWorkspace(t *testing.T) {
	t.Run("Write returns the full path", func(t *testing.T) {
		tempDir := t.TempDir()
		ws := NewWorkspace(tempDir)

		path, err := ws.Write("exports/dil_se_digital.txt", []byte("Dil Se Digital\n"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tempDir, "exports", "dil_se_digital.txt"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Dil Se Digital\n", string(data))
	})

	t.Run("Path keeps absolute paths", func(t *testing.T) {
		tempDir := t.TempDir()
		ws := NewWorkspace(filepath.Join(tempDir, "base"))

		abs := filepath.Join(tempDir, "elsewhere.yaml")
		assert.Equal(t, abs, ws.Path(abs))
		assert.Equal(t, filepath.Join(tempDir, "base", "brief.yaml"), ws.Path("brief.yaml"))
	})

	t.Run("ListFiles filters by extension and skips hidden dirs", func(t *testing.T) {
		tempDir := t.TempDir()
		ws := NewWorkspace(tempDir)

		for _, name := range []string{"b.yaml", "a.yml", "notes.md", "out.txt", "nested/c.yaml", ".cache/d.yaml"} {
			_, err := ws.Write(name, []byte("x"))
			require.NoError(t, err)
		}

		files, err := ws.ListFiles("", ".yaml", ".yml")
		require.NoError(t, err)

		paths := make([]string, len(files))
		for i, f := range files {
			paths[i] = f.Path
		}
		assert.Equal(t, []string{"a.yml", "b.yaml", filepath.Join("nested", "c.yaml")}, paths)
	})

	t.Run("ListFiles without extensions lists everything", func(t *testing.T) {
		ws := NewWorkspace(t.TempDir())
		_, err := ws.Write("one.txt", []byte("1"))
		require.NoError(t, err)
		_, err = ws.Write("two.md", []byte("2"))
		require.NoError(t, err)

		files, err := ws.ListFiles("")
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("ListFiles returns empty slice for missing directory", func(t *testing.T) {
		ws := NewWorkspace(t.TempDir())

		files, err := ws.ListFiles("non-existent-dir", ".yaml")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("Exists", func(t *testing.T) {
		ws := NewWorkspace(t.TempDir())
		_, err := ws.Write("exists.txt", []byte("content"))
		require.NoError(t, err)

		assert.True(t, ws.Exists("exists.txt"))
		assert.False(t, ws.Exists("does-not-exist.txt"))
	})
}

// =============================================================================
// TestMarkdown
// =============================================================================

func TestParseMarkdownTitle(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{name: "simple H1", content: "# Dil Se Digital", expected: "Dil Se Digital"},
		{name: "H1 with content after", content: "# My Title\n\nSome content here.", expected: "My Title"},
		{name: "no H1", content: "## H2 Title\n\nContent", expected: ""},
		{name: "H1 after other content", content: "Some text\n\n# Title", expected: "Title"},
		{name: "empty content", content: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseMarkdownTitle(tt.content))
		})
	}
}

func TestParseMarkdownFrontmatter(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		expectedFM   string
		expectedBody string
	}{
		{
			name:         "valid frontmatter",
			content:      "---\ngenre: Drama\ntone: Hopeful\n---\n\n# Dil Se Digital\n\nA creator races the sunset.",
			expectedFM:   "genre: Drama\ntone: Hopeful",
			expectedBody: "# Dil Se Digital\n\nA creator races the sunset.",
		},
		{
			name:         "no frontmatter",
			content:      "# Just Content\n\nNo frontmatter here.",
			expectedFM:   "",
			expectedBody: "# Just Content\n\nNo frontmatter here.",
		},
		{
			name:         "incomplete frontmatter",
			content:      "---\ngenre: Drama\nNo closing delimiter",
			expectedFM:   "",
			expectedBody: "---\ngenre: Drama\nNo closing delimiter",
		},
		{
			name:         "frontmatter with no body",
			content:      "---\ntitle: Just Frontmatter\n---",
			expectedFM:   "title: Just Frontmatter",
			expectedBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body := ParseMarkdownFrontmatter(tt.content)
			assert.Equal(t, tt.expectedFM, fm)
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestStripMarkdownTitle(t *testing.T) {
	assert.Equal(t, "A creator races the sunset.", StripMarkdownTitle("# Dil Se Digital\n\nA creator races the sunset.\n"))
	assert.Equal(t, "## Keep me", StripMarkdownTitle("## Keep me"))
	assert.Equal(t, "", StripMarkdownTitle("# Only a title"))
}
