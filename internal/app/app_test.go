package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/azyu/scriptweaver/internal/export"
	"github.com/azyu/scriptweaver/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigManager_UsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cm, err := NewConfigManager()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "scriptweaver", "config.yaml"), cm.Path())
}

func TestLoadGlobalConfig_MissingFileGivesDefaults(t *testing.T) {
	cm := NewConfigManagerAt(filepath.Join(t.TempDir(), "config.yaml"))

	config, err := cm.LoadGlobalConfig()
	require.NoError(t, err)
	assert.Equal(t, types.DefaultGlobalConfig(), config)

	_, err = os.Stat(cm.Path())
	assert.True(t, os.IsNotExist(err), "loading must not create the file")
}

func TestLoadGlobalConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  language: hindi\n"), 0644))

	config, err := NewConfigManagerAt(path).LoadGlobalConfig()
	require.NoError(t, err)
	assert.Equal(t, types.LangHindi, config.Defaults.Language)
	assert.Equal(t, types.LengthMedium, config.Defaults.Length)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadGlobalConfig_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: ~/scripts\n"), 0644))

	dir, err := NewConfigManagerAt(path).GetOutputDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "scripts"), dir)
}

func TestLoadGlobalConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "defaults: [oops"},
		{name: "unknown genre", content: "defaults:\n  genre: Western\n"},
		{name: "unknown format", content: "defaults:\n  format: pdf\n"},
		{name: "unknown level", content: "logging:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := NewConfigManagerAt(path).LoadGlobalConfig()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestSaveAndInitGlobalConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cm := NewConfigManagerAt(path)

	written, err := cm.InitGlobalConfig(false)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = cm.InitGlobalConfig(false)
	require.NoError(t, err)
	assert.False(t, written)

	config := types.DefaultGlobalConfig()
	config.Defaults.Tone = types.TonePlayful
	require.NoError(t, cm.SaveGlobalConfig(config))

	reloaded, err := NewConfigManagerAt(path).LoadGlobalConfig()
	require.NoError(t, err)
	assert.Equal(t, types.TonePlayful, reloaded.Defaults.Tone)

	bad := types.DefaultGlobalConfig()
	bad.Defaults.Length = "epic"
	assert.ErrorIs(t, cm.SaveGlobalConfig(bad), ErrInvalidConfig)
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()

	path := filepath.Join(dir, "config.yaml")
	content := "output_dir: " + filepath.Join(dir, "out") + "\ndefaults:\n  format: markdown\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	a, err := NewWithConfig(NewConfigManagerAt(path))
	require.NoError(t, err)
	return a
}

func TestApp_LoadBuildExport(t *testing.T) {
	a := newTestApp(t)

	briefPath := filepath.Join(t.TempDir(), "night.yaml")
	require.NoError(t, os.WriteFile(briefPath, []byte("title: Night Shift\ncharacter_notes: Vik - tired detective\n"), 0644))

	b, err := a.LoadBrief(briefPath)
	require.NoError(t, err)
	assert.Equal(t, types.GenreDrama, b.Genre)
	assert.Equal(t, types.LangEnglish, b.Language)

	doc := a.Build(context.Background(), b)
	assert.Len(t, doc.Scenes, 4)

	assert.Equal(t, export.FormatMarkdown, a.DefaultFormat())

	path, err := a.Export(context.Background(), doc, b.Language, a.DefaultFormat())
	require.NoError(t, err)
	assert.Equal(t, "night_shift.md", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Night Shift")
}

func TestApp_LoadBriefInvalid(t *testing.T) {
	a := newTestApp(t)

	briefPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(briefPath, []byte("genre: Western\n"), 0644))

	_, err := a.LoadBrief(briefPath)
	assert.ErrorIs(t, err, types.ErrInvalidGenre)
}

func TestApp_ListBriefs(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.md", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("title: x\n"), 0644))
	}

	files, err := a.ListBriefs(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.md", files[0].Path)
	assert.Equal(t, "b.yaml", files[1].Path)
}
