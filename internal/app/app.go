package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/azyu/scriptweaver/internal/brief"
	"github.com/azyu/scriptweaver/internal/export"
	"github.com/azyu/scriptweaver/internal/logging"
	"github.com/azyu/scriptweaver/internal/script"
	"github.com/azyu/scriptweaver/internal/storage"
	"github.com/azyu/scriptweaver/pkg/types"
)

// App represents the main application instance.
type App struct {
	Config    *ConfigManager
	Global    *types.GlobalConfig
	Workspace *storage.Workspace
	Logger    *slog.Logger
}

// New creates a new application instance from the user configuration.
func New() (*App, error) {
	configManager, err := NewConfigManager()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config manager: %w", err)
	}
	return NewWithConfig(configManager)
}

// NewWithConfig creates an application instance around an existing manager.
func NewWithConfig(configManager *ConfigManager) (*App, error) {
	globalConfig, err := configManager.LoadGlobalConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load global config: %w", err)
	}

	return &App{
		Config:    configManager,
		Global:    globalConfig,
		Workspace: storage.NewWorkspace(globalConfig.OutputDir),
		Logger:    logging.Default(),
	}, nil
}

// LoadBrief reads a brief file, fills omitted fields from the configured
// defaults and validates it.
func (a *App) LoadBrief(path string) (types.Brief, error) {
	f, err := brief.Load(path)
	if err != nil {
		return types.Brief{}, err
	}

	b, err := a.CompleteBrief(f)
	if err != nil {
		return types.Brief{}, fmt.Errorf("invalid brief %s: %w", path, err)
	}

	a.Logger.Debug("brief loaded", "path", path, "title", b.Title, "acts", b.Length.ActCount())
	return b, nil
}

// CompleteBrief fills f from the configured defaults and validates it.
func (a *App) CompleteBrief(f *brief.File) (types.Brief, error) {
	f.ApplyDefaults(a.Global.Defaults)
	return f.ToBrief()
}

// Build expands b into a script document.
func (a *App) Build(ctx context.Context, b types.Brief) types.ScriptDocument {
	doc := script.Build(b)
	logging.FromContext(logging.WithBrief(ctx, b.Title)).Debug("script built",
		"acts", len(doc.Structure),
		"scenes", len(doc.Scenes),
	)
	return doc
}

// DefaultFormat returns the configured export format, falling back to text.
func (a *App) DefaultFormat() export.Format {
	f, err := export.ParseFormat(a.Global.Defaults.Format)
	if err != nil {
		return export.FormatText
	}
	return f
}

// Export renders doc and writes it into the output directory under a name
// derived from its title. It returns the path written.
func (a *App) Export(ctx context.Context, doc types.ScriptDocument, lang types.Language, format export.Format) (string, error) {
	content, err := export.Render(doc, lang, format)
	if err != nil {
		return "", err
	}

	name := export.Filename(doc.TitlePage.Title, format)
	path, err := a.Workspace.Write(name, content)
	if err != nil {
		return "", err
	}

	logging.FromContext(logging.WithBrief(ctx, doc.TitlePage.Title)).Info("script exported",
		"path", path,
		"format", string(format),
		"bytes", len(content),
	)
	return path, nil
}

// ListBriefs returns the brief files found in dir.
func (a *App) ListBriefs(dir string) ([]storage.FileInfo, error) {
	return storage.NewWorkspace(dir).ListFiles(".", ".yaml", ".yml", ".md")
}
