// Package app provides application lifecycle management.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/azyu/scriptweaver/internal/export"
	"github.com/azyu/scriptweaver/internal/logging"
	"github.com/azyu/scriptweaver/internal/storage"
	"github.com/azyu/scriptweaver/pkg/types"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigManager handles the global configuration file.
type ConfigManager struct {
	globalConfigPath string
	globalConfig     *types.GlobalConfig
}

// NewConfigManager creates a new configuration manager.
func NewConfigManager() (*ConfigManager, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	return NewConfigManagerAt(filepath.Join(configDir, "config.yaml")), nil
}

// NewConfigManagerAt creates a configuration manager for an explicit file.
func NewConfigManagerAt(path string) *ConfigManager {
	return &ConfigManager{globalConfigPath: path}
}

// getConfigDir returns the configuration directory path.
func getConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "scriptweaver"), nil
}

// Path returns the path of the global configuration file.
func (cm *ConfigManager) Path() string {
	return cm.globalConfigPath
}

// LoadGlobalConfig loads the global configuration. A missing file yields
// the defaults.
func (cm *ConfigManager) LoadGlobalConfig() (*types.GlobalConfig, error) {
	if cm.globalConfig != nil {
		return cm.globalConfig, nil
	}

	data, err := os.ReadFile(cm.globalConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			cm.globalConfig = types.DefaultGlobalConfig()
			return cm.globalConfig, nil
		}
		return nil, fmt.Errorf("failed to read global config: %w", err)
	}

	// Decode over the defaults so a partial file keeps the remaining values.
	config := types.DefaultGlobalConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	config.OutputDir = expandPath(config.OutputDir)

	cm.globalConfig = config
	return cm.globalConfig, nil
}

// SaveGlobalConfig saves the global configuration.
func (cm *ConfigManager) SaveGlobalConfig(config *types.GlobalConfig) error {
	if err := validateConfig(config); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := storage.AtomicWriteFile(cm.globalConfigPath, data); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	cm.globalConfig = config
	return nil
}

// InitGlobalConfig writes the default configuration unless a file already
// exists and force is false. It reports whether a file was written.
func (cm *ConfigManager) InitGlobalConfig(force bool) (bool, error) {
	if _, err := os.Stat(cm.globalConfigPath); err == nil && !force {
		return false, nil
	}
	cm.globalConfig = nil
	if err := cm.SaveGlobalConfig(types.DefaultGlobalConfig()); err != nil {
		return false, err
	}
	return true, nil
}

func validateConfig(config *types.GlobalConfig) error {
	var errs []error

	d := config.Defaults
	if d.Language != "" && !d.Language.Valid() {
		errs = append(errs, fmt.Errorf("defaults.language: %w", types.ErrInvalidLanguage))
	}
	if d.Length != "" && !d.Length.Valid() {
		errs = append(errs, fmt.Errorf("defaults.length: %w", types.ErrInvalidLength))
	}
	if d.Genre != "" && !d.Genre.Valid() {
		errs = append(errs, fmt.Errorf("defaults.genre: %w", types.ErrInvalidGenre))
	}
	if d.Tone != "" && !d.Tone.Valid() {
		errs = append(errs, fmt.Errorf("defaults.tone: %w", types.ErrInvalidTone))
	}
	if d.Format != "" {
		if _, err := export.ParseFormat(d.Format); err != nil {
			errs = append(errs, fmt.Errorf("defaults.format: %w", err))
		}
	}
	if config.Logging.Level != "" {
		if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
			errs = append(errs, fmt.Errorf("logging.level: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// expandPath expands ~ to home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetOutputDir returns the directory exports are written to.
func (cm *ConfigManager) GetOutputDir() (string, error) {
	config, err := cm.LoadGlobalConfig()
	if err != nil {
		return "", err
	}
	return config.OutputDir, nil
}
