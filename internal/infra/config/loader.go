// Package config provides configuration loading for agentpad.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/agentpad/agentpad/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// fileConfig mirrors the TOML layout. Zero values mean "not set" so merging
// can tell configured fields from omitted ones.
type fileConfig struct {
	Pad struct {
		File string `toml:"file"`
	} `toml:"pad"`
	Agent struct {
		Name string `toml:"name"`
		Role string `toml:"role"`
	} `toml:"agent"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// Loader loads configuration from TOML files.
type Loader struct {
	repoRoot      string // repository root holding .agentpad.toml
	globalConfDir string // global config directory (e.g. ~/.config/agentpad)
}

// NewLoader creates a new Loader.
func NewLoader(repoRoot string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(repoRoot, globalConfDir string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration: defaults, then the global config,
// then the repository config. Later sources take precedence.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		if err := l.applyFile(filepath.Join(l.globalConfDir, "config.toml"), cfg); err != nil {
			return nil, err
		}
	}
	if l.repoRoot != "" {
		if err := l.applyFile(filepath.Join(l.repoRoot, domain.ConfigFileName), cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// applyFile overlays one TOML file onto cfg. A missing file is not an error.
func (l *Loader) applyFile(path string, cfg *domain.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.Pad.File != "" {
		cfg.Pad.File = fc.Pad.File
	}
	if fc.Agent.Name != "" {
		cfg.Agent.Name = fc.Agent.Name
	}
	if fc.Agent.Role != "" {
		cfg.Agent.Role = fc.Agent.Role
	}
	if fc.Log.Level != "" {
		cfg.Log.Level = fc.Log.Level
	}
	return nil
}
