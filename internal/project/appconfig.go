// Package project persists the caller-facing state that sits around the
// optimizer core: app defaults, saved kerf/stock profiles, job templates
// and full-state backups, all as indented JSON files under the user's
// home directory — the same ambient pattern the teacher project uses for
// its own CNC defaults.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/cutstock/internal/model"
)

const configDirName = ".cutstock"

// DefaultConfigDir returns ~/.cutstock.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// DefaultConfigPath returns ~/.cutstock/config.json.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// SaveAppConfig writes cfg as indented JSON to path, creating parent
// directories as needed.
func SaveAppConfig(path string, cfg model.AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal app config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write app config: %w", err)
	}
	return nil
}

// LoadAppConfig reads and parses the app config at path.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.AppConfig{}, fmt.Errorf("read app config: %w", err)
	}
	var cfg model.AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.AppConfig{}, fmt.Errorf("parse app config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefaultAppConfig loads the app config at the default path,
// returning model.DefaultAppConfig() if no file exists yet.
func LoadOrDefaultAppConfig() (model.AppConfig, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return model.AppConfig{}, err
	}
	cfg, err := LoadAppConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	return cfg, nil
}
