package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/cutstock/internal/model"
)

// DefaultTemplatePath returns ~/.cutstock/templates.json.
func DefaultTemplatePath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "templates.json"), nil
}

// SaveTemplates writes store as indented JSON to path.
func SaveTemplates(path string, store model.TemplateStore) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create templates directory: %w", err)
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal templates: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write templates: %w", err)
	}
	return nil
}

// LoadTemplates reads and parses the template store at path.
func LoadTemplates(path string) (model.TemplateStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.TemplateStore{}, fmt.Errorf("read templates: %w", err)
	}
	var store model.TemplateStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.TemplateStore{}, fmt.Errorf("parse templates: %w", err)
	}
	return store, nil
}

// SaveDefaultTemplates saves store to the default template path.
func SaveDefaultTemplates(store model.TemplateStore) error {
	path, err := DefaultTemplatePath()
	if err != nil {
		return err
	}
	return SaveTemplates(path, store)
}

// LoadDefaultTemplates loads the template store from the default path,
// returning an empty store if no file exists yet.
func LoadDefaultTemplates() (model.TemplateStore, error) {
	path, err := DefaultTemplatePath()
	if err != nil {
		return model.TemplateStore{}, err
	}
	store, err := LoadTemplates(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewTemplateStore(), nil
		}
		return model.TemplateStore{}, err
	}
	return store, nil
}
