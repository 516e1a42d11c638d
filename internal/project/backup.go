package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/piwi3910/cutstock/internal/model"
)

// BackupVersion is bumped whenever BackupData's shape changes in a way
// that could break an older import.
const BackupVersion = 1

// BackupData bundles everything ExportAllData can restore: the app
// config, saved inventory, and saved job templates.
type BackupData struct {
	Version   int                `json:"version"`
	CreatedAt string             `json:"created_at"`
	Config    model.AppConfig    `json:"config"`
	Inventory model.Inventory    `json:"inventory"`
	Templates model.TemplateStore `json:"templates"`
}

// ExportAllData writes a full backup of the current config, inventory and
// templates to path.
func ExportAllData(path string) error {
	cfg, err := LoadOrDefaultAppConfig()
	if err != nil {
		return fmt.Errorf("export data: %w", err)
	}
	inv, err := LoadOrDefaultInventory()
	if err != nil {
		return fmt.Errorf("export data: %w", err)
	}
	templates, err := LoadDefaultTemplates()
	if err != nil {
		return fmt.Errorf("export data: %w", err)
	}

	backup := BackupData{
		Version:   BackupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    cfg,
		Inventory: inv,
		Templates: templates,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// ImportAllData reads a backup file and overwrites the current config,
// inventory and templates with its contents.
func ImportAllData(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("import data: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("import data: parse backup: %w", err)
	}

	cfgPath, err := DefaultConfigPath()
	if err != nil {
		return fmt.Errorf("import data: %w", err)
	}
	if err := SaveAppConfig(cfgPath, backup.Config); err != nil {
		return fmt.Errorf("import data: %w", err)
	}

	invPath, err := DefaultInventoryPath()
	if err != nil {
		return fmt.Errorf("import data: %w", err)
	}
	if err := SaveInventory(invPath, backup.Inventory); err != nil {
		return fmt.Errorf("import data: %w", err)
	}

	if err := SaveDefaultTemplates(backup.Templates); err != nil {
		return fmt.Errorf("import data: %w", err)
	}
	return nil
}
