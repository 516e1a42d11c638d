package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/cutstock/internal/model"
)

// DefaultInventoryPath returns ~/.cutstock/inventory.json.
func DefaultInventoryPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "inventory.json"), nil
}

// SaveInventory writes inv as indented JSON to path.
func SaveInventory(path string, inv model.Inventory) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create inventory directory: %w", err)
	}
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal inventory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write inventory: %w", err)
	}
	return nil
}

// LoadInventory reads and parses the inventory at path.
func LoadInventory(path string) (model.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Inventory{}, fmt.Errorf("read inventory: %w", err)
	}
	var inv model.Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return model.Inventory{}, fmt.Errorf("parse inventory: %w", err)
	}
	return inv, nil
}

// LoadOrDefaultInventory loads the inventory at the default path, seeding
// model.DefaultInventory() if no file exists yet.
func LoadOrDefaultInventory() (model.Inventory, error) {
	path, err := DefaultInventoryPath()
	if err != nil {
		return model.Inventory{}, err
	}
	inv, err := LoadInventory(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.DefaultInventory(), nil
		}
		return model.Inventory{}, err
	}
	return inv, nil
}

// ExportStockProfile writes a single stock profile as its own JSON file,
// for sharing one catalog entry without the rest of the inventory.
func ExportStockProfile(path string, sp model.StockProfile) error {
	if sp.Name == "" {
		return errors.New("cutstock: exported stock profile has no name")
	}
	data, err := json.MarshalIndent(sp, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stock profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write stock profile: %w", err)
	}
	return nil
}

// ImportStockProfile reads a single stock profile JSON file.
func ImportStockProfile(path string) (model.StockProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.StockProfile{}, fmt.Errorf("read stock profile: %w", err)
	}
	var sp model.StockProfile
	if err := json.Unmarshal(data, &sp); err != nil {
		return model.StockProfile{}, fmt.Errorf("parse stock profile: %w", err)
	}
	if sp.Name == "" {
		return model.StockProfile{}, errors.New("cutstock: imported stock profile has no name")
	}
	return sp, nil
}
