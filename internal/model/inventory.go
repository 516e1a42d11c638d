package model

import "github.com/google/uuid"

// KerfProfile is a named, reusable saw/joint configuration — the 1D
// analogue of the teacher's ToolProfile (which held CNC bit parameters).
type KerfProfile struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Kerf           float64 `json:"kerf"`
	JointAllowance float64 `json:"joint_allowance"`
	MaxSplitParts  int     `json:"max_split_parts"`
}

// NewKerfProfile creates a KerfProfile with a generated ID.
func NewKerfProfile(name string, kerf, jointAllowance float64, maxSplitParts int) KerfProfile {
	return KerfProfile{
		ID:             uuid.New().String()[:8],
		Name:           name,
		Kerf:           kerf,
		JointAllowance: jointAllowance,
		MaxSplitParts:  maxSplitParts,
	}
}

// ApplyToParams copies this profile into an OptimizeParams.
func (k KerfProfile) ApplyToParams(p *OptimizeParams) {
	p.Kerf = k.Kerf
	p.JointAllowance = k.JointAllowance
	p.MaxSplitParts = k.MaxSplitParts
}

// StockProfile is a named, reusable stock catalog entry — the 1D
// analogue of the teacher's StockPreset (which held sheet-good sizes).
type StockProfile struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Length          float64 `json:"length"`
	DefaultQuantity int     `json:"default_quantity"`
	Cost            float64 `json:"cost"`
}

// NewStockProfile creates a StockProfile with a generated ID.
func NewStockProfile(name string, length float64, defaultQuantity int, cost float64) StockProfile {
	return StockProfile{
		ID:              uuid.New().String()[:8],
		Name:            name,
		Length:          length,
		DefaultQuantity: defaultQuantity,
		Cost:            cost,
	}
}

// ToStock materializes this profile into a catalog Stock with the given
// ID and quantity override (Unbounded is a valid override).
func (sp StockProfile) ToStock(id string, quantity int) Stock {
	return Stock{ID: id, Length: sp.Length, Quantity: quantity, Cost: sp.Cost, Label: sp.Name}
}

// Inventory bundles the kerf and stock profiles a caller has saved.
type Inventory struct {
	KerfProfiles  []KerfProfile  `json:"kerf_profiles"`
	StockProfiles []StockProfile `json:"stock_profiles"`
}

// DefaultInventory seeds a handful of common lumber/rail lengths and a
// sensible default kerf profile, the way the teacher seeds common sheet
// sizes.
func DefaultInventory() Inventory {
	return Inventory{
		KerfProfiles: []KerfProfile{
			NewKerfProfile("Standard circular saw", 3.2, 10, 2),
			NewKerfProfile("Thin-kerf blade", 1.6, 10, 2),
			NewKerfProfile("Miter saw (no joint)", 3.0, 0, 2),
		},
		StockProfiles: []StockProfile{
			NewStockProfile("2.4m stock bar", 2400, Unbounded, 0),
			NewStockProfile("3.0m stock bar", 3000, Unbounded, 0),
			NewStockProfile("6.0m stock bar", 6000, Unbounded, 0),
		},
	}
}

// FindKerfProfileByID returns a pointer to the kerf profile with the
// given ID, or nil.
func (inv *Inventory) FindKerfProfileByID(id string) *KerfProfile {
	for i := range inv.KerfProfiles {
		if inv.KerfProfiles[i].ID == id {
			return &inv.KerfProfiles[i]
		}
	}
	return nil
}

// FindStockProfileByID returns a pointer to the stock profile with the
// given ID, or nil.
func (inv *Inventory) FindStockProfileByID(id string) *StockProfile {
	for i := range inv.StockProfiles {
		if inv.StockProfiles[i].ID == id {
			return &inv.StockProfiles[i]
		}
	}
	return nil
}

// KerfProfileNames returns the names of every saved kerf profile.
func (inv *Inventory) KerfProfileNames() []string {
	names := make([]string, len(inv.KerfProfiles))
	for i, k := range inv.KerfProfiles {
		names[i] = k.Name
	}
	return names
}

// StockProfileNames returns the names of every saved stock profile.
func (inv *Inventory) StockProfileNames() []string {
	names := make([]string, len(inv.StockProfiles))
	for i, s := range inv.StockProfiles {
		names[i] = s.Name
	}
	return names
}
