package engine

import (
	"sort"

	"github.com/piwi3910/cutstock/internal/model"
)

// inventory tracks, per stock type, how many instances have been drawn so
// far against that type's cap. One inventory is built fresh per Optimize
// call and discarded at return — no package-level mutable state.
type inventory struct {
	byID   map[string]*invEntry
	sorted []model.Stock // by (length asc, input order) for availableFor scans
}

type invEntry struct {
	stock model.Stock
	cap   int
	drawn int
}

func newInventory(stocks []model.Stock) *inventory {
	inv := &inventory{byID: make(map[string]*invEntry, len(stocks))}
	for _, s := range stocks {
		inv.byID[s.ID] = &invEntry{stock: s, cap: s.InstanceCap()}
	}
	sorted := make([]model.Stock, len(stocks))
	copy(sorted, stocks)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Length < sorted[j].Length })
	inv.sorted = sorted
	return inv
}

// availableFor returns the smallest stock type whose length is at least
// minLength and which still has undrawn instances, ties broken by input
// order (preserved by the stable sort in newInventory).
func (inv *inventory) availableFor(minLength float64) (model.Stock, bool) {
	for _, s := range inv.sorted {
		if s.Length+eps < minLength {
			continue
		}
		e := inv.byID[s.ID]
		if e.drawn < e.cap {
			return s, true
		}
	}
	return model.Stock{}, false
}

// draw consumes one instance of the given stock type.
func (inv *inventory) draw(stockID string) {
	if e, ok := inv.byID[stockID]; ok {
		e.drawn++
	}
}

// remaining returns how many undrawn instances of the given stock type are
// left.
func (inv *inventory) remaining(stockID string) int {
	e, ok := inv.byID[stockID]
	if !ok {
		return 0
	}
	return e.cap - e.drawn
}

// snapshotRemaining returns a map of stockID -> remaining instance count,
// used as the starting inventory state for the exact solver's search.
func (inv *inventory) snapshotRemaining() map[string]int {
	out := make(map[string]int, len(inv.byID))
	for id, e := range inv.byID {
		out[id] = e.cap - e.drawn
	}
	return out
}
