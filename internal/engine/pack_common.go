package engine

import "github.com/piwi3910/cutstock/internal/model"

// openStock is a stock instance that has already been drawn from
// inventory and may still receive more cuts.
type openStock struct {
	stock     model.Stock
	index     int // 0-based instance index for this stock type, for StockIndex
	remaining float64
	cuts      []model.Cut
}

// fits reports whether a part of the given length can still be added to
// this open stock, accounting for the kerf a new cut would introduce.
func (o *openStock) fits(length, kerf float64) bool {
	needed := length
	if len(o.cuts) > 0 {
		needed += kerf
	}
	return o.remaining+eps >= needed
}

// place adds a cut to this open stock, consuming its remaining length.
func (o *openStock) place(partID string, length, kerf float64) {
	consumed := length
	if len(o.cuts) > 0 {
		consumed += kerf
	}
	o.remaining -= consumed
	o.cuts = append(o.cuts, model.Cut{PartID: partID, Length: length})
}

// firstFit scans open stocks in the order they were opened and places the
// part on the first one it fits, returning true on success.
func firstFit(open []*openStock, partID string, length, kerf float64) bool {
	for _, o := range open {
		if o.fits(length, kerf) {
			o.place(partID, length, kerf)
			return true
		}
	}
	return false
}

// bestFit scans every open stock and places the part on the one that
// would be left with the least remaining length afterward (tightest
// fit), returning true on success.
func bestFit(open []*openStock, partID string, length, kerf float64) bool {
	best := -1
	bestLeftover := 0.0
	for i, o := range open {
		if !o.fits(length, kerf) {
			continue
		}
		needed := length
		if len(o.cuts) > 0 {
			needed += kerf
		}
		leftover := o.remaining - needed
		if best == -1 || leftover < bestLeftover {
			best = i
			bestLeftover = leftover
		}
	}
	if best == -1 {
		return false
	}
	open[best].place(partID, length, kerf)
	return true
}

// openNewStockFor draws the smallest stock type that can fit minLength
// from inventory and appends a freshly opened instance to open. Returns
// the new instance, or nil if no stock type at least minLength long has
// remaining inventory.
func openNewStockFor(open []*openStock, inv *inventory, minLength float64) ([]*openStock, *openStock) {
	s, ok := inv.availableFor(minLength)
	if !ok {
		return open, nil
	}
	inv.draw(s.ID)
	o := &openStock{stock: s, index: inv.byID[s.ID].drawn - 1, remaining: s.Length}
	return append(open, o), o
}

// toPlans converts a list of open stock instances into CutPlans, computing
// waste from the stock's nominal length and the kerf-adjusted consumed
// length.
func toPlans(open []*openStock, kerf float64) []model.CutPlan {
	plans := make([]model.CutPlan, 0, len(open))
	for _, o := range open {
		plan := model.CutPlan{
			StockID:     o.stock.ID,
			StockIndex:  o.index,
			StockLength: o.stock.Length,
			Cuts:        o.cuts,
		}
		plan.Waste = o.stock.Length - plan.ConsumedLength(kerf)
		plans = append(plans, plan)
	}
	return plans
}
