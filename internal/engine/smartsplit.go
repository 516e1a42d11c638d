package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/cutstock/internal/model"
)

// packSmartSplit is C7. Unlike FFD/Hybrid, which rely on the shared C4
// splitter to pre-process overlength parts, Smart-Split performs its own
// splitting inline: every part longer than the longest available stock is
// broken into a main segment (exactly the longest stock length) and a
// parked segment (the remainder plus joint allowance, clamped the same
// way C4 clamps it). Main segments are placed first by best-fit — they
// are the ones that most directly determine how many stocks are opened —
// then parked segments and small parts are placed together, longest
// first, by best-fit.
func packSmartSplit(parts []model.Part, inv *inventory, kerf, jointAllowance float64, maxSplitParts int) (open []*openStock, notPlaced []model.Part, diagnostics []string) {
	maxStockLength := 0.0
	for _, s := range inv.sorted {
		if s.Length > maxStockLength {
			maxStockLength = s.Length
		}
	}

	var mains, rest []model.Part
	for _, p := range parts {
		if p.Length <= maxStockLength+eps {
			rest = append(rest, p)
			continue
		}
		if maxSplitParts < 2 {
			notPlaced = append(notPlaced, p)
			diagnostics = append(diagnostics, fmt.Sprintf(
				"part %q (length %.2f) exceeds the longest available stock (%.2f) and splitting is disabled", p.ID, p.Length, maxStockLength))
			continue
		}

		main := model.Part{ID: p.ID + "_main", Length: maxStockLength, Quantity: 1, Label: p.Label}
		remainder := p.Length - maxStockLength
		parked := remainder + jointAllowance
		if jointAllowance > 0 && parked > maxStockLength+eps {
			parked = remainder
			diagnostics = append(diagnostics, fmt.Sprintf(
				"part %q: joint allowance dropped — remainder plus allowance exceeded the longest available stock", p.ID))
		}
		if parked > maxStockLength+eps {
			notPlaced = append(notPlaced, p)
			diagnostics = append(diagnostics, fmt.Sprintf(
				"part %q (length %.2f) cannot be placed even after splitting: remainder %.2f still exceeds the longest available stock (%.2f)",
				p.ID, p.Length, parked, maxStockLength))
			continue
		}

		mains = append(mains, main)
		rest = append(rest, model.Part{ID: p.ID + "_parked", Length: parked, Quantity: 1, Label: p.Label})
	}

	sort.SliceStable(mains, func(i, j int) bool { return mains[i].Length > mains[j].Length })
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].Length > rest[j].Length })

	place := func(p model.Part) {
		if bestFit(open, p.ID, p.Length, kerf) {
			return
		}
		var o *openStock
		open, o = openNewStockFor(open, inv, p.Length)
		if o == nil {
			notPlaced = append(notPlaced, p)
			diagnostics = append(diagnostics, fmt.Sprintf(
				"part %q (length %.2f): no stock instance available with enough length or remaining inventory", p.ID, p.Length))
			return
		}
		o.place(p.ID, p.Length, kerf)
	}

	for _, p := range mains {
		place(p)
	}
	for _, p := range rest {
		place(p)
	}
	return open, notPlaced, diagnostics
}
