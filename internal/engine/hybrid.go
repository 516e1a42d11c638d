package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/cutstock/internal/model"
)

// packHybrid is C6: a two-phase packer. Large parts (>= half the longest
// available stock length) are placed first-fit-decreasing, exactly like
// FFD, to avoid fragmenting stock on the pieces most likely to define how
// many stocks are needed at all; the remaining small parts then fill in
// by best-fit against every open stock, in whichever one leaves the least
// slack, to use up space the large pass left behind.
func packHybrid(parts []model.Part, inv *inventory, kerf float64) (open []*openStock, notPlaced []model.Part, diagnostics []string) {
	maxStockLength := 0.0
	for _, s := range inv.sorted {
		if s.Length > maxStockLength {
			maxStockLength = s.Length
		}
	}
	threshold := maxStockLength * 0.5

	var large, small []model.Part
	for _, p := range parts {
		if p.Length+eps >= threshold {
			large = append(large, p)
		} else {
			small = append(small, p)
		}
	}
	sort.SliceStable(large, func(i, j int) bool { return large[i].Length > large[j].Length })
	sort.SliceStable(small, func(i, j int) bool { return small[i].Length > small[j].Length })

	place := func(p model.Part, useFirstFit bool) {
		fit := bestFit
		if useFirstFit {
			fit = firstFit
		}
		if fit(open, p.ID, p.Length, kerf) {
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

	for _, p := range large {
		place(p, true)
	}
	for _, p := range small {
		place(p, false)
	}
	return open, notPlaced, diagnostics
}
