package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/cutstock/internal/model"
)

// packFFD is C5: first-fit-decreasing. Parts are sorted longest first and
// each is placed on the first already-open stock it fits; when none fits,
// the smallest stock type able to hold it is drawn from inventory and
// opened.
func packFFD(parts []model.Part, inv *inventory, kerf float64) (open []*openStock, notPlaced []model.Part, diagnostics []string) {
	ordered := make([]model.Part, len(parts))
	copy(ordered, parts)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Length > ordered[j].Length })

	for _, p := range ordered {
		if firstFit(open, p.ID, p.Length, kerf) {
			continue
		}
		var o *openStock
		open, o = openNewStockFor(open, inv, p.Length)
		if o == nil {
			notPlaced = append(notPlaced, p)
			diagnostics = append(diagnostics, fmt.Sprintf(
				"part %q (length %.2f): no stock instance available with enough length or remaining inventory", p.ID, p.Length))
			continue
		}
		o.place(p.ID, p.Length, kerf)
	}
	return open, notPlaced, diagnostics
}
