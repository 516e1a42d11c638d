package engine

import (
	"fmt"

	"github.com/piwi3910/cutstock/internal/model"
)

// expandDemand turns each (id, quantity) Part into quantity singleton
// Parts of quantity 1, suffixing the id with _1.._n when quantity > 1 so
// every downstream packer deals only in individual pieces. A part with
// quantity 1 keeps its id unchanged.
func expandDemand(parts []model.Part) []model.Part {
	var out []model.Part
	for _, p := range parts {
		if p.Quantity == 1 {
			out = append(out, p)
			continue
		}
		for i := 1; i <= p.Quantity; i++ {
			unit := p
			unit.ID = fmt.Sprintf("%s_%d", p.ID, i)
			unit.Quantity = 1
			out = append(out, unit)
		}
	}
	return out
}
