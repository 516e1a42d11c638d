package model

// MinRemnantLength is the shortest trailing waste worth tracking as a
// reusable offcut. Below this, a remnant is sawdust, not inventory.
const MinRemnantLength = 50.0

// Remnant is the leftover length on one consumed stock instance, long
// enough that a future job could draw on it. The 1D analogue of the
// rectangular offcuts a 2D sheet-goods optimizer tracks: one residual
// length per plan instead of a bounding box.
type Remnant struct {
	StockID    string  `json:"stock_id"`
	StockIndex int     `json:"stock_index"`
	Length     float64 `json:"length"`
}

// ToStock turns a remnant into a one-off Stock catalog entry, so it can be
// fed back into a later Optimize call as available material.
func (r Remnant) ToStock(id, label string) Stock {
	return Stock{ID: id, Length: r.Length, Quantity: 1, Label: label}
}

// DetectRemnants scans a result's plans and returns every waste segment at
// least minLength long.
func DetectRemnants(result OptimizationResult, minLength float64) []Remnant {
	var out []Remnant
	for _, plan := range result.Plans {
		if plan.Waste >= minLength {
			out = append(out, Remnant{
				StockID:    plan.StockID,
				StockIndex: plan.StockIndex,
				Length:     plan.Waste,
			})
		}
	}
	return out
}

// TotalRemnantLength sums the length of every detected remnant.
func TotalRemnantLength(remnants []Remnant) float64 {
	total := 0.0
	for _, r := range remnants {
		total += r.Length
	}
	return total
}
