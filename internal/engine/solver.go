package engine

import (
	"sort"

	"github.com/piwi3910/cutstock/internal/model"
)

// defaultNodeBudget caps how many branch-and-bound nodes the exact solver
// will explore before giving up and falling back to the Hybrid result it
// used as its starting incumbent. No third-party MIP/ILP solver exists
// anywhere in the toolchain available to this project, so this is a
// from-scratch backend rather than a binding to one.
const defaultNodeBudget = 50000

// patternColumn is one (stock type, usage pattern) column: pattern[i] is
// how many pieces of distinctLengths[i] this column cuts from one
// instance of stock.
type patternColumn struct {
	stock   model.Stock
	pattern []int
}

// packExact is C9. It builds the pattern columns via C8 (enumeratePatterns)
// for every stock type, then searches for the minimum number of stock
// instances whose chosen columns cover demand for every distinct length,
// without exceeding any stock type's inventory. The Hybrid result is
// always computed first and used both as the fallback and as the
// incumbent bound for the search, so the exact solver can never do worse
// than Hybrid, and a node-budget or empty-pattern shortfall degrades
// silently into that same Hybrid result (SolverNonOptimal / Unavailable),
// recorded as a diagnostic rather than a returned error.
func packExact(parts []model.Part, stocks []model.Stock, kerf, jointAllowance float64, maxSplitParts, patternCap int, costWeight float64) (plans []model.CutPlan, notPlaced []model.Part, diagnostics []string) {
	maxStockLength := 0.0
	for _, s := range stocks {
		if s.Length > maxStockLength {
			maxStockLength = s.Length
		}
	}
	placeable, splitNotPlaced, splitDiags := splitOverlengthParts(parts, maxStockLength, jointAllowance, maxSplitParts)
	diagnostics = append(diagnostics, splitDiags...)
	notPlaced = append(notPlaced, splitNotPlaced...)

	// Always compute a Hybrid solution over the same placeable set first:
	// it is the fallback, and its stock count is the search's starting
	// upper bound.
	hybridInv := newInventory(stocks)
	hybridOpen, hybridNotPlaced, hybridDiags := packHybrid(placeable, hybridInv, kerf)
	hybridPlans := toPlans(hybridOpen, kerf)

	fallback := func(reason string) ([]model.CutPlan, []model.Part, []string) {
		diagnostics = append(diagnostics, reason)
		diagnostics = append(diagnostics, hybridDiags...)
		return hybridPlans, append(notPlaced, hybridNotPlaced...), diagnostics
	}

	// Distinct lengths and per-length demand, id pools in input order.
	lengthIndex := map[float64]int{}
	var distinctLengths []float64
	var idPools [][]string
	for _, p := range placeable {
		idx, ok := lengthIndex[p.Length]
		if !ok {
			idx = len(distinctLengths)
			lengthIndex[p.Length] = idx
			distinctLengths = append(distinctLengths, p.Length)
			idPools = append(idPools, nil)
		}
		idPools[idx] = append(idPools[idx], p.ID)
	}
	sort.Float64s(distinctLengths)
	// Re-derive idPools/lengthIndex/demand against the now-sorted order.
	demand := make([]int, len(distinctLengths))
	pools := make([][]string, len(distinctLengths))
	for newIdx, l := range distinctLengths {
		oldIdx := lengthIndex[l]
		pools[newIdx] = idPools[oldIdx]
		demand[newIdx] = len(idPools[oldIdx])
	}

	if len(distinctLengths) == 0 {
		return fallback("exact solver: no demand to place")
	}

	effectiveCap := patternCap
	if effectiveCap <= 0 {
		effectiveCap = 1000
	}

	var columns []patternColumn
	for _, s := range stocks {
		pats := enumeratePatterns(distinctLengths, s.Length, kerf, effectiveCap)
		for _, pat := range pats {
			columns = append(columns, patternColumn{stock: s, pattern: pat})
		}
	}
	if len(columns) == 0 {
		return fallback("exact solver: pattern enumerator produced no feasible patterns (solver unavailable for this instance)")
	}

	invCaps := map[string]int{}
	for _, s := range stocks {
		invCaps[s.ID] = s.InstanceCap()
	}

	result := solveExact(distinctLengths, demand, columns, invCaps, len(hybridPlans), defaultNodeBudget, costWeight)
	if result == nil {
		return fallback("exact solver: no improvement found over Hybrid within the search budget (solver non-optimal)")
	}

	// Materialize: pop part ids from each length's pool in input order for
	// every column chosen, same realization rule the packers use.
	builtInv := newInventory(stocks)
	out := make([]model.CutPlan, 0, len(result))
	for _, col := range result {
		builtInv.draw(col.stock.ID)
		plan := model.CutPlan{
			StockID:     col.stock.ID,
			StockIndex:  builtInv.byID[col.stock.ID].drawn - 1,
			StockLength: col.stock.Length,
		}
		for i, count := range col.pattern {
			for c := 0; c < count && len(pools[i]) > 0; c++ {
				plan.Cuts = append(plan.Cuts, model.Cut{PartID: pools[i][0], Length: distinctLengths[i]})
				pools[i] = pools[i][1:]
			}
		}
		plan.Waste = plan.StockLength - plan.ConsumedLength(kerf)
		out = append(out, plan)
	}
	// Anything left in a pool after materialization was not covered by the
	// chosen columns — treat as not placed. solveExact only returns column
	// sets that meet every length's demand, so the pools are normally empty
	// here.
	for i, pool := range pools {
		for _, id := range pool {
			notPlaced = append(notPlaced, model.Part{ID: id, Length: distinctLengths[i], Quantity: 1})
		}
	}

	return out, notPlaced, diagnostics
}
