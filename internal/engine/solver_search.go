package engine

import "sort"

// solveExact searches for a set of pattern columns — one per stock
// instance opened — that covers demand (each distinct length's count met
// or exceeded) using no more instances of any stock type than invCaps
// allows, in fewer total instances than incumbentBins. It returns nil if
// no improvement over the incumbent was found, whether because none
// exists or because nodeBudget ran out first; either way the caller
// falls back to the incumbent (Hybrid) solution.
//
// The search is a branch-and-bound over "which column does the next bin
// use", bounded by a minimum-bins-remaining estimate (total remaining
// length needed divided by the longest stock length with inventory left)
// — the same style of lower bound a bin-packing branch-and-bound uses,
// applied here to pattern coverage instead of individual items.
func solveExact(distinctLengths []float64, demand []int, columns []patternColumn, invCaps map[string]int, incumbentBins, nodeBudget int, costWeight float64) []patternColumn {
	if incumbentBins == 0 {
		return nil
	}

	best := incumbentBins
	var bestChoice []patternColumn
	bestCost := 0.0
	nodes := 0

	totalCost := func(chosen []patternColumn) float64 {
		total := 0.0
		for _, c := range chosen {
			total += c.stock.Cost
		}
		return total
	}

	lowerBound := func(remaining []int, inv map[string]int) int {
		totalLen := 0.0
		maxLen := 0.0
		for _, col := range columns {
			if inv[col.stock.ID] > 0 && col.stock.Length > maxLen {
				maxLen = col.stock.Length
			}
		}
		for i, r := range remaining {
			if r > 0 {
				totalLen += float64(r) * distinctLengths[i]
			}
		}
		if maxLen <= 0 {
			if totalLen > 0 {
				return best // infeasible: signal "can't beat best"
			}
			return 0
		}
		lb := int(totalLen / maxLen)
		if float64(lb)*maxLen < totalLen {
			lb++
		}
		return lb
	}

	var rec func(remaining []int, inv map[string]int, chosen []patternColumn)
	rec = func(remaining []int, inv map[string]int, chosen []patternColumn) {
		nodes++
		if nodes > nodeBudget {
			return
		}
		allZero := true
		for _, r := range remaining {
			if r > 0 {
				allZero = false
				break
			}
		}
		if allZero {
			switch {
			case len(chosen) < best:
				best = len(chosen)
				bestChoice = append([]patternColumn(nil), chosen...)
				bestCost = totalCost(chosen)
			case costWeight > 0 && len(chosen) == best && bestChoice != nil:
				if c := totalCost(chosen); c < bestCost {
					bestChoice = append([]patternColumn(nil), chosen...)
					bestCost = c
				}
			}
			return
		}
		bound := len(chosen) + lowerBound(remaining, inv)
		if bound > best || (bound == best && costWeight <= 0) {
			return
		}

		type candidate struct {
			col     patternColumn
			overlap int
		}
		var cands []candidate
		for _, col := range columns {
			if inv[col.stock.ID] <= 0 {
				continue
			}
			overlap := 0
			for i, c := range col.pattern {
				if c > 0 && remaining[i] > 0 {
					if c < remaining[i] {
						overlap += c
					} else {
						overlap += remaining[i]
					}
				}
			}
			if overlap > 0 {
				cands = append(cands, candidate{col, overlap})
			}
		}
		if len(cands) == 0 {
			return
		}
		sort.Slice(cands, func(i, j int) bool { return cands[i].overlap > cands[j].overlap })

		for _, cd := range cands {
			if nodes > nodeBudget {
				return
			}
			newRemaining := make([]int, len(remaining))
			copy(newRemaining, remaining)
			for i, c := range cd.col.pattern {
				if c > 0 {
					newRemaining[i] -= c
					if newRemaining[i] < 0 {
						newRemaining[i] = 0
					}
				}
			}
			newInv := make(map[string]int, len(inv))
			for k, v := range inv {
				newInv[k] = v
			}
			newInv[cd.col.stock.ID]--
			rec(newRemaining, newInv, append(chosen, cd.col))
		}
	}

	remaining := append([]int(nil), demand...)
	rec(remaining, invCaps, nil)

	return bestChoice
}
