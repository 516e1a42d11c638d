package engine

import "github.com/shopspring/decimal"

// enumeratePatterns is C8. Given a sorted list of distinct demanded
// lengths, it recursively enumerates every combination of piece counts
// (one count per length) that fits within a stock of stockLength, kerf
// included between pieces, stopping once patternCap patterns have been
// emitted so pathological demand lists can't make this unbounded.
//
// Lengths are accumulated with shopspring/decimal rather than float64:
// the recursion can sum dozens of kerf terms per branch, and this is
// exactly the kind of repeated addition that drifts a few stocks' worth
// of kerf over a long run — the problem spec explicitly flags. Decimal
// keeps that arithmetic exact; the result (a piece count) is a plain int,
// so nothing downstream needs to know decimal was involved here.
func enumeratePatterns(lengths []float64, stockLength, kerf float64, patternCap int) [][]int {
	n := len(lengths)
	if n == 0 || patternCap <= 0 {
		return nil
	}

	lengthsDec := make([]decimal.Decimal, n)
	for i, l := range lengths {
		lengthsDec[i] = decimal.NewFromFloat(l)
	}
	kerfDec := decimal.NewFromFloat(kerf)

	var patterns [][]int
	current := make([]int, n)

	var generate func(idx int, remaining decimal.Decimal)
	generate = func(idx int, remaining decimal.Decimal) {
		if len(patterns) >= patternCap {
			return
		}
		if idx == n {
			total := 0
			for _, c := range current {
				total += c
			}
			if total > 0 {
				patterns = append(patterns, append([]int(nil), current...))
			}
			return
		}

		firstSoFar := true
		for i := 0; i < idx; i++ {
			if current[i] > 0 {
				firstSoFar = false
				break
			}
		}

		divisor := lengthsDec[idx]
		if !firstSoFar {
			divisor = divisor.Add(kerfDec)
		}
		maxCount := 0
		if divisor.IsPositive() {
			q := remaining.DivRound(divisor, 8).Floor()
			if q.IsPositive() {
				maxCount = int(q.IntPart())
			}
		}

		for count := 0; count <= maxCount; count++ {
			if len(patterns) >= patternCap {
				return
			}
			var used decimal.Decimal
			switch {
			case count == 0:
				used = decimal.Zero
			case firstSoFar:
				used = lengthsDec[idx].Mul(decimal.NewFromInt(int64(count))).
					Add(kerfDec.Mul(decimal.NewFromInt(int64(count - 1))))
			default:
				used = decimal.NewFromInt(int64(count)).Mul(lengthsDec[idx].Add(kerfDec))
			}
			if remaining.Sub(used).IsNegative() {
				// Larger counts only need more length.
				break
			}
			current[idx] = count
			generate(idx+1, remaining.Sub(used))
		}
		current[idx] = 0
	}

	generate(0, decimal.NewFromFloat(stockLength))
	return patterns
}
