package engine

import (
	"fmt"

	"github.com/piwi3910/cutstock/internal/model"
)

// splitOverlengthParts is the C4 pre-processor: any demanded length that
// exceeds every available stock length is, when allowed, iteratively
// carved into up to maxSplitParts independent singleton parts — each full
// segment taking the longest available stock length, with a joint
// allowance reserved out of that segment's budget for the splice to the
// next one, and the final segment taking whatever remains (plus its own
// joint allowance, when it still fits). Parts that already fit are passed
// through untouched. A part that still has remaining length after
// maxSplitParts segments is unplaceable.
func splitOverlengthParts(parts []model.Part, maxStockLength, jointAllowance float64, maxSplitParts int) (placeable, notPlaced []model.Part, diagnostics []string) {
	for _, p := range parts {
		if p.Length <= maxStockLength+eps {
			placeable = append(placeable, p)
			continue
		}
		if maxSplitParts < 2 {
			notPlaced = append(notPlaced, p)
			diagnostics = append(diagnostics, fmt.Sprintf(
				"part %q (length %.2f) exceeds the longest available stock (%.2f) and splitting is disabled",
				p.ID, p.Length, maxStockLength))
			continue
		}

		segments, clamped, ok := carveSegments(p, maxStockLength, jointAllowance, maxSplitParts)
		if clamped {
			diagnostics = append(diagnostics, fmt.Sprintf(
				"part %q: joint allowance dropped on its final segment — remainder plus allowance exceeded the longest available stock",
				p.ID))
		}
		if !ok {
			notPlaced = append(notPlaced, p)
			diagnostics = append(diagnostics, fmt.Sprintf(
				"part %q (length %.2f) cannot be placed even after splitting into up to %d segments",
				p.ID, p.Length, maxSplitParts))
			continue
		}
		placeable = append(placeable, segments...)
	}
	return placeable, notPlaced, diagnostics
}

// carveSegments runs the iterative carve: each step takes maxStockLength
// off the remainder (reserving jointAllowance out of it for the next
// splice) until what's left fits in a single final segment, or the
// maxSplitParts budget runs out first. ok is false when the part still
// has remaining length after maxSplitParts segments.
func carveSegments(p model.Part, maxStockLength, jointAllowance float64, maxSplitParts int) (segments []model.Part, clamped, ok bool) {
	remaining := p.Length
	for segNum := 1; remaining > eps && segNum <= maxSplitParts; segNum++ {
		if remaining <= maxStockLength+eps {
			length := remaining
			if segNum > 1 {
				length += jointAllowance
			}
			if length > maxStockLength+eps {
				// Clamp: the joint allowance would push this final segment
				// over the longest stock length, so it is dropped silently.
				length = remaining
				clamped = true
			}
			segments = append(segments, model.Part{
				ID: fmt.Sprintf("%s_d%d", p.ID, segNum), Length: length, Quantity: 1, Label: p.Label,
			})
			remaining = 0
			break
		}

		segments = append(segments, model.Part{
			ID: fmt.Sprintf("%s_d%d", p.ID, segNum), Length: maxStockLength, Quantity: 1, Label: p.Label,
		})
		remaining -= maxStockLength - jointAllowance
	}
	return segments, clamped, remaining <= eps
}
