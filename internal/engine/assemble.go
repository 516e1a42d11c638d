package engine

import (
	"math"

	"github.com/piwi3910/cutstock/internal/model"
)

// assembleResult is C10: it turns a set of plans, the parts that couldn't
// be placed, and accumulated diagnostics into the final OptimizationResult,
// computing aggregate waste figures and rounding them the way the original
// optimizer's result serialization does (waste to one decimal place,
// waste percentage to two).
func assembleResult(algorithm model.Algorithm, plans []model.CutPlan, notPlaced []model.Part, diagnostics []string, elapsedMS float64) model.OptimizationResult {
	totalWaste := 0.0
	totalStockLength := 0.0
	for _, p := range plans {
		totalWaste += p.Waste
		totalStockLength += p.StockLength
	}

	wastePct := 0.0
	if totalStockLength > 0 {
		wastePct = totalWaste / totalStockLength * 100
	}

	return model.OptimizationResult{
		Algorithm:         algorithm,
		Plans:             plans,
		TotalStocksUsed:   len(plans),
		TotalWaste:        round(totalWaste, 1),
		WastePercentage:   round(wastePct, 2),
		PartsNotPlaced:    notPlaced,
		ComputationTimeMS: round(elapsedMS, 2),
		Diagnostics:       diagnostics,
	}
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
