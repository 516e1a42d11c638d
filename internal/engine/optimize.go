package engine

import (
	"fmt"
	"time"

	"github.com/piwi3910/cutstock/internal/model"
)

// Optimize is the sole entry point: it expands quantities, dispatches to
// the requested strategy, and assembles the result. All state (inventory,
// open-stocks lists, pattern lists, solver state) is allocated fresh for
// this call and discarded at return, so concurrent calls on disjoint
// inputs never share mutable state.
func Optimize(parts []model.Part, stocks []model.Stock, params model.OptimizeParams) (model.OptimizationResult, error) {
	start := time.Now()

	if err := params.Validate(); err != nil {
		return model.OptimizationResult{}, err
	}
	for _, p := range parts {
		if err := p.Validate(); err != nil {
			return model.OptimizationResult{}, err
		}
	}
	for _, s := range stocks {
		if err := s.Validate(); err != nil {
			return model.OptimizationResult{}, err
		}
	}
	if len(parts) == 0 {
		return model.OptimizationResult{}, fmt.Errorf("%w: no parts demand provided", model.ErrInputInvalid)
	}
	if len(stocks) == 0 {
		return model.OptimizationResult{}, fmt.Errorf("%w: no stock catalog provided", model.ErrInputInvalid)
	}

	patternCap := params.PatternCap
	if patternCap <= 0 {
		patternCap = 1000
	}

	expanded := expandDemand(parts)

	maxStockLength := 0.0
	for _, s := range stocks {
		if s.Length > maxStockLength {
			maxStockLength = s.Length
		}
	}

	var (
		plans       []model.CutPlan
		notPlaced   []model.Part
		diagnostics []string
		tag         = params.Algorithm
	)

	switch params.Algorithm {
	case model.FFD, model.OrtoolsFast:
		placeable, splitNotPlaced, splitDiags := splitOverlengthParts(expanded, maxStockLength, params.JointAllowance, params.MaxSplitParts)
		diagnostics = append(diagnostics, splitDiags...)
		notPlaced = append(notPlaced, splitNotPlaced...)

		inv := newInventory(stocks)
		open, notPlacedFFD, ffdDiags := packFFD(placeable, inv, params.Kerf)
		notPlaced = append(notPlaced, notPlacedFFD...)
		diagnostics = append(diagnostics, ffdDiags...)
		plans = toPlans(open, params.Kerf)

		if params.Algorithm == model.OrtoolsFast {
			diagnostics = append(diagnostics, "ortools_fast is an alias of ffd: no OR-Tools backend is used")
		}

	case model.Hybrid:
		placeable, splitNotPlaced, splitDiags := splitOverlengthParts(expanded, maxStockLength, params.JointAllowance, params.MaxSplitParts)
		diagnostics = append(diagnostics, splitDiags...)
		notPlaced = append(notPlaced, splitNotPlaced...)

		inv := newInventory(stocks)
		open, notPlacedHybrid, hybridDiags := packHybrid(placeable, inv, params.Kerf)
		notPlaced = append(notPlaced, notPlacedHybrid...)
		diagnostics = append(diagnostics, hybridDiags...)
		plans = toPlans(open, params.Kerf)

	case model.SmartSplit:
		inv := newInventory(stocks)
		open, notPlacedSS, ssDiags := packSmartSplit(expanded, inv, params.Kerf, params.JointAllowance, params.MaxSplitParts)
		notPlaced = append(notPlaced, notPlacedSS...)
		diagnostics = append(diagnostics, ssDiags...)
		plans = toPlans(open, params.Kerf)

	case model.OrtoolsOptimal:
		exactPlans, exactNotPlaced, exactDiags := packExact(expanded, stocks, params.Kerf, params.JointAllowance, params.MaxSplitParts, patternCap, params.CostWeight)
		plans = exactPlans
		notPlaced = append(notPlaced, exactNotPlaced...)
		diagnostics = append(diagnostics, exactDiags...)

	default:
		return model.OptimizationResult{}, model.ErrUnknownAlgorithm
	}

	elapsedMS := float64(time.Since(start).Microseconds()) / 1000.0
	return assembleResult(tag, plans, notPlaced, diagnostics, elapsedMS), nil
}
