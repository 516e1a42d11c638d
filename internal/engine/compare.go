package engine

import "github.com/piwi3910/cutstock/internal/model"

// ComparisonScenario names one variant to run against the same demand and
// stock catalog.
type ComparisonScenario struct {
	Name   string
	Params model.OptimizeParams
}

// ComparisonResult pairs a scenario with what it produced.
type ComparisonResult struct {
	Scenario ComparisonScenario
	Result   model.OptimizationResult
	Err      error
}

// CompareScenarios runs parts/stocks through every scenario and reports
// stocks-used/waste/unplaced side by side — a reusable form of the
// "Exact beats or matches Hybrid" comparison, rather than only a test
// assertion.
func CompareScenarios(parts []model.Part, stocks []model.Stock, scenarios []ComparisonScenario) []ComparisonResult {
	out := make([]ComparisonResult, 0, len(scenarios))
	for _, sc := range scenarios {
		result, err := Optimize(parts, stocks, sc.Params)
		out = append(out, ComparisonResult{Scenario: sc, Result: result, Err: err})
	}
	return out
}

// BuildDefaultScenarios returns one scenario per known algorithm, all
// sharing the given kerf/joint-allowance/max-split-parts settings.
func BuildDefaultScenarios(kerf, jointAllowance float64, maxSplitParts int) []ComparisonScenario {
	var scenarios []ComparisonScenario
	for _, alg := range model.KnownAlgorithms() {
		scenarios = append(scenarios, ComparisonScenario{
			Name: string(alg),
			Params: model.OptimizeParams{
				Algorithm:      alg,
				Kerf:           kerf,
				JointAllowance: jointAllowance,
				MaxSplitParts:  maxSplitParts,
				PatternCap:     1000,
			},
		})
	}
	return scenarios
}
