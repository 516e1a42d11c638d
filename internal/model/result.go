package model

import "errors"

// Algorithm names one of the five strategies callers may request.
type Algorithm string

const (
	OrtoolsOptimal Algorithm = "ortools_optimal"
	OrtoolsFast    Algorithm = "ortools_fast"
	FFD            Algorithm = "ffd"
	Hybrid         Algorithm = "hybrid"
	SmartSplit     Algorithm = "smart_split"
)

// KnownAlgorithms lists every Algorithm value Optimize accepts.
func KnownAlgorithms() []Algorithm {
	return []Algorithm{OrtoolsOptimal, OrtoolsFast, FFD, Hybrid, SmartSplit}
}

func (a Algorithm) valid() bool {
	for _, k := range KnownAlgorithms() {
		if a == k {
			return true
		}
	}
	return false
}

// Sentinel errors. Only ErrInputInvalid (and things wrapping it) and
// ErrUnknownAlgorithm are ever returned from Optimize;
// Unplaceable/SolverUnavailable/SolverNonOptimal
// are recovered internally and surfaced through PartsNotPlaced/Diagnostics.
var (
	ErrInputInvalid     = errors.New("cutstock: invalid input")
	ErrUnknownAlgorithm = errors.New("cutstock: unknown algorithm")
)

// OptimizeParams carries the caller-tunable knobs for a single Optimize
// call, matching the invocation contract field for field.
type OptimizeParams struct {
	Algorithm      Algorithm `json:"algorithm"`
	Kerf           float64   `json:"kerf"`
	MaxSplitParts  int       `json:"max_split_parts"`
	JointAllowance float64   `json:"joint_allowance"`

	// PatternCap bounds how many patterns the pattern enumerator (C8) will
	// emit per stock length before giving up; defaults to 1000 (Pmax) when
	// zero.
	PatternCap int `json:"pattern_cap"`

	// CostWeight, when positive, makes the exact solver break ties between
	// solutions with the same stock count by lower total Stock.Cost. Only
	// its sign is used, not its magnitude.
	CostWeight float64 `json:"cost_weight"`
}

// DefaultParams returns the baseline knobs for a new project, template or
// app config. Optimize does not fill zero-valued fields from it; the only
// zero value it replaces is PatternCap, which becomes 1000.
func DefaultParams() OptimizeParams {
	return OptimizeParams{
		Algorithm:     Hybrid,
		Kerf:          0,
		MaxSplitParts: 2,
		PatternCap:    1000,
	}
}

// Validate reports the first structural problem with the params.
func (p OptimizeParams) Validate() error {
	if !p.Algorithm.valid() {
		return ErrUnknownAlgorithm
	}
	if p.Kerf < 0 {
		return ErrInputInvalid
	}
	if p.MaxSplitParts < 0 {
		return ErrInputInvalid
	}
	return nil
}

// OptimizationResult is the complete output of one Optimize call.
type OptimizationResult struct {
	Algorithm         Algorithm `json:"algorithm"`
	Plans             []CutPlan `json:"plans"`
	TotalStocksUsed   int       `json:"total_stocks_used"`
	TotalWaste        float64   `json:"total_waste"`
	WastePercentage   float64   `json:"waste_percentage"`
	PartsNotPlaced    []Part    `json:"parts_not_placed"`
	ComputationTimeMS float64   `json:"computation_time_ms"`
	Diagnostics       []string  `json:"diagnostics"`
}
