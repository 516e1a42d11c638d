package engine

import (
	"testing"

	"github.com/piwi3910/cutstock/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func s1Parts() []model.Part {
	return []model.Part{
		model.NewPart("A", 1200, 3, ""),
		model.NewPart("B", 800, 5, ""),
		model.NewPart("C", 450, 8, ""),
		model.NewPart("D", 300, 4, ""),
	}
}

func s1Stocks() []model.Stock {
	return []model.Stock{
		model.NewStock("lat_4000", 4000, model.Unbounded, 0, ""),
		model.NewStock("lat_3000", 3000, model.Unbounded, 0, ""),
		model.NewStock("lat_2400", 2400, model.Unbounded, 0, ""),
	}
}

// assertFeasible checks invariants 1, 4 and 5 from the testable properties:
// every plan fits its stock with waste computed correctly, every plan has
// at least one cut, and stock indices for a given stock id are 0..k-1.
func assertFeasible(t *testing.T, result model.OptimizationResult, kerf float64) {
	t.Helper()
	byStock := map[string][]int{}
	for _, p := range result.Plans {
		require.NotEmpty(t, p.Cuts, "plan for %s has no cuts", p.StockID)
		consumed := p.ConsumedLength(kerf)
		assert.LessOrEqual(t, consumed, p.StockLength+1e-6)
		assert.InDelta(t, p.StockLength-consumed, p.Waste, 1e-6)
		byStock[p.StockID] = append(byStock[p.StockID], p.StockIndex)
	}
	for id, indices := range byStock {
		seen := map[int]bool{}
		for _, idx := range indices {
			assert.False(t, seen[idx], "duplicate stock_index %d for %s", idx, id)
			seen[idx] = true
		}
		for i := 0; i < len(indices); i++ {
			assert.True(t, seen[i], "stock_index %d missing for %s", i, id)
		}
	}
}

func TestS1_FFDBasics(t *testing.T) {
	result, err := Optimize(s1Parts(), s1Stocks(), model.OptimizeParams{
		Algorithm: model.FFD,
		Kerf:      3,
	})
	require.NoError(t, err)
	assert.Empty(t, result.PartsNotPlaced)
	assertFeasible(t, result, 3)
	assert.LessOrEqual(t, result.TotalStocksUsed, 7)
}

func TestS2_ExactNoWorseThanFFD(t *testing.T) {
	ffd, err := Optimize(s1Parts(), s1Stocks(), model.OptimizeParams{Algorithm: model.FFD, Kerf: 3})
	require.NoError(t, err)

	exact, err := Optimize(s1Parts(), s1Stocks(), model.OptimizeParams{
		Algorithm:  model.OrtoolsOptimal,
		Kerf:       3,
		PatternCap: 1000,
	})
	require.NoError(t, err)
	assertFeasible(t, exact, 3)
	assert.LessOrEqual(t, exact.TotalStocksUsed, ffd.TotalStocksUsed)
}

func TestS3_InventoryCap(t *testing.T) {
	parts := []model.Part{model.NewPart("X", 2000, 3, "")}
	stocks := []model.Stock{
		model.NewStock("big", 3000, 2, 0, ""),
		model.NewStock("small", 2000, model.Unbounded, 0, ""),
	}
	result, err := Optimize(parts, stocks, model.OptimizeParams{Algorithm: model.FFD, Kerf: 3})
	require.NoError(t, err)
	assert.Empty(t, result.PartsNotPlaced)

	bigPlans := 0
	for _, p := range result.Plans {
		if p.StockID == "big" {
			bigPlans++
		}
	}
	assert.LessOrEqual(t, bigPlans, 2)
}

func TestS4_Splitting(t *testing.T) {
	parts := []model.Part{model.NewPart("long", 5000, 1, "")}
	stocks := []model.Stock{model.NewStock("s", 3000, model.Unbounded, 0, "")}
	result, err := Optimize(parts, stocks, model.OptimizeParams{
		Algorithm:      model.FFD,
		Kerf:           3,
		MaxSplitParts:  2,
		JointAllowance: 50,
	})
	require.NoError(t, err)
	assert.Empty(t, result.PartsNotPlaced)
	require.Len(t, result.Plans, 2)

	var lengths []float64
	for _, p := range result.Plans {
		require.Len(t, p.Cuts, 1)
		lengths = append(lengths, p.Cuts[0].Length)
	}
	assert.ElementsMatch(t, []float64{3000, 2100}, lengths)
}

func TestS5_Unsplittable(t *testing.T) {
	parts := []model.Part{model.NewPart("long", 5000, 1, "")}
	stocks := []model.Stock{model.NewStock("s", 3000, model.Unbounded, 0, "")}
	result, err := Optimize(parts, stocks, model.OptimizeParams{
		Algorithm:      model.FFD,
		Kerf:           3,
		MaxSplitParts:  1,
		JointAllowance: 50,
	})
	require.NoError(t, err)
	require.Len(t, result.PartsNotPlaced, 1)
	assert.Equal(t, "long", result.PartsNotPlaced[0].ID)
	assert.Empty(t, result.Plans)
}

func TestS6_SmartSplitFill(t *testing.T) {
	parts := []model.Part{
		model.NewPart("long", 5000, 1, ""),
		model.NewPart("filler", 1800, 1, ""),
	}
	stocks := []model.Stock{model.NewStock("s", 3000, model.Unbounded, 0, "")}
	result, err := Optimize(parts, stocks, model.OptimizeParams{
		Algorithm:      model.SmartSplit,
		Kerf:           3,
		MaxSplitParts:  2,
		JointAllowance: 50,
	})
	require.NoError(t, err)
	assertFeasible(t, result, 3)
	assert.Equal(t, 3, result.TotalStocksUsed)
}

func TestOrtoolsFastIsAliasOfFFD(t *testing.T) {
	ffd, err := Optimize(s1Parts(), s1Stocks(), model.OptimizeParams{Algorithm: model.FFD, Kerf: 3})
	require.NoError(t, err)
	fast, err := Optimize(s1Parts(), s1Stocks(), model.OptimizeParams{Algorithm: model.OrtoolsFast, Kerf: 3})
	require.NoError(t, err)

	assert.Equal(t, ffd.TotalStocksUsed, fast.TotalStocksUsed)
	assert.Equal(t, model.OrtoolsFast, fast.Algorithm)
	found := false
	for _, d := range fast.Diagnostics {
		if d != "" {
			found = true
		}
	}
	assert.True(t, found, "expected a diagnostic noting the ortools_fast alias")
}

func TestUnknownAlgorithmIsInputInvalid(t *testing.T) {
	_, err := Optimize(s1Parts(), s1Stocks(), model.OptimizeParams{Algorithm: "bogus", Kerf: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownAlgorithm)
}

func TestEmptyPartsIsInputInvalid(t *testing.T) {
	_, err := Optimize(nil, s1Stocks(), model.OptimizeParams{Algorithm: model.FFD, Kerf: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInputInvalid)
}

func TestEmptyStocksIsInputInvalid(t *testing.T) {
	_, err := Optimize(s1Parts(), nil, model.OptimizeParams{Algorithm: model.FFD, Kerf: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInputInvalid)
}

func TestZeroKerfFeasibility(t *testing.T) {
	parts := []model.Part{model.NewPart("p", 1000, 3, "")}
	stocks := []model.Stock{model.NewStock("s", 3000, model.Unbounded, 0, "")}
	result, err := Optimize(parts, stocks, model.OptimizeParams{Algorithm: model.FFD, Kerf: 0})
	require.NoError(t, err)
	require.Len(t, result.Plans, 1)
	assert.Equal(t, 0.0, result.Plans[0].Waste)
}

func TestDemandQuantityExpansionMatchesIndividualParts(t *testing.T) {
	stocks := []model.Stock{model.NewStock("s", 3000, model.Unbounded, 0, "")}
	grouped := []model.Part{model.NewPart("p", 700, 3, "")}
	individual := []model.Part{
		model.NewPart("p1", 700, 1, ""),
		model.NewPart("p2", 700, 1, ""),
		model.NewPart("p3", 700, 1, ""),
	}
	a, err := Optimize(grouped, stocks, model.OptimizeParams{Algorithm: model.FFD, Kerf: 3})
	require.NoError(t, err)
	b, err := Optimize(individual, stocks, model.OptimizeParams{Algorithm: model.FFD, Kerf: 3})
	require.NoError(t, err)
	assert.Equal(t, a.TotalStocksUsed, b.TotalStocksUsed)
	assert.InDelta(t, a.TotalWaste, b.TotalWaste, 1e-6)
}
