package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartValidate(t *testing.T) {
	require.NoError(t, NewPart("p1", 100, 1, "").Validate())

	err := NewPart("", 100, 1, "").Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputInvalid))

	require.Error(t, NewPart("p1", 0, 1, "").Validate())
	require.Error(t, NewPart("p1", 100, 0, "").Validate())
}

func TestNewPartDefaultsLabelToID(t *testing.T) {
	p := NewPart("p1", 100, 1, "")
	assert.Equal(t, "p1", p.Label)

	named := NewPart("p2", 100, 1, "Shelf side")
	assert.Equal(t, "Shelf side", named.Label)
}

func TestStockValidateAndInstanceCap(t *testing.T) {
	s := NewStock("s1", 3000, 5, 0, "")
	require.NoError(t, s.Validate())
	assert.Equal(t, 5, s.InstanceCap())

	unbounded := NewStock("s2", 3000, Unbounded, 0, "")
	require.NoError(t, unbounded.Validate())
	assert.Equal(t, LargeCap, unbounded.InstanceCap())

	require.Error(t, NewStock("s3", 0, 1, 0, "").Validate())
	require.Error(t, NewStock("s3", 3000, -2, 0, "").Validate())
}

func TestNewStockDefaultsLabelToLength(t *testing.T) {
	s := NewStock("s1", 3000, 5, 0, "")
	assert.Equal(t, "3000mm", s.Label)

	named := NewStock("s2", 3000, 5, 0, "Rail stock")
	assert.Equal(t, "Rail stock", named.Label)
}

func TestOptimizeParamsValidate(t *testing.T) {
	p := DefaultParams()
	require.NoError(t, p.Validate())

	bad := p
	bad.Algorithm = "not-a-real-algorithm"
	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))

	negKerf := p
	negKerf.Kerf = -1
	require.Error(t, negKerf.Validate())
}

func TestDetectRemnants(t *testing.T) {
	result := OptimizationResult{
		Plans: []CutPlan{
			{StockID: "s1", StockIndex: 0, StockLength: 3000, Waste: 10},
			{StockID: "s1", StockIndex: 1, StockLength: 3000, Waste: 200},
		},
	}
	remnants := DetectRemnants(result, 50)
	require.Len(t, remnants, 1)
	assert.Equal(t, 200.0, remnants[0].Length)
	assert.Equal(t, 200.0, TotalRemnantLength(remnants))
}

func TestAppConfigRoundTrip(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultKerf = 3.2
	cfg.DefaultAlgorithm = Hybrid

	var p OptimizeParams
	cfg.ApplyToParams(&p)
	assert.Equal(t, 3.2, p.Kerf)
	assert.Equal(t, Hybrid, p.Algorithm)
}

func TestTemplateRoundTrip(t *testing.T) {
	parts := []Part{NewPart("p1", 500, 2, "")}
	stocks := []Stock{NewStock("s1", 3000, Unbounded, 0, "")}
	tmpl := NewProjectTemplate("shelving", "", parts, stocks, DefaultParams())
	require.NotEmpty(t, tmpl.ID)

	proj := tmpl.ToProject("job-1")
	assert.Equal(t, "job-1", proj.Name)
	require.Len(t, proj.Parts, 1)
	assert.Equal(t, "p1", proj.Parts[0].ID)

	store := NewTemplateStore()
	store.Add(tmpl)
	assert.NotNil(t, store.FindByID(tmpl.ID))
	assert.NotNil(t, store.FindByName("shelving"))
	assert.True(t, store.Remove(tmpl.ID))
	assert.Nil(t, store.FindByID(tmpl.ID))
}
