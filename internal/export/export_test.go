package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/cutstock/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildExportTestResult() model.OptimizationResult {
	return model.OptimizationResult{
		Algorithm:       model.Hybrid,
		TotalStocksUsed: 2,
		TotalWaste:      4547,
		WastePercentage: 64.96,
		Plans: []model.CutPlan{
			{
				StockID:     "lat_4000",
				StockIndex:  0,
				StockLength: 4000,
				Cuts: []model.Cut{
					{PartID: "A_1", Length: 1200},
					{PartID: "B_1", Length: 800},
				},
				Waste: 1997,
			},
			{
				StockID:     "lat_3000",
				StockIndex:  0,
				StockLength: 3000,
				Cuts: []model.Cut{
					{PartID: "C_1", Length: 450},
				},
				Waste: 2550,
			},
		},
		PartsNotPlaced: []model.Part{{ID: "D_1", Length: 300, Quantity: 1, Label: "D"}},
		Diagnostics:    []string{"part D_1 could not be placed"},
	}
}

func TestExportPDFCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cutsheet.pdf")
	require.NoError(t, ExportPDF(path, buildExportTestResult(), 3))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportPDFRejectsEmptyResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cutsheet.pdf")
	err := ExportPDF(path, model.OptimizationResult{}, 3)
	require.Error(t, err)
}

func TestExportLabelsCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	require.NoError(t, ExportLabels(path, buildExportTestResult()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportLabelsRejectsNoCuts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	err := ExportLabels(path, model.OptimizationResult{})
	require.Error(t, err)
}

func TestCollectLabelInfosCountsEachCut(t *testing.T) {
	labels := CollectLabelInfos(buildExportTestResult())
	require.Len(t, labels, 3)
	assert.Equal(t, "A_1", labels[0].PartID)
	assert.Equal(t, "lat_4000", labels[0].StockID)
}

func TestExportWorkbookCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.xlsx")
	require.NoError(t, ExportWorkbook(path, buildExportTestResult()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
