package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/cutstock/internal/engine"
	"github.com/piwi3910/cutstock/internal/export"
	"github.com/piwi3910/cutstock/internal/importer"
	"github.com/piwi3910/cutstock/internal/model"
)

func runOptimize(args []string) error {
	fs := newFlagSet("optimize")
	partsPath := fs.String("parts", "", "path to a parts list (.csv or .xlsx)")
	stocksPath := fs.String("stocks", "", "path to a stock catalog (.csv or .xlsx)")
	algorithm := fs.String("algorithm", string(model.Hybrid), "ffd|hybrid|smart_split|ortools_fast|ortools_optimal")
	kerf := fs.Float64("kerf", 0, "saw kerf width")
	jointAllowance := fs.Float64("joint-allowance", 0, "extra length reserved when splitting an overlength part")
	maxSplitParts := fs.Int("max-split-parts", 2, "maximum segments an overlength part may be split into")
	patternCap := fs.Int("pattern-cap", 1000, "maximum patterns enumerated per stock length (ortools_optimal only)")
	costWeight := fs.Float64("cost-weight", 0, "weight given to stock cost as a tie-breaker (ortools_optimal only)")
	out := fs.String("out", "", "write the result to this path (.json, .pdf, .xlsx); stdout JSON if omitted")
	labelsOut := fs.String("labels-out", "", "also write a QR-coded label sheet PDF to this path")
	showRemnants := fs.Bool("remnants", false, "report reusable offcuts left on each consumed stock instance")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *partsPath == "" || *stocksPath == "" {
		return fmt.Errorf("both -parts and -stocks are required")
	}

	parts, err := loadParts(*partsPath)
	if err != nil {
		return fmt.Errorf("load parts: %w", err)
	}
	stocks, err := loadStocks(*stocksPath)
	if err != nil {
		return fmt.Errorf("load stocks: %w", err)
	}

	params := model.OptimizeParams{
		Algorithm:      model.Algorithm(*algorithm),
		Kerf:           *kerf,
		JointAllowance: *jointAllowance,
		MaxSplitParts:  *maxSplitParts,
		PatternCap:     *patternCap,
		CostWeight:     *costWeight,
	}

	result, err := engine.Optimize(parts, stocks, params)
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}

	if *labelsOut != "" {
		if err := export.ExportLabels(*labelsOut, result); err != nil {
			return fmt.Errorf("write labels: %w", err)
		}
	}

	if *showRemnants {
		reportRemnants(result)
	}

	return writeResult(*out, result, *kerf)
}

func optimizeProject(proj model.Project) (model.OptimizationResult, error) {
	return engine.Optimize(proj.Parts, proj.Stocks, proj.Params)
}

// reportRemnants prints every reusable offcut left on a consumed stock
// instance, the 1D analogue of the teacher's offcut report.
func reportRemnants(result model.OptimizationResult) {
	remnants := model.DetectRemnants(result, model.MinRemnantLength)
	if len(remnants) == 0 {
		fmt.Fprintln(os.Stderr, "no reusable remnants (all waste below MinRemnantLength)")
		return
	}
	fmt.Fprintf(os.Stderr, "%d reusable remnant(s), %.1f total length:\n", len(remnants), model.TotalRemnantLength(remnants))
	for _, r := range remnants {
		fmt.Fprintf(os.Stderr, "  %s #%d: %.1f\n", r.StockID, r.StockIndex, r.Length)
	}
}

func loadParts(path string) ([]model.Part, error) {
	var res importer.PartImportResult
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		res = importer.ImportPartsExcel(path)
	} else {
		res = importer.ImportPartsCSV(path)
	}
	if len(res.Errors) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(res.Errors, "; "))
	}
	return res.Parts, nil
}

func loadStocks(path string) ([]model.Stock, error) {
	var res importer.StockImportResult
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		res = importer.ImportStocksExcel(path)
	} else {
		res = importer.ImportStocksCSV(path)
	}
	if len(res.Errors) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(res.Errors, "; "))
	}
	return res.Stocks, nil
}

func writeResult(path string, result model.OptimizationResult, kerf float64) error {
	if path == "" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return export.ExportPDF(path, result, kerf)
	case ".xlsx":
		return export.ExportWorkbook(path, result)
	default:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		return os.WriteFile(path, data, 0o644)
	}
}
