package export

import (
	"fmt"

	"github.com/piwi3910/cutstock/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportWorkbook writes an optimization result to an .xlsx workbook with one
// sheet listing every cut plan and a second sheet summarizing the run.
func ExportWorkbook(path string, result model.OptimizationResult) error {
	f := excelize.NewFile()
	defer f.Close()

	const plansSheet = "Cut Plans"
	f.SetSheetName("Sheet1", plansSheet)

	headers := []string{"Plan #", "Stock ID", "Stock Instance", "Stock Length", "Part ID", "Cut Length", "Waste"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("build header cell: %w", err)
		}
		if err := f.SetCellValue(plansSheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	row := 2
	for planNum, plan := range result.Plans {
		if len(plan.Cuts) == 0 {
			continue
		}
		for _, cut := range plan.Cuts {
			values := []interface{}{planNum + 1, plan.StockID, plan.StockIndex + 1, plan.StockLength, cut.PartID, cut.Length, plan.Waste}
			if err := writeRow(f, plansSheet, row, values); err != nil {
				return err
			}
			row++
		}
	}

	const summarySheet = "Summary"
	idx, err := f.NewSheet(summarySheet)
	if err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	f.SetActiveSheet(idx)

	summaryRows := [][2]interface{}{
		{"Algorithm", string(result.Algorithm)},
		{"Total Stocks Used", result.TotalStocksUsed},
		{"Total Waste", result.TotalWaste},
		{"Waste Percentage", result.WastePercentage},
		{"Parts Not Placed", len(result.PartsNotPlaced)},
		{"Computation Time (ms)", result.ComputationTimeMS},
	}
	for i, pair := range summaryRows {
		if err := writeRow(f, summarySheet, i+1, []interface{}{pair[0], pair[1]}); err != nil {
			return err
		}
	}

	if len(result.PartsNotPlaced) > 0 {
		startRow := len(summaryRows) + 2
		if err := writeRow(f, summarySheet, startRow, []interface{}{"Unplaced part", "Length"}); err != nil {
			return err
		}
		for i, part := range result.PartsNotPlaced {
			if err := writeRow(f, summarySheet, startRow+i+1, []interface{}{part.Label, part.Length}); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("build cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("write cell: %w", err)
		}
	}
	return nil
}
