// Package importer provides CSV and Excel import functionality for part and
// stock lists. It supports automatic delimiter detection, flexible column
// mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/cutstock/internal/model"
	"github.com/xuri/excelize/v2"
)

// PartImportResult holds the results of a part-list import operation.
type PartImportResult struct {
	Parts    []model.Part
	Errors   []string
	Warnings []string
}

// StockImportResult holds the results of a stock-list import operation.
type StockImportResult struct {
	Stocks   []model.Stock
	Errors   []string
	Warnings []string
}

// PartColumnMapping maps semantic column roles to their indices for a part list.
type PartColumnMapping struct {
	Label    int
	Length   int
	Quantity int
}

// StockColumnMapping maps semantic column roles to their indices for a stock list.
type StockColumnMapping struct {
	Label    int
	Length   int
	Quantity int
	Cost     int
}

var partHeaderAliases = map[string][]string{
	"label":    {"label", "name", "part", "part name", "description", "desc", "piece", "item"},
	"length":   {"length", "len", "l", "size"},
	"quantity": {"quantity", "qty", "count", "num", "amount", "pcs", "pieces"},
}

var stockHeaderAliases = map[string][]string{
	"label":    {"label", "name", "stock", "bar", "description", "desc"},
	"length":   {"length", "len", "l", "size"},
	"quantity": {"quantity", "qty", "count", "num", "amount", "pcs", "pieces"},
	"cost":     {"cost", "price", "unit cost", "unit price"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// detectPartColumns examines a header row and returns a PartColumnMapping.
func detectPartColumns(row []string) (PartColumnMapping, bool) {
	mapping := PartColumnMapping{Label: -1, Length: -1, Quantity: -1}
	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range partHeaderAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "label":
					if mapping.Label == -1 {
						mapping.Label = i
					}
				case "length":
					if mapping.Length == -1 {
						mapping.Length = i
					}
				case "quantity":
					if mapping.Quantity == -1 {
						mapping.Quantity = i
					}
				}
			}
		}
	}

	if !isHeader {
		return PartColumnMapping{Label: 0, Length: 1, Quantity: 2}, false
	}
	return mapping, true
}

// detectStockColumns examines a header row and returns a StockColumnMapping.
func detectStockColumns(row []string) (StockColumnMapping, bool) {
	mapping := StockColumnMapping{Label: -1, Length: -1, Quantity: -1, Cost: -1}
	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range stockHeaderAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "label":
					if mapping.Label == -1 {
						mapping.Label = i
					}
				case "length":
					if mapping.Length == -1 {
						mapping.Length = i
					}
				case "quantity":
					if mapping.Quantity == -1 {
						mapping.Quantity = i
					}
				case "cost":
					if mapping.Cost == -1 {
						mapping.Cost = i
					}
				}
			}
		}
	}

	if !isHeader {
		return StockColumnMapping{Label: 0, Length: 1, Quantity: 2, Cost: 3}, false
	}
	return mapping, true
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parsePartRow extracts a Part from a row using the given column mapping.
func parsePartRow(row []string, mapping PartColumnMapping, rowLabel string, partCount int) (model.Part, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("part-%d", partCount+1)
	}

	lengthStr := getCell(row, mapping.Length)
	if lengthStr == "" {
		return model.Part{}, fmt.Sprintf("%s: missing length value", rowLabel)
	}
	length, err := strconv.ParseFloat(lengthStr, 64)
	if err != nil {
		return model.Part{}, fmt.Sprintf("%s: invalid length %q", rowLabel, lengthStr)
	}

	qty := 1
	if qtyStr := getCell(row, mapping.Quantity); qtyStr != "" {
		qty, err = strconv.Atoi(qtyStr)
		if err != nil {
			return model.Part{}, fmt.Sprintf("%s: invalid quantity %q", rowLabel, qtyStr)
		}
	}

	part := model.NewPart(label, length, qty, label)
	if err := part.Validate(); err != nil {
		return model.Part{}, fmt.Sprintf("%s: %v", rowLabel, err)
	}
	return part, ""
}

// parseStockRow extracts a Stock from a row using the given column mapping.
func parseStockRow(row []string, mapping StockColumnMapping, rowLabel string, stockCount int) (model.Stock, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("stock-%d", stockCount+1)
	}

	lengthStr := getCell(row, mapping.Length)
	if lengthStr == "" {
		return model.Stock{}, fmt.Sprintf("%s: missing length value", rowLabel)
	}
	length, err := strconv.ParseFloat(lengthStr, 64)
	if err != nil {
		return model.Stock{}, fmt.Sprintf("%s: invalid length %q", rowLabel, lengthStr)
	}

	qty := model.Unbounded
	if qtyStr := getCell(row, mapping.Quantity); qtyStr != "" {
		qty, err = strconv.Atoi(qtyStr)
		if err != nil {
			return model.Stock{}, fmt.Sprintf("%s: invalid quantity %q", rowLabel, qtyStr)
		}
	}

	var cost float64
	if costStr := getCell(row, mapping.Cost); costStr != "" {
		cost, err = strconv.ParseFloat(costStr, 64)
		if err != nil {
			return model.Stock{}, fmt.Sprintf("%s: invalid cost %q", rowLabel, costStr)
		}
	}

	stock := model.NewStock(label, length, qty, cost, label)
	if err := stock.Validate(); err != nil {
		return model.Stock{}, fmt.Sprintf("%s: %v", rowLabel, err)
	}
	return stock, ""
}

// ImportPartsCSV imports a part list from a CSV file, auto-detecting the
// delimiter and the column layout.
func ImportPartsCSV(path string) PartImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return PartImportResult{Errors: []string{fmt.Sprintf("cannot open file: %v", err)}}
	}
	return importPartsFromRows(readRows(data, "Line"))
}

// ImportPartsExcel imports a part list from the first sheet of an Excel file.
func ImportPartsExcel(path string) PartImportResult {
	rows, rowPrefix, errMsg := readExcelRows(path)
	if errMsg != "" {
		return PartImportResult{Errors: []string{errMsg}}
	}
	return importPartsFromRows(rows, rowPrefix)
}

// ImportStocksCSV imports a stock catalog from a CSV file.
func ImportStocksCSV(path string) StockImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return StockImportResult{Errors: []string{fmt.Sprintf("cannot open file: %v", err)}}
	}
	return importStocksFromRows(readRows(data, "Line"))
}

// ImportStocksExcel imports a stock catalog from the first sheet of an Excel file.
func ImportStocksExcel(path string) StockImportResult {
	rows, rowPrefix, errMsg := readExcelRows(path)
	if errMsg != "" {
		return StockImportResult{Errors: []string{errMsg}}
	}
	return importStocksFromRows(rows, rowPrefix)
}

func readRows(data []byte, rowPrefix string) ([][]string, string) {
	delimiter := DetectCSVDelimiter(data)
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, rowPrefix
	}
	return records, rowPrefix
}

func readExcelRows(path string) ([][]string, string, string) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", fmt.Sprintf("cannot open Excel file: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, "", "Excel file has no sheets"
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, "", fmt.Sprintf("cannot read Excel data: %v", err)
	}
	return rows, "Row", ""
}

// ImportPartsCSVFromReader imports parts from a CSV reader with a known delimiter.
func ImportPartsCSVFromReader(r io.Reader, delimiter rune) PartImportResult {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return PartImportResult{Errors: []string{fmt.Sprintf("cannot read CSV: %v", err)}}
	}
	return importPartsFromRows(records, "Line")
}

func importPartsFromRows(rows [][]string, rowPrefix string) PartImportResult {
	result := PartImportResult{}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "no data rows found")
		return result
	}

	mapping, hasHeader := detectPartColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "detected header row, skipping")
		if mapping.Length == -1 {
			result.Errors = append(result.Errors, "required column not found in header: Length")
			return result
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		part, errMsg := parsePartRow(row, mapping, rowLabel, len(result.Parts))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Parts = append(result.Parts, part)
	}
	return result
}

func importStocksFromRows(rows [][]string, rowPrefix string) StockImportResult {
	result := StockImportResult{}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "no data rows found")
		return result
	}

	mapping, hasHeader := detectStockColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "detected header row, skipping")
		if mapping.Length == -1 {
			result.Errors = append(result.Errors, "required column not found in header: Length")
			return result
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		stock, errMsg := parseStockRow(row, mapping, rowLabel, len(result.Stocks))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Stocks = append(result.Stocks, stock)
	}
	return result
}
