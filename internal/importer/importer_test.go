package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCSVDelimiterVariants(t *testing.T) {
	cases := map[string]rune{
		"Label,Length,Qty\nA,1200,2\nB,800,1\n":   ',',
		"Label;Length;Qty\nA;1200;2\nB;800;1\n":   ';',
		"Label\tLength\tQty\nA\t1200\t2\nB\t800\t1\n": '\t',
		"Label|Length|Qty\nA|1200|2\nB|800|1\n":   '|',
	}
	for data, want := range cases {
		assert.Equal(t, want, DetectCSVDelimiter([]byte(data)))
	}
}

func TestImportPartsCSVFromReaderWithHeader(t *testing.T) {
	data := "Label,Length,Qty\nShelf,1200,3\nRail,800,5\n"
	result := ImportPartsCSVFromReader(strings.NewReader(data), ',')

	require.Empty(t, result.Errors)
	require.Len(t, result.Parts, 2)
	assert.Equal(t, "Shelf", result.Parts[0].Label)
	assert.Equal(t, 1200.0, result.Parts[0].Length)
	assert.Equal(t, 3, result.Parts[0].Quantity)
}

func TestImportPartsCSVFromReaderPositional(t *testing.T) {
	data := "Shelf,1200,3\nRail,800,5\n"
	result := ImportPartsCSVFromReader(strings.NewReader(data), ',')

	require.Empty(t, result.Errors)
	require.Len(t, result.Parts, 2)
	assert.Equal(t, 800.0, result.Parts[1].Length)
}

func TestImportPartsCSVFromReaderDefaultsQuantity(t *testing.T) {
	data := "Label,Length\nShelf,1200\n"
	result := ImportPartsCSVFromReader(strings.NewReader(data), ',')

	require.Empty(t, result.Errors)
	require.Len(t, result.Parts, 1)
	assert.Equal(t, 1, result.Parts[0].Quantity)
}

func TestImportPartsCSVFromReaderRejectsBadLength(t *testing.T) {
	data := "Label,Length,Qty\nShelf,notanumber,3\n"
	result := ImportPartsCSVFromReader(strings.NewReader(data), ',')

	assert.Empty(t, result.Parts)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "invalid length")
}

func TestImportPartsCSVFromReaderSkipsEmptyRows(t *testing.T) {
	data := "Label,Length,Qty\nShelf,1200,3\n,,\nRail,800,5\n"
	result := ImportPartsCSVFromReader(strings.NewReader(data), ',')

	require.Empty(t, result.Errors)
	require.Len(t, result.Parts, 2)
}

func TestDetectPartColumnsCaseInsensitive(t *testing.T) {
	mapping, isHeader := detectPartColumns([]string{"NAME", "LEN", "QTY"})
	require.True(t, isHeader)
	assert.Equal(t, 0, mapping.Label)
	assert.Equal(t, 1, mapping.Length)
	assert.Equal(t, 2, mapping.Quantity)
}

func TestDetectStockColumnsWithCost(t *testing.T) {
	mapping, isHeader := detectStockColumns([]string{"Stock", "Length", "Qty", "Cost"})
	require.True(t, isHeader)
	assert.Equal(t, 0, mapping.Label)
	assert.Equal(t, 1, mapping.Length)
	assert.Equal(t, 2, mapping.Quantity)
	assert.Equal(t, 3, mapping.Cost)
}

func TestImportStocksFromRowsUnboundedWhenQuantityOmitted(t *testing.T) {
	rows := [][]string{
		{"Label", "Length", "Cost"},
		{"lat_4000", "4000", "12.5"},
	}
	result := importStocksFromRows(rows, "Row")

	require.Empty(t, result.Errors)
	require.Len(t, result.Stocks, 1)
	assert.Equal(t, -1, result.Stocks[0].Quantity)
	assert.Equal(t, 12.5, result.Stocks[0].Cost)
}

func TestImportPartsFromRowsMissingLengthHeaderErrors(t *testing.T) {
	rows := [][]string{
		{"Label", "Quantity"},
		{"Shelf", "3"},
	}
	result := importPartsFromRows(rows, "Row")

	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Length")
}
