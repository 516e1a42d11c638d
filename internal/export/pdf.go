// Package export provides functionality for exporting cut optimization
// results to PDF cut sheets, QR-coded part labels, and Excel workbooks.
package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/cutstock/internal/model"
)

// cutColor represents an RGB color for a placed cut.
type cutColor struct {
	R, G, B int
}

// cutColors is the fill palette cycled across the cuts of each bar.
var cutColors = []cutColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	barHeight    = 14.0
)

// ExportPDF generates a PDF cut sheet for an optimization result. Each stock
// instance is rendered as a proportional bar showing its cuts and waste,
// several bars per page, followed by a summary page.
func ExportPDF(path string, result model.OptimizationResult, kerf float64) error {
	if len(result.Plans) == 0 {
		return fmt.Errorf("no cut plans to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	barsPerPage := int((pageHeight - drawAreaTop - marginBottom) / (barHeight + 4))
	if barsPerPage < 1 {
		barsPerPage = 1
	}

	for i, plan := range result.Plans {
		if i%barsPerPage == 0 {
			pdf.AddPage()
			renderPageHeader(pdf, i/barsPerPage+1)
		}
		pos := i % barsPerPage
		y := drawAreaTop + float64(pos)*(barHeight+4)
		renderPlanBar(pdf, plan, kerf, i+1, y)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result, kerf)

	return pdf.OutputFileAndClose(path)
}

func renderPageHeader(pdf *fpdf.Fpdf, pageNum int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, fmt.Sprintf("Cut Sheet %d", pageNum), "", 0, "L", false, 0, "")
}

// renderPlanBar draws one stock instance as a horizontal bar with its cuts
// laid out proportionally, followed by a waste segment.
func renderPlanBar(pdf *fpdf.Fpdf, plan model.CutPlan, kerf float64, planNum int, y float64) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(marginLeft, y-5)
	title := fmt.Sprintf("#%d  %s (instance %d)  length %.0f  waste %.1f", planNum, plan.StockID, plan.StockIndex+1, plan.StockLength, plan.Waste)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, title, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	scale := drawWidth / plan.StockLength
	barY := y
	barX := marginLeft

	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.3)
	pdf.Rect(barX, barY, plan.StockLength*scale, barHeight, "D")

	x := barX
	for i, cut := range plan.Cuts {
		if i > 0 {
			x += kerf * scale
		}
		w := cut.Length * scale
		col := cutColors[i%len(cutColors)]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		pdf.Rect(x, barY, w, barHeight, "FD")

		if w > 8 {
			pdf.SetFont("Helvetica", "", cutLabelFontSize(w))
			pdf.SetTextColor(0, 0, 0)
			labelW := pdf.GetStringWidth(cut.PartID)
			if labelW < w-1 {
				pdf.SetXY(x+(w-labelW)/2, barY+barHeight/2-3)
				pdf.CellFormat(labelW, 3, cut.PartID, "", 2, "C", false, 0, "")
			}
			dims := fmt.Sprintf("%.0f", cut.Length)
			dimsW := pdf.GetStringWidth(dims)
			if dimsW < w-1 {
				pdf.SetXY(x+(w-dimsW)/2, barY+barHeight/2+1)
				pdf.CellFormat(dimsW, 3, dims, "", 2, "C", false, 0, "")
			}
		}
		x += w
	}

	if plan.Waste > 0 {
		w := plan.Waste * scale
		pdf.SetFillColor(230, 230, 230)
		pdf.SetDrawColor(150, 150, 150)
		pdf.Rect(x, barY, w, barHeight, "FD")
	}

	pdf.SetTextColor(0, 0, 0)
}

func cutLabelFontSize(w float64) float64 {
	switch {
	case w > 40:
		return 7
	case w > 20:
		return 6
	default:
		return 5
	}
}

func renderSummaryPage(pdf *fpdf.Fpdf, result model.OptimizationResult, kerf float64) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Cut Optimization Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct{ label, value string }{
		{"Algorithm", string(result.Algorithm)},
		{"Total Stocks Used", fmt.Sprintf("%d", result.TotalStocksUsed)},
		{"Total Waste", fmt.Sprintf("%.1f", result.TotalWaste)},
		{"Waste Percentage", fmt.Sprintf("%.2f%%", result.WastePercentage)},
		{"Parts Not Placed", fmt.Sprintf("%d", len(result.PartsNotPlaced))},
		{"Kerf", fmt.Sprintf("%.2f", kerf)},
		{"Computation Time", fmt.Sprintf("%.2f ms", result.ComputationTimeMS)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	if len(result.PartsNotPlaced) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Parts Not Placed", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, part := range result.PartsNotPlaced {
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s: length %.0f", part.Label, part.Length)
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	if len(result.Diagnostics) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "Diagnostics", "", 0, "L", false, 0, "")
		y += 7

		pdf.SetFont("Helvetica", "", 9)
		for _, diag := range result.Diagnostics {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(200, 5, "- "+diag, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by cutstock", "", 0, "C", false, 0, "")
}
