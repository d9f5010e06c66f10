// Package export writes placement results to PDF, label, DXF and XLSX files.
package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/PickPack/internal/model"
	"github.com/piwi3910/PickPack/internal/order"
)

// itemColor represents an RGB color for a placed item.
type itemColor struct {
	R, G, B int
}

// typeColors gives every device type a stable color across pages.
var typeColors = map[model.ItemType]itemColor{
	model.ItemBracelet:    {R: 255, G: 235, B: 59}, // yellow
	model.ItemWatch:       {R: 255, G: 152, B: 0},  // orange
	model.ItemPhoneCase:   {R: 0, G: 188, B: 212},  // cyan
	model.ItemPhone:       {R: 33, G: 150, B: 243}, // blue
	model.ItemEReaderCase: {R: 156, G: 39, B: 176}, // purple
	model.ItemEReader:     {R: 121, G: 85, B: 72},  // brown
	model.ItemTabletCase:  {R: 244, G: 67, B: 54},  // red
	model.ItemTablet:      {R: 76, G: 175, B: 80},  // green
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
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF report of a placement result. Each layer of items
// that share a bottom height gets a top-view page, followed by a summary page
// listing every item with its place pose.
func ExportPDF(path string, result model.PlacementResult) error {
	if len(result.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, z := range layerHeights(result) {
		pdf.AddPage()
		renderLayerPage(pdf, result, z)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// layerHeights returns the distinct bottom heights of placed items, ascending.
func layerHeights(result model.PlacementResult) []int {
	seen := make(map[int]bool)
	var zs []int
	for _, p := range result.Placements {
		if !seen[p.Position.Min.Z] {
			seen[p.Position.Min.Z] = true
			zs = append(zs, p.Position.Min.Z)
		}
	}
	sort.Ints(zs)
	return zs
}

// renderLayerPage draws the box floor plan with the items resting at height z.
func renderLayerPage(pdf *fpdf.Fpdf, result model.PlacementResult, z int) {
	size := result.Bounds.Size()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Box %s: layer at z = %d mm (%d x %d x %d mm)", result.Box, z, size.X, size.Y, size.Z)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	var layer []int
	for i, p := range result.Placements {
		if p.Position.Min.Z == z {
			layer = append(layer, i)
		}
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Items in layer: %d | Box items: %d | Efficiency: %.1f%%",
		len(layer), len(result.Placements), result.Efficiency())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight

	scale := math.Min(drawWidth/float64(size.X), drawHeight/float64(size.Y))
	canvasW := float64(size.X) * scale
	canvasH := float64(size.Y) * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Box floor (cardboard color)
	pdf.SetFillColor(222, 196, 150)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Outline of items below this layer
	pdf.SetDrawColor(160, 160, 160)
	pdf.SetLineWidth(0.2)
	pdf.SetDashPattern([]float64{1, 1}, 0)
	for _, p := range result.Placements {
		if p.Position.Max.Z <= z {
			px, py, pw, ph := project(p.Position, scale, offsetX, offsetY)
			pdf.Rect(px, py, pw, ph, "D")
		}
	}
	pdf.SetDashPattern([]float64{}, 0)

	for _, i := range layer {
		p := result.Placements[i]
		col := typeColors[p.Item.Type]
		px, py, pw, ph := project(p.Position, scale, offsetX, offsetY)

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := fmt.Sprintf("%d. %s", i+1, p.Item.ID)
			height := fmt.Sprintf("z %d-%d", p.Position.Min.Z, p.Position.Max.Z)
			labelW := pdf.GetStringWidth(label)
			heightW := pdf.GetStringWidth(height)

			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ph > 14 && heightW < pw-2 {
				pdf.SetXY(px+(pw-heightW)/2, py+ph/2)
				pdf.CellFormat(heightW, 4, height, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, size, offsetX, offsetY, canvasW, canvasH)
	drawTypeLegend(pdf, offsetY+canvasH+8)
}

// project maps a volume's footprint onto page coordinates.
func project(v model.Volume, scale, offsetX, offsetY float64) (x, y, w, h float64) {
	return offsetX + float64(v.Min.X)*scale,
		offsetY + float64(v.Min.Y)*scale,
		float64(v.Max.X-v.Min.X) * scale,
		float64(v.Max.Y-v.Min.Y) * scale
}

// drawDimensionAnnotations adds width and depth labels outside the box outline.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, size model.Point3, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%d mm", size.X)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	depthLabel := fmt.Sprintf("%d mm", size.Y)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	dLabelW := pdf.GetStringWidth(depthLabel)
	pdf.SetXY(offsetX-3-dLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(dLabelW, 4, depthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawTypeLegend renders the device type color key.
func drawTypeLegend(pdf *fpdf.Fpdf, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Device types:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	for _, e := range model.Catalog() {
		col := typeColors[e.Type]
		label := e.Type.String()
		labelW := pdf.GetStringWidth(label) + 6

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")
		xPos += labelW + 2
	}
}

// renderSummaryPage lists every placed item with its position and pose.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.PlacementResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Pick Order Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	summaryItems := []struct {
		label string
		value string
	}{
		{"Order", result.ID},
		{"Box", string(result.Box)},
		{"Items Placed", fmt.Sprintf("%d", len(result.Placements))},
		{"Volume Efficiency", fmt.Sprintf("%.1f%%", result.Efficiency())},
		{"Filler Regions", fmt.Sprintf("%d", result.Fillers)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}
	y += 5

	colWidths := []float64{12, 45, 30, 80, 100}
	headers := []string{"#", "Item", "Type", "Position", "Place Pose"}

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		xPos := marginLeft
		for i, header := range headers {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
			xPos += colWidths[i]
		}
		y += 6
		pdf.SetFont("Helvetica", "", 8)
	}
	drawHeader()

	for i, p := range result.Placements {
		if y > pageHeight-marginBottom-10 {
			pdf.AddPage()
			y = marginTop
			drawHeader()
		}
		target := p.Target
		if target == "" {
			target = order.ComputeTarget(p, result.Bounds).String()
		}
		row := []string{
			fmt.Sprintf("%d", i+1),
			p.Item.ID,
			p.Item.Type.String(),
			p.Position.String(),
			target,
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		xPos := marginLeft
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 5, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 5
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by PickPack", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
