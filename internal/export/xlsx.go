package export

import (
	"fmt"

	"github.com/piwi3910/PickPack/internal/model"
	"github.com/piwi3910/PickPack/internal/order"
	"github.com/xuri/excelize/v2"
)

const orderSheet = "Order"

var orderColumns = []string{"#", "Item", "Type", "Min X", "Min Y", "Min Z", "Max X", "Max Y", "Max Z", "Place Pose"}

// ExportXLSX writes the pick order as a spreadsheet with one row per item.
func ExportXLSX(path string, result model.PlacementResult) error {
	if len(result.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", orderSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(orderColumns))
	for i, c := range orderColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(orderSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, p := range result.Placements {
		target := p.Target
		if target == "" {
			target = order.ComputeTarget(p, result.Bounds).String()
		}
		v := p.Position
		row := []interface{}{
			i + 1, p.Item.ID, p.Item.Type.String(),
			v.Min.X, v.Min.Y, v.Min.Z, v.Max.X, v.Max.Y, v.Max.Z,
			target,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(orderSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	summary := len(result.Placements) + 3
	for _, kv := range [][2]interface{}{
		{"Box", string(result.Box)},
		{"Efficiency %", fmt.Sprintf("%.1f", result.Efficiency())},
	} {
		cell, _ := excelize.CoordinatesToCellName(1, summary)
		if err := f.SetSheetRow(orderSheet, cell, &[]interface{}{kv[0], kv[1]}); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		summary++
	}

	if err := f.SetColWidth(orderSheet, "B", "B", 20); err != nil {
		return err
	}
	if err := f.SetColWidth(orderSheet, "J", "J", 40); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save XLSX: %w", err)
	}
	return nil
}
