package export

import (
	"fmt"
	"strings"

	"github.com/piwi3910/PickPack/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
)

const (
	layerBox      = "BOX"
	layerLabels   = "LABELS"
	labelHeight3D = 6.0
)

var typeLayerColors = map[model.ItemType]color.ColorNumber{
	model.ItemBracelet:    color.Yellow,
	model.ItemWatch:       color.Yellow,
	model.ItemPhoneCase:   color.Cyan,
	model.ItemPhone:       color.Cyan,
	model.ItemEReaderCase: color.Magenta,
	model.ItemEReader:     color.Magenta,
	model.ItemTabletCase:  color.Green,
	model.ItemTablet:      color.Green,
}

// ExportDXF writes a 3D wireframe of the box and every placed item. Each
// device type gets its own layer; item numbers are written on the top face.
func ExportDXF(path string, result model.PlacementResult) error {
	if len(result.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(layerBox, color.White, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", layerBox, err)
	}
	if err := wireframe(d, result.Bounds); err != nil {
		return err
	}

	for _, e := range model.Catalog() {
		name := layerName(e.Type)
		if _, err := d.AddLayer(name, typeLayerColors[e.Type], dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", name, err)
		}
	}
	if _, err := d.AddLayer(layerLabels, color.White, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", layerLabels, err)
	}

	for _, p := range result.Placements {
		if err := d.ChangeLayer(layerName(p.Item.Type)); err != nil {
			return fmt.Errorf("failed to select layer for %s: %w", p.Item.ID, err)
		}
		if err := wireframe(d, p.Position); err != nil {
			return err
		}
	}

	if err := d.ChangeLayer(layerLabels); err != nil {
		return fmt.Errorf("failed to select layer %s: %w", layerLabels, err)
	}
	for i, p := range result.Placements {
		v := p.Position
		text := fmt.Sprintf("%d %s", i+1, p.Item.ID)
		if _, err := d.Text(text, float64(v.Min.X)+2, float64(v.Min.Y)+2, float64(v.Max.Z), labelHeight3D); err != nil {
			return fmt.Errorf("failed to label %s: %w", p.Item.ID, err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

// layerName returns the DXF layer used for a device type.
func layerName(t model.ItemType) string {
	return strings.ToUpper(strings.ReplaceAll(t.String(), "-", "_"))
}

// wireframe draws the twelve edges of a volume on the current layer.
func wireframe(d *drawing.Drawing, v model.Volume) error {
	x0, y0, z0 := float64(v.Min.X), float64(v.Min.Y), float64(v.Min.Z)
	x1, y1, z1 := float64(v.Max.X), float64(v.Max.Y), float64(v.Max.Z)

	edges := [12][6]float64{
		// bottom
		{x0, y0, z0, x1, y0, z0}, {x1, y0, z0, x1, y1, z0},
		{x1, y1, z0, x0, y1, z0}, {x0, y1, z0, x0, y0, z0},
		// top
		{x0, y0, z1, x1, y0, z1}, {x1, y0, z1, x1, y1, z1},
		{x1, y1, z1, x0, y1, z1}, {x0, y1, z1, x0, y0, z1},
		// verticals
		{x0, y0, z0, x0, y0, z1}, {x1, y0, z0, x1, y0, z1},
		{x1, y1, z0, x1, y1, z1}, {x0, y1, z0, x0, y1, z1},
	}
	for _, e := range edges {
		if _, err := d.Line(e[0], e[1], e[2], e[3], e[4], e[5]); err != nil {
			return fmt.Errorf("failed to draw edge of %s: %w", v, err)
		}
	}
	return nil
}
