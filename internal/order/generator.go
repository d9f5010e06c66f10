package order

import (
	"fmt"
	"io"
	"strings"

	"github.com/piwi3910/PickPack/internal/model"
)

// Field names of the order document read by the robot controller.
const (
	keyBox     = "tipo_caja"
	keyCount   = "num_dispositivos"
	keyItem    = "item_"
	keyDevice  = "dispositivo"
	keyPose    = "posicion_place"
	itemIndent = "  "
)

// Generate renders the pick order for a placement result. Items are listed
// in placement order and numbered from 1. Placements without a target get
// one computed from their position.
func Generate(result model.PlacementResult) string {
	var b strings.Builder

	b.WriteString("{\n")
	fmt.Fprintf(&b, "%s\"%s\": \"%s\",\n", itemIndent, keyBox, result.Box)
	fmt.Fprintf(&b, "%s\"%s\": %d", itemIndent, keyCount, len(result.Placements))
	if len(result.Placements) == 0 {
		b.WriteString("\n}")
		return b.String()
	}
	b.WriteString(",\n")

	for i, p := range result.Placements {
		writeItem(&b, i+1, p, result.Bounds)
		if i < len(result.Placements)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}

	b.WriteString("}")
	return b.String()
}

// Write renders the pick order to w.
func Write(w io.Writer, result model.PlacementResult) error {
	if _, err := io.WriteString(w, Generate(result)); err != nil {
		return fmt.Errorf("failed to write order: %w", err)
	}
	return nil
}

func writeItem(b *strings.Builder, n int, p model.Placement, bounds model.Volume) {
	target := p.Target
	if target == "" {
		target = ComputeTarget(p, bounds).String()
	}
	fmt.Fprintf(b, "%s\"%s%d\": {\n", itemIndent, keyItem, n)
	fmt.Fprintf(b, "%s%s\"%s\": \"%s\",\n", itemIndent, itemIndent, keyDevice, p.Item.ID)
	fmt.Fprintf(b, "%s%s\"%s\": \"%s\"\n", itemIndent, itemIndent, keyPose, target)
	fmt.Fprintf(b, "%s}", itemIndent)
}
