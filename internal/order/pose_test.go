package order

import (
	"testing"

	"github.com/piwi3910/PickPack/internal/model"
	"github.com/stretchr/testify/assert"
)

func placed(t *testing.T, id string, x0, y0, z0 int) model.Placement {
	t.Helper()
	it, err := model.NewItem(id)
	if err != nil {
		t.Fatalf("NewItem(%q): %v", id, err)
	}
	return model.Placement{Item: it, Position: it.Size.Translate(model.Point3{X: x0, Y: y0, Z: z0})}
}

func smallBounds() model.Volume {
	b, _ := model.BoxSmall.Bounds()
	return b
}

func TestComputeTarget(t *testing.T) {
	tests := []struct {
		name string
		p    model.Placement
		want string
	}{
		{"tablet at front faces back", placed(t, "tablet_A_01", 0, 0, 0), "120.0, 75.0, 40.0, -180.0, 0.0, 180.0"},
		{"tablet at back faces front", placed(t, "tablet_A_01", 0, 150, 0), "120.0, 225.0, 40.0, -180.0, 0.0, 0.0"},
		{"watch near back wall", placed(t, "reloj_B_01", 0, 213, 0), "40.0, 178.5, 60.0, -180.0, 0.0, -90.0"},
		{"watch at front", placed(t, "reloj_B_01", 0, 0, 0), "40.0, 109.5, 60.0, -180.0, 0.0, 90.0"},
		{"bracelet stacked", placed(t, "pulsera_B_01", 80, 0, 30), "120.0, 109.5, 60.0, -180.0, 0.0, 90.0"},
		{"phone at front", placed(t, "telefono_B_01", 0, 0, 0), "40.0, 110.0, 60.0, -180.0, 0.0, 90.0"},
		{"phone case at back", placed(t, "telefono_B_funda", 160, 150, 60), "200.0, 190.0, 80.0, -180.0, 0.0, -90.0"},
		{"e-reader centred exactly", placed(t, "ereader_A_01", 0, 75, 0), "60.0, 115.0, 40.0, -180.0, 0.0, -90.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTarget(tt.p, smallBounds()).String())
		})
	}
}

func TestAnnotate(t *testing.T) {
	r := model.NewPlacementResult(model.BoxSmall, smallBounds())
	r.Placements = []model.Placement{placed(t, "tablet_A_01", 0, 0, 0)}
	Annotate(&r)
	assert.Equal(t, "120.0, 75.0, 40.0, -180.0, 0.0, 180.0", r.Placements[0].Target)
}
