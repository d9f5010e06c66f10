package order

import (
	"fmt"

	"github.com/piwi3910/PickPack/internal/model"
)

// Gripper offsets along Y from the item centre, in mm.
const (
	wearableOffset = 72
	handheldOffset = 35

	// wearableTenths is added to Y for bracelets and watches.
	wearableTenths = 5
)

// Target is the pose the robot moves to when releasing an item.
// Roll and pitch are fixed at -180 and 0 degrees.
type Target struct {
	X       int
	Y       int
	YTenths int
	Z       int
	Yaw     int
}

// String renders the pose as "x, y, z, roll, pitch, yaw" with one decimal.
func (t Target) String() string {
	return fmt.Sprintf("%d.0, %d.%d, %d.0, -180.0, 0.0, %d.0", t.X, t.Y, t.YTenths, t.Z, t.Yaw)
}

// ComputeTarget derives the place pose for an item from its position in the box.
// The gripper is offset towards the wall farther from the item centre, and the
// yaw turns the tool to face that way.
func ComputeTarget(p model.Placement, bounds model.Volume) Target {
	pos := p.Position
	t := Target{
		X: pos.Min.X + (pos.Max.X-pos.Min.X)/2,
		Y: pos.Min.Y + (pos.Max.Y-pos.Min.Y)/2,
		Z: pos.Max.Z,
	}
	nearBack := bounds.Max.Y-t.Y <= t.Y-bounds.Min.Y

	typ := p.Item.Type
	switch {
	case typ.Slab():
		if nearBack {
			t.Yaw = 0
		} else {
			t.Yaw = 180
		}
		return t
	case typ.Wearable():
		t.YTenths = wearableTenths
		t.Y, t.Yaw = shift(t.Y, wearableOffset, nearBack)
	case typ != model.ItemUnknown:
		t.Y, t.Yaw = shift(t.Y, handheldOffset, nearBack)
	}
	return t
}

func shift(y, offset int, nearBack bool) (int, int) {
	if nearBack {
		return y - offset, -90
	}
	return y + offset, 90
}

// Annotate fills in the Target of every placement in the result.
func Annotate(result *model.PlacementResult) {
	for i := range result.Placements {
		result.Placements[i].Target = ComputeTarget(result.Placements[i], result.Bounds).String()
	}
}
