package order

import (
	"fmt"

	"github.com/piwi3910/PickPack/internal/model"
)

// ConflictKind classifies a problem found in a finished placement.
type ConflictKind int

const (
	ConflictOverlap     ConflictKind = iota // two items share interior volume
	ConflictOutOfBounds                     // item extends past the box walls
	ConflictUnsupported                     // item rests on nothing
)

func (k ConflictKind) String() string {
	switch k {
	case ConflictOverlap:
		return "overlap"
	case ConflictOutOfBounds:
		return "out of bounds"
	case ConflictUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Conflict names the placements involved. B is -1 when only A is concerned.
type Conflict struct {
	Kind ConflictKind
	A    int
	B    int
}

// Verify checks a placement result for overlapping items, items outside the
// box, and items above the floor with nothing directly underneath.
func Verify(result model.PlacementResult) []Conflict {
	var conflicts []Conflict
	ps := result.Placements

	for i, p := range ps {
		if !p.Position.IsSubsetOf(result.Bounds) {
			conflicts = append(conflicts, Conflict{Kind: ConflictOutOfBounds, A: i, B: -1})
		}
		for j := i + 1; j < len(ps); j++ {
			if p.Position.Intersects(ps[j].Position) {
				conflicts = append(conflicts, Conflict{Kind: ConflictOverlap, A: i, B: j})
			}
		}
		if p.Position.Min.Z > result.Bounds.Min.Z && !supported(p.Position, ps) {
			conflicts = append(conflicts, Conflict{Kind: ConflictUnsupported, A: i, B: -1})
		}
	}
	return conflicts
}

// supported reports whether some item's top face touches v's bottom face
// over a non-empty area.
func supported(v model.Volume, ps []model.Placement) bool {
	for _, other := range ps {
		o := other.Position
		if o.Max.Z != v.Min.Z {
			continue
		}
		if o.Min.X < v.Max.X && v.Min.X < o.Max.X && o.Min.Y < v.Max.Y && v.Min.Y < o.Max.Y {
			return true
		}
	}
	return false
}

// FormatConflicts produces human-readable messages for the conflicts.
func FormatConflicts(result model.PlacementResult, conflicts []Conflict) []string {
	var msgs []string
	for _, c := range conflicts {
		a := result.Placements[c.A]
		if c.B < 0 {
			msgs = append(msgs, fmt.Sprintf("Item %d (%s) at %s: %s", c.A+1, a.Item.ID, a.Position, c.Kind))
			continue
		}
		b := result.Placements[c.B]
		msgs = append(msgs, fmt.Sprintf("Item %d (%s) at %s: %s with item %d (%s) at %s",
			c.A+1, a.Item.ID, a.Position, c.Kind, c.B+1, b.Item.ID, b.Position))
	}
	return msgs
}
