package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// BoxSize identifies one of the three shipping boxes by its letter.
type BoxSize string

const (
	BoxSmall  BoxSize = "S"
	BoxMedium BoxSize = "M"
	BoxLarge  BoxSize = "L"
)

// boxHeight and boxDepth are shared by every box; only the width differs.
const (
	boxDepth  = 300
	boxHeight = 240
)

// BoxSizes lists the supported boxes from smallest to largest.
func BoxSizes() []BoxSize {
	return []BoxSize{BoxSmall, BoxMedium, BoxLarge}
}

// ParseBoxSize accepts a box letter in either case.
func ParseBoxSize(s string) (BoxSize, error) {
	b := BoxSize(strings.ToUpper(strings.TrimSpace(s)))
	switch b {
	case BoxSmall, BoxMedium, BoxLarge:
		return b, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBoxSize, s)
}

// Width returns the box extent along X, or 0 for an unknown box.
func (b BoxSize) Width() int {
	switch b {
	case BoxSmall:
		return 240
	case BoxMedium:
		return 320
	case BoxLarge:
		return 480
	default:
		return 0
	}
}

// Bounds returns the interior of the box anchored at the origin.
func (b BoxSize) Bounds() (Volume, error) {
	w := b.Width()
	if w == 0 {
		return Volume{}, fmt.Errorf("%w: %q", ErrUnknownBoxSize, string(b))
	}
	return Sized(w, boxDepth, boxHeight), nil
}

// Floor returns the zero-thickness surface that seeds the occupied-space set.
func (b BoxSize) Floor() (Volume, error) {
	bounds, err := b.Bounds()
	if err != nil {
		return Volume{}, err
	}
	return Volume{Max: Point3{X: bounds.Max.X, Y: bounds.Max.Y}}, nil
}

// Item is a device waiting to be placed.
type Item struct {
	ID   string   `json:"id"`
	Type ItemType `json:"type"`
	Size Volume   `json:"size"`
}

// NewItem resolves the identifier against the catalog.
func NewItem(id string) (Item, error) {
	t, size, err := Resolve(id)
	if err != nil {
		return Item{}, err
	}
	return Item{ID: id, Type: t, Size: size}, nil
}

// NewItems resolves every identifier, failing on the first unrecognized one.
func NewItems(ids []string) ([]Item, error) {
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		it, err := NewItem(id)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// Placement records where an item ended up and the robot target derived from it.
type Placement struct {
	Item     Item   `json:"item"`
	Position Volume `json:"position"`
	Target   string `json:"target,omitempty"`
}

// PlacementResult is the outcome of packing one order into one box.
type PlacementResult struct {
	ID         string      `json:"id"`
	Box        BoxSize     `json:"box"`
	Bounds     Volume      `json:"bounds"`
	Placements []Placement `json:"placements"`
	Occupied   []Volume    `json:"occupied"`
	Fillers    int         `json:"fillers"`
	Iterations int         `json:"iterations"`
}

// NewPlacementResult starts an empty result for the given box.
func NewPlacementResult(box BoxSize, bounds Volume) PlacementResult {
	return PlacementResult{
		ID:         uuid.New().String()[:8],
		Box:        box,
		Bounds:     bounds,
		Placements: []Placement{},
	}
}

// UsedVolume sums the volumes of all placed items.
func (r PlacementResult) UsedVolume() int {
	total := 0
	for _, p := range r.Placements {
		total += p.Position.Cubic()
	}
	return total
}

// Efficiency returns the share of the box volume taken by items, as a percentage.
func (r PlacementResult) Efficiency() float64 {
	total := r.Bounds.Cubic()
	if total == 0 {
		return 0
	}
	return float64(r.UsedVolume()) / float64(total) * 100.0
}

// Identifiers returns the placed item identifiers in placement order.
func (r PlacementResult) Identifiers() []string {
	ids := make([]string, len(r.Placements))
	for i, p := range r.Placements {
		ids[i] = p.Item.ID
	}
	return ids
}

// OverlapPolicy selects how candidate positions are checked against earlier items.
type OverlapPolicy string

const (
	// OverlapStrict rejects candidates whose interior intersects any placed item.
	OverlapStrict OverlapPolicy = "strict"
	// OverlapContainment only rejects candidates fully inside an occupied region.
	OverlapContainment OverlapPolicy = "containment"
)

// ParseOverlapPolicy accepts "strict" or "containment"; empty means strict.
func ParseOverlapPolicy(s string) (OverlapPolicy, error) {
	switch OverlapPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", OverlapStrict:
		return OverlapStrict, nil
	case OverlapContainment:
		return OverlapContainment, nil
	}
	return "", fmt.Errorf("unknown overlap policy %q", s)
}

// Settings holds the parameters for a single placement run.
type Settings struct {
	Box           BoxSize       `json:"box"`
	Overlap       OverlapPolicy `json:"overlap"`
	MaxIterations int           `json:"max_iterations"` // 0 = unlimited, the repeat-state check still applies
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Box:           BoxSmall,
		Overlap:       OverlapStrict,
		MaxIterations: 10000,
	}
}
