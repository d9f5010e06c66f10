package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/piwi3910/PickPack/internal/model"
)

// Placer packs a batch of devices into a single box using the occupied-space
// heuristic: at every step it derives one origin point and places the first
// pending item that fits there, or covers the unusable gap with a filler.
type Placer struct {
	Settings model.Settings

	// Logger receives per-step diagnostics. Nil means slog.Default().
	Logger *slog.Logger
	// Metrics is optional.
	Metrics *Metrics
}

func New(settings model.Settings) *Placer {
	return &Placer{Settings: settings}
}

func (p *Placer) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// Place resolves the identifiers against the catalog and packs them into the
// configured box. An unrecognized identifier aborts before anything is placed.
func (p *Placer) Place(ids []string) (model.PlacementResult, error) {
	items, err := model.NewItems(ids)
	if err != nil {
		return model.PlacementResult{}, err
	}
	return p.PlaceItems(items)
}

// PlaceItems packs already-resolved items into the configured box.
// Either every item is placed or an *model.OverflowError is returned.
func (p *Placer) PlaceItems(items []model.Item) (model.PlacementResult, error) {
	box := p.Settings.Box
	floor, err := box.Floor()
	if err != nil {
		return model.PlacementResult{}, err
	}
	bounds, _ := box.Bounds()

	start := time.Now()
	log := p.logger().With("box", string(box))

	pk := &packer{
		bounds:  bounds,
		policy:  p.Settings.Overlap,
		space:   newOccupiedSpace(floor),
		pending: append([]model.Item(nil), items...),
	}
	result := model.NewPlacementResult(box, bounds)
	seen := make(map[string]struct{})

	for len(pk.pending) > 0 {
		result.Iterations++
		if limit := p.Settings.MaxIterations; limit > 0 && result.Iterations > limit {
			log.Warn("iteration limit reached", "limit", limit, "pending", len(pk.pending))
			return p.overflow(box, pk, result)
		}

		origin := pk.searchNewOrigin()
		log.Debug("origin", "point", origin.String(), "occupied", len(pk.space.entries))

		if placed, ok := pk.placeFirstFit(origin); ok {
			result.Placements = append(result.Placements, placed)
			clear(seen)
			log.Info("item placed", "item", placed.Item.ID, "index", len(result.Placements),
				"type", placed.Item.Type.String(), "position", placed.Position.String())
			if p.Metrics != nil {
				p.Metrics.itemsPlaced.WithLabelValues(string(box)).Inc()
			}
			continue
		}

		seen[pk.space.fingerprint()] = struct{}{}
		filler := pk.fillerRegion(origin)
		pk.space.add(filler)
		result.Fillers++
		log.Debug("filler region", "region", filler.String())
		if p.Metrics != nil {
			p.Metrics.fillers.WithLabelValues(string(box)).Inc()
		}

		if _, repeated := seen[pk.space.fingerprint()]; repeated {
			return p.overflow(box, pk, result)
		}
	}

	result.Occupied = pk.space.volumes()
	if p.Metrics != nil {
		p.Metrics.duration.WithLabelValues(string(box)).Observe(time.Since(start).Seconds())
	}
	log.Info("placement complete", "items", len(result.Placements), "fillers", result.Fillers,
		"efficiency", fmt.Sprintf("%.1f%%", result.Efficiency()))
	return result, nil
}

func (p *Placer) overflow(box model.BoxSize, pk *packer, result model.PlacementResult) (model.PlacementResult, error) {
	pending := make([]string, len(pk.pending))
	for i, it := range pk.pending {
		pending[i] = it.ID
	}
	if p.Metrics != nil {
		p.Metrics.overflows.WithLabelValues(string(box)).Inc()
	}
	p.logger().Warn("container overflow", "box", string(box), "placed", len(result.Placements), "pending", len(pending))
	return model.PlacementResult{}, &model.OverflowError{Box: box, Pending: pending, Placed: len(result.Placements)}
}

// packer holds the mutable state of one placement run.
type packer struct {
	bounds  model.Volume
	policy  model.OverlapPolicy
	space   *occupiedSpace
	pending []model.Item
	placed  []model.Volume
}

// searchNewOrigin derives the next candidate corner from the occupied set.
// X and Y fall back to 0 once they reach the box edge. Y is pulled back to
// the front wall when that spot at the same X and Z is free.
func (pk *packer) searchNewOrigin() model.Point3 {
	origin := pk.bounds.Max
	for _, v := range pk.space.entries {
		origin.X = min(origin.X, v.Max.X)
		origin.Y = min(origin.Y, v.Max.Y)
		origin.Z = min(origin.Z, v.Max.Z)
	}
	if origin.X == pk.bounds.Max.X {
		origin.X = 0
	}
	if origin.Y == pk.bounds.Max.Y {
		origin.Y = 0
	}

	y := origin.Y
	origin.Y = 0
	probe := model.Volume{Min: origin, Max: origin.Add(model.Point3{X: 1, Y: 1, Z: 1})}
	if !pk.isValid(probe) {
		origin.Y = y
	}
	return origin
}

// isValid reports whether a candidate fits inside the box and is not already
// claimed. Under the strict policy it must also clear every placed item.
func (pk *packer) isValid(candidate model.Volume) bool {
	if candidate.Max.X > pk.bounds.Max.X || candidate.Max.Y > pk.bounds.Max.Y || candidate.Max.Z > pk.bounds.Max.Z {
		return false
	}
	for _, v := range pk.space.entries {
		if candidate.IsSubsetOf(v) {
			return false
		}
	}
	if pk.policy != model.OverlapContainment {
		for _, v := range pk.placed {
			if candidate.Intersects(v) {
				return false
			}
		}
	}
	return true
}

// placeFirstFit places the first pending item, in input order, that is valid
// at origin and removes it from the pending list.
func (pk *packer) placeFirstFit(origin model.Point3) (model.Placement, bool) {
	for i, it := range pk.pending {
		candidate := it.Size.Translate(origin)
		if !pk.isValid(candidate) {
			continue
		}
		pk.placed = append(pk.placed, candidate)
		pk.space.add(candidate)
		pk.pending = append(pk.pending[:i], pk.pending[i+1:]...)
		return model.Placement{Item: it, Position: candidate}, true
	}
	return model.Placement{}, false
}

// fillerRegion spans from origin to the nearest entry edge beyond it in X and
// Y (or the box wall) and up to the tallest entry above origin's height.
func (pk *packer) fillerRegion(origin model.Point3) model.Volume {
	end := model.Point3{X: pk.bounds.Max.X, Y: pk.bounds.Max.Y, Z: origin.Z}
	for _, v := range pk.space.entries {
		if v.Min.X > origin.X && v.Min.X < end.X {
			end.X = v.Min.X
		}
		if v.Min.Y > origin.Y && v.Min.Y < end.Y {
			end.Y = v.Min.Y
		}
		if v.Max.Z > origin.Z && v.Max.Z > end.Z {
			end.Z = v.Max.Z
		}
	}
	return model.Volume{Min: origin, Max: end}
}
