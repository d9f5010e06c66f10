package engine

import (
	"strings"

	"github.com/piwi3910/PickPack/internal/model"
)

// occupiedSpace tracks the floor-anchored regions already claimed inside a box.
// Every entry is projected down to z=0, so an entry's Max.Z is the height of
// the stack at that footprint.
type occupiedSpace struct {
	entries []model.Volume
}

func newOccupiedSpace(seed ...model.Volume) *occupiedSpace {
	entries := make([]model.Volume, len(seed))
	copy(entries, seed)
	return &occupiedSpace{entries: entries}
}

// add merges region into the set. The region is flattened to the floor, united
// with face-adjacent entries, placed at the front, and redundant entries are
// pruned afterwards.
func (s *occupiedSpace) add(region model.Volume) {
	incoming := region
	incoming.Min.Z = 0

	next := make([]model.Volume, 1, len(s.entries)+1)
	for _, entry := range s.entries {
		var keep bool
		incoming, entry, keep = unite(incoming, entry)
		if keep {
			next = append(next, entry)
		}
	}
	next[0] = incoming
	s.entries = pruneContained(next)
}

// unite applies the first face-adjacency rule that matches between the
// incoming region and an existing entry. It returns the updated pair and
// whether the entry survives.
func unite(in, e model.Volume) (model.Volume, model.Volume, bool) {
	switch {
	case e.Max.X == in.Min.X:
		switch {
		case e.Max.Y == in.Max.Y && e.Max.Z == in.Max.Z:
			in.Min = e.Min
			return in, e, false
		case e.Max.Y >= in.Max.Y && e.Max.Z >= in.Max.Z:
			in.Min = e.Min
		case e.Max.Y <= in.Max.Y && e.Max.Z <= in.Max.Z:
			e.Max.X = in.Max.X
		}
	case e.Min.X == in.Max.X:
		switch {
		case e.Max.Y == in.Max.Y && e.Max.Z == in.Max.Z:
			in.Max.X = e.Max.X
			return in, e, false
		case e.Max.Y >= in.Max.Y && e.Max.Z >= in.Max.Z:
			in.Max.X = e.Max.X
		case e.Max.Y <= in.Max.Y && e.Max.Z <= in.Max.Z:
			e.Min = in.Min
		}
	case e.Max.Y == in.Min.Y:
		switch {
		case e.Max.X == in.Max.X && e.Max.Z == in.Max.Z:
			in.Min = e.Min
			return in, e, false
		case e.Max.X >= in.Max.X && e.Max.Z >= in.Max.Z:
			in.Min = e.Min
		case e.Max.X <= in.Max.X && e.Max.Z <= in.Max.Z:
			e.Max.Y = in.Max.Y
		}
	case e.Min.Y == in.Max.Y:
		switch {
		case e.Max.X == in.Max.X && e.Max.Z == in.Max.Z:
			in.Max.Y = e.Max.Y
			return in, e, false
		case e.Max.X >= in.Max.X && e.Max.Z >= in.Max.Z:
			in.Max.Y = e.Max.Y
		case e.Max.X <= in.Max.X && e.Max.Z <= in.Max.Z:
			e.Min = in.Min
		}
	}
	return in, e, true
}

// pruneContained removes volumes that lie inside another one. Of two equal
// volumes the earlier is kept.
func pruneContained(vols []model.Volume) []model.Volume {
	kept := make([]model.Volume, 0, len(vols))
	for i, v := range vols {
		redundant := false
		for j, other := range vols {
			if i == j || !v.IsSubsetOf(other) {
				continue
			}
			if v != other || j < i {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, v)
		}
	}
	return kept
}

// volumes returns a copy of the current entries in order.
func (s *occupiedSpace) volumes() []model.Volume {
	out := make([]model.Volume, len(s.entries))
	copy(out, s.entries)
	return out
}

// fingerprint identifies the exact ordered state of the set.
func (s *occupiedSpace) fingerprint() string {
	var sb strings.Builder
	for _, v := range s.entries {
		sb.WriteString(v.String())
	}
	return sb.String()
}
