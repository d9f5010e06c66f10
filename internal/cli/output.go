package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/piwi3910/PickPack/internal/model"
	"gopkg.in/yaml.v3"
)

// render writes v in the selected structured format, or calls text for
// plain output.
func (a *app) render(w io.Writer, v any, text func(io.Writer) error) error {
	switch a.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return text(w)
}

type placedView struct {
	Index int    `json:"index" yaml:"index"`
	Item  string `json:"item" yaml:"item"`
	Type  string `json:"type" yaml:"type"`
	Min   string `json:"min" yaml:"min"`
	Max   string `json:"max" yaml:"max"`
	Pose  string `json:"pose" yaml:"pose"`
}

type placementView struct {
	ID         string       `json:"id" yaml:"id"`
	Box        string       `json:"box" yaml:"box"`
	Items      int          `json:"items" yaml:"items"`
	Fillers    int          `json:"fillers" yaml:"fillers"`
	Iterations int          `json:"iterations" yaml:"iterations"`
	Efficiency float64      `json:"efficiency" yaml:"efficiency"`
	Placements []placedView `json:"placements" yaml:"placements"`
}

func newPlacementView(r model.PlacementResult) placementView {
	v := placementView{
		ID:         r.ID,
		Box:        string(r.Box),
		Items:      len(r.Placements),
		Fillers:    r.Fillers,
		Iterations: r.Iterations,
		Efficiency: r.Efficiency(),
		Placements: make([]placedView, len(r.Placements)),
	}
	for i, p := range r.Placements {
		v.Placements[i] = placedView{
			Index: i + 1,
			Item:  p.Item.ID,
			Type:  p.Item.Type.String(),
			Min:   p.Position.Min.String(),
			Max:   p.Position.Max.String(),
			Pose:  p.Target,
		}
	}
	return v
}

func summaryLine(r model.PlacementResult) string {
	return fmt.Sprintf("Order %s: %d item(s) in box %s, %.1f%% filled, %d filler(s)",
		r.ID, len(r.Placements), r.Box, r.Efficiency(), r.Fillers)
}
