package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/piwi3910/PickPack/internal/engine"
	"github.com/piwi3910/PickPack/internal/model"
	"github.com/spf13/cobra"
)

type scenarioView struct {
	Scenario   string  `json:"scenario" yaml:"scenario"`
	Box        string  `json:"box" yaml:"box"`
	Overlap    string  `json:"overlap" yaml:"overlap"`
	Fits       bool    `json:"fits" yaml:"fits"`
	Placed     int     `json:"placed" yaml:"placed"`
	Fillers    int     `json:"fillers" yaml:"fillers"`
	Occupied   int     `json:"occupied" yaml:"occupied"`
	Efficiency float64 `json:"efficiency" yaml:"efficiency"`
	Error      string  `json:"error,omitempty" yaml:"error,omitempty"`
}

func newCompareCmd(a *app) *cobra.Command {
	var source itemSource
	cmd := &cobra.Command{
		Use:   "compare [item...]",
		Short: "Run an order against every box size and overlap policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, tmplBox, err := a.collect(source, args)
			if err != nil {
				return err
			}
			settings, err := a.settings()
			if err != nil {
				return err
			}
			if tmplBox != "" && !cmd.Flags().Changed("box") {
				settings.Box = tmplBox
			}
			items, err := model.NewItems(ids)
			if err != nil {
				return err
			}
			results := engine.CompareScenarios(engine.BuildDefaultScenarios(settings), items)
			return a.renderComparison(cmd.OutOrStdout(), results)
		},
	}
	source.register(cmd.Flags())
	cmd.Flags().String("box", "", "box size for the current-settings scenario")
	cmd.Flags().String("overlap", "", "overlap policy for the current-settings scenario")
	cmd.Flags().Int("max-iterations", 0, "placement loop limit")
	return cmd
}

func (a *app) renderComparison(w io.Writer, results []engine.ComparisonResult) error {
	views := make([]scenarioView, len(results))
	for i, r := range results {
		views[i] = scenarioView{
			Scenario:   r.Scenario.Name,
			Box:        string(r.Scenario.Settings.Box),
			Overlap:    string(r.Scenario.Settings.Overlap),
			Fits:       r.Fits,
			Placed:     r.Placed,
			Fillers:    r.Fillers,
			Occupied:   r.Occupied,
			Efficiency: r.Efficiency,
		}
		if r.Err != nil {
			views[i].Error = r.Err.Error()
		}
	}

	return a.render(w, views, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SCENARIO\tBOX\tOVERLAP\tFITS\tPLACED\tFILLERS\tOCCUPIED\tFILL%")
		for _, v := range views {
			fits := "yes"
			if !v.Fits {
				fits = "no"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%.1f\n",
				v.Scenario, v.Box, v.Overlap, fits, v.Placed, v.Fillers, v.Occupied, v.Efficiency)
		}
		return tw.Flush()
	})
}
