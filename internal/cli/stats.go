package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/piwi3910/PickPack/internal/history"
	"github.com/piwi3910/PickPack/internal/model"
	"github.com/spf13/cobra"
)

type statsView struct {
	Box     string  `json:"box" yaml:"box"`
	Samples int     `json:"samples" yaml:"samples"`
	Mean    float64 `json:"mean_seconds" yaml:"mean_seconds"`
	StdDev  float64 `json:"stddev_seconds" yaml:"stddev_seconds"`
	P50     float64 `json:"p50_seconds" yaml:"p50_seconds"`
	P90     float64 `json:"p90_seconds" yaml:"p90_seconds"`
}

func newStatsCmd(a *app) *cobra.Command {
	var window int
	cmd := &cobra.Command{
		Use:   "stats [box...]",
		Short: "Fill-time statistics per box size",
		Long: `Summarise the most recent fill times recorded for each box size
(all sizes when none are named).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			boxes := model.BoxSizes()
			if len(args) > 0 {
				boxes = nil
				for _, arg := range args {
					b, err := model.ParseBoxSize(arg)
					if err != nil {
						return err
					}
					boxes = append(boxes, b)
				}
			}

			store, err := a.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			views := make([]statsView, 0, len(boxes))
			for _, b := range boxes {
				buf, err := store.FillTimeBuffer(b, window)
				if err != nil {
					return err
				}
				s := buf.Summary()
				views = append(views, statsView{
					Box:     string(b),
					Samples: s.Count,
					Mean:    s.Mean.Seconds(),
					StdDev:  s.StdDev.Seconds(),
					P50:     s.P50.Seconds(),
					P90:     s.P90.Seconds(),
				})
			}

			return a.render(cmd.OutOrStdout(), views, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "BOX\tSAMPLES\tMEAN(s)\tSTDDEV(s)\tP50(s)\tP90(s)")
				for _, v := range views {
					fmt.Fprintf(tw, "%s\t%d\t%.1f\t%.1f\t%.1f\t%.1f\n", v.Box, v.Samples, v.Mean, v.StdDev, v.P50, v.P90)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().String("history-db", "", "sqlite history database")
	cmd.Flags().IntVar(&window, "window", history.DefaultCapacity, "number of recent fill times per box")
	return cmd
}
