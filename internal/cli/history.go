package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/piwi3910/PickPack/internal/history"
	"github.com/piwi3910/PickPack/internal/model"
	"github.com/spf13/cobra"
)

var errNoHistory = errors.New("no history database configured (set history_db or pass --history-db)")

func (a *app) openHistory() (*history.Store, error) {
	if a.config.HistoryDB == "" {
		return nil, errNoHistory
	}
	return history.Open(a.config.HistoryDB)
}

type orderRecordView struct {
	ID         string  `json:"id" yaml:"id"`
	Box        string  `json:"box" yaml:"box"`
	Items      int     `json:"items" yaml:"items"`
	Fillers    int     `json:"fillers" yaml:"fillers"`
	Efficiency float64 `json:"efficiency" yaml:"efficiency"`
	CreatedAt  string  `json:"created_at" yaml:"created_at"`
}

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded orders and log box fill times",
	}
	cmd.PersistentFlags().String("history-db", "", "sqlite history database")
	cmd.AddCommand(
		newHistoryListCmd(a),
		newHistoryShowCmd(a),
		newHistoryFillCmd(a),
	)
	return cmd
}

func newHistoryListCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded orders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.ListOrders(limit)
			if err != nil {
				return err
			}
			views := make([]orderRecordView, len(records))
			for i, r := range records {
				views[i] = orderRecordView{
					ID:         r.ResultID,
					Box:        string(r.Box),
					Items:      r.Items,
					Fillers:    r.Fillers,
					Efficiency: r.Efficiency,
					CreatedAt:  r.CreatedAt.Format(time.RFC3339),
				}
			}
			return a.render(cmd.OutOrStdout(), views, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tBOX\tITEMS\tFILLERS\tFILL%\tCREATED")
				for _, v := range views {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.1f\t%s\n", v.ID, v.Box, v.Items, v.Fillers, v.Efficiency, v.CreatedAt)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of orders (0 = all)")
	return cmd
}

func newHistoryShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <order-id>",
		Short: "Print a recorded pick order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			rec, err := store.FindOrder(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rec.Order)
			return err
		},
	}
}

func newHistoryFillCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fill <box> <duration>",
		Short: "Record how long a box took to fill",
		Long: `Record the time taken to fill one box. The duration is either a Go
duration such as 1m35s or a whole number of seconds.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := model.ParseBoxSize(args[0])
			if err != nil {
				return err
			}
			d, err := parseFillTime(args[1])
			if err != nil {
				return err
			}
			store, err := a.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.RecordFillTime(box, d); err != nil {
				return err
			}
			a.logger.Info("fill time recorded", "box", string(box), "duration", d)
			return nil
		},
	}
}

func parseFillTime(s string) (time.Duration, error) {
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid fill time %q", s)
	}
	return d, nil
}
