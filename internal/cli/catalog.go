package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/piwi3910/PickPack/internal/model"
	"github.com/spf13/cobra"
)

type catalogView struct {
	Type      string `json:"type" yaml:"type"`
	Keyword   string `json:"keyword" yaml:"keyword"`
	NeedsCase bool   `json:"needs_case" yaml:"needs_case"`
	Width     int    `json:"width" yaml:"width"`
	Depth     int    `json:"depth" yaml:"depth"`
	Height    int    `json:"height" yaml:"height"`
}

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the recognised device types",
		Long: `List the device types, in the order identifiers are matched against them.
An identifier containing the keyword (and "funda" for case variants) is
treated as that device type.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := model.Catalog()
			views := make([]catalogView, len(entries))
			for i, e := range entries {
				size := e.Size.Size()
				views[i] = catalogView{
					Type:      e.Type.String(),
					Keyword:   e.Keyword,
					NeedsCase: e.NeedsCase,
					Width:     size.X,
					Depth:     size.Y,
					Height:    size.Z,
				}
			}
			return a.render(cmd.OutOrStdout(), views, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "TYPE\tKEYWORD\tCASE\tW x D x H (mm)")
				for _, v := range views {
					c := ""
					if v.NeedsCase {
						c = "funda"
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d x %d x %d\n", v.Type, v.Keyword, c, v.Width, v.Depth, v.Height)
				}
				return tw.Flush()
			})
		},
	}
}
