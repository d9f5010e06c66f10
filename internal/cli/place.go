package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/piwi3910/PickPack/internal/export"
	"github.com/piwi3910/PickPack/internal/history"
	"github.com/piwi3910/PickPack/internal/model"
	"github.com/piwi3910/PickPack/internal/order"
	"github.com/piwi3910/PickPack/internal/project"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

type placeOptions struct {
	source  itemSource
	out     string
	pdf     string
	labels  string
	dxf     string
	xlsx    string
	record  bool
	metrics bool
}

func newPlaceCmd(a *app) *cobra.Command {
	var opts placeOptions

	cmd := &cobra.Command{
		Use:   "place [item...]",
		Short: "Place an order and print the robot pick order",
		Long: `Place every item of an order in one box and print the pick order.

Items are catalog identifiers such as tablet_A_01 or funda_telefono_B_02.
They can be given as arguments, read from a CSV/Excel file, or taken from a
saved template; all three sources are concatenated in template, file,
argument order.

Examples:
  # Three tablets in a small box
  pickpack place tablet_A_01 tablet_A_02 tablet_A_03

  # Built-in sample order with a PDF report
  pickpack place --template sample-M --pdf order.pdf

  # Item list from a spreadsheet, large box, JSON summary
  pickpack place -f order.xlsx --box L -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlace(cmd, opts, args)
		},
	}

	fs := cmd.Flags()
	opts.source.register(fs)
	fs.String("box", "", "box size (S, M, L)")
	fs.String("overlap", "", "overlap policy (strict, containment)")
	fs.Int("max-iterations", 0, "placement loop limit")
	fs.String("history-db", "", "sqlite history database")
	fs.String("output-dir", "", "directory for relative export paths")
	fs.StringVar(&opts.out, "out", "", "write the pick order to this file instead of stdout")
	fs.StringVar(&opts.pdf, "pdf", "", "write a PDF placement report")
	fs.StringVar(&opts.labels, "labels", "", "write a PDF sheet of QR item labels")
	fs.StringVar(&opts.dxf, "dxf", "", "write a DXF wireframe of the box")
	fs.StringVar(&opts.xlsx, "xlsx", "", "write an Excel order sheet")
	fs.BoolVar(&opts.record, "record", true, "record the order in the history database, when one is configured")
	fs.BoolVar(&opts.metrics, "metrics", false, "print placement metrics to stderr")
	return cmd
}

func (a *app) runPlace(cmd *cobra.Command, opts placeOptions, args []string) error {
	ids, tmplBox, err := a.collect(opts.source, args)
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

	result, err := a.placer(settings).Place(ids)
	if opts.metrics {
		if merr := a.writeMetrics(cmd.ErrOrStderr()); merr != nil {
			a.logger.Warn("metrics", "error", merr)
		}
	}
	if err != nil {
		var overflow *model.OverflowError
		if errors.As(err, &overflow) {
			return fmt.Errorf("order does not fit: %w", err)
		}
		return err
	}

	order.Annotate(&result)
	text := order.Generate(result)

	if err := a.writeOrder(cmd.OutOrStdout(), opts.out, result, text); err != nil {
		return err
	}
	if err := a.exportAll(opts, result); err != nil {
		return err
	}
	if opts.record && a.config.HistoryDB != "" {
		if err := a.recordOrder(result, text); err != nil {
			return err
		}
	}
	a.rememberOrder(result.ID)
	return nil
}

// writeOrder prints the pick order (text output) or a structured summary.
// With --out the order text always goes to the file.
func (a *app) writeOrder(w io.Writer, out string, result model.PlacementResult, text string) error {
	if out != "" {
		path := a.outputPath(out)
		if err := os.WriteFile(path, []byte(text+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write order: %w", err)
		}
		a.logger.Info("order written", "path", path)
	}
	return a.render(w, newPlacementView(result), func(w io.Writer) error {
		if out != "" {
			_, err := fmt.Fprintln(w, summaryLine(result))
			return err
		}
		_, err := fmt.Fprintln(w, text)
		return err
	})
}

func (a *app) exportAll(opts placeOptions, result model.PlacementResult) error {
	exports := []struct {
		path string
		name string
		fn   func(string, model.PlacementResult) error
	}{
		{opts.pdf, "PDF report", export.ExportPDF},
		{opts.labels, "labels", export.ExportLabels},
		{opts.dxf, "DXF", export.ExportDXF},
		{opts.xlsx, "Excel sheet", export.ExportXLSX},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		path := a.outputPath(e.path)
		if err := e.fn(path, result); err != nil {
			return fmt.Errorf("failed to export %s: %w", e.name, err)
		}
		a.logger.Info("exported", "kind", e.name, "path", path)
	}
	return nil
}

func (a *app) recordOrder(result model.PlacementResult, text string) error {
	store, err := history.Open(a.config.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.RecordOrder(result, text); err != nil {
		return err
	}
	a.logger.Debug("order recorded", "id", result.ID, "db", a.config.HistoryDB)
	return nil
}

// rememberOrder adds the result to the recent list in the preferences file.
// Failures are logged; the order itself has already been produced.
func (a *app) rememberOrder(id string) {
	a.appConfig.AddRecentOrder(id)
	if err := project.SaveAppConfig(a.appConfigPath, a.appConfig); err != nil {
		a.logger.Warn("failed to save preferences", "path", a.appConfigPath, "error", err)
	}
}

func (a *app) writeMetrics(w io.Writer) error {
	families, err := a.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
