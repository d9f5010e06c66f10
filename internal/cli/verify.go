package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/piwi3910/PickPack/internal/order"
	"github.com/spf13/cobra"
)

var errVerifyFailed = errors.New("order verification failed")

type verifyView struct {
	File       string   `json:"file" yaml:"file"`
	Box        string   `json:"box" yaml:"box"`
	Items      int      `json:"items" yaml:"items"`
	OK         bool     `json:"ok" yaml:"ok"`
	Mismatches []string `json:"mismatches" yaml:"mismatches"`
	Conflicts  []string `json:"conflicts" yaml:"conflicts"`
	Warnings   []string `json:"warnings" yaml:"warnings"`
}

func newVerifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <order-file>",
		Short: "Re-check a pick order against a fresh placement",
		Long: `Read a pick order, place its items again in the same box and compare the
poses. The fresh placement is also checked for overlapping and out-of-bounds
items; items with nothing directly underneath are reported as warnings.
Exits non-zero on any mismatch or conflict.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVerify(cmd.OutOrStdout(), args[0])
		},
	}
	cmd.Flags().String("overlap", "", "overlap policy the order was placed with (strict, containment)")
	cmd.Flags().Int("max-iterations", 0, "placement loop limit")
	return cmd
}

func (a *app) runVerify(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read order: %w", err)
	}
	doc, err := order.Parse(string(data))
	if err != nil {
		return err
	}

	settings, err := a.settings()
	if err != nil {
		return err
	}
	settings.Box = doc.Box

	view := verifyView{File: path, Box: string(doc.Box), Items: doc.Count, Mismatches: []string{}, Conflicts: []string{}, Warnings: []string{}}

	result, err := a.placer(settings).Place(doc.Identifiers())
	if err != nil {
		view.Mismatches = append(view.Mismatches, err.Error())
	} else {
		order.Annotate(&result)
		fresh, err := order.Parse(order.Generate(result))
		if err != nil {
			return err
		}
		view.Mismatches = compareEntries(doc, fresh)
		// Items resting over filler space are reported but do not fail the order.
		for _, c := range order.Verify(result) {
			msg := order.FormatConflicts(result, []order.Conflict{c})[0]
			if c.Kind == order.ConflictUnsupported {
				view.Warnings = append(view.Warnings, msg)
			} else {
				view.Conflicts = append(view.Conflicts, msg)
			}
		}
	}
	view.OK = len(view.Mismatches) == 0 && len(view.Conflicts) == 0

	if err := a.render(w, view, func(w io.Writer) error {
		for _, m := range view.Warnings {
			fmt.Fprintf(w, "warning: %s\n", m)
		}
		if view.OK {
			_, err := fmt.Fprintf(w, "%s: OK, %d item(s) in box %s\n", path, view.Items, view.Box)
			return err
		}
		for _, m := range view.Mismatches {
			fmt.Fprintf(w, "mismatch: %s\n", m)
		}
		for _, c := range view.Conflicts {
			fmt.Fprintf(w, "conflict: %s\n", c)
		}
		return nil
	}); err != nil {
		return err
	}
	if !view.OK {
		return errVerifyFailed
	}
	return nil
}

// compareEntries lists the entries whose item or pose differ between the
// stored order and a fresh placement of the same items.
func compareEntries(stored, fresh order.Document) []string {
	diffs := []string{}
	for i, e := range stored.Entries {
		if i >= len(fresh.Entries) {
			diffs = append(diffs, fmt.Sprintf("item_%d (%s): not placed", e.Index, e.Item))
			continue
		}
		f := fresh.Entries[i]
		switch {
		case e.Item != f.Item:
			diffs = append(diffs, fmt.Sprintf("item_%d: have %s, placement gives %s", e.Index, e.Item, f.Item))
		case e.Pose != f.Pose:
			diffs = append(diffs, fmt.Sprintf("item_%d (%s): have pose %+v, placement gives %+v", e.Index, e.Item, e.Pose, f.Pose))
		}
	}
	return diffs
}
