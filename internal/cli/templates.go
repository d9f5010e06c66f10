package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/piwi3910/PickPack/internal/model"
	"github.com/piwi3910/PickPack/internal/project"
	"github.com/spf13/cobra"
)

func newTemplatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template"},
		Short:   "Manage saved orders",
	}
	cmd.AddCommand(
		newTemplatesListCmd(a),
		newTemplatesShowCmd(a),
		newTemplatesSaveCmd(a),
		newTemplatesDeleteCmd(a),
	)
	return cmd
}

func newTemplatesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in and saved templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadWithBuiltins(a.templatePath())
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), store.Templates, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tBOX\tITEMS\tDESCRIPTION")
				for _, t := range store.Templates {
					name := t.Name
					if t.Builtin {
						name += " (built-in)"
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", t.ID, name, t.Box, len(t.Items), t.Description)
				}
				return tw.Flush()
			})
		},
	}
}

func newTemplatesShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|id>",
		Short: "Print the items of a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadWithBuiltins(a.templatePath())
			if err != nil {
				return err
			}
			t := findTemplate(&store, args[0])
			if t == nil {
				return fmt.Errorf("template %q not found", args[0])
			}
			return a.render(cmd.OutOrStdout(), t, func(w io.Writer) error {
				fmt.Fprintf(w, "%s (box %s, %d items)\n", t.Name, t.Box, len(t.Items))
				_, err := fmt.Fprintln(w, strings.Join(t.Items, "\n"))
				return err
			})
		},
	}
}

func newTemplatesSaveCmd(a *app) *cobra.Command {
	var (
		source      itemSource
		description string
	)
	cmd := &cobra.Command{
		Use:   "save <name> [item...]",
		Short: "Save an order as a template",
		Long: `Save an order as a template. Items are taken from --file, --template and
the remaining arguments, exactly as for place. Saving under an existing
name replaces that template.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			ids, tmplBox, err := a.collect(source, args[1:])
			if err != nil {
				return err
			}
			if _, err := model.NewItems(ids); err != nil {
				return err
			}
			settings, err := a.settings()
			if err != nil {
				return err
			}
			size := settings.Box
			if tmplBox != "" && !cmd.Flags().Changed("box") {
				size = tmplBox
			}

			store, err := project.LoadTemplates(a.templatePath())
			if err != nil {
				return err
			}
			for _, b := range model.BuiltinTemplates() {
				if b.Name == name {
					return fmt.Errorf("%q is a built-in template", name)
				}
			}
			if old := store.FindByName(name); old != nil {
				store.Remove(old.ID)
			}
			t := model.NewOrderTemplate(name, description, size, ids)
			store.Add(t)
			if err := project.SaveTemplates(a.templatePath(), store); err != nil {
				return fmt.Errorf("failed to save templates: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved template %s (%s): %d items, box %s\n", t.Name, t.ID, len(t.Items), t.Box)
			return nil
		},
	}
	source.register(cmd.Flags())
	cmd.Flags().StringVarP(&description, "description", "d", "", "template description")
	cmd.Flags().String("box", "", "box size (S, M, L)")
	return cmd
}

func newTemplatesDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name|id>",
		Short: "Delete a saved template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadTemplates(a.templatePath())
			if err != nil {
				return err
			}
			t := findTemplate(&store, args[0])
			if t == nil {
				return fmt.Errorf("template %q not found", args[0])
			}
			store.Remove(t.ID)
			if err := project.SaveTemplates(a.templatePath(), store); err != nil {
				return fmt.Errorf("failed to save templates: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted template %s\n", args[0])
			return nil
		},
	}
}

func findTemplate(store *model.TemplateStore, key string) *model.OrderTemplate {
	if t := store.FindByName(key); t != nil {
		return t
	}
	return store.FindByID(key)
}
