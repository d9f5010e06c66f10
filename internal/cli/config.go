package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/piwi3910/PickPack/internal/model"
	"github.com/piwi3910/PickPack/internal/project"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show, initialise, back up and restore configuration",
	}
	cmd.AddCommand(
		newConfigShowCmd(a),
		newConfigInitCmd(a),
		newConfigExportCmd(a),
		newConfigImportCmd(a),
	)
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd.OutOrStdout(), a.config, func(w io.Writer) error {
				if f := a.v.ConfigFileUsed(); f != "" {
					fmt.Fprintf(w, "# config file: %s\n", f)
				}
				fmt.Fprintf(w, "# preferences: %s\n", a.appConfigPath)
				enc := yaml.NewEncoder(w)
				if err := enc.Encode(a.config); err != nil {
					return err
				}
				return enc.Close()
			})
		},
	}
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default preferences file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.appConfigPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.appConfigPath)
			}
			if err := project.SaveAppConfig(a.appConfigPath, model.DefaultAppConfig()); err != nil {
				return fmt.Errorf("failed to write preferences: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", a.appConfigPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newConfigExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Back up preferences and saved templates (.json or .yaml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadTemplates(a.templatePath())
			if err != nil {
				return err
			}
			if err := project.ExportAllData(args[0], a.appConfig, store); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported preferences and %d template(s) to %s\n", len(store.Templates), args[0])
			return nil
		},
	}
}

func newConfigImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore preferences and templates from a backup",
		Long: `Restore preferences and templates from a backup written by config export.
The preferences file is replaced. Imported templates are added to the saved
ones, replacing any with the same name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			store, err := project.LoadTemplates(a.templatePath())
			if err != nil {
				return err
			}
			for _, t := range backup.Templates {
				if old := store.FindByName(t.Name); old != nil {
					store.Remove(old.ID)
				}
				store.Add(t)
			}

			if err := project.SaveAppConfig(a.appConfigPath, backup.Config); err != nil {
				return fmt.Errorf("failed to write preferences: %w", err)
			}
			if err := project.SaveTemplates(a.templatePath(), store); err != nil {
				return fmt.Errorf("failed to save templates: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported preferences and %d template(s) from %s (backup %s)\n",
				len(backup.Templates), args[0], backup.CreatedAt)
			return nil
		},
	}
}
