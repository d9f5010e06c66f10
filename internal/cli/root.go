// Package cli implements the pickpack command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/PickPack/internal/engine"
	"github.com/piwi3910/PickPack/internal/model"
	"github.com/piwi3910/PickPack/internal/project"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries the state shared by every command of one invocation.
type app struct {
	// Global flags
	cfgFile       string
	appConfigPath string
	output        string

	v         *viper.Viper
	appConfig model.AppConfig
	config    project.Config
	logger    *slog.Logger
	registry  *prometheus.Registry
	metrics   *engine.Metrics
}

// flagKeys maps command-line flags to their configuration keys. Any of these
// flags present on the running command is bound into viper.
var flagKeys = map[string]string{
	"box":            "box",
	"overlap":        "overlap",
	"max-iterations": "max_iterations",
	"history-db":     "history_db",
	"output-dir":     "output_dir",
	"log-level":      "log_level",
	"log-format":     "log_format",
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pickpack",
		Short: "Device placement and robot pick-order generator",
		Long: `pickpack decides where each device of an order goes inside an S, M or L
shipping box and emits the pick order a robot cell uses to load it.

Commands:
  place       Place an order and print the robot pick order
  verify      Re-check a pick order against a fresh placement
  compare     Run an order against every box size and overlap policy
  catalog     List the recognised device types
  templates   Manage saved orders
  history     Inspect recorded orders and log box fill times
  stats       Fill-time statistics per box size
  config      Show, initialise, back up and restore configuration`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: pickpack.yaml in ., ./config, ~/.pickpack, /etc/pickpack)")
	pf.StringVar(&a.appConfigPath, "app-config", project.DefaultConfigPath(), "JSON preferences file")
	pf.StringVarP(&a.output, "output", "o", "text", "output format (text, json, yaml)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-format", "", "log format (text, json)")

	root.AddCommand(
		newPlaceCmd(a),
		newVerifyCmd(a),
		newCompareCmd(a),
		newCatalogCmd(a),
		newTemplatesCmd(a),
		newHistoryCmd(a),
		newStatsCmd(a),
		newConfigCmd(a),
	)
	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the layered configuration and builds the logger and metrics
// registry for the running command.
func (a *app) setup(cmd *cobra.Command) error {
	switch a.output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", a.output)
	}

	appConfig, err := project.LoadAppConfig(a.appConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	a.appConfig = appConfig

	v, err := project.NewViper(appConfig, a.cfgFile)
	if err != nil {
		return err
	}
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return bindErr
	}
	a.v = v

	if a.config, err = project.Resolve(v); err != nil {
		return err
	}

	if a.logger, err = newLogger(cmd.ErrOrStderr(), a.config.LogLevel, a.config.LogFormat); err != nil {
		return err
	}
	slog.SetDefault(a.logger)

	a.registry = prometheus.NewRegistry()
	if a.metrics, err = engine.NewMetrics(a.registry); err != nil {
		return err
	}
	return nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	if level == "" {
		level = "info"
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("invalid log format %q", format)
}

// settings returns the placement settings for the running command.
func (a *app) settings() (model.Settings, error) {
	return a.config.Settings()
}

// placer returns a Placer wired to the invocation's logger and metrics.
func (a *app) placer(s model.Settings) *engine.Placer {
	p := engine.New(s)
	p.Logger = a.logger
	p.Metrics = a.metrics
	return p
}

// templatePath keeps user templates next to the preferences file.
func (a *app) templatePath() string {
	return filepath.Join(filepath.Dir(a.appConfigPath), "templates.json")
}

// outputPath resolves a relative export path against the configured output directory.
func (a *app) outputPath(name string) string {
	if name == "" || filepath.IsAbs(name) || a.config.OutputDir == "" {
		return name
	}
	return filepath.Join(a.config.OutputDir, name)
}
