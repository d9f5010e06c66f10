package project

import (
	"errors"
	"fmt"

	"github.com/piwi3910/PickPack/internal/model"
	"github.com/spf13/viper"
)

// Config is the effective runtime configuration. Values are layered, lowest
// first: the JSON app config, a pickpack.yaml file, PICKPACK_* environment
// variables and finally bound command-line flags.
type Config struct {
	Box           string `mapstructure:"box" json:"box" yaml:"box"`
	Overlap       string `mapstructure:"overlap" json:"overlap" yaml:"overlap"`
	MaxIterations int    `mapstructure:"max_iterations" json:"max_iterations" yaml:"max_iterations"`
	HistoryDB     string `mapstructure:"history_db" json:"history_db" yaml:"history_db"`
	OutputDir     string `mapstructure:"output_dir" json:"output_dir" yaml:"output_dir"`
	LogLevel      string `mapstructure:"log_level" json:"log_level" yaml:"log_level"`
	LogFormat     string `mapstructure:"log_format" json:"log_format" yaml:"log_format"`
}

// NewViper returns a viper instance seeded with the app config as defaults.
// When cfgFile is empty the usual locations are searched for pickpack.yaml.
func NewViper(app model.AppConfig, cfgFile string) (*viper.Viper, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("pickpack")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath("/etc/pickpack")
	}

	v.SetDefault("box", string(app.DefaultBox))
	v.SetDefault("overlap", string(app.DefaultOverlap))
	v.SetDefault("max_iterations", app.DefaultMaxIterations)
	v.SetDefault("history_db", app.HistoryDB)
	v.SetDefault("output_dir", app.OutputDir)
	v.SetDefault("log_level", app.LogLevel)
	v.SetDefault("log_format", "text")

	v.SetEnvPrefix("PICKPACK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return v, nil
}

// Resolve unmarshals the layered configuration.
func Resolve(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return cfg, nil
}

// Settings validates the placement fields and converts them to model.Settings.
func (c Config) Settings() (model.Settings, error) {
	s := model.DefaultSettings()
	box, err := model.ParseBoxSize(c.Box)
	if err != nil {
		return model.Settings{}, err
	}
	overlap, err := model.ParseOverlapPolicy(c.Overlap)
	if err != nil {
		return model.Settings{}, err
	}
	s.Box = box
	s.Overlap = overlap
	if c.MaxIterations < 0 {
		return model.Settings{}, fmt.Errorf("max_iterations must not be negative, got %d", c.MaxIterations)
	}
	s.MaxIterations = c.MaxIterations
	return s, nil
}
