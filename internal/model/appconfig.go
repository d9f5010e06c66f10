package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to every placement run
	DefaultBox           BoxSize       `json:"default_box" yaml:"default_box"`
	DefaultOverlap       OverlapPolicy `json:"default_overlap" yaml:"default_overlap"`
	DefaultMaxIterations int           `json:"default_max_iterations" yaml:"default_max_iterations"`

	// Application preferences
	HistoryDB    string   `json:"history_db" yaml:"history_db"` // empty = history disabled
	OutputDir    string   `json:"output_dir" yaml:"output_dir"`
	LogLevel     string   `json:"log_level" yaml:"log_level"` // "debug", "info", "warn", "error"
	RecentOrders []string `json:"recent_orders" yaml:"recent_orders"`
}

// DefaultAppConfig returns an AppConfig populated with the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultBox:           defaults.Box,
		DefaultOverlap:       defaults.Overlap,
		DefaultMaxIterations: defaults.MaxIterations,
		OutputDir:            ".",
		LogLevel:             "info",
		RecentOrders:         []string{},
	}
}

// ApplyToSettings copies the configured defaults into s.
// Empty fields leave the corresponding setting untouched.
func (c AppConfig) ApplyToSettings(s *Settings) {
	if c.DefaultBox != "" {
		s.Box = c.DefaultBox
	}
	if c.DefaultOverlap != "" {
		s.Overlap = c.DefaultOverlap
	}
	if c.DefaultMaxIterations > 0 {
		s.MaxIterations = c.DefaultMaxIterations
	}
}

// maxRecentOrders bounds the RecentOrders list.
const maxRecentOrders = 10

// AddRecentOrder records a result ID at the front of the recent list.
func (c *AppConfig) AddRecentOrder(id string) {
	filtered := []string{id}
	for _, r := range c.RecentOrders {
		if r != id {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) > maxRecentOrders {
		filtered = filtered[:maxRecentOrders]
	}
	c.RecentOrders = filtered
}
