package model

import "testing"

func TestDefaultAppConfigMatchesDefaultSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	defaults := DefaultSettings()

	if cfg.DefaultBox != defaults.Box {
		t.Errorf("Box mismatch: config=%s settings=%s", cfg.DefaultBox, defaults.Box)
	}
	if cfg.DefaultOverlap != defaults.Overlap {
		t.Errorf("Overlap mismatch: config=%s settings=%s", cfg.DefaultOverlap, defaults.Overlap)
	}
	if cfg.DefaultMaxIterations != defaults.MaxIterations {
		t.Errorf("MaxIterations mismatch: config=%d settings=%d", cfg.DefaultMaxIterations, defaults.MaxIterations)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.RecentOrders == nil {
		t.Error("RecentOrders should not be nil")
	}
}

func TestApplyToSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultBox = BoxLarge
	cfg.DefaultOverlap = OverlapContainment
	cfg.DefaultMaxIterations = 50

	s := DefaultSettings()
	cfg.ApplyToSettings(&s)

	if s.Box != BoxLarge {
		t.Errorf("expected Box=L, got %s", s.Box)
	}
	if s.Overlap != OverlapContainment {
		t.Errorf("expected containment overlap, got %s", s.Overlap)
	}
	if s.MaxIterations != 50 {
		t.Errorf("expected MaxIterations=50, got %d", s.MaxIterations)
	}
}

func TestApplyToSettingsKeepsUnsetFields(t *testing.T) {
	var cfg AppConfig
	s := DefaultSettings()
	cfg.ApplyToSettings(&s)

	if s != DefaultSettings() {
		t.Errorf("empty config changed settings: %+v", s)
	}
}

func TestAddRecentOrder(t *testing.T) {
	cfg := DefaultAppConfig()
	for i := 0; i < 12; i++ {
		cfg.AddRecentOrder(string(rune('a' + i)))
	}
	if len(cfg.RecentOrders) != maxRecentOrders {
		t.Fatalf("expected %d recent orders, got %d", maxRecentOrders, len(cfg.RecentOrders))
	}
	if cfg.RecentOrders[0] != "l" {
		t.Errorf("expected newest first, got %s", cfg.RecentOrders[0])
	}

	cfg.AddRecentOrder("c")
	if cfg.RecentOrders[0] != "c" {
		t.Errorf("expected re-added order at front, got %s", cfg.RecentOrders[0])
	}
	seen := 0
	for _, r := range cfg.RecentOrders {
		if r == "c" {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("expected order once, found %d times", seen)
	}
}
