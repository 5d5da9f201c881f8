package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layoutkit.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
features = ["text", "tables"]
dpi = 150
line_threshold = 6.5
max_concurrent = 2
layout_service = "http://layout.internal:8500"
layout_confidence = 0.7
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Features != FeatureText|FeatureTables {
		t.Errorf("Features = %v, want text,tables", cfg.Features)
	}
	if cfg.Raster.DPI != 150 {
		t.Errorf("DPI = %d, want 150", cfg.Raster.DPI)
	}
	if cfg.LineThreshold != 6.5 {
		t.Errorf("LineThreshold = %v, want 6.5", cfg.LineThreshold)
	}
	if cfg.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %d, want 2", cfg.MaxConcurrent)
	}
	if cfg.LayoutService != "http://layout.internal:8500" {
		t.Errorf("LayoutService = %q", cfg.LayoutService)
	}
	if cfg.LayoutConfidence != 0.7 {
		t.Errorf("LayoutConfidence = %v, want 0.7", cfg.LayoutConfidence)
	}
}

func TestLoadConfigEmptyFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	def := DefaultConfig()
	if cfg.Features != def.Features {
		t.Errorf("Features = %v, want default %v", cfg.Features, def.Features)
	}
	if cfg.Raster.DPI != def.Raster.DPI {
		t.Errorf("DPI = %d, want default %d", cfg.Raster.DPI, def.Raster.DPI)
	}
	if cfg.MaxConcurrent != def.MaxConcurrent {
		t.Errorf("MaxConcurrent = %d, want default %d", cfg.MaxConcurrent, def.MaxConcurrent)
	}
}

func TestLoadConfigUnknownFeature(t *testing.T) {
	path := writeConfig(t, `features = ["text", "watermarks"]`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for unknown feature name")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/does/not/exist.toml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.defaults()

	if cfg.Features != FeatureAll {
		t.Errorf("Features = %v, want FeatureAll", cfg.Features)
	}
	if cfg.LineThreshold <= 0 {
		t.Errorf("LineThreshold = %v, want positive", cfg.LineThreshold)
	}
	if cfg.MaxConcurrent <= 0 {
		t.Errorf("MaxConcurrent = %d, want positive", cfg.MaxConcurrent)
	}
	if cfg.Logger == nil {
		t.Error("Logger should default to non-nil")
	}
}
