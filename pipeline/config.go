package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"

	"github.com/veridoc/layoutkit/layout"
	"github.com/veridoc/layoutkit/raster"
	"github.com/veridoc/layoutkit/style"
	"github.com/veridoc/layoutkit/tables"
)

// Config holds pipeline configuration
type Config struct {
	// Features selects the analyses to run; zero means all
	Features Feature

	// LineThreshold is the vertical banding threshold for line grouping
	LineThreshold float64

	// MaxConcurrent bounds the number of documents analyzed at once
	MaxConcurrent int

	// LayoutService is the base URL of the layout inference service.
	// Used by callers constructing a detector; the pipeline itself only
	// consumes the Detector interface.
	LayoutService string

	// LayoutConfidence is the region confidence threshold
	LayoutConfidence float64

	// Logger defaults to slog.Default()
	Logger *slog.Logger

	// Sub-component configuration
	Raster raster.Config
	Tables tables.Config
	Style  style.Config
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Features:         FeatureAll,
		LineThreshold:    layout.DefaultLineThreshold,
		MaxConcurrent:    4,
		LayoutConfidence: 0.5,
		Raster:           raster.DefaultConfig(),
		Tables:           tables.DefaultConfig(),
		Style:            style.DefaultConfig(),
	}
}

func (c *Config) defaults() {
	if c.Features == 0 {
		c.Features = FeatureAll
	}
	if c.LineThreshold <= 0 {
		c.LineThreshold = layout.DefaultLineThreshold
	}
	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = 4
	}
	if c.LayoutConfidence <= 0 {
		c.LayoutConfidence = 0.5
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Raster.DPI == 0 {
		c.Raster = raster.DefaultConfig()
	}
	if c.Tables.HorizontalKernel == 0 {
		c.Tables = tables.DefaultConfig()
	}
	if c.Style.Clusters == 0 {
		c.Style = style.DefaultConfig()
	}
}

// fileConfig is the TOML representation of the tunable settings.
type fileConfig struct {
	Features         []string `toml:"features"`
	DPI              int      `toml:"dpi"`
	LineThreshold    float64  `toml:"line_threshold"`
	MaxConcurrent    int      `toml:"max_concurrent"`
	LayoutService    string   `toml:"layout_service"`
	LayoutConfidence float64  `toml:"layout_confidence"`
}

// LoadConfig reads pipeline settings from a TOML file and resolves them
// into a Config. Settings absent from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	cfg := DefaultConfig()

	features, err := ParseFeatures(fc.Features)
	if err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.Features = features

	if fc.DPI > 0 {
		cfg.Raster.DPI = fc.DPI
	}
	if fc.LineThreshold > 0 {
		cfg.LineThreshold = fc.LineThreshold
	}
	if fc.MaxConcurrent > 0 {
		cfg.MaxConcurrent = fc.MaxConcurrent
	}
	if fc.LayoutService != "" {
		cfg.LayoutService = fc.LayoutService
	}
	if fc.LayoutConfidence > 0 {
		cfg.LayoutConfidence = fc.LayoutConfidence
	}

	return cfg, nil
}
