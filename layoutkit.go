// Package layoutkit provides a fluent API for document layout analysis:
// rasterization, OCR text extraction, layout region detection, table
// reconstruction, and style statistics.
//
// Basic usage:
//
//	doc, err := layoutkit.Open("scan.pdf").Analyze(context.Background())
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(doc.ExtractText())
//
// With options:
//
//	doc, err := layoutkit.Open("report.pdf").
//	    Features(layoutkit.FeatureText | layoutkit.FeatureTables).
//	    LayoutService("http://localhost:8500").
//	    DPI(150).
//	    Analyze(ctx)
//
// For long-lived services that analyze many documents, construct the
// capabilities once and use the lower-level pipeline package directly.
package layoutkit

import (
	"context"
	"errors"
	"log/slog"

	"github.com/veridoc/layoutkit/detect"
	"github.com/veridoc/layoutkit/model"
	"github.com/veridoc/layoutkit/ocr"
	"github.com/veridoc/layoutkit/pipeline"
	"github.com/veridoc/layoutkit/raster"
)

// Feature selects the analyses to run. See the pipeline package.
type Feature = pipeline.Feature

const (
	FeatureLayout = pipeline.FeatureLayout
	FeatureText   = pipeline.FeatureText
	FeatureTables = pipeline.FeatureTables
	FeatureStyle  = pipeline.FeatureStyle
	FeatureAll    = pipeline.FeatureAll
)

// Analysis is a fluent builder over the pipeline. Each configuration
// method returns a new Analysis, so a partially configured value can be
// reused and chained safely.
type Analysis struct {
	filename      string
	cfg           pipeline.Config
	requireLayout bool
	err           error
}

// Open prepares an analysis of the document at filename. Nothing is
// opened or validated until a terminal method like Analyze runs.
//
// Example:
//
//	doc, err := layoutkit.Open("scan.pdf").Analyze(ctx)
func Open(filename string) *Analysis {
	return &Analysis{
		filename: filename,
		cfg:      pipeline.DefaultConfig(),
	}
}

// OpenWithConfig prepares an analysis using cfg, typically loaded with
// pipeline.LoadConfig.
func OpenWithConfig(filename string, cfg pipeline.Config) *Analysis {
	return &Analysis{filename: filename, cfg: cfg}
}

func (a *Analysis) clone() *Analysis {
	c := *a
	return &c
}

// ============================================================================
// Configuration methods (each returns a new Analysis)
// ============================================================================

// Features replaces the feature selection.
//
// Example:
//
//	layoutkit.Open("doc.pdf").Features(layoutkit.FeatureText).Analyze(ctx)
func (a *Analysis) Features(f Feature) *Analysis {
	c := a.clone()
	c.cfg.Features = f
	return c
}

// LayoutService sets the base URL of the layout inference service. Layout
// region detection is skipped, with a warning, when no service is
// configured.
func (a *Analysis) LayoutService(baseURL string) *Analysis {
	c := a.clone()
	c.cfg.LayoutService = baseURL
	return c
}

// RequireLayout makes a missing or unreachable layout service a fatal
// construction error instead of a warn-and-skip. Use it when callers
// depend on layout regions being present.
func (a *Analysis) RequireLayout() *Analysis {
	c := a.clone()
	c.requireLayout = true
	return c
}

// Confidence sets the layout region confidence threshold (0-1).
func (a *Analysis) Confidence(threshold float64) *Analysis {
	c := a.clone()
	c.cfg.LayoutConfidence = threshold
	return c
}

// DPI sets the rasterization resolution for PDF input.
func (a *Analysis) DPI(dpi int) *Analysis {
	c := a.clone()
	c.cfg.Raster.DPI = dpi
	return c
}

// LineThreshold sets the vertical distance, in pixels, within which words
// group into the same text line.
func (a *Analysis) LineThreshold(px float64) *Analysis {
	c := a.clone()
	c.cfg.LineThreshold = px
	return c
}

// Logger sets the logger used for progress and degradation warnings.
func (a *Analysis) Logger(logger *slog.Logger) *Analysis {
	c := a.clone()
	c.cfg.Logger = logger
	return c
}

// ============================================================================
// Terminal methods
// ============================================================================

// Analyze constructs the capabilities, runs the pipeline over every page
// of the document, and returns the aggregated layout.
//
// The OCR engine is required; an unusable tesseract installation is a
// fatal error. The layout service is optional by default: when it is not
// configured or unreachable, layout detection is dropped with a warning
// and the remaining features still run. With RequireLayout, a missing
// service is instead fatal, like the pipeline package's own contract.
func (a *Analysis) Analyze(ctx context.Context) (*model.DocumentLayout, error) {
	if a.err != nil {
		return nil, a.err
	}

	cfg := a.cfg
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	det, err := a.resolveDetector(ctx, &cfg)
	if err != nil {
		return nil, err
	}

	rec, err := ocr.New()
	if err != nil {
		return nil, &pipeline.InitError{Err: err}
	}
	defer rec.Close()

	cfg.Raster.Logger = cfg.Logger
	renderer := raster.New(cfg.Raster)

	p, err := pipeline.New(renderer, rec, det, cfg)
	if err != nil {
		return nil, err
	}

	return p.Analyze(ctx, a.filename)
}

// resolveDetector constructs the layout service client when the layout
// feature is requested. Failures either drop the feature with a warning
// or, with RequireLayout, abort with an InitError.
func (a *Analysis) resolveDetector(ctx context.Context, cfg *pipeline.Config) (pipeline.RegionDetector, error) {
	if !cfg.Features.Has(FeatureLayout) {
		return nil, nil
	}

	if cfg.LayoutService == "" {
		if a.requireLayout {
			return nil, &pipeline.InitError{Err: errors.New("layout required but no layout service configured")}
		}
		cfg.Logger.Warn("no layout service configured, skipping layout detection")
		cfg.Features &^= FeatureLayout
		return nil, nil
	}

	det, err := detect.New(ctx, detect.Config{
		BaseURL:             cfg.LayoutService,
		ConfidenceThreshold: cfg.LayoutConfidence,
	})
	if err != nil {
		if a.requireLayout {
			return nil, &pipeline.InitError{Err: err}
		}
		cfg.Logger.Warn("layout service unavailable, skipping layout detection",
			"url", cfg.LayoutService, "error", err)
		cfg.Features &^= FeatureLayout
		return nil, nil
	}

	return det, nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := layoutkit.Must(layoutkit.Open("scan.pdf").Analyze(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
