package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/google/uuid"

	"github.com/veridoc/layoutkit/layout"
	"github.com/veridoc/layoutkit/metadata"
	"github.com/veridoc/layoutkit/model"
	"github.com/veridoc/layoutkit/style"
	"github.com/veridoc/layoutkit/tables"
)

// Recognizer is the OCR capability the pipeline depends on. It must be
// safe for concurrent use; it is loaded once and shared across analyses.
type Recognizer interface {
	RecognizeWords(ctx context.Context, img image.Image) ([]model.Word, error)
	RecognizeText(ctx context.Context, img image.Image) (string, error)
}

// RegionDetector is the layout classification capability. Implementations
// must be safe for concurrent use.
type RegionDetector interface {
	DetectRegions(ctx context.Context, img image.Image) ([]model.Region, error)
}

// PageRenderer converts a document into ordered page images.
type PageRenderer interface {
	RenderPages(ctx context.Context, path string) ([]image.Image, error)
}

// Pipeline turns documents into DocumentLayout values. Construct with New;
// a Pipeline is safe for concurrent use and bounds the number of documents
// analyzed at once.
type Pipeline struct {
	cfg      Config
	logger   *slog.Logger
	renderer PageRenderer
	rec      Recognizer
	det      RegionDetector
	tables   *tables.Extractor
	style    *style.Analyzer
	meta     *metadata.Extractor
	sem      chan struct{}
}

// New creates a Pipeline around the given capabilities. The recognizer is
// required; the detector is required only when layout detection is among
// the configured features. Missing capabilities are fatal and reported as
// an *InitError before any document is processed.
func New(renderer PageRenderer, rec Recognizer, det RegionDetector, cfg Config) (*Pipeline, error) {
	cfg.defaults()

	if renderer == nil {
		return nil, &InitError{Err: errors.New("page renderer is required")}
	}
	if rec == nil {
		return nil, &InitError{Err: errors.New("OCR capability is required")}
	}
	if det == nil && cfg.Features.Has(FeatureLayout) {
		return nil, &InitError{Err: errors.New("layout detection requested but no region detector provided")}
	}

	return &Pipeline{
		cfg:      cfg,
		logger:   cfg.Logger,
		renderer: renderer,
		rec:      rec,
		det:      det,
		tables:   tables.New(rec, cfg.Tables),
		style:    style.New(cfg.Style),
		meta:     metadata.New(cfg.Logger),
		sem:      make(chan struct{}, cfg.MaxConcurrent),
	}, nil
}

// Analyze runs the configured analyses over every page of the document at
// path and returns the aggregated layout. Rasterization failure is fatal;
// a single feature failing on a single page degrades the output instead
// (the feature's collections are omitted for that page and the failure is
// logged). Cancellation is honored between pages.
func (p *Pipeline) Analyze(ctx context.Context, path string) (*model.DocumentLayout, error) {
	select {
	case p.sem <- struct{}{}:
		defer func() { <-p.sem }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	logger := p.logger.With("run_id", uuid.NewString(), "path", path)
	logger.Debug("analyzing document", "features", p.cfg.Features.String())

	pages, err := p.renderer.RenderPages(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", path, err)
	}

	doc := model.NewDocumentLayout(p.meta.Extract(path))

	for i, img := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc.AddPage(p.analyzePage(ctx, logger, img, i+1))
	}

	logger.Debug("document analyzed",
		"pages", doc.PageCount(),
		"tables", len(doc.Tables),
		"paragraphs", len(doc.Paragraphs))

	return doc, nil
}

// analyzePage runs the requested sub-analyses on one page image in
// dependency order: layout and text are independent; tables prefers
// layout output; style uses text output; paragraphs need both.
func (p *Pipeline) analyzePage(ctx context.Context, logger *slog.Logger, img image.Image, number int) model.PageLayout {
	bounds := img.Bounds()
	page := model.NewPageLayout(number, bounds.Dx(), bounds.Dy())

	layoutRan := false
	if p.cfg.Features.Has(FeatureLayout) {
		regions, err := p.det.DetectRegions(ctx, img)
		if err != nil {
			p.degrade(logger, FeatureLayout, number, err)
		} else {
			page.LayoutElements = regions
			layoutRan = true
		}
	}

	textRan := false
	if p.cfg.Features.Has(FeatureText) {
		words, err := p.rec.RecognizeWords(ctx, img)
		if err != nil {
			p.degrade(logger, FeatureText, number, err)
		} else {
			page.Words = words
			page.Lines = layout.GroupLines(words, p.cfg.LineThreshold)
			textRan = true
		}
	}

	if p.cfg.Features.Has(FeatureTables) {
		strategy := tables.StrategyFor(layoutRan)
		tbls, err := p.tables.Extract(ctx, img, page.LayoutElements, strategy)
		if err != nil {
			p.degrade(logger, FeatureTables, number, err)
		} else {
			page.Tables = tbls
		}
	}

	if p.cfg.Features.Has(FeatureStyle) {
		var words []model.Word
		if textRan {
			words = page.Words
		}
		styles := p.style.Analyze(img, words)
		page.Styles = &styles
	}

	if textRan && layoutRan {
		page.Paragraphs = layout.AssembleParagraphs(page.Words, page.LayoutElements)
	}

	return page
}

// degrade records a recoverable per-feature failure. The document
// continues; only the failed feature's output is missing for this page.
func (p *Pipeline) degrade(logger *slog.Logger, feature Feature, page int, err error) {
	ferr := &FeatureError{Feature: feature, Page: page, Err: err}
	logger.Warn("feature degraded", "feature", feature.String(), "page", page, "error", ferr)
}
