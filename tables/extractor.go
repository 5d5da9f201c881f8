package tables

import (
	"context"
	"fmt"
	"image"
	"image/draw"

	"github.com/veridoc/layoutkit/model"
)

// Recognizer is the OCR capability the extractor needs: raw text for a
// table sub-image, with line breaks and spacing preserved.
type Recognizer interface {
	RecognizeText(ctx context.Context, img image.Image) (string, error)
}

// Strategy selects how table regions are located on a page.
type Strategy int

const (
	// StrategyLayout uses regions classified as tables by layout detection.
	StrategyLayout Strategy = iota
	// StrategyCV detects table regions from the raster image via line
	// detection.
	StrategyCV
)

func (s Strategy) String() string {
	switch s {
	case StrategyLayout:
		return "layout"
	case StrategyCV:
		return "cv"
	default:
		return "unknown"
	}
}

// StrategyFor returns the region-location strategy for a page: the
// layout-driven path whenever layout detection ran (even if it found no
// tables), the CV fallback only when it did not.
func StrategyFor(layoutRan bool) Strategy {
	if layoutRan {
		return StrategyLayout
	}
	return StrategyCV
}

// Config holds extractor configuration
type Config struct {
	// HorizontalKernel is the morphological opening kernel length, in
	// pixels, for isolating horizontal lines
	HorizontalKernel int

	// VerticalKernel is the kernel length for vertical lines
	VerticalKernel int

	// Iterations of the directional opening
	Iterations int

	// MinWidth and MinHeight filter out speckle regions; only candidates
	// strictly larger in both dimensions are kept
	MinWidth  float64
	MinHeight float64

	// InkThreshold is the grayscale value below which a pixel counts as ink
	InkThreshold uint8
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		HorizontalKernel: 40,
		VerticalKernel:   40,
		Iterations:       2,
		MinWidth:         100,
		MinHeight:        50,
		InkThreshold:     128,
	}
}

// Extractor locates table regions and reconstructs their cell grids.
type Extractor struct {
	rec  Recognizer
	grid GridInferrer
	cfg  Config
}

// New creates an extractor using the given OCR capability and the default
// whitespace grid inferrer.
func New(rec Recognizer, cfg Config) *Extractor {
	if cfg.HorizontalKernel == 0 {
		cfg = DefaultConfig()
	}
	return &Extractor{
		rec:  rec,
		grid: WhitespaceGrid{},
		cfg:  cfg,
	}
}

// SetGridInferrer replaces the grid inference strategy.
func (e *Extractor) SetGridInferrer(g GridInferrer) {
	if g != nil {
		e.grid = g
	}
}

// Extract reconstructs the tables of one page. With StrategyLayout, the
// given regions supply the table locations; with StrategyCV they are
// ignored and locations come from line detection on the image. Each
// located region is OCR'd in isolation and its text handed to the grid
// inferrer. Grids are best-effort (see package documentation).
func (e *Extractor) Extract(ctx context.Context, img image.Image, regions []model.Region, strategy Strategy) ([]model.Table, error) {
	var boxes []model.BBox
	switch strategy {
	case StrategyLayout:
		for _, region := range regions {
			if region.Type == model.RegionTable {
				boxes = append(boxes, region.BoundingBox)
			}
		}
	case StrategyCV:
		boxes = e.DetectTableRegions(img)
	default:
		return nil, fmt.Errorf("unknown table strategy %d", strategy)
	}

	var tables []model.Table
	for _, bbox := range boxes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sub := crop(img, bbox)
		if sub.Bounds().Empty() {
			continue
		}

		raw, err := e.rec.RecognizeText(ctx, sub)
		if err != nil {
			return nil, fmt.Errorf("table region OCR failed: %w", err)
		}

		tables = append(tables, model.NewTable(e.grid.Infer(raw), raw, bbox))
	}

	return tables, nil
}

// crop copies the part of img covered by bbox, clamped to the image
// bounds, into a fresh RGBA image.
func crop(img image.Image, bbox model.BBox) image.Image {
	r := image.Rect(
		int(bbox.X),
		int(bbox.Y),
		int(bbox.X+bbox.Width),
		int(bbox.Y+bbox.Height),
	).Intersect(img.Bounds())

	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}
