package style

import (
	"image"
	"sort"

	"github.com/veridoc/layoutkit/model"
)

// Config holds analyzer configuration
type Config struct {
	// Clusters is the palette size k
	Clusters int

	// Seed fixes the clustering random source for determinism
	Seed int64

	// MaxIterations bounds the k-means refinement loop
	MaxIterations int

	// MaxSamples caps the number of pixels fed to clustering; larger
	// pages are sampled with a uniform stride
	MaxSamples int

	// SizeMergeThreshold is the maximum gap, in pixels, between a word
	// height and the previous bucket for the height to merge into it
	SizeMergeThreshold float64
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Clusters:           5,
		Seed:               42,
		MaxIterations:      20,
		MaxSamples:         10000,
		SizeMergeThreshold: 2,
	}
}

// Analyzer computes style statistics for page images.
type Analyzer struct {
	cfg Config
}

// New creates an Analyzer with the given configuration.
func New(cfg Config) *Analyzer {
	if cfg.Clusters == 0 {
		cfg = DefaultConfig()
	}
	return &Analyzer{cfg: cfg}
}

// Analyze computes the style statistics of one page. Words may be nil when
// text extraction did not run; font-size buckets are then empty.
func (a *Analyzer) Analyze(img image.Image, words []model.Word) model.Styles {
	return model.Styles{
		Fonts:  nil,
		Colors: a.DominantColors(img),
		Sizes:  a.FontSizes(words),
	}
}

// DominantColors clusters the page pixels and returns the cluster
// centroids as integer RGB triples, most populous cluster first.
func (a *Analyzer) DominantColors(img image.Image) []model.RGB {
	samples := samplePixels(img, a.cfg.MaxSamples)
	if len(samples) == 0 {
		return nil
	}

	centroids := kmeans(samples, a.cfg.Clusters, a.cfg.Seed, a.cfg.MaxIterations)

	colors := make([]model.RGB, len(centroids))
	for i, c := range centroids {
		colors[i] = model.RGB{
			R: int(c.center[0] + 0.5),
			G: int(c.center[1] + 0.5),
			B: int(c.center[2] + 0.5),
		}
	}
	return colors
}

// FontSizes derives font-size buckets from word box heights: heights are
// de-duplicated, sorted ascending, and merged into the previous bucket
// when within the merge threshold.
func (a *Analyzer) FontSizes(words []model.Word) []float64 {
	if len(words) == 0 {
		return nil
	}

	seen := make(map[float64]struct{}, len(words))
	var heights []float64
	for _, word := range words {
		h := word.BoundingBox.Height
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		heights = append(heights, h)
	}
	sort.Float64s(heights)

	var sizes []float64
	for _, h := range heights {
		if len(sizes) == 0 || h-sizes[len(sizes)-1] > a.cfg.SizeMergeThreshold {
			sizes = append(sizes, h)
		}
	}
	return sizes
}

// samplePixels flattens the image into RGB triples, striding uniformly so
// at most max pixels are returned. The stride depends only on the image
// size, keeping the sample deterministic.
func samplePixels(img image.Image, max int) []point {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return nil
	}

	stride := 1
	if max > 0 && total > max {
		stride = (total + max - 1) / max
	}

	samples := make([]point, 0, total/stride+1)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if i%stride == 0 {
				r, g, b, _ := img.At(x, y).RGBA()
				samples = append(samples, point{
					float64(r >> 8),
					float64(g >> 8),
					float64(b >> 8),
				})
			}
			i++
		}
	}
	return samples
}
