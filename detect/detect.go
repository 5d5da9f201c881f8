package detect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"time"

	"github.com/veridoc/layoutkit/model"
)

// Detector is the capability interface for layout region classification.
type Detector interface {
	// DetectRegions classifies the layout regions of a page image.
	DetectRegions(ctx context.Context, img image.Image) ([]model.Region, error)
}

// Config holds detector configuration
type Config struct {
	// BaseURL of the layout inference service
	BaseURL string

	// ConfidenceThreshold discards detections scoring below it (0-1)
	ConfidenceThreshold float64

	// Timeout for a single inference request
	Timeout time.Duration
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold: 0.5,
		Timeout:             60 * time.Second,
	}
}

// HTTPDetector calls a layout inference service over HTTP.
type HTTPDetector struct {
	cfg    Config
	client *http.Client
}

// New creates a detector for the layout inference service at cfg.BaseURL
// and verifies the service is reachable.
func New(ctx context.Context, cfg Config) (*HTTPDetector, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("detect: BaseURL is required")
	}
	if cfg.ConfidenceThreshold == 0 {
		cfg.ConfidenceThreshold = DefaultConfig().ConfidenceThreshold
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	d := &HTTPDetector{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}

	if err := d.ping(ctx); err != nil {
		return nil, fmt.Errorf("layout model unavailable at %s: %w", cfg.BaseURL, err)
	}

	return d, nil
}

// ping checks service health so that a missing model surfaces at
// construction rather than on the first document.
func (d *HTTPDetector) ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.cfg.BaseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %s", resp.Status)
	}
	return nil
}

// detection is the wire format of a single region returned by the service.
// Box holds two corner points as [x1, y1, x2, y2].
type detection struct {
	Label string     `json:"label"`
	Box   [4]float64 `json:"box"`
	Score float64    `json:"score"`
}

type detectResponse struct {
	Detections []detection `json:"detections"`
}

// DetectRegions posts the page image to the inference service and maps the
// detections into layout regions. Detections below the confidence threshold
// are dropped. The service's ordering is preserved; regions are not
// re-sorted.
func (d *HTTPDetector) DetectRegions(ctx context.Context, img image.Image) ([]model.Region, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode page image: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.BaseURL+"/v1/layout", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "image/png")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("layout inference request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("layout inference returned %s: %s", resp.Status, bytes.TrimSpace(body))
	}

	var decoded detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode layout response: %w", err)
	}

	var regions []model.Region
	for _, det := range decoded.Detections {
		if det.Score < d.cfg.ConfidenceThreshold {
			continue
		}
		regions = append(regions, model.Region{
			Type: model.RegionType(det.Label),
			BoundingBox: model.NewBBoxFromCorners(
				model.Point{X: det.Box[0], Y: det.Box[1]},
				model.Point{X: det.Box[2], Y: det.Box[3]},
			),
			Confidence: det.Score,
		})
	}

	return regions, nil
}
