package detect

import (
	"context"
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/veridoc/layoutkit/model"
)

func newTestService(t *testing.T, detections []detection) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/v1/layout", func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "image/png" {
			t.Errorf("Content-Type = %q, want image/png", ct)
		}
		json.NewEncoder(w).Encode(detectResponse{Detections: detections})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewUnreachableService(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseURL = "http://127.0.0.1:1"

	if _, err := New(context.Background(), cfg); err == nil {
		t.Fatal("New() should fail when the inference service is unreachable")
	}
}

func TestDetectRegionsThresholdAndOrder(t *testing.T) {
	srv := newTestService(t, []detection{
		{Label: "Title", Box: [4]float64{100, 50, 900, 110}, Score: 0.97},
		{Label: "Figure", Box: [4]float64{0, 0, 10, 10}, Score: 0.3},
		{Label: "Text", Box: [4]float64{100, 150, 900, 600}, Score: 0.82},
	})

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	det, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	regions, err := det.DetectRegions(context.Background(), image.NewRGBA(image.Rect(0, 0, 1000, 800)))
	if err != nil {
		t.Fatalf("DetectRegions() error: %v", err)
	}

	if len(regions) != 2 {
		t.Fatalf("got %d regions, want 2 (0.3 score filtered)", len(regions))
	}
	if regions[0].Type != model.RegionTitle || regions[1].Type != model.RegionText {
		t.Errorf("detector ordering not preserved: %+v", regions)
	}

	want := model.NewBBox(100, 50, 800, 60)
	if regions[0].BoundingBox != want {
		t.Errorf("corner mapping = %+v, want %+v", regions[0].BoundingBox, want)
	}
}

func TestDetectRegionsReversedCorners(t *testing.T) {
	srv := newTestService(t, []detection{
		{Label: "Text", Box: [4]float64{900, 600, 100, 150}, Score: 0.9},
	})

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	det, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	regions, err := det.DetectRegions(context.Background(), image.NewRGBA(image.Rect(0, 0, 1000, 800)))
	if err != nil {
		t.Fatalf("DetectRegions() error: %v", err)
	}

	want := model.NewBBox(100, 150, 800, 450)
	if len(regions) != 1 || regions[0].BoundingBox != want {
		t.Errorf("regions = %+v, want single box %+v", regions, want)
	}
	if !regions[0].BoundingBox.IsValid() {
		t.Error("mapped box must have non-negative dimensions")
	}
}

func TestDetectRegionsServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/v1/layout", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model crashed", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	det, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if _, err := det.DetectRegions(context.Background(), image.NewRGBA(image.Rect(0, 0, 10, 10))); err == nil {
		t.Fatal("DetectRegions() should surface server errors")
	}
}
