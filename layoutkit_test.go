package layoutkit

import (
	"context"
	"errors"
	"testing"

	"github.com/veridoc/layoutkit/pipeline"
)

func TestOpenDefaults(t *testing.T) {
	a := Open("scan.pdf")

	if a.filename != "scan.pdf" {
		t.Errorf("filename = %q, want %q", a.filename, "scan.pdf")
	}
	if a.cfg.Features != FeatureAll {
		t.Errorf("Features = %v, want FeatureAll", a.cfg.Features)
	}
	def := pipeline.DefaultConfig()
	if a.cfg.Raster.DPI != def.Raster.DPI {
		t.Errorf("DPI = %d, want default %d", a.cfg.Raster.DPI, def.Raster.DPI)
	}
}

func TestChainingIsImmutable(t *testing.T) {
	base := Open("scan.pdf")

	derived := base.
		Features(FeatureText | FeatureTables).
		LayoutService("http://localhost:8500").
		Confidence(0.7).
		DPI(150).
		LineThreshold(6)

	if base.cfg.Features != FeatureAll || base.cfg.LayoutService != "" {
		t.Error("configuring a derived analysis must not mutate the base")
	}

	if derived.cfg.Features != FeatureText|FeatureTables {
		t.Errorf("Features = %v", derived.cfg.Features)
	}
	if derived.cfg.LayoutService != "http://localhost:8500" {
		t.Errorf("LayoutService = %q", derived.cfg.LayoutService)
	}
	if derived.cfg.LayoutConfidence != 0.7 {
		t.Errorf("LayoutConfidence = %v", derived.cfg.LayoutConfidence)
	}
	if derived.cfg.Raster.DPI != 150 {
		t.Errorf("DPI = %d", derived.cfg.Raster.DPI)
	}
	if derived.cfg.LineThreshold != 6 {
		t.Errorf("LineThreshold = %v", derived.cfg.LineThreshold)
	}
	if derived.filename != "scan.pdf" {
		t.Errorf("filename = %q", derived.filename)
	}
}

func TestRequireLayoutWithoutServiceIsFatal(t *testing.T) {
	_, err := Open("scan.pdf").RequireLayout().Analyze(context.Background())
	if err == nil {
		t.Fatal("expected error: layout required but no service configured")
	}
	var ierr *pipeline.InitError
	if !errors.As(err, &ierr) {
		t.Errorf("error = %T, want *pipeline.InitError", err)
	}
}

func TestRequireLayoutUnreachableServiceIsFatal(t *testing.T) {
	_, err := Open("scan.pdf").
		RequireLayout().
		LayoutService("http://127.0.0.1:1").
		Analyze(context.Background())
	if err == nil {
		t.Fatal("expected error: layout required but service unreachable")
	}
	var ierr *pipeline.InitError
	if !errors.As(err, &ierr) {
		t.Errorf("error = %T, want *pipeline.InitError", err)
	}
}

func TestRequireLayoutIsImmutable(t *testing.T) {
	base := Open("scan.pdf")
	strict := base.RequireLayout()

	if base.requireLayout {
		t.Error("RequireLayout must not mutate the base analysis")
	}
	if !strict.requireLayout {
		t.Error("derived analysis should require layout")
	}
}

func TestMustPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Must should panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}

func TestMustReturnsValue(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must = %d, want 42", got)
	}
}
