package raster

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gen2brain/go-fitz"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Config holds rasterizer configuration
type Config struct {
	// DPI is the target rendering resolution for PDF pages
	DPI int

	// PopplerPath is the pdftoppm binary used by the primary backend
	PopplerPath string

	// Logger for fallback notices; defaults to slog.Default()
	Logger *slog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		DPI:         300,
		PopplerPath: "pdftoppm",
	}
}

func (c *Config) defaults() {
	if c.DPI == 0 {
		c.DPI = 300
	}
	if c.PopplerPath == "" {
		c.PopplerPath = "pdftoppm"
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Error reports that a PDF could not be rasterized by either backend.
type Error struct {
	Path      string
	Primary   error
	Secondary error
}

func (e *Error) Error() string {
	return fmt.Sprintf("rasterization failed for %s: poppler: %v; mupdf: %v",
		e.Path, e.Primary, e.Secondary)
}

// Renderer converts documents into page images.
type Renderer struct {
	cfg Config
}

// New creates a Renderer with the given configuration.
func New(cfg Config) *Renderer {
	cfg.defaults()
	return &Renderer{cfg: cfg}
}

// RenderPages returns the ordered page images of the document at path.
// PDFs are rendered page by page at the configured DPI; any other input is
// decoded as a single raster image.
func (r *Renderer) RenderPages(ctx context.Context, path string) ([]image.Image, error) {
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		img, err := decodeImageFile(path)
		if err != nil {
			return nil, err
		}
		return []image.Image{img}, nil
	}

	pages, primaryErr := r.renderPoppler(ctx, path)
	if primaryErr == nil {
		return pages, nil
	}

	r.cfg.Logger.Warn("poppler rendering failed, falling back to mupdf",
		"path", path, "error", primaryErr)

	pages, secondaryErr := r.renderMuPDF(ctx, path)
	if secondaryErr == nil {
		return pages, nil
	}

	return nil, &Error{Path: path, Primary: primaryErr, Secondary: secondaryErr}
}

// renderPoppler rasterizes via pdftoppm into a temporary directory and
// decodes the numbered page images it produces.
func (r *Renderer) renderPoppler(ctx context.Context, path string) ([]image.Image, error) {
	dir, err := os.MkdirTemp("", "layoutkit-raster-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	prefix := filepath.Join(dir, "page")
	cmd := exec.CommandContext(ctx, r.cfg.PopplerPath,
		"-r", strconv.Itoa(r.cfg.DPI), "-png", path, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm: %w (%s)", err, strings.TrimSpace(string(out)))
	}

	entries, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no pages")
	}
	orderByPageNumber(entries)

	pages := make([]image.Image, 0, len(entries))
	for _, entry := range entries {
		img, err := decodeImageFile(entry)
		if err != nil {
			return nil, err
		}
		pages = append(pages, img)
	}
	return pages, nil
}

// renderMuPDF rasterizes with go-fitz, scaling each page from its native
// 72 DPI geometry to the target resolution.
func (r *Renderer) renderMuPDF(ctx context.Context, path string) ([]image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("mupdf open: %w", err)
	}
	defer doc.Close()

	pages := make([]image.Image, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := doc.ImageDPI(n, float64(r.cfg.DPI))
		if err != nil {
			return nil, fmt.Errorf("mupdf render page %d: %w", n+1, err)
		}
		pages = append(pages, img)
	}
	return pages, nil
}

// orderByPageNumber sorts pdftoppm output paths by their numeric page
// suffix. Lexical order is not enough: poppler pads page numbers based on
// the page count, so "page-10" can sort before "page-2" across runs.
func orderByPageNumber(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		return pageNumberOf(paths[i]) < pageNumberOf(paths[j])
	})
}

func pageNumberOf(path string) int {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	idx := strings.LastIndex(base, "-")
	if idx < 0 {
		return 0
	}
	n, err := strconv.Atoi(base[idx+1:])
	if err != nil {
		return 0
	}
	return n
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}
