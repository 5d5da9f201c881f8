package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/veridoc/layoutkit/model"
)

// Client wraps Tesseract for OCR operations. The zero value is not usable;
// construct with New. A Client may be shared between goroutines: recognition
// calls are serialized on the underlying Tesseract handle.
type Client struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// New creates a new OCR client tuned for general document text.
// It fails if the Tesseract engine is not available on the system.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	langs, err := gosseract.GetAvailableLanguages()
	if err != nil {
		return nil, fmt.Errorf("tesseract unavailable: %w", err)
	}
	if len(langs) == 0 {
		return nil, fmt.Errorf("tesseract unavailable: no language data installed")
	}

	client := gosseract.NewClient()
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		err := c.client.Close()
		c.client = nil
		return err
	}
	return nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Default is "eng" (English).
func (c *Client) SetLanguage(languages ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.client.SetLanguage(languages...)
}

// RecognizeWords performs OCR on a page image and returns one Word per
// recognized token, in Tesseract's scan order. Tokens whose trimmed text is
// empty are discarded. Confidences are normalized from the 0-100 scale to
// [0,1], and text is normalized to NFC.
func (c *Client) RecognizeWords(ctx context.Context, img image.Image) ([]model.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := encodePNG(img)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	var words []model.Word
	for _, b := range boxes {
		if word, ok := wordFromBox(b); ok {
			words = append(words, word)
		}
	}

	return words, nil
}

// wordFromBox maps one Tesseract token onto a Word: text trimmed and
// normalized to NFC, confidence rescaled from the engine's 0-100 range to
// [0,1]. Tokens whose trimmed text is empty report ok=false and are
// discarded.
func wordFromBox(b gosseract.BoundingBox) (model.Word, bool) {
	text := strings.TrimSpace(b.Word)
	if text == "" {
		return model.Word{}, false
	}
	return model.Word{
		Text: norm.NFC.String(text),
		BoundingBox: model.NewBBox(
			float64(b.Box.Min.X),
			float64(b.Box.Min.Y),
			float64(b.Box.Dx()),
			float64(b.Box.Dy()),
		),
		Confidence: b.Confidence / 100.0,
	}, true
}

// RecognizeText performs OCR on an image and returns the raw recognized
// text with leading/trailing whitespace trimmed. It is used for restricted
// sub-images such as table regions, where line breaks and spacing carry the
// structure.
func (c *Client) RecognizeText(ctx context.Context, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := encodePNG(img)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return norm.NFC.String(strings.TrimSpace(text)), nil
}

// encodePNG encodes an image as PNG for handoff to Tesseract.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
