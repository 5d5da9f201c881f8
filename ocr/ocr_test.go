package ocr

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/otiai10/gosseract/v2"
)

// blankImage returns a plain white image; Tesseract finds no tokens in it.
func blankImage(width, height int) image.Image {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestWordFromBox(t *testing.T) {
	tests := []struct {
		name       string
		box        gosseract.BoundingBox
		wantOK     bool
		wantText   string
		wantConf   float64
		wantBounds [4]float64 // x, y, width, height
	}{
		{
			name: "confidence 80 normalizes to 0.8",
			box: gosseract.BoundingBox{
				Box:        image.Rect(10, 20, 110, 45),
				Word:       "Hello",
				Confidence: 80,
			},
			wantOK:     true,
			wantText:   "Hello",
			wantConf:   0.8,
			wantBounds: [4]float64{10, 20, 100, 25},
		},
		{
			name: "full confidence",
			box: gosseract.BoundingBox{
				Box:        image.Rect(0, 0, 5, 5),
				Word:       "a",
				Confidence: 100,
			},
			wantOK:   true,
			wantText: "a",
			wantConf: 1,
		},
		{
			name: "surrounding whitespace trimmed",
			box: gosseract.BoundingBox{
				Box:        image.Rect(0, 0, 30, 10),
				Word:       "  World \n",
				Confidence: 50,
			},
			wantOK:   true,
			wantText: "World",
			wantConf: 0.5,
		},
		{
			name: "whitespace-only token dropped",
			box: gosseract.BoundingBox{
				Box:        image.Rect(0, 0, 30, 10),
				Word:       "   ",
				Confidence: 95,
			},
			wantOK: false,
		},
		{
			name:   "empty token dropped",
			box:    gosseract.BoundingBox{Box: image.Rect(0, 0, 1, 1)},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, ok := wordFromBox(tt.box)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}

			if word.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", word.Text, tt.wantText)
			}
			if word.Confidence != tt.wantConf {
				t.Errorf("Confidence = %v, want %v", word.Confidence, tt.wantConf)
			}
			if !word.BoundingBox.IsValid() {
				t.Errorf("invalid bounding box %+v", word.BoundingBox)
			}
			if tt.wantBounds != [4]float64{} {
				got := [4]float64{
					word.BoundingBox.X,
					word.BoundingBox.Y,
					word.BoundingBox.Width,
					word.BoundingBox.Height,
				}
				if got != tt.wantBounds {
					t.Errorf("BoundingBox = %v, want %v", got, tt.wantBounds)
				}
			}
		})
	}
}

func TestNew(t *testing.T) {
	client := newTestClient(t)
	if client == nil {
		t.Fatal("expected non-nil client")
	}
}

func TestRecognizeWordsBlankImage(t *testing.T) {
	client := newTestClient(t)

	words, err := client.RecognizeWords(context.Background(), blankImage(200, 100))
	if err != nil {
		t.Fatalf("RecognizeWords: %v", err)
	}

	// No tokens on a blank page; whatever does come back must honor the
	// output contract.
	for _, w := range words {
		if w.Text == "" {
			t.Error("empty-text words must be discarded")
		}
		if w.Confidence < 0 || w.Confidence > 1 {
			t.Errorf("confidence %v out of [0,1]", w.Confidence)
		}
		if !w.BoundingBox.IsValid() {
			t.Errorf("invalid bounding box %+v", w.BoundingBox)
		}
	}
}

func TestRecognizeWordsCanceledContext(t *testing.T) {
	client := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.RecognizeWords(ctx, blankImage(10, 10)); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	client := newTestClient(t)

	if err := client.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
