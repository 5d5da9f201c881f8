package layout

import (
	"sort"
	"strings"

	"github.com/veridoc/layoutkit/model"
)

// DefaultLineThreshold is the maximum vertical distance, in pixels, between
// a word and the current band anchor for the word to join the band.
const DefaultLineThreshold = 10.0

// GroupLines groups words into visual text lines by vertical banding.
// The input is not modified. Words within a line are ordered left to right;
// lines are ordered top to bottom. A non-positive threshold falls back to
// DefaultLineThreshold.
func GroupLines(words []model.Word, threshold float64) []model.Line {
	if len(words) == 0 {
		return nil
	}
	if threshold <= 0 {
		threshold = DefaultLineThreshold
	}

	sorted := make([]model.Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BoundingBox.Y != sorted[j].BoundingBox.Y {
			return sorted[i].BoundingBox.Y < sorted[j].BoundingBox.Y
		}
		return sorted[i].BoundingBox.X < sorted[j].BoundingBox.X
	})

	var lines []model.Line
	var band []model.Word
	anchorY := sorted[0].BoundingBox.Y

	for _, word := range sorted {
		dy := word.BoundingBox.Y - anchorY
		if dy < 0 {
			dy = -dy
		}
		if dy <= threshold {
			band = append(band, word)
			continue
		}
		lines = append(lines, closeBand(band))
		band = []model.Word{word}
		anchorY = word.BoundingBox.Y
	}
	if len(band) > 0 {
		lines = append(lines, closeBand(band))
	}

	return lines
}

// closeBand finalizes a band: words are re-sorted by x, the line box is the
// union of the word boxes, and the text is space-joined.
func closeBand(band []model.Word) model.Line {
	sort.SliceStable(band, func(i, j int) bool {
		return band[i].BoundingBox.X < band[j].BoundingBox.X
	})

	bbox := band[0].BoundingBox
	texts := make([]string, len(band))
	for i, word := range band {
		bbox = bbox.Union(word.BoundingBox)
		texts[i] = word.Text
	}

	return model.Line{
		Text:        strings.Join(texts, " "),
		BoundingBox: bbox,
		Words:       band,
	}
}
