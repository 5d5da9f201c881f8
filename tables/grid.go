package tables

import (
	"regexp"
	"strings"
)

// GridInferrer reconstructs a jagged cell grid from the raw OCR text of a
// table region.
type GridInferrer interface {
	// Infer splits raw text into rows of cells. Rows may have differing
	// lengths; empty rows are omitted.
	Infer(rawText string) [][]string

	// Name returns the inferrer name
	Name() string
}

// cellSplitter matches the runs of two or more spaces that separate cells
// in OCR output of tabular text.
var cellSplitter = regexp.MustCompile(`[ ]{2,}`)

// WhitespaceGrid is the default grid inferrer. It treats each non-empty
// line of the OCR text as a row and splits rows into cells on runs of two
// or more spaces.
type WhitespaceGrid struct{}

// Name returns the inferrer name
func (WhitespaceGrid) Name() string { return "whitespace" }

// Infer reconstructs the cell grid from raw OCR text.
func (WhitespaceGrid) Infer(rawText string) [][]string {
	var cells [][]string
	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var row []string
		for _, cell := range cellSplitter.Split(line, -1) {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				row = append(row, cell)
			}
		}
		if len(row) > 0 {
			cells = append(cells, row)
		}
	}
	return cells
}
