package model

import "strings"

// Table represents a reconstructed table. The cell grid is best-effort: it
// is inferred from whitespace patterns in the OCR text of the table region,
// not from true ruling lines, so column boundaries are approximate. Rows
// always equals len(Cells); Columns is the widest row (0 when empty).
type Table struct {
	Rows        int        `json:"rows"`
	Columns     int        `json:"columns"`
	Cells       [][]string `json:"cells"`
	RawText     string     `json:"raw_text"`
	BoundingBox BBox       `json:"bounding_box"`
}

// NewTable builds a Table from an inferred cell grid, computing the row and
// column counts.
func NewTable(cells [][]string, rawText string, bbox BBox) Table {
	cols := 0
	for _, row := range cells {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return Table{
		Rows:        len(cells),
		Columns:     cols,
		Cells:       cells,
		RawText:     rawText,
		BoundingBox: bbox,
	}
}

// Cell returns the cell text at the given row and column (0-indexed), or
// the empty string when the position is outside the jagged grid.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Cells) {
		return ""
	}
	if col < 0 || col >= len(t.Cells[row]) {
		return ""
	}
	return t.Cells[row][col]
}

// ToMarkdown converts the table to markdown format, treating the first row
// as the header.
func (t Table) ToMarkdown() string {
	if len(t.Cells) == 0 {
		return ""
	}

	var sb strings.Builder

	for j := 0; j < t.Columns; j++ {
		sb.WriteString("| ")
		sb.WriteString(strings.ReplaceAll(t.Cell(0, j), "\n", " "))
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")

	for j := 0; j < t.Columns; j++ {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")

	for i := 1; i < len(t.Cells); i++ {
		for j := 0; j < t.Columns; j++ {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(t.Cell(i, j), "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	return sb.String()
}

// ToCSV converts the table to CSV format
func (t Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.Cells {
		for j, text := range row {
			if strings.ContainsAny(text, ",\"\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
