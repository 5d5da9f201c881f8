package model

// PageLayout holds the per-page analysis output. Collections are present
// only when the corresponding feature was requested: LayoutElements for
// layout, Lines and Words for text, Tables for tables, Styles for style,
// and Paragraphs when both text and layout ran.
//
// All collections preserve reading order: top to bottom, then left to right
// within a vertical band.
type PageLayout struct {
	PageNumber     int         `json:"page_number"`
	Width          int         `json:"width"`
	Height         int         `json:"height"`
	Unit           string      `json:"unit"`
	LayoutElements []Region    `json:"layout_elements,omitempty"`
	Lines          []Line      `json:"lines,omitempty"`
	Words          []Word      `json:"words,omitempty"`
	Tables         []Table     `json:"tables,omitempty"`
	Styles         *Styles     `json:"styles,omitempty"`
	Paragraphs     []Paragraph `json:"paragraphs,omitempty"`
}

// UnitPixel is the only measurement unit produced by the pipeline; all
// coordinates refer to the rasterized page image.
const UnitPixel = "pixel"

// NewPageLayout creates a page layout for a page image of the given size.
// Page numbers are 1-indexed.
func NewPageLayout(number, width, height int) PageLayout {
	return PageLayout{
		PageNumber: number,
		Width:      width,
		Height:     height,
		Unit:       UnitPixel,
	}
}

// TableRegions returns the layout elements classified as tables
func (p PageLayout) TableRegions() []Region {
	var regions []Region
	for _, elem := range p.LayoutElements {
		if elem.Type == RegionTable {
			regions = append(regions, elem)
		}
	}
	return regions
}

// ExtractText concatenates the text of all lines, one line per row
func (p PageLayout) ExtractText() string {
	var text string
	for _, line := range p.Lines {
		text += line.Text + "\n"
	}
	return text
}
