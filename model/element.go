package model

// RegionType classifies a detected layout region. The values mirror the
// labels emitted by the pretrained region model (PubLayNet label set).
type RegionType string

const (
	RegionText   RegionType = "Text"
	RegionTitle  RegionType = "Title"
	RegionList   RegionType = "List"
	RegionTable  RegionType = "Table"
	RegionFigure RegionType = "Figure"
)

// IsTextual reports whether the region type carries running text that can be
// assembled into a paragraph (Text, List or Title).
func (rt RegionType) IsTextual() bool {
	return rt == RegionText || rt == RegionList || rt == RegionTitle
}

// Word is a single OCR-recognized token with its position and confidence.
// Confidence is normalized to [0,1]. Text is never empty; empty OCR hits
// are discarded at extraction time.
type Word struct {
	Text        string  `json:"text"`
	BoundingBox BBox    `json:"bounding_box"`
	Confidence  float64 `json:"confidence"`
}

// Line is an ordered run of words sharing a vertical band. Its bounding box
// is the union of its word boxes and its text is the space-joined word text
// in left-to-right order.
type Line struct {
	Text        string `json:"text"`
	BoundingBox BBox   `json:"bounding_box"`
	Words       []Word `json:"words"`
}

// Region is a classified layout area of a page (title, text block, list,
// table, figure) with the detector's confidence.
type Region struct {
	Type        RegionType `json:"type"`
	BoundingBox BBox       `json:"bounding_box"`
	Confidence  float64    `json:"confidence"`
	TextContent string     `json:"text_content,omitempty"`
}

// Paragraph is the text of all words geometrically contained in a textual
// layout region, concatenated in reading order.
type Paragraph struct {
	Type        RegionType `json:"type"`
	Text        string     `json:"text"`
	BoundingBox BBox       `json:"bounding_box"`
	Confidence  float64    `json:"confidence"`
}

// RGB is an integer color triple.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Styles holds coarse visual style statistics for a page.
//
// Fonts is always empty for now; font family detection is reserved for a
// future style model. Colors are the dominant page colors found by
// clustering. Sizes are de-duplicated font-size buckets derived from word
// heights.
type Styles struct {
	Fonts  []string  `json:"fonts"`
	Colors []RGB     `json:"colors"`
	Sizes  []float64 `json:"sizes"`
}
