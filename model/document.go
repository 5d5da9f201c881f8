package model

// Metadata contains file-level and, for PDFs, document-level information.
// Filename, FileSize and FileType are always populated. The remaining
// fields come from the PDF metadata dictionary and are omitted for non-PDF
// inputs or when the dictionary cannot be read. Dates are passed through as
// the backend reports them.
type Metadata struct {
	Filename         string `json:"filename"`
	FileSize         int64  `json:"file_size"`
	FileType         string `json:"file_type"`
	Title            string `json:"title,omitempty"`
	Author           string `json:"author,omitempty"`
	Subject          string `json:"subject,omitempty"`
	Creator          string `json:"creator,omitempty"`
	CreationDate     string `json:"creation_date,omitempty"`
	ModificationDate string `json:"modification_date,omitempty"`
	Pages            int    `json:"pages,omitempty"`
}

// DocumentLayout is the complete analysis result for one document. Tables
// and Paragraphs aggregate the per-page collections in page order. Values
// are call-scoped: each analysis builds a fresh DocumentLayout owned by the
// caller.
type DocumentLayout struct {
	Pages            []PageLayout `json:"pages"`
	Tables           []Table      `json:"tables,omitempty"`
	Paragraphs       []Paragraph  `json:"paragraphs,omitempty"`
	DocumentMetadata Metadata     `json:"document_metadata"`
}

// NewDocumentLayout creates an empty document layout carrying the given
// metadata.
func NewDocumentLayout(meta Metadata) *DocumentLayout {
	return &DocumentLayout{
		DocumentMetadata: meta,
	}
}

// AddPage appends a page and folds its tables and paragraphs into the
// document-level aggregates. Pages must be added in page-number order.
func (d *DocumentLayout) AddPage(page PageLayout) {
	d.Pages = append(d.Pages, page)
	d.Tables = append(d.Tables, page.Tables...)
	d.Paragraphs = append(d.Paragraphs, page.Paragraphs...)
}

// PageCount returns the number of analyzed pages
func (d *DocumentLayout) PageCount() int {
	return len(d.Pages)
}

// ExtractText returns all line text concatenated across pages
func (d *DocumentLayout) ExtractText() string {
	var text string
	for _, page := range d.Pages {
		text += page.ExtractText() + "\n"
	}
	return text
}
