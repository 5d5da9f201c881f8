package metadata

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/veridoc/layoutkit/model"
)

// Extractor reads document metadata.
type Extractor struct {
	logger *slog.Logger
}

// New creates an Extractor. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract returns the metadata for the document at path. It never fails:
// fields that cannot be read are omitted and the condition is logged.
func (e *Extractor) Extract(path string) model.Metadata {
	meta := model.Metadata{
		Filename: filepath.Base(path),
		FileType: strings.ToLower(filepath.Ext(path)),
	}

	if info, err := os.Stat(path); err == nil {
		meta.FileSize = info.Size()
	} else {
		e.logger.Warn("could not stat document", "path", path, "error", err)
	}

	if meta.FileType == ".pdf" {
		e.readPDFInfo(path, &meta)
	}

	return meta
}

// readPDFInfo fills in the PDF information dictionary fields and the page
// count.
func (e *Extractor) readPDFInfo(path string, meta *model.Metadata) {
	f, err := os.Open(path)
	if err != nil {
		e.logger.Warn("could not open PDF for metadata", "path", path, "error", err)
		return
	}
	defer f.Close()

	conf := pdfmodel.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		e.logger.Warn("could not read PDF metadata", "path", path, "error", err)
		return
	}

	meta.Title = ctx.Title
	meta.Author = ctx.Author
	meta.Subject = ctx.Subject
	meta.Creator = ctx.Creator
	meta.CreationDate = ctx.XRefTable.CreationDate
	meta.ModificationDate = ctx.ModDate
	meta.Pages = ctx.PageCount
}
