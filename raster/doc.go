// Package raster converts input documents into ordered page images for the
// analysis pipeline.
//
// PDF inputs are rendered at a fixed target resolution (300 DPI by
// default). The primary backend shells out to poppler's pdftoppm; when it
// fails, the page is re-rendered with MuPDF via go-fitz. A
// [*Error] is returned only when both backends fail.
//
// Non-PDF inputs (PNG, JPEG, TIFF, BMP) are decoded as-is and returned as a
// single-page sequence.
package raster
