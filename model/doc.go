// Package model defines the value types produced by the layout extraction
// pipeline: bounding boxes, OCR words and lines, classified layout regions,
// reconstructed tables, style statistics, and the per-page and per-document
// aggregates.
//
// All coordinates are pixels in the rasterized page image, with the origin
// at the top-left corner. Every collection preserves reading order: page
// order first, then top-to-bottom, then left-to-right within a vertical
// band.
//
// The types carry JSON tags matching the interchange format consumed by the
// downstream comparison engine; serializing a [DocumentLayout] and decoding
// it back yields an equal value.
//
// Values are immutable once produced and scoped to a single analysis call.
// Nothing in this package is shared between concurrent analyses.
package model
