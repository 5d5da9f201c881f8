// Package tables locates table regions on page images and reconstructs a
// best-effort cell grid from their OCR text.
//
// # Strategies
//
// Two mutually exclusive region-location strategies exist per page, chosen
// by an explicit policy ([StrategyFor]): when layout detection ran, regions
// classified as tables are used directly ([StrategyLayout]); only when it
// did not run does the extractor fall back to computer-vision line
// detection on the raster image ([StrategyCV]). The CV path isolates long
// horizontal and vertical line-like structures with directional
// morphological opening, unions the two masks, and keeps connected regions
// larger than a size filter.
//
// # Grid Inference
//
// Cell reconstruction is delegated to a [GridInferrer] so a proper
// ruling-line parser can be substituted later. The default
// [WhitespaceGrid] splits the region's OCR text into rows on line breaks
// and into cells on runs of two or more spaces. This is intentionally
// lossy: it reconstructs structure from whitespace patterns, not from true
// grid lines, and callers should treat the resulting grids as best-effort.
package tables
