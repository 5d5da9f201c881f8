// Package style computes coarse visual style statistics for a page image:
// a small palette of dominant colors and a de-duplicated set of font-size
// buckets.
//
// Colors come from k-means clustering of the page pixels with a fixed seed,
// so repeated analyses of the same page yield the same palette. Clusters
// are reported most-populous first, as integer RGB triples.
//
// Font sizes are estimated from word bounding-box heights: heights are
// de-duplicated, sorted ascending, and greedily merged into buckets. A
// height starts a new bucket only when it lies more than the merge
// threshold above the previous accepted bucket.
//
// Font family detection is not implemented; the fonts field is always
// empty and reserved for a future style model.
package style
