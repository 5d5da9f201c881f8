// Package layout groups OCR words into visual text lines and assembles
// paragraphs from classified layout regions.
//
// # Line Grouping
//
// [GroupLines] sorts words by (y, x) and walks the sorted sequence in a
// single forward pass, maintaining a current vertical band anchored at the
// first word's y. A word joins the band when its y is within the band
// threshold of the anchor; otherwise the band is closed as a [model.Line]
// and a new band starts at the word's y. The anchor is deliberately the
// first word's y rather than a running mean: it is a stable tie-break, not
// a clustering step, so band membership never depends on later words.
//
// # Paragraph Assembly
//
// [AssembleParagraphs] selects, for each textual region (Text, List,
// Title), every word whose bounding box is fully contained in the region
// (boundary-inclusive), sorts the selection into reading order, and joins
// the text with single spaces. Regions containing no words are dropped.
package layout
