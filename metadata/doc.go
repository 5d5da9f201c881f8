// Package metadata collects document metadata for analysis results.
//
// File-level fields (name, byte size, lowercased extension) are always
// populated. For PDF inputs the document is additionally opened, solely to
// read its information dictionary and page count. Metadata extraction is
// strictly non-fatal: any failure is logged and the affected fields are
// omitted, never propagated. A document with an unreadable info
// dictionary still gets analyzed.
package metadata
