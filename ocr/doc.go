// Package ocr provides OCR (Optical Character Recognition) capabilities
// for extracting positioned words from page images.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// The engine is configured for a single uniform block of text (PSM 6),
// which suits general document pages. Raw Tesseract confidences on the
// 0-100 scale are normalized to [0,1].
//
// A [Client] is loaded once and reused across analyses. It serializes
// access to the underlying Tesseract handle internally, so a single Client
// is safe for concurrent use.
package ocr
