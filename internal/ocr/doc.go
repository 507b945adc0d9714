// Package ocr reads a marked/blank grid from a picture of text using
// Tesseract (via gosseract/v2).
//
// The picture is expected to show the grid the way it would be typed: one
// line of '*' and '-' characters per row. Recognition is restricted to
// those two characters, and common misreads (dashes of other widths,
// underscores, x marks) are folded back onto them before the lines are
// returned.
//
// # Prerequisites
//
// Tesseract and its language data must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Binaries built without cgo carry no Tesseract binding; ReadGrid then
// returns ErrUnavailable.
package ocr
