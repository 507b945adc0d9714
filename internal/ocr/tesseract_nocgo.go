//go:build !cgo

package ocr

import "image"

// Available reports whether Tesseract recognition is compiled in.
func Available() bool { return false }

// Version returns an empty string when Tesseract is not linked.
func Version() string { return "" }

// ReadGrid always fails with ErrUnavailable in builds without cgo.
func ReadGrid(img image.Image, opts Options) ([]string, error) {
	return nil, ErrUnavailable
}
