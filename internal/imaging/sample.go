package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/bounding-box/internal/grid"
)

// ErrInvalidCellSize indicates a cell size below one pixel.
var ErrInvalidCellSize = errors.New("imaging: cell size must be at least 1 pixel")

// SampleOptions controls how an image is sampled into a grid.
type SampleOptions struct {
	// CellSize is the edge length in pixels of the square block that becomes
	// one grid cell.
	CellSize int
	// Threshold is the luminance (0-255) below which a pixel counts as dark.
	Threshold uint8
}

// DefaultSampleOptions returns one pixel per cell with a mid-grey threshold.
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{CellSize: 1, Threshold: 128}
}

// GridFromImage samples img into a marked/blank grid.
//
// # Algorithm
//
//  1. Flatten onto white so transparent pixels read as blank
//  2. Grayscale conversion
//  3. Binarise with bild's segment.Threshold at opts.Threshold
//  4. Each CellSize×CellSize block becomes one cell, marked when more than
//     half of its pixels are dark
//
// When the image size is not a multiple of CellSize, the last row and
// column of cells cover the remaining partial blocks.
func GridFromImage(img image.Image, opts SampleOptions) (*grid.Grid, error) {
	if opts.CellSize < 1 {
		return nil, ErrInvalidCellSize
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("imaging: empty image: %w", grid.ErrEmptyInput)
	}

	flat := imaging.Overlay(imaging.New(width, height, color.White), img, image.Pt(0, 0), 1.0)
	binary := segment.Threshold(imaging.Grayscale(flat), opts.Threshold)

	cols := (width + opts.CellSize - 1) / opts.CellSize
	rows := (height + opts.CellSize - 1) / opts.CellSize
	cells := make([][]bool, rows)

	for r := 0; r < rows; r++ {
		cells[r] = make([]bool, cols)
		for c := 0; c < cols; c++ {
			x0, y0 := c*opts.CellSize, r*opts.CellSize
			x1, y1 := min(x0+opts.CellSize, width), min(y0+opts.CellSize, height)

			dark, total := 0, 0
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					if binary.GrayAt(binary.Bounds().Min.X+x, binary.Bounds().Min.Y+y).Y == 0 {
						dark++
					}
					total++
				}
			}
			cells[r][c] = dark*2 > total
		}
	}

	return grid.FromCells(cells)
}

// LoadGrid loads the image at path through cache and samples it.
func LoadGrid(cache *ImageCache, path string, opts SampleOptions) (*grid.Grid, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return GridFromImage(img, opts)
}
