package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/bounding-box/internal/geometry"
)

// MaxScale caps the zoom factor accepted by CropBox.
const MaxScale = 32.0

// CropBox extracts the pixels covered by box from a rendering produced with
// the given cell size, then zooms the crop by scale. Nearest-neighbour
// resampling keeps cell edges crisp. A scale of 1 (or 0) returns the crop
// unchanged.
func CropBox(img image.Image, box geometry.Box, cellSize int, scale float64) (*image.NRGBA, error) {
	if cellSize < 1 {
		return nil, ErrInvalidCellSize
	}
	if scale < 0 || scale > MaxScale {
		return nil, fmt.Errorf("imaging: scale %.2f outside (0, %.0f]", scale, MaxScale)
	}

	bounds := img.Bounds()
	rect := boxRect(box, cellSize).Add(bounds.Min)
	if rect.Empty() || !rect.In(bounds) {
		return nil, fmt.Errorf("crop region %s for box %s outside image bounds %s", rect, box, bounds)
	}

	cropped := imaging.Crop(img, rect)

	if scale != 1.0 && scale > 0 {
		newWidth := max(1, int(float64(cropped.Bounds().Dx())*scale))
		newHeight := max(1, int(float64(cropped.Bounds().Dy())*scale))
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.NearestNeighbor)
	}

	return cropped, nil
}
