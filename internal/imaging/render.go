package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/bounding-box/internal/geometry"
	"github.com/ironsheep/bounding-box/internal/grid"
	"github.com/ironsheep/bounding-box/internal/regions"
)

// Default render colours.
const (
	DefaultGridColor   = "#D0D0D0"
	DefaultBackground  = "#FFFFFF"
	DefaultMarkedColor = "#303030"
)

// RenderOptions controls the rendered picture of a grid.
type RenderOptions struct {
	CellSize    int
	Border      int
	ShowGrid    bool
	Labels      bool
	GridColor   string
	Background  string
	MarkedColor string
}

// DefaultRenderOptions returns 16px cells with a 2px outline.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		CellSize:    16,
		Border:      2,
		ShowGrid:    true,
		Labels:      true,
		GridColor:   DefaultGridColor,
		Background:  DefaultBackground,
		MarkedColor: DefaultMarkedColor,
	}
}

// RenderResult contains a PNG encoded rendering.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Render draws g with every candidate outlined in its palette colour.
// Boxes in selected are additionally washed with a light tint of that
// colour, so the reported result stands out from discarded candidates.
//
// Layers are painted in this order: background, selected tint, marked
// cells, grid lines, candidate outlines, candidate index labels.
// Unparseable colours fall back to the defaults.
func Render(g *grid.Grid, candidates []regions.Region, selected []geometry.Box, opts RenderOptions) (*image.NRGBA, error) {
	if opts.CellSize < 1 {
		return nil, ErrInvalidCellSize
	}
	if opts.Border < 0 || opts.Border*2 > opts.CellSize {
		return nil, fmt.Errorf("imaging: border %d does not fit a %dpx cell", opts.Border, opts.CellSize)
	}

	bg := colorOr(opts.Background, DefaultBackground)
	marked := colorOr(opts.MarkedColor, DefaultMarkedColor)
	lines := colorOr(opts.GridColor, DefaultGridColor)

	cs := opts.CellSize
	img := imaging.New(g.Cols()*cs, g.Rows()*cs, bg)
	palette := Palette(len(candidates))

	index := make(map[geometry.Box]int, len(candidates))
	for i, c := range candidates {
		if _, ok := index[c.Box]; !ok {
			index[c.Box] = i
		}
	}
	for _, b := range selected {
		i, ok := index[b]
		if !ok {
			continue
		}
		fillRect(img, boxRect(b, cs), Tint(palette[i], bg))
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.Marked(r, c) {
				fillRect(img, image.Rect(c*cs, r*cs, (c+1)*cs, (r+1)*cs), marked)
			}
		}
	}

	if opts.ShowGrid && cs > 2 {
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		for x := cs; x < w; x += cs {
			fillRect(img, image.Rect(x, 0, x+1, h), lines)
		}
		for y := cs; y < h; y += cs {
			fillRect(img, image.Rect(0, y, w, y+1), lines)
		}
	}

	for i, c := range candidates {
		outlineRect(img, boxRect(c.Box, cs), opts.Border, palette[i])
	}

	if opts.Labels && cs >= 8 {
		fg := color.NRGBA{255, 255, 255, 255}
		for i, c := range candidates {
			r := boxRect(c.Box, cs)
			drawLabel(img, r.Min.X+opts.Border+1, r.Min.Y+opts.Border+1, fmt.Sprint(i+1), fg, palette[i])
		}
	}

	return img, nil
}

// EncodePNG encodes img as a base64 PNG result.
func EncodePNG(img image.Image) (*RenderResult, error) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		return nil, err
	}
	return &RenderResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// WritePNG writes img to w in PNG format.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}

// SavePNG writes img to path. The format follows the file extension.
func SavePNG(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// boxRect converts a 1-based cell box into its pixel rectangle.
// Rows run down the image, so X maps to pixel rows and Y to pixel columns.
func boxRect(b geometry.Box, cellSize int) image.Rectangle {
	return image.Rect(
		(b.TopLeft.Y-1)*cellSize,
		(b.TopLeft.X-1)*cellSize,
		b.BottomRight.Y*cellSize,
		b.BottomRight.X*cellSize,
	)
}

func fillRect(img *image.NRGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

func outlineRect(img *image.NRGBA, r image.Rectangle, width int, c color.Color) {
	if width <= 0 {
		return
	}
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), c)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), c)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), c)
	fillRect(img, image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// drawLabel draws text using a 3x5 pixel digit font on a filled backdrop.
// Characters without a glyph advance the cursor and draw nothing.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.Color) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
	}

	const charWidth, labelHeight = 4, 6
	fillRect(img, image.Rect(x-1, y-1, x+len(text)*charWidth, y+labelHeight), bg)

	cx := x
	for _, ch := range text {
		if glyph, ok := glyphs[ch]; ok {
			for row, line := range glyph {
				for col, pixel := range line {
					if pixel == '1' {
						fillRect(img, image.Rect(cx+col, y+row, cx+col+1, y+row+1), fg)
					}
				}
			}
		}
		cx += charWidth
	}
}
