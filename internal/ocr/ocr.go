package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
)

var (
	// ErrUnavailable is returned when the binary has no Tesseract binding.
	ErrUnavailable = errors.New("ocr: tesseract support not compiled in (build with cgo)")

	// ErrNoGrid indicates that recognition produced no grid lines.
	ErrNoGrid = errors.New("ocr: no grid characters recognised")
)

// DefaultLanguage is the Tesseract language used when none is configured.
const DefaultLanguage = "eng"

// Whitelist restricts recognition to the grid alphabet.
const Whitelist = "*-"

// minHeight is the height below which input is upscaled before recognition.
// Tesseract struggles with glyphs much smaller than 20px.
const minHeight = 200

// Options configures recognition.
type Options struct {
	Language string
}

func (o Options) language() string {
	if o.Language == "" {
		return DefaultLanguage
	}
	return o.Language
}

// ReadGridFile opens the image at path and reads a grid from it.
func ReadGridFile(path string, opts Options) ([]string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return ReadGrid(img, opts)
}

// preprocess prepares img for Tesseract: grayscale, a contrast boost and
// upscaling of small inputs. The result is PNG encoded.
func preprocess(img image.Image) ([]byte, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("ocr: empty image")
	}

	out := imaging.AdjustContrast(imaging.Grayscale(img), 40)
	if b.Dy() < minHeight {
		factor := (minHeight + b.Dy() - 1) / b.Dy()
		out = imaging.Resize(out, b.Dx()*factor, b.Dy()*factor, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// confusables maps characters Tesseract commonly returns for grid glyphs.
var confusables = strings.NewReplacer(
	"\u2014", "-",
	"\u2013", "-",
	"_", "-",
	"~", "-",
	"x", "*",
	"X", "*",
	"+", "*",
	"#", "*",
)

// normalizeLines turns raw recognised text into grid lines. Whitespace
// inside a line is dropped and blank lines are skipped. Characters outside
// the grid alphabet are kept so that grid.Parse can report them.
func normalizeLines(text string) ([]string, error) {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.Join(strings.Fields(confusables.Replace(raw)), "")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrNoGrid
	}
	return lines, nil
}
