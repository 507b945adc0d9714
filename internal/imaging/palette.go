package imaging

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// goldenAngle spaces consecutive hues so neighbouring boxes never share a
// similar colour.
const goldenAngle = 137.508

// tintAmount is how far a box colour is pulled towards the background when
// washing the inside of a selected box.
const tintAmount = 0.75

// Palette returns n distinct, fully opaque outline colours.
// The sequence is deterministic: Palette(n)[i] == Palette(m)[i] for i < min(n, m).
func Palette(n int) []color.NRGBA {
	out := make([]color.NRGBA, n)
	for i := range out {
		hue := math.Mod(float64(i)*goldenAngle+200, 360)
		out[i] = toNRGBA(colorful.Hsv(hue, 0.75, 0.85))
	}
	return out
}

// Tint blends c towards bg in Lab space.
func Tint(c, bg color.NRGBA) color.NRGBA {
	fc, _ := colorful.MakeColor(c)
	fb, _ := colorful.MakeColor(bg)
	return toNRGBA(fc.BlendLab(fb, tintAmount).Clamped())
}

// ParseHexColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA".
func ParseHexColor(hex string) (color.NRGBA, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	alpha := uint8(255)
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in %q: %w", hex, err)
		}
		alpha = uint8(a)
		hex = hex[:7]
	}

	if len(hex) != 4 && len(hex) != 7 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color length %q", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	out := toNRGBA(c)
	out.A = alpha
	return out, nil
}

// colorOr parses hex, falling back to def when it is not a valid colour.
func colorOr(hex, def string) color.NRGBA {
	if c, err := ParseHexColor(hex); err == nil {
		return c
	}
	c, _ := ParseHexColor(def)
	return c
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
