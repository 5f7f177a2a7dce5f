package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// NormalizeHue wraps h into [0,360). Negative inputs wrap from the top.
func NormalizeHue(h float64) float64 {
	return math.Mod(math.Mod(h, 360)+360, 360)
}

// Clamp limits a saturation or lightness percentage to [0,100].
func Clamp(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func clampChannel(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v)
}

// HSLToRGB converts an HSL triple to 8-bit RGB. h need not be normalized,
// negative hues wrap the same way NormalizeHue does; s and l are percentages.
func HSLToRGB(h, s, l float64) RGB {
	l /= 100
	a := s * math.Min(l, 1-l) / 100
	f := func(n float64) int {
		k := math.Mod(math.Mod(n+h/30, 12)+12, 12)
		c := l - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
		return clampChannel(roundHalfUp(255 * c))
	}
	return RGB{R: f(0), G: f(8), B: f(4)}
}

// HSLToHex converts an HSL triple to a lowercase "#rrggbb" string.
func HSLToHex(h, s, l float64) string {
	return HSLToRGB(h, s, l).Hex()
}

// Hex formats c as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// ParseHex decodes "#rgb" or "#rrggbb". On any other input it returns
// black and false.
func ParseHex(hex string) (RGB, bool) {
	switch len(hex) {
	case 4, 7:
		c, err := colorful.Hex(hex)
		if err != nil {
			return Black, false
		}
		r, g, b := c.RGB255()
		return RGB{R: int(r), G: int(g), B: int(b)}, true
	default:
		return Black, false
	}
}

// HexToHSL converts a hex string to HSL. Hue is rounded to whole degrees,
// saturation and lightness to one decimal. Malformed input yields black.
func HexToHSL(hex string) HSL {
	rgb, _ := ParseHex(hex)
	return rgb.HSL()
}

// HSL converts c to HSL with the same rounding as HexToHSL.
func (c RGB) HSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	cmin := math.Min(r, math.Min(g, b))
	cmax := math.Max(r, math.Max(g, b))
	delta := cmax - cmin

	var h float64
	switch {
	case delta == 0:
		h = 0
	case cmax == r:
		h = math.Mod((g-b)/delta, 6)
	case cmax == g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h = roundHalfUp(h * 60)
	if h < 0 {
		h += 360
	}

	l := (cmax + cmin) / 2
	var s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}

	return HSL{
		H: NormalizeHue(h),
		S: Clamp(roundTenth(s * 100)),
		L: Clamp(roundTenth(l * 100)),
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
