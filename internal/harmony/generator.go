package harmony

import (
	"chroma/internal/color"
)

// PaletteSize is the fixed number of colours in a palette.
const PaletteSize = 5

// RandSource is the randomness Generate and RandomHSL draw from.
// *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// RandomHSL returns a vivid random colour: hue in [0,360), saturation in
// [50,99] and lightness in [30,69], all whole numbers.
func RandomHSL(rng RandSource) color.HSL {
	h := rng.Intn(360)
	s := 50 + rng.Intn(50)
	l := 30 + rng.Intn(40)
	return color.HSL{H: float64(h), S: float64(s), L: float64(l)}
}

// Generate returns PaletteSize colours derived from base under scheme.
// Unknown schemes fall back to SchemeRandom.
func Generate(base color.HSL, scheme Scheme, rng RandSource) []color.HSL {
	h, s, l := base.H, base.S, base.L

	switch scheme {
	case SchemeAnalogous:
		return hueOffsets(base, 0, 30, 60, -30, -60)

	case SchemeMonochromatic:
		return []color.HSL{
			hsl(h, s, l),
			hsl(h, s, l-20),
			hsl(h, s, l+20),
			hsl(h, s-30, l+40),
			hsl(h, s, l-40),
		}

	case SchemeTriadic:
		return []color.HSL{
			hsl(h, s, l),
			hsl(h+120, s, l),
			hsl(h+240, s, l),
			hsl(h+120, s, l-20),
			hsl(h+240, s, l+20),
		}

	case SchemeComplementary:
		return []color.HSL{
			hsl(h, s, l),
			hsl(h+180, s, l),
			hsl(h, s, l+20),
			hsl(h+180, s, l-20),
			hsl(h, s-20, 90),
		}

	case SchemeSplitComplementary:
		return []color.HSL{
			hsl(h, s, l),
			hsl(h+150, s, l),
			hsl(h+210, s, l),
			hsl(h+150, s, l-20),
			hsl(h+210, s, l+20),
		}

	case SchemeRandom:
		return randomPalette(rng)

	default:
		// Unrecognised schemes behave like SchemeRandom.
		return randomPalette(rng)
	}
}

func randomPalette(rng RandSource) []color.HSL {
	out := make([]color.HSL, PaletteSize)
	for i := range out {
		out[i] = RandomHSL(rng)
	}
	return out
}

func hueOffsets(base color.HSL, offsets ...float64) []color.HSL {
	out := make([]color.HSL, len(offsets))
	for i, off := range offsets {
		out[i] = hsl(base.H+off, base.S, base.L)
	}
	return out
}

// hsl builds a colour with the hue normalized and s/l clamped.
func hsl(h, s, l float64) color.HSL {
	return color.HSL{
		H: color.NormalizeHue(h),
		S: color.Clamp(s),
		L: color.Clamp(l),
	}
}
