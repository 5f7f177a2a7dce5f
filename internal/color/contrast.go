package color

import "math"

// Luminance returns the WCAG relative luminance of an 8-bit RGB colour.
func Luminance(r, g, b int) float64 {
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

// linearize converts one sRGB channel to linear light.
func linearize(v int) float64 {
	c := float64(v) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Contrast returns the WCAG contrast ratio between two colours, in [1,21].
func Contrast(a, b RGB) float64 {
	la := Luminance(a.R, a.G, a.B)
	lb := Luminance(b.R, b.G, b.B)
	return (math.Max(la, lb) + 0.05) / (math.Min(la, lb) + 0.05)
}

// TextColor picks white or black text for the given background, whichever
// contrasts more. White must win strictly.
func TextColor(h, s, l float64) string {
	bg := HSLToRGB(h, s, l)
	if Contrast(bg, White) > Contrast(bg, Black) {
		return WhiteHex
	}
	return BlackHex
}
