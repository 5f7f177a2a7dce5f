package color

import "fmt"

// HSL is a colour in hue/saturation/lightness form. H is in degrees and
// kept in [0,360); S and L are percentages in [0,100].
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// RGB is an 8-bit colour.
type RGB struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{R: 0, G: 0, B: 0}
)

const (
	WhiteHex = "#ffffff"
	BlackHex = "#000000"
)

// RGB converts c to 8-bit RGB.
func (c HSL) RGB() RGB {
	return HSLToRGB(c.H, c.S, c.L)
}

// Hex returns c as a lowercase "#rrggbb" string.
func (c HSL) Hex() string {
	return HSLToHex(c.H, c.S, c.L)
}

// TextColor returns the legible text colour for c used as a background.
func (c HSL) TextColor() string {
	return TextColor(c.H, c.S, c.L)
}

// String formats c the way CSS does.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", c.H, c.S, c.L)
}

// String formats c the way CSS does.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
