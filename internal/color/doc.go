// Package color provides the colour-space math used by chroma.
//
// Colours are held as HSL (hue in degrees, saturation and lightness as
// percentages) and converted on demand to RGB and hex for rendering. The
// package also computes WCAG relative luminance and contrast ratios, which
// the UI uses to pick a legible black or white text colour for a swatch.
//
// # Conversions
//
//	rgb := color.HSLToRGB(210, 80, 50)  // RGB{R: 25, G: 128, B: 230}
//	hex := color.HSLToHex(210, 80, 50)  // "#1980e6"
//	hsl := color.HexToHSL("#1980e6")    // HSL{H: 210, S: 80.4, L: 50}
//
// HexToHSL accepts "#rgb" and "#rrggbb". Anything else degrades to black
// instead of returning an error, so callers can treat every hex string as
// convertible. ParseHex reports whether that fallback was taken.
//
// # Text colour
//
// TextColor returns "#ffffff" or "#000000", whichever has the higher
// contrast against the background. Ties go to black.
//
// # Theme
//
// The adaptive colours in theme.go style the terminal chrome around the
// swatches. Initialize toggles lipgloss' dark background detection.
//
// # Thread Safety
//
// All conversion functions are pure and safe for concurrent use.
package color
