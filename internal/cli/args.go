package cli

import (
	"fmt"
	"strconv"
	"strings"

	"chroma/internal/color"
)

// ParseHexArg parses a hex colour given on the command line. The leading
// '#' is optional since shells treat it as a comment marker.
func ParseHexArg(s string) (color.RGB, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	rgb, ok := color.ParseHex(hex)
	if !ok {
		return color.Black, fmt.Errorf("invalid hex colour %q (want #rgb or #rrggbb)", s)
	}
	return rgb, nil
}

// ParseHSLArg parses "h,s,l". Hue is normalised and saturation and
// lightness clamped, like every generated colour.
func ParseHSLArg(s string) (color.HSL, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.HSL{}, fmt.Errorf("invalid HSL %q (want h,s,l)", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(p), "%"), 64)
		if err != nil {
			return color.HSL{}, fmt.Errorf("invalid HSL component %q: %w", p, err)
		}
		v[i] = f
	}
	return color.HSL{H: color.NormalizeHue(v[0]), S: color.Clamp(v[1]), L: color.Clamp(v[2])}, nil
}
