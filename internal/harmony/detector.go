package harmony

import (
	"slices"

	"chroma/internal/color"
)

// Label is the result of Detect.
type Label string

const (
	LabelMonochromatic Label = "monochromatic"
	LabelAnalogous     Label = "analogous"
	LabelCustomMixed   Label = "custom-mixed"
)

const (
	// monochromaticSpread is the widest hue range still read as one hue.
	monochromaticSpread = 10
	// analogousGap is the empty arc beyond which the remaining hues must
	// sit inside 90 degrees.
	analogousGap = 270
)

// String returns the badge text for l.
func (l Label) String() string {
	switch l {
	case LabelMonochromatic:
		return "Monochromatic"
	case LabelAnalogous:
		return "Analogous"
	default:
		return "Custom / Mixed"
	}
}

// Detect classifies a palette by how its hues are distributed around the
// wheel. It never fails; an empty palette is LabelCustomMixed.
//
// The spread of a palette is the smallest arc containing every hue, i.e.
// 360 minus the largest gap between neighbouring hues (the wrap-around gap
// included). A cluster straddling 0/360 therefore counts as tight.
func Detect(colors []color.HSL) Label {
	if len(colors) == 0 {
		return LabelCustomMixed
	}

	hues := make([]float64, len(colors))
	for i, c := range colors {
		hues[i] = c.H
	}
	slices.Sort(hues)

	maxGap := hues[0] + 360 - hues[len(hues)-1]
	for i := 1; i < len(hues); i++ {
		maxGap = max(maxGap, hues[i]-hues[i-1])
	}

	if 360-maxGap <= monochromaticSpread {
		return LabelMonochromatic
	}
	if maxGap > analogousGap {
		return LabelAnalogous
	}
	return LabelCustomMixed
}
