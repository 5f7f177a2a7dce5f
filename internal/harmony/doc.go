// Package harmony builds five-colour palettes from classical colour-theory
// relationships and classifies arbitrary palettes back into a coarse
// harmony label.
//
// Generate is deterministic for every scheme except Random, which draws
// from the RandSource passed in. Pass a *rand.Rand in production and a
// scripted source in tests.
//
// Detect is a heuristic, not an inverse of Generate. It only tells
// monochromatic and analogous palettes apart from everything else; triadic,
// complementary and split-complementary palettes are all reported as
// LabelCustomMixed.
package harmony
