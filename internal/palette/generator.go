package palette

import (
	"math/rand"
	"time"

	"chroma/internal/color"
	"chroma/internal/harmony"
)

// Generator produces fresh colours for a scheme from an injected source of
// randomness.
type Generator struct {
	rng harmony.RandSource
}

// NewGenerator wraps rng. A nil rng is replaced with a time-seeded one.
func NewGenerator(rng harmony.RandSource) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// NewSeededGenerator returns a Generator seeded with seed, or with the
// current time when seed is zero.
func NewSeededGenerator(seed int64) *Generator {
	if seed == 0 {
		return NewGenerator(nil)
	}
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

// Colors returns the colours a regeneration under scheme should use. The
// random scheme draws every colour independently; the others expand a
// random base colour.
func (g *Generator) Colors(scheme harmony.Scheme) []color.HSL {
	if scheme == harmony.SchemeRandom {
		return harmony.Generate(color.HSL{}, harmony.SchemeRandom, g.rng)
	}
	return harmony.Generate(harmony.RandomHSL(g.rng), scheme, g.rng)
}

// Random returns one random colour.
func (g *Generator) Random() color.HSL {
	return harmony.RandomHSL(g.rng)
}

// FromBase expands a caller-chosen base colour under scheme. The random
// scheme ignores base.
func (g *Generator) FromBase(base color.HSL, scheme harmony.Scheme) []color.HSL {
	return harmony.Generate(base, scheme, g.rng)
}
