package palette

import (
	"chroma/internal/color"
	"chroma/internal/harmony"
)

// Size is the number of slots in a palette.
const Size = harmony.PaletteSize

// Slot is one swatch. Locked slots survive regeneration.
type Slot struct {
	Color  color.HSL `json:"color"`
	Locked bool      `json:"locked"`
}

// Hex returns the slot colour as "#rrggbb".
func (s Slot) Hex() string {
	return s.Color.Hex()
}

// State is an immutable palette snapshot.
type State struct {
	Slots  [Size]Slot     `json:"slots"`
	Scheme harmony.Scheme `json:"scheme"`
}

// New returns a palette of freshly generated, unlocked slots.
func New(gen *Generator, scheme harmony.Scheme) State {
	st := State{Scheme: scheme}
	fill(&st, gen.Colors(scheme), gen)
	return st
}

// Regenerate replaces every unlocked slot with a new colour from the
// current scheme. Locked slots are kept verbatim.
func (st State) Regenerate(gen *Generator) State {
	next := st
	fill(&next, gen.Colors(st.Scheme), gen)
	return next
}

// WithScheme switches to scheme and regenerates.
func (st State) WithScheme(scheme harmony.Scheme, gen *Generator) State {
	next := st
	next.Scheme = scheme
	return next.Regenerate(gen)
}

// fill pairs unlocked slots positionally with colors, falling back to a
// random colour when colors runs short.
func fill(st *State, colors []color.HSL, gen *Generator) {
	for i := range st.Slots {
		if st.Slots[i].Locked {
			continue
		}
		if i < len(colors) {
			st.Slots[i].Color = colors[i]
		} else {
			st.Slots[i].Color = gen.Random()
		}
	}
}

// ToggleLock flips the lock on slot i. Out-of-range indices are ignored.
func (st State) ToggleLock(i int) State {
	if !valid(i) {
		return st
	}
	next := st
	next.Slots[i].Locked = !next.Slots[i].Locked
	return next
}

// SetHex overrides slot i with a hex colour and locks it. Malformed hex
// degrades to black, as color.HexToHSL does.
func (st State) SetHex(i int, hex string) State {
	if !valid(i) {
		return st
	}
	return st.SetColor(i, color.HexToHSL(hex))
}

// SetColor overrides slot i and locks it.
func (st State) SetColor(i int, c color.HSL) State {
	if !valid(i) {
		return st
	}
	next := st
	next.Slots[i] = Slot{Color: c, Locked: true}
	return next
}

// Colors returns the slot colours in order.
func (st State) Colors() []color.HSL {
	out := make([]color.HSL, Size)
	for i, s := range st.Slots {
		out[i] = s.Color
	}
	return out
}

// Hexes returns the slot colours as hex strings in order.
func (st State) Hexes() []string {
	out := make([]string, Size)
	for i, s := range st.Slots {
		out[i] = s.Hex()
	}
	return out
}

// LockedCount reports how many slots are locked.
func (st State) LockedCount() int {
	n := 0
	for _, s := range st.Slots {
		if s.Locked {
			n++
		}
	}
	return n
}

// Harmony classifies the current colours.
func (st State) Harmony() harmony.Label {
	return harmony.Detect(st.Colors())
}

func valid(i int) bool {
	return i >= 0 && i < Size
}
