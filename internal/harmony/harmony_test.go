package harmony

import (
	"math/rand"
	"testing"

	"chroma/internal/color"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays vals in order, reducing each modulo n.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

// edgeRand always returns the largest value Intn may produce.
type edgeRand struct{}

func (edgeRand) Intn(n int) int { return n - 1 }

func TestRandomHSL(t *testing.T) {
	tests := []struct {
		name string
		rng  RandSource
		want color.HSL
	}{
		{"lowest draw", &scriptedRand{vals: []int{0}}, color.HSL{H: 0, S: 50, L: 30}},
		{"highest draw", edgeRand{}, color.HSL{H: 359, S: 99, L: 69}},
		{"scripted draw", &scriptedRand{vals: []int{10, 20, 5}}, color.HSL{H: 10, S: 70, L: 35}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RandomHSL(tt.rng))
		})
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		c := RandomHSL(rng)
		assert.GreaterOrEqual(t, c.H, 0.0)
		assert.Less(t, c.H, 360.0)
		assert.GreaterOrEqual(t, c.S, 50.0)
		assert.LessOrEqual(t, c.S, 99.0)
		assert.GreaterOrEqual(t, c.L, 30.0)
		assert.LessOrEqual(t, c.L, 69.0)
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name   string
		base   color.HSL
		scheme Scheme
		want   []color.HSL
	}{
		{
			name:   "analogous wraps negative offsets",
			base:   color.HSL{H: 0, S: 80, L: 50},
			scheme: SchemeAnalogous,
			want: []color.HSL{
				{H: 0, S: 80, L: 50}, {H: 30, S: 80, L: 50}, {H: 60, S: 80, L: 50},
				{H: 330, S: 80, L: 50}, {H: 300, S: 80, L: 50},
			},
		},
		{
			name:   "monochromatic clamps lightness and saturation",
			base:   color.HSL{H: 200, S: 20, L: 90},
			scheme: SchemeMonochromatic,
			want: []color.HSL{
				{H: 200, S: 20, L: 90}, {H: 200, S: 20, L: 70}, {H: 200, S: 20, L: 100},
				{H: 200, S: 0, L: 100}, {H: 200, S: 20, L: 50},
			},
		},
		{
			name:   "triadic clamps shade at zero",
			base:   color.HSL{H: 300, S: 50, L: 10},
			scheme: SchemeTriadic,
			want: []color.HSL{
				{H: 300, S: 50, L: 10}, {H: 60, S: 50, L: 10}, {H: 180, S: 50, L: 10},
				{H: 60, S: 50, L: 0}, {H: 180, S: 50, L: 30},
			},
		},
		{
			name:   "complementary",
			base:   color.HSL{H: 0, S: 80, L: 50},
			scheme: SchemeComplementary,
			want: []color.HSL{
				{H: 0, S: 80, L: 50}, {H: 180, S: 80, L: 50}, {H: 0, S: 80, L: 70},
				{H: 180, S: 80, L: 30}, {H: 0, S: 60, L: 90},
			},
		},
		{
			name:   "complementary light tint clamps saturation",
			base:   color.HSL{H: 90, S: 10, L: 85},
			scheme: SchemeComplementary,
			want: []color.HSL{
				{H: 90, S: 10, L: 85}, {H: 270, S: 10, L: 85}, {H: 90, S: 10, L: 100},
				{H: 270, S: 10, L: 65}, {H: 90, S: 0, L: 90},
			},
		},
		{
			name:   "split complementary",
			base:   color.HSL{H: 100, S: 60, L: 40},
			scheme: SchemeSplitComplementary,
			want: []color.HSL{
				{H: 100, S: 60, L: 40}, {H: 250, S: 60, L: 40}, {H: 310, S: 60, L: 40},
				{H: 250, S: 60, L: 20}, {H: 310, S: 60, L: 60},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.base, tt.scheme, edgeRand{})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateComplementaryExample(t *testing.T) {
	got := Generate(color.HSL{H: 0, S: 80, L: 50}, SchemeComplementary, nil)
	require.Len(t, got, PaletteSize)
	assert.Equal(t, color.HSL{H: 180, S: 80, L: 50}, got[1])
}

func TestGenerateRandomIgnoresBase(t *testing.T) {
	vals := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	got := Generate(color.HSL{H: 42, S: 42, L: 42}, SchemeRandom, &scriptedRand{vals: vals})

	want := []color.HSL{
		{H: 1, S: 52, L: 33},
		{H: 4, S: 55, L: 36},
		{H: 7, S: 58, L: 39},
		{H: 10, S: 61, L: 42},
		{H: 13, S: 64, L: 45},
	}
	assert.Equal(t, want, got)
}

func TestGenerateUnknownSchemeFallsBackToRandom(t *testing.T) {
	vals := []int{100, 10, 10}
	fallback := Generate(color.HSL{H: 0, S: 80, L: 50}, Scheme("pastel"), &scriptedRand{vals: vals})
	random := Generate(color.HSL{H: 0, S: 80, L: 50}, SchemeRandom, &scriptedRand{vals: vals})
	assert.Equal(t, random, fallback)
}

func TestGenerateCardinalityAndRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bases := []color.HSL{
		{H: 0, S: 0, L: 0},
		{H: 359, S: 100, L: 100},
		{H: 180, S: 50, L: 50},
		{H: 15, S: 5, L: 95},
	}
	for i := 0; i < 50; i++ {
		bases = append(bases, RandomHSL(rng))
	}

	schemes := append(Schemes(), Scheme("unknown"))
	for _, base := range bases {
		for _, sc := range schemes {
			got := Generate(base, sc, rng)
			require.Len(t, got, PaletteSize, "scheme %s", sc)
			for _, c := range got {
				assert.GreaterOrEqual(t, c.H, 0.0)
				assert.Less(t, c.H, 360.0)
				assert.GreaterOrEqual(t, c.S, 0.0)
				assert.LessOrEqual(t, c.S, 100.0)
				assert.GreaterOrEqual(t, c.L, 0.0)
				assert.LessOrEqual(t, c.L, 100.0)
			}
		}
	}
}

func hues(hs ...float64) []color.HSL {
	out := make([]color.HSL, len(hs))
	for i, h := range hs {
		out[i] = color.HSL{H: h, S: 70, L: 50}
	}
	return out
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		colors []color.HSL
		want   Label
	}{
		{"tight cluster", hues(10, 12, 15, 8, 11), LabelMonochromatic},
		{"cluster across zero", hues(0, 5, 355, 358, 3), LabelMonochromatic},
		{"identical hues", hues(200, 200, 200, 200, 200), LabelMonochromatic},
		{"spread of exactly ten", hues(20, 25, 30, 22, 28), LabelMonochromatic},
		{"within ninety degrees", hues(10, 30, 50, 70, 90), LabelAnalogous},
		{"analogous across zero", hues(340, 350, 0, 20, 40), LabelAnalogous},
		{"evenly spread", hues(0, 72, 144, 216, 288), LabelCustomMixed},
		{"triadic", hues(0, 120, 240, 120, 240), LabelCustomMixed},
		{"complementary", hues(0, 180, 0, 180, 0), LabelCustomMixed},
		{"exactly ninety degrees is not analogous", hues(0, 30, 60, 90, 45), LabelCustomMixed},
		{"empty", nil, LabelCustomMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.colors))
		})
	}
}

func TestDetectDoesNotReorderInput(t *testing.T) {
	in := hues(50, 10, 30)
	Detect(in)
	assert.Equal(t, hues(50, 10, 30), in)
}

func TestDetectGeneratedMonochromatic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		palette := Generate(RandomHSL(rng), SchemeMonochromatic, rng)
		assert.Equal(t, LabelMonochromatic, Detect(palette))
	}
}

func TestLabelString(t *testing.T) {
	assert.Equal(t, "Monochromatic", LabelMonochromatic.String())
	assert.Equal(t, "Analogous", LabelAnalogous.String())
	assert.Equal(t, "Custom / Mixed", LabelCustomMixed.String())
}

func TestParseScheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Scheme
		wantErr bool
	}{
		{"triadic", SchemeTriadic, false},
		{"  Split-Complementary ", SchemeSplitComplementary, false},
		{"RANDOM", SchemeRandom, false},
		{"pastel", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScheme(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchemeNextCycles(t *testing.T) {
	all := Schemes()
	s := all[0]
	for i := 1; i <= len(all); i++ {
		s = s.Next()
		assert.Equal(t, all[i%len(all)], s)
	}
	assert.Equal(t, all[0], Scheme("bogus").Next())
}

func TestSchemePrevUndoesNext(t *testing.T) {
	for _, s := range Schemes() {
		assert.Equal(t, s, s.Next().Prev())
	}
	assert.Equal(t, SchemeSplitComplementary, SchemeRandom.Prev())
	assert.Equal(t, SchemeSplitComplementary, Scheme("bogus").Prev())
}

func TestSchemeTitle(t *testing.T) {
	assert.Equal(t, "Split-Complementary", SchemeSplitComplementary.Title())
	assert.Equal(t, "Analogous", SchemeAnalogous.Title())
}
