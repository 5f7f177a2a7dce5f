package harmony

import (
	"fmt"
	"strings"
)

// Scheme identifies a harmony rule.
type Scheme string

const (
	SchemeAnalogous          Scheme = "analogous"
	SchemeMonochromatic      Scheme = "monochromatic"
	SchemeTriadic            Scheme = "triadic"
	SchemeComplementary      Scheme = "complementary"
	SchemeSplitComplementary Scheme = "split-complementary"
	SchemeRandom             Scheme = "random"
)

var schemeOrder = []Scheme{
	SchemeRandom,
	SchemeAnalogous,
	SchemeMonochromatic,
	SchemeTriadic,
	SchemeComplementary,
	SchemeSplitComplementary,
}

// Schemes returns every scheme in display order.
func Schemes() []Scheme {
	out := make([]Scheme, len(schemeOrder))
	copy(out, schemeOrder)
	return out
}

// ParseScheme validates user input. Matching is case-insensitive.
func ParseScheme(s string) (Scheme, error) {
	want := Scheme(strings.ToLower(strings.TrimSpace(s)))
	for _, sc := range schemeOrder {
		if sc == want {
			return sc, nil
		}
	}
	return "", fmt.Errorf("unknown harmony scheme %q (want one of %s)", s, strings.Join(schemeNames(), ", "))
}

func schemeNames() []string {
	names := make([]string, len(schemeOrder))
	for i, sc := range schemeOrder {
		names[i] = string(sc)
	}
	return names
}

// Next returns the scheme after s in display order, wrapping around.
// Unknown schemes step to the first one.
func (s Scheme) Next() Scheme {
	for i, sc := range schemeOrder {
		if sc == s {
			return schemeOrder[(i+1)%len(schemeOrder)]
		}
	}
	return schemeOrder[0]
}

// Prev returns the scheme before s in display order, wrapping around.
// Unknown schemes step to the last one.
func (s Scheme) Prev() Scheme {
	n := len(schemeOrder)
	for i, sc := range schemeOrder {
		if sc == s {
			return schemeOrder[(i+n-1)%n]
		}
	}
	return schemeOrder[n-1]
}

// Title returns a display name such as "Split-Complementary".
func (s Scheme) Title() string {
	parts := strings.Split(string(s), "-")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "-")
}
