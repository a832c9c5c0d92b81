// Package webcolor provides the standard CSS color name table and
// nearest-name lookup.
package webcolor

import (
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/joshrandall8478/color-wizard/internal/color"
)

// Table is the CSS named-color lookup. The zero value is ready to use.
type Table struct{}

// Lookup resolves a CSS color name to its RGB value. Names are matched
// case-insensitively with surrounding whitespace ignored. A miss is not
// an error, only a negative result.
func (Table) Lookup(name string) (color.Color, bool) {
	c, ok := names[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Names returns all CSS color names in sorted order.
func Names() []string {
	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Nearest returns the CSS color name whose value is perceptually closest
// to c, using CIE Lab distance. Ties resolve to the alphabetically first
// name so the result is deterministic.
func Nearest(c color.Color) (string, color.Color) {
	target := toColorful(c)

	bestName := ""
	var bestColor color.Color
	bestDist := -1.0

	for _, name := range Names() {
		candidate := names[name]
		d := target.DistanceLab(toColorful(candidate))
		if bestDist < 0 || d < bestDist {
			bestName, bestColor, bestDist = name, candidate, d
		}
	}

	return bestName, bestColor
}

func toColorful(c color.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
