// Package colorwizard resolves free-form color descriptions into RGB
// values. A description can be a hex code, a CSS color name, or a vague
// phrase like "dark red" or "pastel pink".
package colorwizard

import (
	"github.com/joshrandall8478/color-wizard/internal/palette"
	"github.com/joshrandall8478/color-wizard/internal/resolver"
	"github.com/joshrandall8478/color-wizard/internal/webcolor"
)

// Result is a resolved color with its canonical uppercase hex form.
type Result = resolver.Result

var defaultPipeline = resolver.New(webcolor.Table{})

// Resolve parses a color description using the default pipeline: hex
// codes first, then CSS color names, then vague descriptions. The second
// return value is false when the input is not recognizable as a color.
func Resolve(input string) (Result, bool) {
	return defaultPipeline.Resolve(input)
}

// RoleLabel derives a canonical identifier from a hex string, e.g.
// "#ff5733" -> "FF5733".
func RoleLabel(hex string) string {
	return resolver.RoleLabel(hex)
}

// NewPipeline builds a pipeline whose name lookups consult the given
// palette before the CSS color names. A nil palette yields the default
// pipeline behavior.
func NewPipeline(p *palette.Palette) *resolver.Pipeline {
	if p == nil {
		return resolver.New(webcolor.Table{})
	}
	return resolver.New(resolver.Chain(p, webcolor.Table{}))
}

// LoadPalette loads a palette file whose entries may use any resolvable
// description.
func LoadPalette(path string) (*palette.Palette, error) {
	return palette.Load(path, defaultPipeline)
}
