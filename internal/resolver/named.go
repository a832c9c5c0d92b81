package resolver

import (
	"strings"

	"github.com/joshrandall8478/color-wizard/internal/color"
)

// namedColor resolves canonical color names through the supplied table.
type namedColor struct {
	names NameTable
}

func (n namedColor) resolve(input string) (color.Color, bool) {
	if n.names == nil {
		return color.Color{}, false
	}
	return n.names.Lookup(strings.ToLower(strings.TrimSpace(input)))
}
