package resolver

import (
	"strings"

	"github.com/joshrandall8478/color-wizard/internal/color"
)

// vagueDescription parses phrases like "dark red" or "pastel pink".
//
// The first word that names a base color anchors the hue; every other
// word is a candidate modifier, applied to the running HSL state in its
// original left-to-right position (words before the base first, then
// words after it). Words that are neither base colors nor modifiers are
// ignored. Hue wrapping and saturation/lightness clamping happen once,
// after the last modifier.
type vagueDescription struct{}

func (vagueDescription) resolve(input string) (color.Color, bool) {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(input)))

	var state color.HSL
	var rest []string
	found := false
	for i, word := range words {
		if base, ok := baseColors[word]; ok {
			state = base
			rest = append(words[:i:i], words[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return color.Color{}, false
	}

	for _, word := range rest {
		m, ok := modifiers[word]
		if !ok {
			continue
		}
		state.H += m.HueDelta
		state.S *= m.SatFactor
		state.L += m.LightDelta
	}

	return state.RGB(), true
}
