package resolver

import (
	"slices"

	"github.com/joshrandall8478/color-wizard/internal/color"
)

// baseColors anchors each recognized hue at an HSL triple chosen to look
// good as a starting point for modifiers. Read-only after init.
var baseColors = map[string]color.HSL{
	"red":     {H: 0, S: 100, L: 50},
	"orange":  {H: 30, S: 100, L: 50},
	"yellow":  {H: 60, S: 100, L: 50},
	"lime":    {H: 90, S: 100, L: 50},
	"green":   {H: 120, S: 100, L: 40},
	"teal":    {H: 180, S: 100, L: 35},
	"cyan":    {H: 180, S: 100, L: 50},
	"blue":    {H: 210, S: 100, L: 50},
	"indigo":  {H: 240, S: 100, L: 40},
	"purple":  {H: 270, S: 100, L: 50},
	"violet":  {H: 270, S: 100, L: 60},
	"magenta": {H: 300, S: 100, L: 50},
	"pink":    {H: 330, S: 100, L: 70},
	"brown":   {H: 30, S: 60, L: 30},
	"gray":    {H: 0, S: 0, L: 50},
	"grey":    {H: 0, S: 0, L: 50},
	"white":   {H: 0, S: 0, L: 100},
	"black":   {H: 0, S: 0, L: 0},
}

// Modifier adjusts a running HSL state: the hue and lightness deltas add,
// the saturation factor multiplies.
type Modifier struct {
	HueDelta   float64
	SatFactor  float64
	LightDelta float64
}

// modifiers maps modifier words to their adjustments. Read-only after init.
var modifiers = map[string]Modifier{
	// Lightness
	"light":  {SatFactor: 1, LightDelta: 20},
	"pale":   {SatFactor: 0.6, LightDelta: 25},
	"pastel": {SatFactor: 0.5, LightDelta: 30},
	"dark":   {SatFactor: 1, LightDelta: -25},
	"deep":   {SatFactor: 1.1, LightDelta: -20},

	// Saturation
	"bright": {SatFactor: 1.2, LightDelta: 5},
	"vivid":  {SatFactor: 1.3},
	"muted":  {SatFactor: 0.5},
	"dull":   {SatFactor: 0.4},
	"soft":   {SatFactor: 0.6, LightDelta: 10},

	// Combined effects
	"neon":     {SatFactor: 1.4, LightDelta: 10},
	"electric": {SatFactor: 1.3, LightDelta: 5},
	"dusty":    {SatFactor: 0.4, LightDelta: -5},
	"warm":     {HueDelta: 15, SatFactor: 1},
	"cool":     {HueDelta: -15, SatFactor: 1},
}

// BaseColorNames returns the base color words in sorted order.
func BaseColorNames() []string {
	return sortedKeys(baseColors)
}

// ModifierNames returns the modifier words in sorted order.
func ModifierNames() []string {
	return sortedKeys(modifiers)
}

// BaseColor returns the HSL anchor for a base color word.
func BaseColor(name string) (color.HSL, bool) {
	h, ok := baseColors[name]
	return h, ok
}

// ModifierFor returns the adjustment for a modifier word.
func ModifierFor(name string) (Modifier, bool) {
	m, ok := modifiers[name]
	return m, ok
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
