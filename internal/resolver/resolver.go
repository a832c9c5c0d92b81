// Package resolver turns free-form color descriptions into RGB values.
//
// Three strategies are tried in priority order: literal hex codes, CSS
// color names, and vague descriptions like "dark red" or "pastel pink".
// Earlier strategies are less ambiguous, so the first match wins.
package resolver

import (
	"strings"

	"github.com/joshrandall8478/color-wizard/internal/color"
)

// NameTable is the external name-to-color capability consulted by the
// named-color strategy. Implementations must match case-insensitively.
type NameTable interface {
	Lookup(name string) (color.Color, bool)
}

// Result is a successful resolution: the color and its canonical hex
// form ("#" followed by six uppercase digits).
type Result struct {
	Color color.Color
	Hex   string
}

// Pipeline resolves descriptions by trying each strategy in order.
// A Pipeline is immutable after construction and safe for concurrent use.
type Pipeline struct {
	strategies []strategy
}

type strategy interface {
	resolve(input string) (color.Color, bool)
}

// New returns a Pipeline that tries hex codes, then the given name
// table, then vague descriptions.
func New(names NameTable) *Pipeline {
	return &Pipeline{
		strategies: []strategy{
			hexCode{},
			namedColor{names: names},
			vagueDescription{},
		},
	}
}

// Resolve parses a color description. The second return value is false
// when no strategy recognized the input; the Result is then zero.
func (p *Pipeline) Resolve(input string) (Result, bool) {
	for _, s := range p.strategies {
		if c, ok := s.resolve(input); ok {
			return Result{Color: c, Hex: c.HexUpper()}, true
		}
	}
	return Result{}, false
}

// Chain combines name tables into one that consults each in order and
// returns the first hit. Nil entries are skipped.
func Chain(tables ...NameTable) NameTable {
	return chain(tables)
}

type chain []NameTable

func (c chain) Lookup(name string) (color.Color, bool) {
	for _, t := range c {
		if t == nil {
			continue
		}
		if v, ok := t.Lookup(name); ok {
			return v, true
		}
	}
	return color.Color{}, false
}

// RoleLabel derives a canonical identifier from a hex string by
// stripping the leading # and uppercasing, e.g. "#ff5733" -> "FF5733".
func RoleLabel(hex string) string {
	return strings.ToUpper(strings.TrimPrefix(hex, "#"))
}
