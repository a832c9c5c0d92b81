package color

import (
	"fmt"
	"strings"
)

// Color represents an RGB color. The R, G, B uint8 fields are the source of truth;
// all output formats are derived from them.
type Color struct {
	R, G, B uint8
}

// FromPacked unpacks a 24-bit integer (R<<16 | G<<8 | B) into a Color.
func FromPacked(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Packed returns the color as a packed 24-bit integer (R<<16 | G<<8 | B).
func (c Color) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ParseHex parses a hex color string like "#eb6f92" into a Color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	var r, g, b uint8
	_, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: r, G: g, B: b}, nil
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexBare returns the color as a hex string without leading #, e.g. "eb6f92".
func (c Color) HexBare() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// HexUpper returns the color as a hex string with leading # and uppercase
// digits, e.g. "#EB6F92".
func (c Color) HexUpper() string {
	return fmt.Sprintf("#%06X", c.Packed())
}

// RGB returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
