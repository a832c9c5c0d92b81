package color

import "math"

// HSL represents a color in the HSL model. Hue is in degrees, saturation
// and lightness are percentages.
type HSL struct {
	H, S, L float64
}

// Normalize wraps hue into [0, 360) and clamps saturation and lightness
// into [0, 100].
func (h HSL) Normalize() HSL {
	hue := math.Mod(h.H, 360)
	if hue < 0 {
		hue += 360
	}
	return HSL{
		H: hue,
		S: clampPercent(h.S),
		L: clampPercent(h.L),
	}
}

// RGB converts the HSL color to RGB using the sector transform. Channel
// values are truncated, not rounded; callers relying on exact channel
// output depend on this.
func (h HSL) RGB() Color {
	n := h.Normalize()
	s := n.S / 100
	l := n.L / 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(n.H/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case n.H < 60:
		r, g, b = c, x, 0
	case n.H < 120:
		r, g, b = x, c, 0
	case n.H < 180:
		r, g, b = 0, c, x
	case n.H < 240:
		r, g, b = 0, x, c
	case n.H < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Color{
		R: channel(r + m),
		G: channel(g + m),
		B: channel(b + m),
	}
}

// channel scales a [0,1] value to a byte, truncating toward zero.
func channel(v float64) uint8 {
	i := int(v * 255)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return uint8(i)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
