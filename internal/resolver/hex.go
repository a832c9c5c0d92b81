package resolver

import (
	"strconv"
	"strings"

	"github.com/joshrandall8478/color-wizard/internal/color"
)

// hexCode recognizes literal hex color codes: six hex digits, or three
// hex digits with each digit doubled ("F08" -> "FF0088"). A leading #
// and surrounding whitespace are allowed.
type hexCode struct{}

func (hexCode) resolve(input string) (color.Color, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(input), "#")

	switch len(s) {
	case 3:
		var expanded strings.Builder
		for _, r := range []byte(s) {
			expanded.WriteByte(r)
			expanded.WriteByte(r)
		}
		s = expanded.String()
	case 6:
	default:
		return color.Color{}, false
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.Color{}, false
	}
	return color.FromPacked(uint32(v)), true
}
