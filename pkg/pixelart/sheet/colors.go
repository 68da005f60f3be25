package sheet

import (
	"fmt"
	"strconv"
)

// FillKey returns the canonical fill key for an RGB triple: six lowercase
// zero-padded hex digits ("rrggbb").
func FillKey(r, g, b uint8) string {
	return fmt.Sprintf("%02x%02x%02x", r, g, b)
}

// ParseFillColor decodes a stored fill color into an RGB triple. Excel
// stores fill colors as 8-digit ARGB ("FFRRGGBB"); the leading alpha pair
// is discarded. A bare 6-digit RGB value is accepted as-is. Any other
// width, or a non-hex digit, is malformed.
func ParseFillColor(s string) (r, g, b uint8, err error) {
	switch len(s) {
	case 8:
		s = s[2:]
	case 6:
	default:
		return 0, 0, 0, fmt.Errorf("malformed fill color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 24)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("malformed fill color %q: %v", s, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}
