package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Palette maps resource names to colors.
type Palette map[string]Color

// ParseHex parses #rgb, #rrggbb and #rrggbbaa.
func ParseHex(value string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return Color{}, fmt.Errorf("invalid color %q", value)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q", value)
	}
	return Color{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

// Resolve parses value as a hex literal or a palette name.
func (p Palette) Resolve(value string) (Color, error) {
	v := strings.TrimSpace(value)
	if strings.HasPrefix(v, "#") {
		return ParseHex(v)
	}
	if c, ok := p[v]; ok {
		return c, nil
	}
	if c, ok := namedColors[strings.ToLower(v)]; ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("unknown color %q", value)
}

var namedColors = map[string]Color{
	"black":       {A: 255},
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"transparent": {},
}
