package core

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is a packed 0xAARRGGBB value.
// A zero alpha channel means "no color" (terminal default).
type Color uint32

// Predefined colors.
const (
	ColorNone  Color = 0
	ColorBlack Color = 0xFF000000
	ColorWhite Color = 0xFFFFFFFF
	ColorRed   Color = 0xFFFF0000
	ColorGreen Color = 0xFF00FF00
	ColorBlue  Color = 0xFF0000FF
)

// RGB builds an opaque color from its channels.
func RGB(r, g, b uint8) Color {
	return Color(0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// IsSet reports whether the color has any opacity.
func (c Color) IsSet() bool {
	return c.A() != 0
}

// Hex returns the color as "#RRGGBB", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

// String returns "#AARRGGBB".
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// Blend mixes c over base using the given opacity (0-255).
// The result is always opaque.
func (c Color) Blend(base Color, opacity uint8) Color {
	mix := func(a, b uint8) uint8 {
		return uint8((int(a)*int(opacity) + int(b)*(255-int(opacity))) / 255)
	}
	return RGB(mix(c.R(), base.R()), mix(c.G(), base.G()), mix(c.B(), base.B()))
}

// ParseColor parses "#RRGGBB", "#AARRGGBB" (the leading '#' is optional)
// or a decimal ARGB integer. Six-digit forms are opaque.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ColorNone, fmt.Errorf("core: empty color")
	}

	if !strings.HasPrefix(s, "#") && !strings.HasPrefix(s, "0x") {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Color(uint32(v)), nil //#nosec G115 -- ARGB values are stored as signed ints
		}
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ColorNone, fmt.Errorf("core: invalid color %q: %w", s, err)
	}

	switch len(hex) {
	case 6:
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		return Color(uint32(v)), nil
	default:
		return ColorNone, fmt.Errorf("core: invalid color %q: want 6 or 8 hex digits", s)
	}
}

// UnmarshalYAML accepts hex strings and integers.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseColor(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML writes the color as "#AARRGGBB".
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
