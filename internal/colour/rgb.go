// Package colour provides OKLCH colour conversion, palette generation and
// WCAG contrast validation.
package colour

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a colour in 8-bit sRGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a canonical lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBA implements color.Color. The colour is always fully opaque.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(rgb.R)
	r |= r << 8
	g = uint32(rgb.G)
	g |= g << 8
	b = uint32(rgb.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// ParseHex parses a "#rrggbb" string. Upper and lower case digits are
// accepted; shorthand forms and strings without the leading '#' are not.
func ParseHex(s string) (RGB, bool) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, false
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return RGB{}, false
		}
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, false
	}
	return fromColorful(c), true
}

// IsHex reports whether s is a well-formed "#rrggbb" string.
func IsHex(s string) bool {
	_, ok := ParseHex(s)
	return ok
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// fromColorful converts a go-colorful colour to 8-bit RGB, clamping each
// channel into [0, 255].
func fromColorful(c colorful.Color) RGB {
	return RGB{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
	}
}

func channel8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

func (rgb RGB) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}
