package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidOKLCH is returned when an OKLCH string cannot be parsed.
var ErrInvalidOKLCH = errors.New("invalid oklch colour")

// achromaticChroma is the chroma below which a parsed colour is treated as grey.
// One 8-bit step away from grey already yields roughly 0.003.
const achromaticChroma = 2e-4

// OKLCH represents a colour in the cylindrical form of the OKLab perceptual space.
// L is lightness in [0, 1], C is chroma (roughly [0, 0.4] inside sRGB) and
// H is hue in degrees [0, 360).
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// String returns the colour in CSS notation, e.g. "oklch(0.6230 0.1500 265.00)".
func (o OKLCH) String() string {
	return fmt.Sprintf("oklch(%.4f %.4f %.2f)", o.L, o.C, o.H)
}

// OklchToRGB converts an OKLCH colour to 8-bit sRGB.
// Results outside the sRGB gamut are clamped per channel.
func OklchToRGB(o OKLCH) RGB {
	l := clamp01(o.L)
	c := o.C
	if math.IsNaN(c) || c < 0 {
		c = 0
	}

	if c == 0 {
		// Matrix rounding can leave the channels a hair apart; greys must be exact.
		g := colorful.OkLch(l, 0, 0)
		v := channel8((g.R + g.G + g.B) / 3)
		return RGB{R: v, G: v, B: v}
	}

	return fromColorful(colorful.OkLch(l, c, NormaliseHue(o.H)))
}

// OklchToHex converts an OKLCH colour to a "#rrggbb" string.
func OklchToHex(o OKLCH) string {
	return OklchToRGB(o).Hex()
}

// HexToOklch converts a "#rrggbb" string to OKLCH.
// ok is false when the input is malformed.
func HexToOklch(hex string) (OKLCH, bool) {
	rgb, ok := ParseHex(hex)
	if !ok {
		return OKLCH{}, false
	}
	return RGBToOklch(rgb), true
}

// RGBToOklch converts an 8-bit sRGB colour to OKLCH.
func RGBToOklch(rgb RGB) OKLCH {
	l, c, h := rgb.toColorful().OkLch()
	if c < achromaticChroma {
		c, h = 0, 0
	}
	return OKLCH{L: l, C: c, H: NormaliseHue(h)}
}

// InGamut reports whether the colour can be displayed in sRGB without clamping.
func InGamut(o OKLCH) bool {
	const eps = 1e-6
	c := colorful.OkLch(clamp01(o.L), math.Max(0, o.C), NormaliseHue(o.H))
	for _, v := range []float64{c.R, c.G, c.B} {
		if v < -eps || v > 1+eps || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// FitGamut reduces chroma at constant lightness and hue until the colour
// fits inside sRGB. In-gamut colours are returned unchanged.
func FitGamut(o OKLCH) OKLCH {
	o.L = clamp01(o.L)
	if o.C <= 0 || InGamut(o) {
		return o
	}

	lo, hi := 0.0, o.C
	for range 24 {
		mid := (lo + hi) / 2
		if InGamut(OKLCH{L: o.L, C: mid, H: o.H}) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return OKLCH{L: o.L, C: lo, H: o.H}
}

// ParseOKLCH parses "oklch(L C H)" or a bare "L C H" triple.
// L may be given as a percentage and H may carry a "deg" suffix.
func ParseOKLCH(s string) (OKLCH, error) {
	body := strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(body, "oklch(") {
		if !strings.HasSuffix(body, ")") {
			return OKLCH{}, fmt.Errorf("%w: missing closing parenthesis in %q", ErrInvalidOKLCH, s)
		}
		body = body[len("oklch(") : len(body)-1]
	}
	body = strings.ReplaceAll(body, ",", " ")

	fields := strings.Fields(body)
	if len(fields) != 3 {
		return OKLCH{}, fmt.Errorf("%w: expected 3 components in %q, got %d", ErrInvalidOKLCH, s, len(fields))
	}

	l, err := parseComponent(fields[0], "%", 100)
	if err != nil {
		return OKLCH{}, fmt.Errorf("%w: lightness: %v", ErrInvalidOKLCH, err)
	}
	c, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return OKLCH{}, fmt.Errorf("%w: chroma: %v", ErrInvalidOKLCH, err)
	}
	h, err := parseComponent(fields[2], "deg", 1)
	if err != nil {
		return OKLCH{}, fmt.Errorf("%w: hue: %v", ErrInvalidOKLCH, err)
	}

	if l < 0 || l > 1 {
		return OKLCH{}, fmt.Errorf("%w: lightness %g out of range [0, 1]", ErrInvalidOKLCH, l)
	}
	if c < 0 {
		return OKLCH{}, fmt.Errorf("%w: chroma %g must not be negative", ErrInvalidOKLCH, c)
	}

	return OKLCH{L: l, C: c, H: NormaliseHue(h)}, nil
}

func parseComponent(field, suffix string, divisor float64) (float64, error) {
	if v, ok := strings.CutSuffix(field, suffix); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, err
		}
		return f / divisor, nil
	}
	return strconv.ParseFloat(field, 64)
}

// NormaliseHue wraps a hue angle into [0, 360).
func NormaliseHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// HueDistance calculates the angular distance between two hues on the colour wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(NormaliseHue(h1) - NormaliseHue(h2))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
