package colour

import (
	"image/color"
	"math"
)

// WCAG 2.x minimum contrast ratios.
const (
	MinContrastAA       = 4.5
	MinContrastAALarge  = 3.0
	MinContrastAAA      = 7.0
	MinContrastAAALarge = 4.5
)

// Perceptual lightness differences that approximate the WCAG levels.
const (
	PerceptualDeltaAA  = 0.40
	PerceptualDeltaAAA = 0.55
)

// Level is a contrast compliance level.
type Level int

const (
	// LevelFail does not meet WCAG AA.
	LevelFail Level = iota
	// LevelAA meets WCAG AA.
	LevelAA
	// LevelAAA meets WCAG AAA.
	LevelAAA
)

// String returns the string representation of a Level.
func (l Level) String() string {
	switch l {
	case LevelAA:
		return "AA"
	case LevelAAA:
		return "AAA"
	default:
		return "fail"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	// Convert from 16-bit to 8-bit.
	rf := float64(r>>8) / 255.0
	rg := float64(g>>8) / 255.0
	rb := float64(b>>8) / 255.0

	return 0.2126*gammaCorrect(rf) + 0.7152*gammaCorrect(rg) + 0.0722*gammaCorrect(rb)
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// The ratio is symmetric and exactly 1 for identical colours.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 color.Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatioHex is ContrastRatio for two "#rrggbb" strings.
// ok is false if either string is malformed.
func ContrastRatioHex(hex1, hex2 string) (float64, bool) {
	c1, ok := ParseHex(hex1)
	if !ok {
		return 0, false
	}
	c2, ok := ParseHex(hex2)
	if !ok {
		return 0, false
	}
	return ContrastRatio(c1, c2), true
}

// MeetsWCAGAA reports whether ratio satisfies WCAG AA
// (4.5:1 for normal text, 3:1 for large text).
func MeetsWCAGAA(ratio float64, largeText bool) bool {
	if largeText {
		return ratio >= MinContrastAALarge
	}
	return ratio >= MinContrastAA
}

// MeetsWCAGAAA reports whether ratio satisfies WCAG AAA
// (7:1 for normal text, 4.5:1 for large text).
func MeetsWCAGAAA(ratio float64, largeText bool) bool {
	if largeText {
		return ratio >= MinContrastAAALarge
	}
	return ratio >= MinContrastAAA
}

// ContrastLevel classifies an exact contrast ratio.
func ContrastLevel(ratio float64, largeText bool) Level {
	switch {
	case MeetsWCAGAAA(ratio, largeText):
		return LevelAAA
	case MeetsWCAGAA(ratio, largeText):
		return LevelAA
	default:
		return LevelFail
	}
}

// CheckOklchContrast estimates the contrast level from the difference in
// OKLCH lightness alone. It is a quick pre-check; use ContrastRatio when
// compliance has to be certified.
func CheckOklchContrast(a, b OKLCH) Level {
	delta := math.Abs(a.L - b.L)
	switch {
	case delta >= PerceptualDeltaAAA:
		return LevelAAA
	case delta >= PerceptualDeltaAA:
		return LevelAA
	default:
		return LevelFail
	}
}

// BestTextColour returns black or white, whichever contrasts more with bg.
func BestTextColour(bg color.Color) RGB {
	black := RGB{}
	white := RGB{R: 255, G: 255, B: 255}
	if ContrastRatio(black, bg) >= ContrastRatio(white, bg) {
		return black
	}
	return white
}
