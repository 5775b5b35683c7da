package colour

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Step is a named brightness tier of a palette (e.g., 500).
type Step int

// String returns the step number as a string.
func (s Step) String() string {
	return strconv.Itoa(int(s))
}

// PaletteRole identifies what a palette is used for.
type PaletteRole string

const (
	// RolePrimary is the brand palette derived from a seed hue and chroma.
	RolePrimary PaletteRole = "primary"
	// RoleSurface is the neutral grey palette used for backgrounds, borders and text.
	RoleSurface PaletteRole = "surface"
)

// MaxChroma is the largest chroma a generated palette will request.
const MaxChroma = 0.37

// Fixed step sets. Every generated palette is total over its set.
var (
	PrimarySteps = []Step{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}
	SurfaceSteps = []Step{0, 50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}
)

// primaryLightness is the lightness curve for primary palettes.
var primaryLightness = map[Step]float64{
	50: 0.971, 100: 0.936, 200: 0.885, 300: 0.812, 400: 0.714, 500: 0.625,
	600: 0.520, 700: 0.468, 800: 0.410, 900: 0.364, 950: 0.275,
}

// primaryChromaScale tapers chroma towards both ends of the ramp.
var primaryChromaScale = map[Step]float64{
	50: 0.15, 100: 0.30, 200: 0.50, 300: 0.75, 400: 0.90, 500: 1.00,
	600: 1.00, 700: 0.92, 800: 0.80, 900: 0.68, 950: 0.55,
}

// minStepChroma keeps the hue of lightly tinted steps above 8-bit rounding noise.
const minStepChroma = 0.015

// Dark mode compensates for perceptual dimming on dark backgrounds.
const (
	darkChromaBoost    = 1.10
	darkLightnessLift  = 0.02
	darkLiftStartsFrom = Step(600)
)

// surfaceLightLightness is the light-mode grey ramp. Step 0 is pure white.
var surfaceLightLightness = map[Step]float64{
	0: 1.0, 50: 0.985, 100: 0.970, 200: 0.922, 300: 0.870, 400: 0.708,
	500: 0.556, 600: 0.439, 700: 0.371, 800: 0.269, 900: 0.205, 950: 0.145,
}

// Swatch is one step of a palette.
type Swatch struct {
	Step  Step   `json:"step"`
	Hex   string `json:"hex"`
	RGB   RGB    `json:"rgb"`
	OKLCH OKLCH  `json:"oklch"`
}

// Palette is an ordered brightness ramp for a single role and mode.
type Palette struct {
	Role     PaletteRole `json:"role"`
	Mode     Mode        `json:"mode"`
	Swatches []Swatch    `json:"swatches"`
}

// GeneratePrimaryPalette builds the primary ramp for a seed hue (degrees) and
// chroma. Each step is gamut-fitted so the hue survives at the sRGB boundary.
// A positive seed chroma gives every step at least minStepChroma. Unknown
// modes are treated as ModeLight.
func GeneratePrimaryPalette(hue, chroma float64, mode Mode) *Palette {
	mode = mode.orLight()
	hue = NormaliseHue(hue)
	if chroma < 0 {
		chroma = 0
	}

	p := &Palette{
		Role:     RolePrimary,
		Mode:     mode,
		Swatches: make([]Swatch, 0, len(PrimarySteps)),
	}

	for _, step := range PrimarySteps {
		l := primaryLightness[step]
		c := chroma * primaryChromaScale[step]
		if mode == ModeDark {
			c *= darkChromaBoost
			if step >= darkLiftStartsFrom {
				l += darkLightnessLift
			}
		}
		if chroma > 0 {
			c = max(c, minStepChroma)
		}
		if c > MaxChroma {
			c = MaxChroma
		}

		p.Swatches = append(p.Swatches, newSwatch(step, FitGamut(OKLCH{L: l, C: c, H: hue})))
	}

	return p
}

// GenerateSurfacePalette builds the neutral grey ramp. Step 0 is always
// white. Dark mode inverts the 50-950 ramp so 50 is the darkest grey and each
// step keeps its distance from the canvas. Unknown modes are treated as ModeLight.
func GenerateSurfacePalette(mode Mode) *Palette {
	mode = mode.orLight()
	p := &Palette{
		Role:     RoleSurface,
		Mode:     mode,
		Swatches: make([]Swatch, 0, len(SurfaceSteps)),
	}

	last := len(SurfaceSteps) - 1
	for i, step := range SurfaceSteps {
		l := surfaceLightLightness[step]
		if mode == ModeDark && step != 0 {
			// Mirror within the 50..950 range (index 1..last).
			l = surfaceLightLightness[SurfaceSteps[last-i+1]]
		}
		p.Swatches = append(p.Swatches, newSwatch(step, OKLCH{L: l}))
	}

	return p
}

func newSwatch(step Step, o OKLCH) Swatch {
	rgb := OklchToRGB(o)
	return Swatch{
		Step:  step,
		Hex:   rgb.Hex(),
		RGB:   rgb,
		OKLCH: o,
	}
}

// Len returns the number of steps in the palette.
func (p *Palette) Len() int {
	return len(p.Swatches)
}

// Get returns the swatch for a step.
func (p *Palette) Get(step Step) (Swatch, bool) {
	for _, s := range p.Swatches {
		if s.Step == step {
			return s, true
		}
	}
	return Swatch{}, false
}

// Hex returns the hex string for a step, or "" if the palette has no such step.
func (p *Palette) Hex(step Step) string {
	s, _ := p.Get(step)
	return s.Hex
}

// Steps returns the palette's steps in ascending order.
func (p *Palette) Steps() []Step {
	steps := make([]Step, len(p.Swatches))
	for i, s := range p.Swatches {
		steps[i] = s.Step
	}
	return steps
}

// Map returns the palette as step name -> hex.
func (p *Palette) Map() map[string]string {
	m := make(map[string]string, len(p.Swatches))
	for _, s := range p.Swatches {
		m[s.Step.String()] = s.Hex
	}
	return m
}

// All returns an iterator over all swatches in step order.
func (p *Palette) All() func(func(Step, Swatch) bool) {
	return func(yield func(Step, Swatch) bool) {
		for _, s := range p.Swatches {
			if !yield(s.Step, s) {
				return
			}
		}
	}
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// String returns a human-readable representation of the palette.
func (p *Palette) String() string {
	if len(p.Swatches) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s palette (%s, %d steps):\n", p.Role, p.Mode, len(p.Swatches))
	for _, s := range p.Swatches {
		fmt.Fprintf(&b, "  %4d: %s %s\n", s.Step, s.Hex, s.OKLCH)
	}
	return b.String()
}
