package colour

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestGeneratePrimaryPaletteSteps(t *testing.T) {
	for _, mode := range Modes {
		t.Run(mode.String(), func(t *testing.T) {
			p := GeneratePrimaryPalette(265, 0.15, mode)

			if !reflect.DeepEqual(p.Steps(), PrimarySteps) {
				t.Fatalf("Steps() = %v, want %v", p.Steps(), PrimarySteps)
			}
			for step, s := range p.All() {
				if !IsHex(s.Hex) {
					t.Errorf("step %d: %q is not a valid hex colour", step, s.Hex)
				}
			}

			if averageChannel(p, 50) <= averageChannel(p, 950) {
				t.Errorf("step 50 (%s) should be brighter than step 950 (%s)", p.Hex(50), p.Hex(950))
			}
		})
	}
}

func TestGeneratePrimaryPaletteLightnessDecreases(t *testing.T) {
	for _, mode := range Modes {
		p := GeneratePrimaryPalette(150, 0.2, mode)
		for i := 1; i < len(p.Swatches); i++ {
			prev, cur := p.Swatches[i-1], p.Swatches[i]
			if cur.OKLCH.L >= prev.OKLCH.L {
				t.Errorf("%s: step %d lightness %.3f not below step %d lightness %.3f",
					mode, cur.Step, cur.OKLCH.L, prev.Step, prev.OKLCH.L)
			}
		}
	}
}

func TestGeneratePrimaryPaletteHuePreserved(t *testing.T) {
	chromas := []float64{0.05, 0.08, 0.1, 0.15, 0.2, 0.3}

	for _, mode := range Modes {
		for _, chroma := range chromas {
			for hue := 0.0; hue < 360; hue += 5 {
				p := GeneratePrimaryPalette(hue, chroma, mode)
				for _, s := range p.Swatches {
					got, ok := HexToOklch(s.Hex)
					if !ok {
						t.Fatalf("%s hue=%.0f c=%.2f step %d: invalid hex %q", mode, hue, chroma, s.Step, s.Hex)
					}
					if d := HueDistance(got.H, hue); d > 10 {
						t.Errorf("%s hue=%.0f c=%.2f step %d: %s has hue %.2f, %.2f degrees off",
							mode, hue, chroma, s.Step, s.Hex, got.H, d)
					}
				}
			}
		}
	}
}

func TestGeneratePrimaryPaletteLowChromaSteps(t *testing.T) {
	tests := []struct {
		name string
		hue  float64
	}{
		{name: "cyan", hue: 230},
		{name: "cyan neighbour", hue: 231},
		{name: "red", hue: 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := GeneratePrimaryPalette(tt.hue, 0.05, ModeLight)
			s, _ := p.Get(50)
			if s.OKLCH.C < minStepChroma-1e-9 && InGamut(OKLCH{L: s.OKLCH.L, C: minStepChroma, H: tt.hue}) {
				t.Errorf("step 50 chroma %.4f below minimum %.4f", s.OKLCH.C, minStepChroma)
			}
			got, _ := HexToOklch(s.Hex)
			if d := HueDistance(got.H, tt.hue); d > 10 {
				t.Errorf("step 50 %s hue %.2f is %.2f degrees from %.0f", s.Hex, got.H, d, tt.hue)
			}
		})
	}
}

func TestGeneratePaletteUnknownMode(t *testing.T) {
	bogus := Mode(5)

	primary := GeneratePrimaryPalette(265, 0.15, bogus)
	if !reflect.DeepEqual(primary, GeneratePrimaryPalette(265, 0.15, ModeLight)) {
		t.Error("unknown mode should generate the light primary palette")
	}
	if _, err := primary.ToJSON(); err != nil {
		t.Errorf("ToJSON() error = %v", err)
	}

	surface := GenerateSurfacePalette(bogus)
	if surface.Mode != ModeLight {
		t.Errorf("surface mode = %v, want light", surface.Mode)
	}
	if _, err := surface.ToJSON(); err != nil {
		t.Errorf("ToJSON() error = %v", err)
	}
}

func TestGeneratePrimaryPaletteSeedMatters(t *testing.T) {
	a := GeneratePrimaryPalette(265, 0.15, ModeLight)
	b := GeneratePrimaryPalette(230, 0.15, ModeLight)
	if a.Hex(500) == b.Hex(500) {
		t.Errorf("step 500 should differ between hues 265 and 230, both %s", a.Hex(500))
	}
}

func TestGeneratePrimaryPaletteDeterministic(t *testing.T) {
	a := GeneratePrimaryPalette(30, 0.18, ModeDark)
	b := GeneratePrimaryPalette(30, 0.18, ModeDark)
	if !reflect.DeepEqual(a, b) {
		t.Error("GeneratePrimaryPalette is not deterministic")
	}
}

func TestGeneratePrimaryPaletteDarkBoostsChroma(t *testing.T) {
	light := GeneratePrimaryPalette(265, 0.1, ModeLight)
	dark := GeneratePrimaryPalette(265, 0.1, ModeDark)

	l, _ := light.Get(500)
	d, _ := dark.Get(500)
	if d.OKLCH.C < l.OKLCH.C {
		t.Errorf("dark step 500 chroma %.4f below light chroma %.4f", d.OKLCH.C, l.OKLCH.C)
	}
	if d.OKLCH.H != l.OKLCH.H {
		t.Errorf("dark mode changed hue: %.2f vs %.2f", d.OKLCH.H, l.OKLCH.H)
	}
}

func TestGeneratePrimaryPaletteNegativeChroma(t *testing.T) {
	p := GeneratePrimaryPalette(120, -0.3, ModeLight)
	for _, s := range p.Swatches {
		if s.RGB.R != s.RGB.G || s.RGB.G != s.RGB.B {
			t.Errorf("step %d: %s should be grey for zero chroma", s.Step, s.Hex)
		}
	}
}

func TestGenerateSurfacePalette(t *testing.T) {
	for _, mode := range Modes {
		t.Run(mode.String(), func(t *testing.T) {
			p := GenerateSurfacePalette(mode)

			if !reflect.DeepEqual(p.Steps(), SurfaceSteps) {
				t.Fatalf("Steps() = %v, want %v", p.Steps(), SurfaceSteps)
			}
			if got := p.Map()["0"]; got != "#ffffff" {
				t.Errorf("step 0 = %s, want #ffffff", got)
			}
			for _, s := range p.Swatches {
				if s.RGB.R != s.RGB.G || s.RGB.G != s.RGB.B {
					t.Errorf("step %d: %s is not grey", s.Step, s.Hex)
				}
			}
		})
	}
}

func TestGenerateSurfacePaletteOrientation(t *testing.T) {
	light := GenerateSurfacePalette(ModeLight)
	if averageChannel(light, 50) <= averageChannel(light, 950) {
		t.Errorf("light: step 50 (%s) should be lighter than step 950 (%s)", light.Hex(50), light.Hex(950))
	}

	dark := GenerateSurfacePalette(ModeDark)
	if averageChannel(dark, 50) >= averageChannel(dark, 950) {
		t.Errorf("dark: step 50 (%s) should be darker than step 950 (%s)", dark.Hex(50), dark.Hex(950))
	}
	if light.Hex(50) != dark.Hex(950) || light.Hex(950) != dark.Hex(50) {
		t.Error("dark ramp should mirror the light ramp")
	}
}

func TestSeedToHueEndToEnd(t *testing.T) {
	p := GeneratePrimaryPalette(265, 0.15, ModeLight)
	o, ok := HexToOklch(p.Hex(500))
	if !ok {
		t.Fatalf("step 500 %q is not valid hex", p.Hex(500))
	}
	if d := HueDistance(o.H, 265); d > 10 {
		t.Errorf("step 500 hue %.2f is %.2f degrees from 265", o.H, d)
	}
}

func TestPaletteAccessors(t *testing.T) {
	p := GenerateSurfacePalette(ModeLight)

	if p.Len() != len(SurfaceSteps) {
		t.Errorf("Len() = %d, want %d", p.Len(), len(SurfaceSteps))
	}
	if _, ok := p.Get(1000); ok {
		t.Error("Get(1000) should not find a step")
	}
	if got := p.Hex(1000); got != "" {
		t.Errorf("Hex(1000) = %q, want empty", got)
	}

	count := 0
	for range p.All() {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("iteration stopped at %d, want 3", count)
	}
}

func TestPaletteToJSON(t *testing.T) {
	p := GeneratePrimaryPalette(265, 0.15, ModeDark)
	data, err := p.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded struct {
		Role     string `json:"role"`
		Mode     string `json:"mode"`
		Swatches []struct {
			Step int    `json:"step"`
			Hex  string `json:"hex"`
		} `json:"swatches"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.Role != "primary" || decoded.Mode != "dark" {
		t.Errorf("role/mode = %s/%s, want primary/dark", decoded.Role, decoded.Mode)
	}
	if len(decoded.Swatches) != len(PrimarySteps) || decoded.Swatches[5].Hex != p.Hex(500) {
		t.Errorf("swatches not serialised in step order")
	}
}

func TestModeParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "light", want: ModeLight},
		{in: "DARK", want: ModeDark},
		{in: " dark ", want: ModeDark},
		{in: "auto", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if Mode(5).Valid() || !ModeDark.Valid() {
		t.Error("Valid() should accept only light and dark")
	}
	if ModeLight.Toggle() != ModeDark || ModeDark.Toggle() != ModeLight {
		t.Error("Toggle() should swap light and dark")
	}
}

func averageChannel(p *Palette, step Step) float64 {
	s, _ := p.Get(step)
	return (float64(s.RGB.R) + float64(s.RGB.G) + float64(s.RGB.B)) / 3
}
