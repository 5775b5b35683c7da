package theme

import (
	"errors"
	"reflect"
	"testing"
)

func testPreset(name string) Preset {
	return Preset{
		Name: name, Label: name, PrimaryHue: 200, PrimaryChroma: 0.1, Surface: SurfaceFlat,
		Tokens: Tokens{BorderRadius: "4px", FocusRingWidth: "1px", TransitionDuration: "0.2s"},
	}
}

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry(testPreset("one"), testPreset("two"))
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	if got := reg.Names(); !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Errorf("Names() = %v, want [one two]", got)
	}
	if got := reg.Default().Name; got != "one" {
		t.Errorf("Default() = %s, want one", got)
	}
	if _, ok := reg.Get("two"); !ok {
		t.Error("Get(two) should find the preset")
	}
	if _, ok := reg.Get("three"); ok {
		t.Error("Get(three) should not find a preset")
	}
}

func TestRegistryNamesIsACopy(t *testing.T) {
	reg, err := NewRegistry(testPreset("one"), testPreset("two"))
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	names := reg.Names()
	names[0] = "mutated"
	if reg.Names()[0] != "one" {
		t.Error("modifying Names() result changed the registry")
	}
}

func TestNewRegistryRejectsInvalidPresets(t *testing.T) {
	badHue := testPreset("hue")
	badHue.PrimaryHue = 360

	badChroma := testPreset("chroma")
	badChroma.PrimaryChroma = 0.5

	badSurface := testPreset("surface")
	badSurface.Surface = "glass"

	tests := []struct {
		name    string
		presets []Preset
	}{
		{name: "empty", presets: nil},
		{name: "missing name", presets: []Preset{testPreset("")}},
		{name: "duplicate", presets: []Preset{testPreset("a"), testPreset("a")}},
		{name: "hue out of range", presets: []Preset{badHue}},
		{name: "chroma out of range", presets: []Preset{badChroma}},
		{name: "unknown surface", presets: []Preset{badSurface}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.presets...)
			if !errors.Is(err, ErrInvalidPreset) {
				t.Errorf("NewRegistry() error = %v, want ErrInvalidPreset", err)
			}
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()
	if len(reg.Names()) != len(builtinPresets) {
		t.Errorf("DefaultRegistry has %d presets, want %d", len(reg.Names()), len(builtinPresets))
	}
	for _, p := range reg.Presets() {
		if p.Label == "" {
			t.Errorf("preset %s has no label", p.Name)
		}
	}
}
