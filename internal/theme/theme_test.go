package theme

import (
	"errors"
	"testing"

	"github.com/jmylchreest/tonal/internal/colour"
)

func TestResolve(t *testing.T) {
	reg := DefaultRegistry()

	for _, mode := range colour.Modes {
		t.Run(mode.String(), func(t *testing.T) {
			th, err := Resolve(reg, DefaultState(reg).WithPreset("lara").WithMode(mode))
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}

			if th.Primary.Mode != mode || th.Surface.Mode != mode {
				t.Errorf("palettes resolved for wrong mode")
			}
			if len(th.Roles) != len(AllRoles) {
				t.Fatalf("resolved %d roles, want %d", len(th.Roles), len(AllRoles))
			}
			for _, r := range th.Roles {
				if !colour.IsHex(r.Hex) {
					t.Errorf("role %s has invalid colour %q", r.Role, r.Hex)
				}
			}
			if got, want := th.Colour(RolePrimary), th.Primary.Hex(RoleMapping(SurfaceElevated, mode, false)[RolePrimary].Step); got != want {
				t.Errorf("primary = %s, want %s", got, want)
			}
		})
	}
}

func TestResolveBackgroundContrastsWithText(t *testing.T) {
	reg := DefaultRegistry()

	light, err := Resolve(reg, DefaultState(reg))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got := light.Colour(RoleBackground); got != "#ffffff" {
		t.Errorf("light background = %s, want #ffffff", got)
	}

	dark, err := Resolve(reg, DefaultState(reg).WithMode(colour.ModeDark))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	bg, _ := colour.HexToOklch(dark.Colour(RoleBackground))
	text, _ := colour.HexToOklch(dark.Colour(RoleText))
	if bg.L >= text.L {
		t.Errorf("dark background (L=%.3f) should be darker than text (L=%.3f)", bg.L, text.L)
	}
}

func TestResolveSurfaceStyle(t *testing.T) {
	reg := DefaultRegistry()

	flat, err := Resolve(reg, DefaultState(reg).WithPreset("aura"))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if flat.Colour(RoleCard) != flat.Colour(RoleBackground) {
		t.Error("flat surface: card should match background")
	}

	elevated, err := Resolve(reg, DefaultState(reg).WithPreset("lara"))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if elevated.Colour(RoleCard) == elevated.Colour(RoleBackground) {
		t.Error("elevated surface: card should differ from background")
	}
}

func TestResolveUnknownPreset(t *testing.T) {
	reg := DefaultRegistry()
	_, err := Resolve(reg, DefaultState(reg).WithPreset("nope"))
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Resolve() error = %v, want ErrUnknownPreset", err)
	}
}

func TestResolveDeterministic(t *testing.T) {
	reg := DefaultRegistry()
	s := DefaultState(reg).WithPreset("ember").WithMode(colour.ModeDark)

	a, _ := Resolve(reg, s)
	b, _ := Resolve(reg, s)
	for i := range a.Roles {
		if a.Roles[i] != b.Roles[i] {
			t.Errorf("role %s resolved differently: %s vs %s", a.Roles[i].Role, a.Roles[i].Hex, b.Roles[i].Hex)
		}
	}
}

func TestColourUnknownRole(t *testing.T) {
	reg := DefaultRegistry()
	th, _ := Resolve(reg, DefaultState(reg))
	if got := th.Colour("nonexistent"); got != "" {
		t.Errorf("Colour(nonexistent) = %q, want empty", got)
	}
}
