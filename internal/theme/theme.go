package theme

import (
	"github.com/jmylchreest/tonal/internal/colour"
)

// Role names a semantic colour slot in a resolved theme.
type Role string

// Roles resolved for every theme.
const (
	RoleBackground Role = "background"
	RoleCard       Role = "card"
	RoleBorder     Role = "border"
	RoleText       Role = "text"
	RoleMutedText  Role = "mutedText"
	RolePrimary    Role = "primary"
	RoleOnPrimary  Role = "onPrimary"
)

// AllRoles lists every role in display order.
var AllRoles = []Role{RoleBackground, RoleCard, RoleBorder, RoleText, RoleMutedText, RolePrimary, RoleOnPrimary}

// RoleRef points a role at a step of one of the theme palettes.
type RoleRef struct {
	Palette colour.PaletteRole `json:"palette"`
	Step    colour.Step        `json:"step"`
}

// ResolvedRole is a role with its palette reference and concrete colour.
type ResolvedRole struct {
	Role Role    `json:"role"`
	Ref  RoleRef `json:"ref"`
	Hex  string  `json:"hex"`
}

// Theme is a selection resolved into palettes, role colours and tokens.
type Theme struct {
	Preset  Preset          `json:"preset"`
	State   State           `json:"state"`
	Primary *colour.Palette `json:"primary"`
	Surface *colour.Palette `json:"surface"`
	Roles   []ResolvedRole  `json:"roles"`
	Tokens  Tokens          `json:"tokens"`
}

// Resolve computes the theme for a selection. Palettes are recomputed on
// every call; nothing is cached.
func Resolve(reg *Registry, s State) (*Theme, error) {
	preset, err := ActivePreset(reg, s)
	if err != nil {
		return nil, err
	}

	t := &Theme{
		Preset:  preset,
		State:   s,
		Primary: colour.GeneratePrimaryPalette(preset.PrimaryHue, preset.PrimaryChroma, s.Mode),
		Surface: colour.GenerateSurfacePalette(s.Mode),
		Tokens:  EffectiveTokens(preset, s.Accessibility),
	}

	refs := RoleMapping(preset.Surface, s.Mode, s.Accessibility.HighContrast)
	t.Roles = make([]ResolvedRole, 0, len(AllRoles))
	for _, role := range AllRoles {
		ref := refs[role]
		t.Roles = append(t.Roles, ResolvedRole{Role: role, Ref: ref, Hex: t.paletteFor(ref.Palette).Hex(ref.Step)})
	}

	return t, nil
}

// RoleMapping returns the palette step each role uses.
func RoleMapping(surface SurfaceStyle, mode colour.Mode, highContrast bool) map[Role]RoleRef {
	s := func(step colour.Step) RoleRef { return RoleRef{Palette: colour.RoleSurface, Step: step} }
	p := func(step colour.Step) RoleRef { return RoleRef{Palette: colour.RolePrimary, Step: step} }

	var m map[Role]RoleRef
	switch mode {
	case colour.ModeDark:
		m = map[Role]RoleRef{
			RoleBackground: s(50),
			RoleCard:       s(50),
			RoleBorder:     s(300),
			RoleText:       s(950),
			RoleMutedText:  s(600),
			RolePrimary:    p(400),
			RoleOnPrimary:  s(50),
		}
		if surface == SurfaceElevated {
			m[RoleCard] = s(100)
		}
		if highContrast {
			m[RoleBorder] = s(500)
			m[RoleMutedText] = s(700)
			m[RolePrimary] = p(300)
		}
	default:
		m = map[Role]RoleRef{
			RoleBackground: s(0),
			RoleCard:       s(0),
			RoleBorder:     s(200),
			RoleText:       s(950),
			RoleMutedText:  s(600),
			RolePrimary:    p(600),
			RoleOnPrimary:  s(0),
		}
		if surface == SurfaceElevated {
			m[RoleCard] = s(50)
		}
		if highContrast {
			m[RoleBorder] = s(400)
			m[RoleMutedText] = s(700)
			m[RolePrimary] = p(800)
		}
	}
	return m
}

// Colour returns the hex colour of a role, or "" if the role is unknown.
func (t *Theme) Colour(role Role) string {
	for _, r := range t.Roles {
		if r.Role == role {
			return r.Hex
		}
	}
	return ""
}

// Palettes returns the theme palettes, primary first.
func (t *Theme) Palettes() []*colour.Palette {
	return []*colour.Palette{t.Primary, t.Surface}
}

func (t *Theme) paletteFor(role colour.PaletteRole) *colour.Palette {
	if role == colour.RolePrimary {
		return t.Primary
	}
	return t.Surface
}
