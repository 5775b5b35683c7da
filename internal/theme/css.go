package theme

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/jmylchreest/tonal/internal/colour"
)

//go:embed *.tmpl
var templates embed.FS

// DefaultDarkSelector is the CSS selector that activates dark mode variables.
const DefaultDarkSelector = ".app-dark"

// CSSVariable is a single custom property without the "--p-" prefix.
type CSSVariable struct {
	Name  string
	Value string
}

// CSSData holds data for the CSS template.
type CSSData struct {
	Preset        string
	Label         string
	SelectedMode  string
	DarkSelector  string
	ReducedMotion bool
	Light         []CSSVariable
	Dark          []CSSVariable
}

// cssRoleNames maps roles to their custom property names.
var cssRoleNames = map[Role]string{
	RoleBackground: "content-background",
	RoleCard:       "card-background",
	RoleBorder:     "content-border-color",
	RoleText:       "text-color",
	RoleMutedText:  "text-muted-color",
	RolePrimary:    "primary-color",
	RoleOnPrimary:  "primary-contrast-color",
}

// RenderCSS renders the selected preset as CSS custom properties: light
// mode on :root and dark mode under darkSelector. Accessibility flags from
// the state apply to both modes. An empty darkSelector uses DefaultDarkSelector.
func RenderCSS(reg *Registry, s State, darkSelector string) ([]byte, error) {
	if darkSelector == "" {
		darkSelector = DefaultDarkSelector
	}

	light, err := Resolve(reg, s.WithMode(colour.ModeLight))
	if err != nil {
		return nil, err
	}
	dark, err := Resolve(reg, s.WithMode(colour.ModeDark))
	if err != nil {
		return nil, err
	}

	data := CSSData{
		Preset:        light.Preset.Name,
		Label:         light.Preset.Label,
		SelectedMode:  s.Mode.String(),
		DarkSelector:  darkSelector,
		ReducedMotion: s.Accessibility.ReducedMotion,
		Light:         CSSVariables(light),
		Dark:          CSSVariables(dark),
	}

	tmplContent, err := templates.ReadFile("theme.css.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read CSS template: %w", err)
	}

	tmpl, err := template.New("theme.css").Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSS template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute CSS template: %w", err)
	}

	return buf.Bytes(), nil
}

// CSSVariables flattens a resolved theme into custom properties: palette
// steps, role colours, then tokens.
func CSSVariables(t *Theme) []CSSVariable {
	vars := make([]CSSVariable, 0, t.Primary.Len()+t.Surface.Len()+len(t.Roles)+3)

	for _, p := range t.Palettes() {
		for step, s := range p.All() {
			vars = append(vars, CSSVariable{Name: fmt.Sprintf("%s-%d", p.Role, step), Value: s.Hex})
		}
	}

	for _, r := range t.Roles {
		vars = append(vars, CSSVariable{Name: cssRoleNames[r.Role], Value: r.Hex})
	}

	vars = append(vars,
		CSSVariable{Name: "border-radius", Value: t.Tokens.BorderRadius},
		CSSVariable{Name: "focus-ring-width", Value: t.Tokens.FocusRingWidth},
		CSSVariable{Name: "transition-duration", Value: t.Tokens.TransitionDuration},
	)

	return vars
}
