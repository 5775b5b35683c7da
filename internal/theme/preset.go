// Package theme provides named theme presets, the theme selection state and
// the resolution of a selection into concrete palettes and role colours.
package theme

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/tonal/internal/colour"
)

var (
	// ErrUnknownPreset is returned when a selection names a preset that is not registered.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrInvalidPreset is returned when a preset fails validation at registration.
	ErrInvalidPreset = errors.New("invalid preset")
)

// SurfaceStyle controls how cards relate to the page background.
type SurfaceStyle string

const (
	// SurfaceFlat draws cards on the background colour, separated by borders.
	SurfaceFlat SurfaceStyle = "flat"
	// SurfaceElevated lifts cards one surface step away from the background.
	SurfaceElevated SurfaceStyle = "elevated"
)

// Tokens are component-level style values carried by a preset.
type Tokens struct {
	BorderRadius       string `json:"borderRadius"`
	FocusRingWidth     string `json:"focusRingWidth"`
	TransitionDuration string `json:"transitionDuration"`
}

// Preset is a named, immutable theme definition.
type Preset struct {
	Name          string       `json:"name"`
	Label         string       `json:"label"`
	PrimaryHue    float64      `json:"primaryHue"`
	PrimaryChroma float64      `json:"primaryChroma"`
	Surface       SurfaceStyle `json:"surface"`
	Tokens        Tokens       `json:"tokens"`
}

// Validate checks if the preset is well formed.
func (p Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidPreset)
	}
	if p.PrimaryHue < 0 || p.PrimaryHue >= 360 {
		return fmt.Errorf("%w: %s: hue %g out of range [0, 360)", ErrInvalidPreset, p.Name, p.PrimaryHue)
	}
	if p.PrimaryChroma < 0 || p.PrimaryChroma > colour.MaxChroma {
		return fmt.Errorf("%w: %s: chroma %g out of range [0, %g]", ErrInvalidPreset, p.Name, p.PrimaryChroma, colour.MaxChroma)
	}
	switch p.Surface {
	case SurfaceFlat, SurfaceElevated:
	default:
		return fmt.Errorf("%w: %s: unknown surface style %q", ErrInvalidPreset, p.Name, p.Surface)
	}
	return nil
}

// Registry is an immutable set of presets. It is built once and shared by
// reference; it is safe for concurrent use.
type Registry struct {
	presets map[string]Preset
	order   []string
}

// NewRegistry creates a registry from the given presets. The first preset is
// the default. Duplicate names and invalid presets are rejected.
func NewRegistry(presets ...Preset) (*Registry, error) {
	if len(presets) == 0 {
		return nil, fmt.Errorf("%w: registry needs at least one preset", ErrInvalidPreset)
	}

	r := &Registry{
		presets: make(map[string]Preset, len(presets)),
		order:   make([]string, 0, len(presets)),
	}
	for _, p := range presets {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.presets[p.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate preset name %q", ErrInvalidPreset, p.Name)
		}
		r.presets[p.Name] = p
		r.order = append(r.order, p.Name)
	}
	return r, nil
}

// Get retrieves a preset by name.
func (r *Registry) Get(name string) (Preset, bool) {
	p, ok := r.presets[name]
	return p, ok
}

// Names returns preset names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Presets returns all presets in registration order.
func (r *Registry) Presets() []Preset {
	presets := make([]Preset, 0, len(r.order))
	for _, name := range r.order {
		presets = append(presets, r.presets[name])
	}
	return presets
}

// Default returns the first registered preset.
func (r *Registry) Default() Preset {
	return r.presets[r.order[0]]
}

// Built-in presets.
var builtinPresets = []Preset{
	{
		Name: "aura", Label: "Aura", PrimaryHue: 162, PrimaryChroma: 0.15, Surface: SurfaceFlat,
		Tokens: Tokens{BorderRadius: "6px", FocusRingWidth: "1px", TransitionDuration: "0.2s"},
	},
	{
		Name: "lara", Label: "Lara", PrimaryHue: 265, PrimaryChroma: 0.15, Surface: SurfaceElevated,
		Tokens: Tokens{BorderRadius: "6px", FocusRingWidth: "2px", TransitionDuration: "0.2s"},
	},
	{
		Name: "nora", Label: "Nora", PrimaryHue: 230, PrimaryChroma: 0.12, Surface: SurfaceFlat,
		Tokens: Tokens{BorderRadius: "3px", FocusRingWidth: "2px", TransitionDuration: "0.15s"},
	},
	{
		Name: "material", Label: "Material", PrimaryHue: 295, PrimaryChroma: 0.17, Surface: SurfaceElevated,
		Tokens: Tokens{BorderRadius: "4px", FocusRingWidth: "2px", TransitionDuration: "0.25s"},
	},
	{
		Name: "ember", Label: "Ember", PrimaryHue: 35, PrimaryChroma: 0.16, Surface: SurfaceFlat,
		Tokens: Tokens{BorderRadius: "8px", FocusRingWidth: "2px", TransitionDuration: "0.2s"},
	},
}

// DefaultRegistry returns a registry holding the built-in presets.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(builtinPresets...)
	if err != nil {
		// Built-in presets are static and covered by tests.
		panic(err)
	}
	return r
}
