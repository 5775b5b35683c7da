package theme

import (
	"fmt"

	"github.com/jmylchreest/tonal/internal/colour"
)

// AccessibilityFlags are user-controlled accessibility preferences.
type AccessibilityFlags struct {
	HighContrast  bool `json:"highContrast"`
	ReducedMotion bool `json:"reducedMotion"`
}

// State records which preset, mode and accessibility flags are selected.
// It is a value type; the With* helpers return modified copies.
type State struct {
	Preset        string             `json:"preset"`
	Mode          colour.Mode        `json:"mode"`
	Accessibility AccessibilityFlags `json:"accessibility"`
}

// DefaultState returns the state used when nothing has been selected:
// the registry's default preset in light mode.
func DefaultState(reg *Registry) State {
	return State{
		Preset: reg.Default().Name,
		Mode:   colour.ModeLight,
	}
}

// WithPreset returns a copy of s with the preset replaced.
func (s State) WithPreset(name string) State {
	s.Preset = name
	return s
}

// WithMode returns a copy of s with the mode replaced.
func (s State) WithMode(m colour.Mode) State {
	s.Mode = m
	return s
}

// ToggleMode returns a copy of s with light and dark swapped.
func (s State) ToggleMode() State {
	s.Mode = s.Mode.Toggle()
	return s
}

// WithHighContrast returns a copy of s with the high contrast flag set.
func (s State) WithHighContrast(on bool) State {
	s.Accessibility.HighContrast = on
	return s
}

// WithReducedMotion returns a copy of s with the reduced motion flag set.
func (s State) WithReducedMotion(on bool) State {
	s.Accessibility.ReducedMotion = on
	return s
}

// IsDark reports whether dark mode is selected.
func (s State) IsDark() bool {
	return s.Mode.IsDark()
}

// String returns a short description of the state.
func (s State) String() string {
	return fmt.Sprintf("preset=%s mode=%s highContrast=%t reducedMotion=%t",
		s.Preset, s.Mode, s.Accessibility.HighContrast, s.Accessibility.ReducedMotion)
}

// ActivePreset returns the preset selected by s.
func ActivePreset(reg *Registry, s State) (Preset, error) {
	p, ok := reg.Get(s.Preset)
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPreset, s.Preset, reg.Names())
	}
	return p, nil
}

// EffectiveTokens returns the preset tokens adjusted for the accessibility flags.
func EffectiveTokens(p Preset, flags AccessibilityFlags) Tokens {
	tokens := p.Tokens
	if flags.ReducedMotion {
		tokens.TransitionDuration = "0s"
	}
	if flags.HighContrast && focusRingBelow(tokens.FocusRingWidth, 3) {
		tokens.FocusRingWidth = "3px"
	}
	return tokens
}

// focusRingBelow reports whether a "<n>px" width is narrower than min pixels.
// Unparseable widths count as narrower.
func focusRingBelow(width string, minPx int) bool {
	var px int
	if _, err := fmt.Sscanf(width, "%dpx", &px); err != nil {
		return true
	}
	return px < minPx
}
