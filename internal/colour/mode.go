package colour

import (
	"fmt"
	"strings"
)

// Mode selects the light or dark variant of a palette or theme.
type Mode int

const (
	// ModeLight is a light theme (dark text on light background).
	ModeLight Mode = iota
	// ModeDark is a dark theme (light text on dark background).
	ModeDark
)

// Modes lists every mode in a stable order.
var Modes = []Mode{ModeLight, ModeDark}

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case ModeLight:
		return "light"
	case ModeDark:
		return "dark"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// IsDark reports whether m is ModeDark.
func (m Mode) IsDark() bool {
	return m == ModeDark
}

// Valid reports whether m is ModeLight or ModeDark.
func (m Mode) Valid() bool {
	return m == ModeLight || m == ModeDark
}

func (m Mode) orLight() Mode {
	if m.Valid() {
		return m
	}
	return ModeLight
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// ParseMode parses "light" or "dark" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	default:
		return ModeLight, fmt.Errorf("invalid mode: %q (valid: light, dark)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid mode: %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
