// Package config persists the theme selection as plain key-value strings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/theme"
	"github.com/spf13/viper"
)

// Keys stored in the state file.
const (
	KeyPreset        = "preset"
	KeyMode          = "mode"
	KeyHighContrast  = "high_contrast"
	KeyReducedMotion = "reduced_motion"
)

// EnvPrefix is the prefix for environment overrides (e.g. TONAL_MODE=dark).
const EnvPrefix = "TONAL"

// DefaultFileName is the state file name inside the config directory.
const DefaultFileName = "state.yaml"

// Store reads and writes the selection state file.
type Store struct {
	path string
	reg  *theme.Registry
}

// NewStore creates a store for the file at path. The registry supplies
// defaults for missing keys.
func NewStore(path string, reg *theme.Registry) *Store {
	return &Store{path: path, reg: reg}
}

// DefaultPath returns $XDG_CONFIG_HOME/tonal/state.yaml (or the platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "tonal", DefaultFileName), nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType(configType(s.path))
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	def := theme.DefaultState(s.reg)
	v.SetDefault(KeyPreset, def.Preset)
	v.SetDefault(KeyMode, def.Mode.String())
	v.SetDefault(KeyHighContrast, "false")
	v.SetDefault(KeyReducedMotion, "false")
	return v
}

// Load reads the state. A missing file yields the defaults; environment
// variables override both.
func (s *Store) Load() (theme.State, error) {
	v := s.newViper()

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return theme.State{}, fmt.Errorf("failed to read state file %s: %w", s.path, err)
	}

	mode, err := colour.ParseMode(v.GetString(KeyMode))
	if err != nil {
		return theme.State{}, fmt.Errorf("state key %s: %w", KeyMode, err)
	}
	highContrast, err := parseBool(v.GetString(KeyHighContrast))
	if err != nil {
		return theme.State{}, fmt.Errorf("state key %s: %w", KeyHighContrast, err)
	}
	reducedMotion, err := parseBool(v.GetString(KeyReducedMotion))
	if err != nil {
		return theme.State{}, fmt.Errorf("state key %s: %w", KeyReducedMotion, err)
	}

	return theme.State{
		Preset: v.GetString(KeyPreset),
		Mode:   mode,
		Accessibility: theme.AccessibilityFlags{
			HighContrast:  highContrast,
			ReducedMotion: reducedMotion,
		},
	}, nil
}

// Save writes the state, creating the parent directory if needed.
// The preset must exist in the registry.
func (s *Store) Save(st theme.State) error {
	if _, err := theme.ActivePreset(s.reg, st); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType(configType(s.path))
	for key, value := range Values(st) {
		v.Set(key, value)
	}

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", s.path, err)
	}
	return nil
}

// Values returns the state as the key-value strings that are persisted.
func Values(st theme.State) map[string]string {
	return map[string]string{
		KeyPreset:        st.Preset,
		KeyMode:          st.Mode.String(),
		KeyHighContrast:  strconv.FormatBool(st.Accessibility.HighContrast),
		KeyReducedMotion: strconv.FormatBool(st.Accessibility.ReducedMotion),
	}
}

func parseBool(s string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q", s)
	}
	return b, nil
}

func configType(path string) string {
	switch ext := strings.TrimPrefix(filepath.Ext(path), "."); ext {
	case "json", "toml", "yaml", "yml":
		return ext
	default:
		return "yaml"
	}
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}
