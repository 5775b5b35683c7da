package theme

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
)

// Check is the outcome of certifying one foreground/background role pair.
type Check struct {
	Name       string       `json:"name"`
	Foreground Role         `json:"foreground"`
	Background Role         `json:"background"`
	FgHex      string       `json:"fgHex"`
	BgHex      string       `json:"bgHex"`
	LargeText  bool         `json:"largeText"`
	Ratio      float64      `json:"ratio"`
	Level      colour.Level `json:"level"`
	Required   colour.Level `json:"required"`
	Perceptual colour.Level `json:"perceptual"`
	Pass       bool         `json:"pass"`
}

// Report collects the checks for a theme.
type Report struct {
	Preset string  `json:"preset"`
	State  State   `json:"state"`
	Checks []Check `json:"checks"`
}

// Passed reports whether every check passed.
func (r Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.Pass {
			return false
		}
	}
	return true
}

// Failures returns the checks that did not pass.
func (r Report) Failures() []Check {
	var failed []Check
	for _, c := range r.Checks {
		if !c.Pass {
			failed = append(failed, c)
		}
	}
	return failed
}

// String returns a one-line-per-check summary.
func (r Report) String() string {
	var b strings.Builder
	for _, c := range r.Checks {
		status := "PASS"
		if !c.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "%s  %-26s %s on %s  %5.2f:1  %s (need %s)\n",
			status, c.Name, c.FgHex, c.BgHex, c.Ratio, c.Level, c.Required)
	}
	return b.String()
}

type pairSpec struct {
	fg, bg    Role
	largeText bool
}

var certifiedPairs = []pairSpec{
	{fg: RoleText, bg: RoleBackground},
	{fg: RoleText, bg: RoleCard},
	{fg: RoleMutedText, bg: RoleBackground},
	{fg: RoleOnPrimary, bg: RolePrimary},
}

// Validate certifies the theme's text pairs with the exact WCAG ratio.
// AA is required, or AAA when high contrast is selected. The perceptual
// lightness pre-check is recorded alongside but never decides the outcome.
func Validate(t *Theme) Report {
	required := colour.LevelAA
	if t.State.Accessibility.HighContrast {
		required = colour.LevelAAA
	}

	report := Report{
		Preset: t.Preset.Name,
		State:  t.State,
		Checks: make([]Check, 0, len(certifiedPairs)),
	}
	for _, pair := range certifiedPairs {
		report.Checks = append(report.Checks, checkPair(t, pair, required))
	}
	return report
}

func checkPair(t *Theme, pair pairSpec, required colour.Level) Check {
	fgHex := t.Colour(pair.fg)
	bgHex := t.Colour(pair.bg)

	c := Check{
		Name:       fmt.Sprintf("%s/%s", pair.fg, pair.bg),
		Foreground: pair.fg,
		Background: pair.bg,
		FgHex:      fgHex,
		BgHex:      bgHex,
		LargeText:  pair.largeText,
		Required:   required,
	}

	fgOklch, okFg := colour.HexToOklch(fgHex)
	bgOklch, okBg := colour.HexToOklch(bgHex)
	ratio, okRatio := colour.ContrastRatioHex(fgHex, bgHex)
	if !okFg || !okBg || !okRatio {
		c.Level = colour.LevelFail
		c.Perceptual = colour.LevelFail
		return c
	}

	c.Ratio = ratio
	c.Level = colour.ContrastLevel(ratio, pair.largeText)
	c.Perceptual = colour.CheckOklchContrast(fgOklch, bgOklch)
	c.Pass = c.Level >= required
	return c
}
