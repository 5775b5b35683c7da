package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/spf13/cobra"
)

type contrastOptions struct {
	large   bool
	require string
	format  string
}

// contrastResult is the JSON form of a contrast check.
type contrastResult struct {
	Foreground string       `json:"foreground"`
	Background string       `json:"background"`
	Ratio      float64      `json:"ratio"`
	LargeText  bool         `json:"largeText"`
	Level      colour.Level `json:"level"`
	Perceptual colour.Level `json:"perceptual"`
	AA         bool         `json:"aa"`
	AAA        bool         `json:"aaa"`
}

func newContrastCmd(a *app) *cobra.Command {
	opts := &contrastOptions{}

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Check WCAG contrast between two colours",
		Long: `Compute the WCAG 2.x contrast ratio between two colours and report
AA/AAA compliance. Colours may be hex ("#rrggbb") or OKLCH.

The perceptual level is an estimate from the OKLCH lightness difference
only; the ratio is what certifies compliance.

Examples:
  tonal contrast '#1a1a1a' '#ffffff'
  tonal contrast --large 'oklch(0.6 0.15 265)' '#ffffff'

  # Exit non-zero unless AAA is met
  tonal contrast --require aaa '#595959' '#ffffff'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runContrast(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.large, "large", false, "use large text thresholds (3:1 AA, 4.5:1 AAA)")
	cmd.Flags().StringVar(&opts.require, "require", "", "fail unless this level is met (aa, aaa)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format (text, json)")

	return cmd
}

func (a *app) runContrast(cmd *cobra.Command, fgArg, bgArg string, opts *contrastOptions) error {
	required, err := parseRequiredLevel(opts.require)
	if err != nil {
		return err
	}

	fg, err := parseColourArg(fgArg)
	if err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	bg, err := parseColourArg(bgArg)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	ratio := colour.ContrastRatio(fg, bg)
	res := contrastResult{
		Foreground: fg.Hex(),
		Background: bg.Hex(),
		Ratio:      ratio,
		LargeText:  opts.large,
		Level:      colour.ContrastLevel(ratio, opts.large),
		Perceptual: colour.CheckOklchContrast(colour.RGBToOklch(fg), colour.RGBToOklch(bg)),
		AA:         colour.MeetsWCAGAA(ratio, opts.large),
		AAA:        colour.MeetsWCAGAAA(ratio, opts.large),
	}
	a.logger.Debug("contrast computed", "fg", res.Foreground, "bg", res.Background, "ratio", ratio)

	switch opts.format {
	case "json":
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	case "text", "":
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s on %s  %.2f:1\n", res.Foreground, res.Background, res.Ratio)
		fmt.Fprintf(out, "  AA   %s\n", badge(res.AA))
		fmt.Fprintf(out, "  AAA  %s\n", badge(res.AAA))
		fmt.Fprintf(out, "  perceptual estimate: %s\n", res.Perceptual)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", opts.format)
	}

	if required != colour.LevelFail && res.Level < required {
		return fmt.Errorf("contrast %.2f:1 does not meet %s", ratio, required)
	}
	return nil
}

// parseRequiredLevel parses --require. An empty value requires nothing.
func parseRequiredLevel(s string) (colour.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return colour.LevelFail, nil
	case "aa":
		return colour.LevelAA, nil
	case "aaa":
		return colour.LevelAAA, nil
	default:
		return colour.LevelFail, fmt.Errorf("invalid level: %q (valid: aa, aaa)", s)
	}
}
