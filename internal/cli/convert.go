package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/spf13/cobra"
)

type convertOptions struct {
	format  string
	preview bool
}

// conversion is the JSON form of a converted colour.
type conversion struct {
	Input   string        `json:"input"`
	Hex     string        `json:"hex"`
	OKLCH   colour.OKLCH  `json:"oklch"`
	InGamut bool          `json:"inGamut"`
	Fitted  *colour.OKLCH `json:"fitted,omitempty"`
}

func newConvertCmd(a *app) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <colour>...",
		Short: "Convert between hex and OKLCH",
		Long: `Convert colours between sRGB hex and OKLCH.

Arguments starting with "#" are parsed as hex and printed as OKLCH.
Anything else is parsed as OKLCH and printed as hex. Out-of-gamut OKLCH
colours are clamped per channel; the gamut-fitted equivalent is shown
alongside.

Examples:
  # Hex to OKLCH
  tonal convert '#3b82f6'

  # OKLCH to hex, several forms accepted
  tonal convert 'oklch(0.62 0.19 260)' '62% 0.19 260deg'

  # JSON output
  tonal convert --format json '#ffffff'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour previews in terminal")

	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, args []string, opts *convertOptions) error {
	results := make([]conversion, 0, len(args))
	for _, arg := range args {
		c, err := convertArg(arg)
		if err != nil {
			return err
		}
		a.logger.Debug("converted colour", "input", arg, "hex", c.Hex, "oklch", c.OKLCH.String())
		results = append(results, c)
	}

	switch opts.format {
	case "json":
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	case "text", "":
		preview := a.previewEnabled(opts.preview, "")
		for _, c := range results {
			fmt.Fprintln(cmd.OutOrStdout(), formatConversion(c, preview))
		}
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", opts.format)
	}
	return nil
}

func convertArg(arg string) (conversion, error) {
	if strings.HasPrefix(arg, "#") {
		o, ok := colour.HexToOklch(arg)
		if !ok {
			return conversion{}, fmt.Errorf("invalid hex colour: %q (expected #rrggbb)", arg)
		}
		return conversion{Input: arg, Hex: strings.ToLower(arg), OKLCH: o, InGamut: true}, nil
	}

	o, err := colour.ParseOKLCH(arg)
	if err != nil {
		return conversion{}, err
	}
	c := conversion{Input: arg, Hex: colour.OklchToHex(o), OKLCH: o, InGamut: colour.InGamut(o)}
	if !c.InGamut {
		fitted := colour.FitGamut(o)
		c.Fitted = &fitted
	}
	return c, nil
}

func formatConversion(c conversion, preview bool) string {
	var line string
	if strings.HasPrefix(c.Input, "#") {
		line = fmt.Sprintf("%s  %s", c.Hex, c.OKLCH)
	} else {
		line = fmt.Sprintf("%s  %s", c.OKLCH, c.Hex)
		if c.Fitted != nil {
			line += dimStyle.Sprintf("  (out of gamut, fitted: %s %s)", *c.Fitted, colour.OklchToHex(*c.Fitted))
		}
	}

	if preview {
		if rgb, ok := colour.ParseHex(c.Hex); ok {
			line = colour.ColourPreview(rgb, 4) + "  " + line
		}
	}
	return line
}
