package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/swatch"
	"github.com/jmylchreest/tonal/internal/theme"
	"github.com/spf13/cobra"
)

type paletteOptions struct {
	hue     float64
	chroma  float64
	preset  string
	mode    string
	surface bool
	format  string
	output  string
	png     string
	preview bool
}

func newPaletteCmd(a *app) *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate a tonal palette",
		Long: `Generate an 11-step primary palette (50-950) from an OKLCH hue and
chroma, or the 12-step neutral surface palette (0-950).

Without --hue the seed comes from the preset (the stored selection unless
--preset is given). Without --mode the stored mode is used.

Examples:
  # Primary palette of the selected preset
  tonal palette

  # Palette from a seed hue and chroma in dark mode
  tonal palette --hue 265 --chroma 0.15 --mode dark

  # Surface palette as JSON
  tonal palette --surface --format json

  # Write a PNG swatch sheet
  tonal palette --preset ember --png ember.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPalette(cmd, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.hue, "hue", 0, "seed hue in degrees (default: from preset)")
	cmd.Flags().Float64Var(&opts.chroma, "chroma", 0, "seed chroma, 0 to 0.37 (default: from preset)")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "preset to take the seed from (default: stored selection)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "light or dark (default: stored selection)")
	cmd.Flags().BoolVar(&opts.surface, "surface", false, "generate the surface palette instead of the primary")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "output format (table, hex, json, css)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.png, "png", "", "also write a PNG swatch sheet to this file")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour previews in terminal")

	return cmd
}

func (a *app) runPalette(cmd *cobra.Command, opts *paletteOptions) error {
	state, err := a.loadState()
	if err != nil {
		return err
	}

	mode := state.Mode
	if cmd.Flags().Changed("mode") {
		if mode, err = colour.ParseMode(opts.mode); err != nil {
			return err
		}
	}

	var palette *colour.Palette
	if opts.surface {
		palette = colour.GenerateSurfacePalette(mode)
	} else {
		hue, chroma, err := a.paletteSeed(cmd, opts, state.Preset)
		if err != nil {
			return err
		}
		a.logger.Debug("generating primary palette", "hue", hue, "chroma", chroma, "mode", mode)
		palette = colour.GeneratePrimaryPalette(hue, chroma, mode)
	}

	content, err := a.formatPalette(palette, opts)
	if err != nil {
		return err
	}
	if err := a.writeOutput(cmd, opts.output, content); err != nil {
		return err
	}

	if opts.png != "" {
		return a.writePaletteSheet(cmd, opts.png, palette)
	}
	return nil
}

// paletteSeed resolves hue and chroma from flags, falling back to the preset.
func (a *app) paletteSeed(cmd *cobra.Command, opts *paletteOptions, storedPreset string) (float64, float64, error) {
	hueSet := cmd.Flags().Changed("hue")
	chromaSet := cmd.Flags().Changed("chroma")
	if hueSet && chromaSet {
		return opts.hue, opts.chroma, nil
	}

	name := storedPreset
	if opts.preset != "" {
		name = opts.preset
	}
	p, err := theme.ActivePreset(a.registry, theme.State{Preset: name})
	if err != nil {
		return 0, 0, err
	}

	hue, chroma := p.PrimaryHue, p.PrimaryChroma
	if hueSet {
		hue = opts.hue
	}
	if chromaSet {
		chroma = opts.chroma
	}
	return hue, chroma, nil
}

func (a *app) formatPalette(p *colour.Palette, opts *paletteOptions) ([]byte, error) {
	switch opts.format {
	case "table", "":
		return []byte(a.paletteTable(p, a.previewEnabled(opts.preview, opts.output))), nil
	case "hex":
		var b strings.Builder
		for _, s := range p.Swatches {
			b.WriteString(s.Hex)
			b.WriteByte('\n')
		}
		return []byte(b.String()), nil
	case "json":
		data, err := p.ToJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return append(data, '\n'), nil
	case "css":
		var b strings.Builder
		b.WriteString(":root {\n")
		for _, s := range p.Swatches {
			fmt.Fprintf(&b, "  --p-%s-%d: %s;\n", p.Role, s.Step, s.Hex)
		}
		b.WriteString("}\n")
		return []byte(b.String()), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: table, hex, json, css)", opts.format)
	}
}

func (a *app) paletteTable(p *colour.Palette, showPreview bool) string {
	white := colour.RGB{R: 255, G: 255, B: 255}
	black := colour.RGB{}

	headers := []string{"STEP", "HEX", "OKLCH", "VS WHITE", "VS BLACK"}
	if showPreview {
		headers = append([]string{""}, headers...)
	}

	table := NewTable(headers)
	offset := len(headers) - 5
	table.AlignRight(offset)
	table.AlignRight(offset + 3)
	table.AlignRight(offset + 4)

	for _, s := range p.Swatches {
		row := []string{
			s.Step.String(),
			s.Hex,
			s.OKLCH.String(),
			fmt.Sprintf("%.2f", colour.ContrastRatio(s.RGB, white)),
			fmt.Sprintf("%.2f", colour.ContrastRatio(s.RGB, black)),
		}
		if showPreview {
			row = append([]string{colour.ColourPreview(s.RGB, 4)}, row...)
		}
		table.AddRow(row)
	}

	return fmt.Sprintf("%s palette (%s)\n\n%s", p.Role, p.Mode, table.Render())
}

func (a *app) writePaletteSheet(cmd *cobra.Command, path string, palettes ...*colour.Palette) error {
	var buf bytes.Buffer
	if err := swatch.WritePNG(&buf, palettes, swatch.DefaultOptions()); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write swatch sheet: %w", err)
	}
	a.logger.Debug("wrote swatch sheet", "path", path, "palettes", len(palettes))
	a.printf(cmd, "%s Wrote %s\n", passStyle.Sprint("✓"), path)
	return nil
}
