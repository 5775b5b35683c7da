package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// errValidationFailed is returned when a theme does not pass its contrast checks.
var errValidationFailed = errors.New("contrast validation failed")

// stateFlags are the selection overrides shared by the theme subcommands.
// Only flags set on the command line are applied.
type stateFlags struct {
	preset        string
	mode          string
	highContrast  bool
	reducedMotion bool
}

func (f *stateFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.preset, "preset", "p", "", "preset name")
	fs.StringVarP(&f.mode, "mode", "m", "", "light or dark")
	fs.BoolVar(&f.highContrast, "high-contrast", false, "require AAA contrast and strengthen borders and focus rings")
	fs.BoolVar(&f.reducedMotion, "reduced-motion", false, "disable transitions")
}

func (f *stateFlags) apply(fs *pflag.FlagSet, s theme.State) (theme.State, error) {
	if fs.Changed("preset") {
		s = s.WithPreset(f.preset)
	}
	if fs.Changed("mode") {
		mode, err := colour.ParseMode(f.mode)
		if err != nil {
			return s, err
		}
		s = s.WithMode(mode)
	}
	if fs.Changed("high-contrast") {
		s = s.WithHighContrast(f.highContrast)
	}
	if fs.Changed("reduced-motion") {
		s = s.WithReducedMotion(f.reducedMotion)
	}
	return s, nil
}

// selection loads the stored state and applies the command line overrides.
func (a *app) selection(cmd *cobra.Command, flags *stateFlags) (theme.State, error) {
	s, err := a.loadState()
	if err != nil {
		return s, err
	}
	return flags.apply(cmd.Flags(), s)
}

func newThemeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage theme presets and the selected theme",
		Long: `Inspect presets, resolve the selected theme into role colours,
export it as CSS, certify its contrast and change the stored selection.

Every subcommand starts from the stored selection; --preset, --mode,
--high-contrast and --reduced-motion override it for that invocation
(and are persisted by "theme set").`,
	}

	cmd.AddCommand(newThemeListCmd(a))
	cmd.AddCommand(newThemeShowCmd(a))
	cmd.AddCommand(newThemeCSSCmd(a))
	cmd.AddCommand(newThemeValidateCmd(a))
	cmd.AddCommand(newThemeSwatchCmd(a))
	cmd.AddCommand(newThemeSetCmd(a))
	cmd.AddCommand(newThemeGetCmd(a))

	return cmd
}

func newThemeListCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := a.loadState()
			if err != nil {
				return err
			}

			presets := a.registry.Presets()
			if format == "json" {
				data, err := json.MarshalIndent(presets, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to convert to JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			table := NewTable([]string{"", "NAME", "LABEL", "HUE", "CHROMA", "SURFACE", "RADIUS"})
			table.AlignRight(3)
			table.AlignRight(4)
			for _, p := range presets {
				marker := ""
				if p.Name == state.Preset {
					marker = "*"
				}
				table.AddRow([]string{
					marker,
					p.Name,
					p.Label,
					fmt.Sprintf("%g", p.PrimaryHue),
					fmt.Sprintf("%.2f", p.PrimaryChroma),
					string(p.Surface),
					p.Tokens.BorderRadius,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json)")
	return cmd
}

func newThemeShowCmd(a *app) *cobra.Command {
	flags := &stateFlags{}
	var (
		format  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved role colours of the selected theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.selection(cmd, flags)
			if err != nil {
				return err
			}
			t, err := theme.Resolve(a.registry, s)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				data, err := json.MarshalIndent(t, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to convert to JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			case "text", "":
				fmt.Fprint(cmd.OutOrStdout(), a.formatTheme(t, a.previewEnabled(preview, "")))
				return nil
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&preview, "preview", false, "show colour previews in terminal")
	return cmd
}

func (a *app) formatTheme(t *theme.Theme, preview bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", t.Preset.Label, t.Preset.Name)
	fmt.Fprintf(&b, "  mode: %s  high contrast: %t  reduced motion: %t\n\n",
		t.State.Mode, t.State.Accessibility.HighContrast, t.State.Accessibility.ReducedMotion)

	headers := []string{"ROLE", "PALETTE", "HEX", "OKLCH"}
	if preview {
		headers = append([]string{""}, headers...)
	}
	table := NewTable(headers)
	for _, r := range t.Roles {
		o, _ := colour.HexToOklch(r.Hex)
		row := []string{string(r.Role), fmt.Sprintf("%s-%d", r.Ref.Palette, r.Ref.Step), r.Hex, o.String()}
		if preview {
			rgb, _ := colour.ParseHex(r.Hex)
			row = append([]string{colour.ColourPreview(rgb, 4)}, row...)
		}
		table.AddRow(row)
	}
	b.WriteString(table.Render())

	fmt.Fprintf(&b, "\n  border radius: %s  focus ring: %s  transition: %s\n",
		t.Tokens.BorderRadius, t.Tokens.FocusRingWidth, t.Tokens.TransitionDuration)

	if preview {
		b.WriteString("\n")
		for _, p := range t.Palettes() {
			fmt.Fprintf(&b, "  %-8s %s\n", p.Role, colour.PaletteStrip(p, 5))
		}
	}
	return b.String()
}

func newThemeCSSCmd(a *app) *cobra.Command {
	flags := &stateFlags{}
	var (
		output       string
		darkSelector string
	)

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Export the selected preset as CSS custom properties",
		Long: `Export the selected preset as CSS custom properties. Light mode
variables are declared on :root and dark mode variables under the dark
selector, so toggling the selector's class switches modes.

Examples:
  tonal theme css -o theme.css
  tonal theme css --preset lara --dark-selector '[data-theme=dark]'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.selection(cmd, flags)
			if err != nil {
				return err
			}
			css, err := theme.RenderCSS(a.registry, s, darkSelector)
			if err != nil {
				return err
			}
			return a.writeOutput(cmd, output, css)
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&darkSelector, "dark-selector", theme.DefaultDarkSelector, "selector that enables dark mode")
	return cmd
}

func newThemeValidateCmd(a *app) *cobra.Command {
	flags := &stateFlags{}
	var (
		all    bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Certify the text contrast of the selected theme",
		Long: `Certify the theme's text/background pairs with the exact WCAG ratio.
AA is required, or AAA when high contrast is selected. Exits non-zero if
any pair fails.

With --all every preset is checked in both modes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.selection(cmd, flags)
			if err != nil {
				return err
			}

			states := []theme.State{s}
			if all {
				states = states[:0]
				for _, name := range a.registry.Names() {
					for _, mode := range colour.Modes {
						states = append(states, s.WithPreset(name).WithMode(mode))
					}
				}
			}

			reports := make([]theme.Report, 0, len(states))
			for _, st := range states {
				t, err := theme.Resolve(a.registry, st)
				if err != nil {
					return err
				}
				reports = append(reports, theme.Validate(t))
			}

			if err := a.printReports(cmd, reports, format); err != nil {
				return err
			}

			failed := 0
			for _, r := range reports {
				if !r.Passed() {
					failed++
					a.logger.Warn("theme failed contrast validation", "preset", r.Preset, "mode", r.State.Mode, "failures", len(r.Failures()))
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d themes", errValidationFailed, failed, len(reports))
			}
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&all, "all", false, "validate every preset in both modes")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	return cmd
}

func (a *app) printReports(cmd *cobra.Command, reports []theme.Report, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "text", "":
		for i, r := range reports {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s %s (%s)\n", badge(r.Passed()), r.Preset, r.State.Mode)

			table := NewTable([]string{"PAIR", "FG", "BG", "RATIO", "LEVEL", "REQUIRED", ""})
			table.AlignRight(3)
			for _, c := range r.Checks {
				table.AddRow([]string{
					c.Name,
					c.FgHex,
					c.BgHex,
					fmt.Sprintf("%.2f:1", c.Ratio),
					c.Level.String(),
					c.Required.String(),
					badge(c.Pass),
				})
			}
			fmt.Fprint(out, table.Render())
		}
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
	}
	return nil
}

func newThemeSwatchCmd(a *app) *cobra.Command {
	flags := &stateFlags{}

	cmd := &cobra.Command{
		Use:   "swatch <file.png>",
		Short: "Write the theme palettes as a PNG swatch sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.selection(cmd, flags)
			if err != nil {
				return err
			}
			t, err := theme.Resolve(a.registry, s)
			if err != nil {
				return err
			}
			return a.writePaletteSheet(cmd, args[0], t.Palettes()...)
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

func newThemeSetCmd(a *app) *cobra.Command {
	flags := &stateFlags{}
	var toggle bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the stored selection",
		Long: `Change the stored preset, mode or accessibility flags. Only the
flags given are changed.

Examples:
  tonal theme set --preset lara
  tonal theme set --toggle-mode
  tonal theme set --high-contrast --reduced-motion=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if toggle && cmd.Flags().Changed("mode") {
				return fmt.Errorf("--toggle-mode and --mode are mutually exclusive")
			}

			store, err := a.store()
			if err != nil {
				return err
			}
			s, err := store.Load()
			if err != nil {
				return err
			}

			next, err := flags.apply(cmd.Flags(), s)
			if err != nil {
				return err
			}
			if toggle {
				next = next.ToggleMode()
			}

			if err := store.Save(next); err != nil {
				return err
			}
			a.logger.Debug("saved state", "path", store.Path(), "state", next.String())
			a.printf(cmd, "%s %s\n", passStyle.Sprint("✓"), next)
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&toggle, "toggle-mode", false, "switch between light and dark")
	return cmd
}

func newThemeGetCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Print the stored selection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadState()
			if err != nil {
				return err
			}
			values := config.Values(s)

			if len(args) == 1 {
				v, ok := values[args[0]]
				if !ok {
					return fmt.Errorf("unknown key: %q (valid: %s)", args[0], strings.Join(sortedKeys(values), ", "))
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			}

			switch format {
			case "json":
				data, err := json.MarshalIndent(s, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to convert to JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			case "text", "":
				for _, k := range sortedKeys(values) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, values[k])
				}
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	return cmd
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
