package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	passStyle = color.New(color.FgGreen, color.Bold)
	failStyle = color.New(color.FgRed, color.Bold)
	dimStyle  = color.New(color.Faint)
)

// badge returns a coloured PASS or FAIL marker. fatih/color drops the
// styling when NO_COLOR is set or stdout is not a terminal.
func badge(pass bool) string {
	if pass {
		return passStyle.Sprint("PASS")
	}
	return failStyle.Sprint("FAIL")
}

// previewEnabled reports whether colour previews should be drawn: they were
// requested, output goes to stdout rather than outputPath, and stdout is a
// terminal.
func (a *app) previewEnabled(requested bool, outputPath string) bool {
	if !requested {
		return false
	}
	if outputPath != "" {
		a.logger.Debug("preview disabled, writing to file", "path", outputPath)
		return false
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		a.logger.Debug("preview disabled, stdout is not a terminal")
		return false
	}
	return true
}

// parseColourArg accepts "#rrggbb" or an OKLCH triple.
func parseColourArg(s string) (colour.RGB, error) {
	if strings.HasPrefix(s, "#") {
		rgb, ok := colour.ParseHex(s)
		if !ok {
			return colour.RGB{}, fmt.Errorf("invalid hex colour: %q (expected #rrggbb)", s)
		}
		return rgb, nil
	}

	o, err := colour.ParseOKLCH(s)
	if err != nil {
		return colour.RGB{}, err
	}
	return colour.OklchToRGB(o), nil
}

// writeOutput writes content to path, or to the command's stdout when path is empty.
func (a *app) writeOutput(cmd *cobra.Command, path string, content []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(content)
		return err
	}

	a.logger.Debug("writing output", "path", path, "bytes", len(content))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	a.printf(cmd, "%s Wrote %s\n", passStyle.Sprint("✓"), path)
	return nil
}
