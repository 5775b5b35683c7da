package colour

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultWidth = 8

// ColourPreview returns a solid terminal block for a colour.
// Width specifies how many characters wide the colour block should be.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", width))
}

// ColourPreviewWithText returns a colour block with centred text.
// The text colour is black or white, whichever contrasts more.
func ColourPreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if len(text) > width {
		text = text[:width]
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(BestTextColour(c).Hex())).
		Width(width).
		Align(lipgloss.Center).
		Render(text)
}

// PaletteStrip renders every swatch of a palette side by side on one line.
func PaletteStrip(p *Palette, width int) string {
	blocks := make([]string, 0, p.Len())
	for _, s := range p.Swatches {
		blocks = append(blocks, ColourPreviewWithText(s.RGB, s.Step.String(), width))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
