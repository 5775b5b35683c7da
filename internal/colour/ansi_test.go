package colour

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestColourPreviewWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{name: "explicit", width: 4, want: 4},
		{name: "default", width: 0, want: defaultWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lipgloss.Width(ColourPreview(RGB{R: 10, G: 20, B: 30}, tt.width)); got != tt.want {
				t.Errorf("ColourPreview width = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPaletteStrip(t *testing.T) {
	p := GenerateSurfacePalette(ModeLight)
	if got, want := lipgloss.Width(PaletteStrip(p, 5)), 5*p.Len(); got != want {
		t.Errorf("PaletteStrip width = %d, want %d", got, want)
	}
}
