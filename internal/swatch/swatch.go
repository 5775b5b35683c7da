// Package swatch renders palettes as PNG swatch sheets.
package swatch

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/jmylchreest/tonal/internal/colour"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Default cell dimensions in pixels.
const (
	DefaultCellWidth  = 64
	DefaultCellHeight = 48
	labelInset        = 4
)

// ErrNoPalettes is returned when there is nothing to render.
var ErrNoPalettes = errors.New("no palettes to render")

// Options controls the sheet layout.
type Options struct {
	CellWidth  int
	CellHeight int
	// Labels draws the step number in the bottom-left corner of each cell.
	Labels bool
}

// DefaultOptions returns the default layout with labels enabled.
func DefaultOptions() Options {
	return Options{
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		Labels:     true,
	}
}

// Render draws one row per palette and one cell per step.
func Render(palettes []*colour.Palette, opts Options) (*image.RGBA, error) {
	if len(palettes) == 0 {
		return nil, ErrNoPalettes
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = DefaultCellWidth
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = DefaultCellHeight
	}

	columns := 0
	for _, p := range palettes {
		columns = max(columns, p.Len())
	}

	img := image.NewRGBA(image.Rect(0, 0, columns*opts.CellWidth, len(palettes)*opts.CellHeight))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	for row, p := range palettes {
		for col, s := range p.Swatches {
			cell := image.Rect(
				col*opts.CellWidth, row*opts.CellHeight,
				(col+1)*opts.CellWidth, (row+1)*opts.CellHeight,
			)
			draw.Draw(img, cell, image.NewUniform(s.RGB), image.Point{}, draw.Src)

			if opts.Labels {
				drawLabel(img, cell, s)
			}
		}
	}

	return img, nil
}

// drawLabel writes the step number in a colour that contrasts with the cell.
func drawLabel(img draw.Image, cell image.Rectangle, s colour.Swatch) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Color(colour.BestTextColour(s.RGB))),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(cell.Min.X + labelInset),
			Y: fixed.I(cell.Max.Y - labelInset - face.Descent),
		},
	}
	d.DrawString(s.Step.String())
}

// WritePNG renders the palettes and encodes the sheet as PNG.
func WritePNG(w io.Writer, palettes []*colour.Palette, opts Options) error {
	img, err := Render(palettes, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
