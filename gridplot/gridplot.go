// SPDX-License-Identifier: MIT

// Package gridplot renders numeric grids as heat maps with gonum/plot.
//
// Grid row 0 is drawn at the top, matching the textual rendering of the
// grid package.
package gridplot

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvlgrid/grid"
)

// ErrEmptyGrid indicates a grid without cells.
var ErrEmptyGrid = errors.New("gridplot: grid must have at least one row and one column")

// XYZ adapts a grid to plotter.GridXYZ.
type XYZ[T any] struct {
	g     *grid.Grid[T]
	value func(T) float64
}

var _ plotter.GridXYZ = (*XYZ[int])(nil)

// NewXYZ wraps g, converting each cell with value.
func NewXYZ[T any](g *grid.Grid[T], value func(T) float64) *XYZ[T] {
	return &XYZ[T]{g: g, value: value}
}

// Dims implements plotter.GridXYZ.
func (a *XYZ[T]) Dims() (c, r int) {
	return a.g.NumCols(), a.g.NumRows()
}

// Z implements plotter.GridXYZ. Plot rows grow upwards, so r is flipped.
func (a *XYZ[T]) Z(c, r int) float64 {
	return a.value(a.g.Get(c, a.g.NumRows()-1-r))
}

// X implements plotter.GridXYZ.
func (a *XYZ[T]) X(c int) float64 {
	return float64(c)
}

// Y implements plotter.GridXYZ.
func (a *XYZ[T]) Y(r int) float64 {
	return float64(r)
}

// Options controls heat map rendering.
type Options struct {
	Title  string
	Colors int       // palette size
	Width  vg.Length // output width
	Height vg.Length // output height
}

// DefaultOptions returns a 16-colour heat palette on a 6×6 inch canvas.
func DefaultOptions() Options {
	return Options{Colors: 16, Width: 6 * vg.Inch, Height: 6 * vg.Inch}
}

// HeatMap builds a plot of g coloured by value.
func HeatMap[T any](g *grid.Grid[T], value func(T) float64, opts Options) (*plot.Plot, error) {
	if g == nil || g.Len() == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.Colors < 2 {
		opts.Colors = DefaultOptions().Colors
	}
	h := plotter.NewHeatMap(NewXYZ(g, value), palette.Heat(opts.Colors, 1))
	if h.Min == h.Max {
		h.Max = h.Min + 1 // constant grid; avoid a zero colour range
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(h)

	return p, nil
}

// Write renders the heat map of g to w in the given format ("png", "svg", "pdf", ...).
func Write[T any](w io.Writer, format string, g *grid.Grid[T], value func(T) float64, opts Options) error {
	p, err := HeatMap(g, value, opts)
	if err != nil {
		return err
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return fmt.Errorf("gridplot: %s writer: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("gridplot: write %s: %w", format, err)
	}

	return nil
}

// Save renders the heat map of g to path; the format follows the file extension.
func Save[T any](path string, g *grid.Grid[T], value func(T) float64, opts Options) error {
	p, err := HeatMap(g, value, opts)
	if err != nil {
		return err
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("gridplot: save %s: %w", path, err)
	}

	return nil
}
