// SPDX-License-Identifier: MIT

// Package gridmat converts between grid.Grid and gonum dense matrices, so
// numeric grids can be handed to linear-algebra routines.
//
// Grid row y becomes matrix row y and grid column x becomes matrix column x,
// i.e. cell (x,y) maps to element (y,x).
package gridmat

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlgrid/grid"
)

// ErrEmptyGrid indicates a grid without cells; gonum matrices cannot be empty.
var ErrEmptyGrid = errors.New("gridmat: grid must have at least one row and one column")

// ToDense copies g into a new NumRows×NumCols dense matrix, converting cells with fn.
// Complexity: O(W×H).
func ToDense[T any](g *grid.Grid[T], fn func(T) float64) (*mat.Dense, error) {
	if g == nil || g.Len() == 0 {
		return nil, ErrEmptyGrid
	}
	data := make([]float64, 0, g.Len())
	for _, v := range g.All() {
		data = append(data, fn(v))
	}

	return mat.NewDense(g.NumRows(), g.NumCols(), data), nil
}

// FromDense copies any gonum matrix into a new grid of float64 cells.
// Complexity: O(r×c).
func FromDense(m mat.Matrix) *grid.Grid[float64] {
	r, c := m.Dims()
	cells := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			cells = append(cells, m.At(i, j))
		}
	}

	return grid.New(r, c, cells)
}

// RowSums returns the sum of every grid row, computed as the matrix-vector
// product M·1.
func RowSums[T any](g *grid.Grid[T], fn func(T) float64) ([]float64, error) {
	m, err := ToDense(g, fn)
	if err != nil {
		return nil, err
	}
	ones := make([]float64, g.NumCols())
	for i := range ones {
		ones[i] = 1
	}
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(len(ones), ones))

	return out.RawVector().Data, nil
}
