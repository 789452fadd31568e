// SPDX-License-Identifier: MIT

package grid

import "slices"

// Clone returns a deep copy of g with its own backing slice.
// Complexity: O(W×H).
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{width: g.width, height: g.height, cells: slices.Clone(g.cells)}
}

// Equal reports whether a and b have the same shape and identical cells.
// Complexity: O(W×H).
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}

	return slices.Equal(a.cells, b.cells)
}

// Map returns a new grid of the same shape holding fn applied to every cell.
// Complexity: O(W×H).
func Map[T, U any](g *Grid[T], fn func(T) U) *Grid[U] {
	cells := make([]U, len(g.cells))
	for i, v := range g.cells {
		cells[i] = fn(v)
	}

	return &Grid[U]{width: g.width, height: g.height, cells: cells}
}

// Transpose returns a new grid whose row i is column i of g.
// Complexity: O(W×H).
func (g *Grid[T]) Transpose() *Grid[T] {
	cells := make([]T, 0, len(g.cells))
	for col := range g.Cols().All() {
		cells = append(cells, col.Collect()...)
	}

	return &Grid[T]{width: g.height, height: g.width, cells: cells}
}
