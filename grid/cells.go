// SPDX-License-Identifier: MIT

package grid

import "iter"

// Cells iterates over every cell of a grid in row-major order, yielding each
// cell with its coordinate. Obtain one with Grid.Iter.
type Cells[T any] struct {
	g *Grid[T]
	s span // over linear offsets [0, W×H)
}

// Iter returns a fresh iterator over all cells. Drawing from the front yields
// (0,0), (1,0), ..., (W-1,0), (0,1), ...; drawing from the back yields the
// exact reverse, starting at (W-1,H-1).
// Complexity: O(1).
func (g *Grid[T]) Iter() *Cells[T] {
	return &Cells[T]{g: g, s: newSpan(len(g.cells))}
}

// All is shorthand for g.Iter().All().
func (g *Grid[T]) All() iter.Seq2[Coord, T] {
	return g.Iter().All()
}

// Next draws the next cell from the front.
func (it *Cells[T]) Next() (Coord, T, bool) {
	i, ok := it.s.front()
	if !ok {
		var zero T
		return Coord{}, zero, false
	}

	return it.g.Coord(i), it.g.cells[i], true
}

// NextBack draws the next cell from the back.
func (it *Cells[T]) NextBack() (Coord, T, bool) {
	i, ok := it.s.back()
	if !ok {
		var zero T
		return Coord{}, zero, false
	}

	return it.g.Coord(i), it.g.cells[i], true
}

// Len returns the number of cells not yet drawn from either end.
func (it *Cells[T]) Len() int {
	return it.s.len()
}

// All drains the iterator from the front.
func (it *Cells[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for {
			c, v, ok := it.Next()
			if !ok || !yield(c, v) {
				return
			}
		}
	}
}

// Backward drains the iterator from the back.
func (it *Cells[T]) Backward() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for {
			c, v, ok := it.NextBack()
			if !ok || !yield(c, v) {
				return
			}
		}
	}
}
