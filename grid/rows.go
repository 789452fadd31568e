// SPDX-License-Identifier: MIT

package grid

import "iter"

// Row iterates over the cells of one row, x = 0..W-1.
//
// Row is a small value: assigning or Clone-ing it forks an independent cursor
// over the same row, which is how callers take a look-ahead view without
// disturbing the original.
type Row[T any] struct {
	g *Grid[T]
	y int
	s span // over x
}

// Row returns an iterator over row y. Panics with ErrOutOfRange if y is not a row.
// Complexity: O(1).
func (g *Grid[T]) Row(y int) Row[T] {
	if uint(y) >= uint(g.height) {
		panic(rangeErrorf("Row", 0, y))
	}

	return Row[T]{g: g, y: y, s: newSpan(g.width)}
}

// Y returns the row this iterator is anchored at.
func (r Row[T]) Y() int {
	return r.y
}

// Get returns the cell at column x of this row, ignoring the cursor.
// Panics with ErrOutOfRange if x is not a column.
func (r Row[T]) Get(x int) T {
	return r.g.cells[r.g.mustIndex("Row.Get", x, r.y)]
}

// Next draws the next cell from the front.
func (r *Row[T]) Next() (T, bool) {
	x, ok := r.s.front()
	if !ok {
		var zero T
		return zero, false
	}

	return r.g.cells[r.y*r.g.width+x], true
}

// NextBack draws the next cell from the back.
func (r *Row[T]) NextBack() (T, bool) {
	x, ok := r.s.back()
	if !ok {
		var zero T
		return zero, false
	}

	return r.g.cells[r.y*r.g.width+x], true
}

// Len returns the number of cells not yet drawn from either end.
func (r Row[T]) Len() int {
	return r.s.len()
}

// Clone returns an independent copy of the iterator at its current position.
func (r Row[T]) Clone() Row[T] {
	return r
}

// Values drains the row from the front.
func (r *Row[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := r.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward drains the row from the back.
func (r *Row[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := r.NextBack()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the row from the front into a new slice.
func (r *Row[T]) Collect() []T {
	out := make([]T, 0, r.Len())
	for v := range r.Values() {
		out = append(out, v)
	}

	return out
}

// Rows iterates over the rows of a grid, yielding one Row per y.
type Rows[T any] struct {
	g *Grid[T]
	s span // over y
}

// Rows returns an iterator yielding Row(0), Row(1), ..., Row(H-1).
// Each Row is built only when drawn.
func (g *Grid[T]) Rows() *Rows[T] {
	return &Rows[T]{g: g, s: newSpan(g.height)}
}

// Next draws the next row from the front.
func (it *Rows[T]) Next() (Row[T], bool) {
	y, ok := it.s.front()
	if !ok {
		return Row[T]{}, false
	}

	return Row[T]{g: it.g, y: y, s: newSpan(it.g.width)}, true
}

// NextBack draws the next row from the back.
func (it *Rows[T]) NextBack() (Row[T], bool) {
	y, ok := it.s.back()
	if !ok {
		return Row[T]{}, false
	}

	return Row[T]{g: it.g, y: y, s: newSpan(it.g.width)}, true
}

// Len returns the number of rows not yet drawn from either end.
func (it *Rows[T]) Len() int {
	return it.s.len()
}

// All drains the iterator from the front.
func (it *Rows[T]) All() iter.Seq[Row[T]] {
	return func(yield func(Row[T]) bool) {
		for {
			r, ok := it.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// Backward drains the iterator from the back.
func (it *Rows[T]) Backward() iter.Seq[Row[T]] {
	return func(yield func(Row[T]) bool) {
		for {
			r, ok := it.NextBack()
			if !ok || !yield(r) {
				return
			}
		}
	}
}
