// SPDX-License-Identifier: MIT

package grid

import "iter"

// Col iterates over the cells of one column, y = 0..H-1.
// Like Row it is a value; copies draw independently.
type Col[T any] struct {
	g *Grid[T]
	x int
	s span // over y
}

// Col returns an iterator over column x. Panics with ErrOutOfRange if x is not a column.
// Complexity: O(1).
func (g *Grid[T]) Col(x int) Col[T] {
	if uint(x) >= uint(g.width) {
		panic(rangeErrorf("Col", x, 0))
	}

	return Col[T]{g: g, x: x, s: newSpan(g.height)}
}

// X returns the column this iterator is anchored at.
func (c Col[T]) X() int {
	return c.x
}

// Get returns the cell at row y of this column, ignoring the cursor.
// Panics with ErrOutOfRange if y is not a row.
func (c Col[T]) Get(y int) T {
	return c.g.cells[c.g.mustIndex("Col.Get", c.x, y)]
}

// Next draws the next cell from the front (top).
func (c *Col[T]) Next() (T, bool) {
	y, ok := c.s.front()
	if !ok {
		var zero T
		return zero, false
	}

	return c.g.cells[y*c.g.width+c.x], true
}

// NextBack draws the next cell from the back (bottom).
func (c *Col[T]) NextBack() (T, bool) {
	y, ok := c.s.back()
	if !ok {
		var zero T
		return zero, false
	}

	return c.g.cells[y*c.g.width+c.x], true
}

// Len returns the number of cells not yet drawn from either end.
func (c Col[T]) Len() int {
	return c.s.len()
}

// Clone returns an independent copy of the iterator at its current position.
func (c Col[T]) Clone() Col[T] {
	return c
}

// Values drains the column from the front.
func (c *Col[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward drains the column from the back.
func (c *Col[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.NextBack()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the column from the front into a new slice.
func (c *Col[T]) Collect() []T {
	out := make([]T, 0, c.Len())
	for v := range c.Values() {
		out = append(out, v)
	}

	return out
}

// Cols iterates over the columns of a grid, yielding one Col per x.
type Cols[T any] struct {
	g *Grid[T]
	s span // over x
}

// Cols returns an iterator yielding Col(0), Col(1), ..., Col(W-1).
func (g *Grid[T]) Cols() *Cols[T] {
	return &Cols[T]{g: g, s: newSpan(g.width)}
}

// Next draws the next column from the front.
func (it *Cols[T]) Next() (Col[T], bool) {
	x, ok := it.s.front()
	if !ok {
		return Col[T]{}, false
	}

	return Col[T]{g: it.g, x: x, s: newSpan(it.g.height)}, true
}

// NextBack draws the next column from the back.
func (it *Cols[T]) NextBack() (Col[T], bool) {
	x, ok := it.s.back()
	if !ok {
		return Col[T]{}, false
	}

	return Col[T]{g: it.g, x: x, s: newSpan(it.g.height)}, true
}

// Len returns the number of columns not yet drawn from either end.
func (it *Cols[T]) Len() int {
	return it.s.len()
}

// All drains the iterator from the front.
func (it *Cols[T]) All() iter.Seq[Col[T]] {
	return func(yield func(Col[T]) bool) {
		for {
			c, ok := it.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Backward drains the iterator from the back.
func (it *Cols[T]) Backward() iter.Seq[Col[T]] {
	return func(yield func(Col[T]) bool) {
		for {
			c, ok := it.NextBack()
			if !ok || !yield(c) {
				return
			}
		}
	}
}
