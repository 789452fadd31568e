// SPDX-License-Identifier: MIT

// Package grid provides Grid, a fixed-size rectangular container of cells stored
// in one flat row-major slice, together with a family of bidirectional iterators
// over it.
//
// What:
//
//   - Grid[T] holds width×height cells; cell (x,y) lives at index y*width + x.
//   - Get/Ptr/Set give O(1) random access by coordinate.
//   - Iter walks every cell in row-major order, yielding (Coord, T).
//   - Rows and Cols yield one Row/Col iterator per row or column.
//   - Row(y) and Col(x) traverse a single row or column, with Get for random
//     access inside it that leaves the cursor untouched.
//
// Every iterator can be drawn from both ends: Next consumes the front, NextBack
// the back, and the iterator is exhausted exactly when the two cursors cross.
// Len always reports the exact number of undrawn elements. Draws never allocate.
//
// Why:
//
//   - Puzzle inputs are almost always a rectangle of characters. Solvers need
//     neighbour probing, row/column sweeps in both directions (tilting,
//     mirroring, expansion) and comparisons between whole grids.
//
// Ownership:
//
// Iterators hold a pointer to their Grid and re-index it on every draw. Do not
// mutate the grid (Ptr, Set) while an iterator over it is being drawn; sweeps
// that read and write at the same time should read from one grid and write into
// a second one of the same shape (see NewFilled and Clone), then swap.
//
// Errors:
//
// Constructing a grid from the wrong number of cells and accessing a cell
// outside the grid are programmer errors and panic. The panic value is an error
// wrapping ErrShapeMismatch or ErrOutOfRange, so a recover() site can still
// match it with errors.Is.
//
// Complexity:
//
//   - Get, Ptr, Set, Index, Coord, every Next/NextBack/Len: O(1).
//   - Clone, Equal, Transpose, Format: O(W×H).
package grid
