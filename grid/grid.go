// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Coord is a zero-based cell position: X is the column, Y the row.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c shifted by (dx, dy). The result may lie outside any grid.
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Grid is a width×height rectangle of cells in row-major order.
// The shape is fixed at construction; cell values may be changed in place.
type Grid[T any] struct {
	width, height int
	cells         []T // len(cells) == width*height
}

// New builds a Grid from cells already flattened in row-major order.
// The slice is adopted, not copied.
// Panics with an error wrapping ErrShapeMismatch if len(cells) != width*height
// or either dimension is negative.
// Complexity: O(1).
func New[T any](height, width int, cells []T) *Grid[T] {
	if height < 0 || width < 0 || len(cells) != width*height {
		panic(shapeErrorf("New", height, width, len(cells)))
	}

	return &Grid[T]{width: width, height: height, cells: cells}
}

// NewInferWidth builds a Grid of the given height, deriving the width from
// len(cells)/height. Panics like New if the cells do not fill whole rows.
// Complexity: O(1).
func NewInferWidth[T any](height int, cells []T) *Grid[T] {
	if height <= 0 {
		if len(cells) == 0 && height == 0 {
			return &Grid[T]{}
		}
		panic(shapeErrorf("NewInferWidth", height, 0, len(cells)))
	}
	width := len(cells) / height
	if width*height != len(cells) {
		panic(shapeErrorf("NewInferWidth", height, width, len(cells)))
	}

	return &Grid[T]{width: width, height: height, cells: cells}
}

// NewFilled returns a height×width Grid with every cell set to v.
// Complexity: O(W×H).
func NewFilled[T any](height, width int, v T) *Grid[T] {
	if height < 0 || width < 0 {
		panic(shapeErrorf("NewFilled", height, width, 0))
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = v
	}

	return &Grid[T]{width: width, height: height, cells: cells}
}

// NewFromRows copies a rectangular 2D slice into a new Grid.
// Unlike New it validates its input and reports ErrEmptyGrid when there are no
// rows or no columns, ErrNonRectangular when row lengths differ.
// Complexity: O(W×H).
func NewFromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]T, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{width: w, height: h, cells: cells}, nil
}

// NumRows returns the height of the grid.
func (g *Grid[T]) NumRows() int {
	return g.height
}

// NumCols returns the width of the grid.
func (g *Grid[T]) NumCols() int {
	return g.width
}

// Len returns the number of cells, NumRows()*NumCols().
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// InBounds reports whether (x,y) lies within the grid. Negative values are
// accepted so callers can probe neighbours with signed offsets.
// Complexity: O(1).
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to its row-major offset y*width + x. No bounds check.
func (g *Grid[T]) Index(x, y int) int {
	return y*g.width + x
}

// Coord maps a row-major offset back to its coordinate. No bounds check;
// the grid must have a non-zero width.
func (g *Grid[T]) Coord(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}

// mustIndex is Index with the bounds check that Get, Ptr and Set rely on.
// Without it an x past the row end would silently land in the next row.
func (g *Grid[T]) mustIndex(method string, x, y int) int {
	if uint(x) >= uint(g.width) || uint(y) >= uint(g.height) {
		panic(rangeErrorf(method, x, y))
	}

	return y*g.width + x
}

// Get returns the cell at (x,y). Panics with ErrOutOfRange outside the grid.
// Complexity: O(1).
func (g *Grid[T]) Get(x, y int) T {
	return g.cells[g.mustIndex("Get", x, y)]
}

// GetAt is Get taking a Coord.
func (g *Grid[T]) GetAt(c Coord) T {
	return g.cells[g.mustIndex("Get", c.X, c.Y)]
}

// Ptr returns a pointer to the cell at (x,y) for in-place mutation.
// The pointer must not be written through while an iterator over g is drawn.
// Panics with ErrOutOfRange outside the grid.
// Complexity: O(1).
func (g *Grid[T]) Ptr(x, y int) *T {
	return &g.cells[g.mustIndex("Ptr", x, y)]
}

// Set stores v at (x,y). Panics with ErrOutOfRange outside the grid.
func (g *Grid[T]) Set(x, y int, v T) {
	g.cells[g.mustIndex("Set", x, y)] = v
}

// Lookup is the checked variant of Get: it reports false instead of panicking
// when (x,y) lies outside the grid.
func (g *Grid[T]) Lookup(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}

	return g.cells[y*g.width+x], true
}
