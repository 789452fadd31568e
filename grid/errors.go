// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch indicates that the number of supplied cells differs from width*height,
	// or that a dimension is negative.
	ErrShapeMismatch = errors.New("grid: cell count does not match width*height")
	// ErrOutOfRange indicates a coordinate outside the grid.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
	// ErrEmptyGrid indicates input with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// shapeErrorf builds the panic value for a failed constructor.
func shapeErrorf(method string, height, width, n int) error {
	return fmt.Errorf("grid.%s(%d,%d): got %d cells: %w", method, height, width, n, ErrShapeMismatch)
}

// rangeErrorf builds the panic value for an out-of-range access.
func rangeErrorf(method string, x, y int) error {
	return fmt.Errorf("grid.%s(%d,%d): %w", method, x, y, ErrOutOfRange)
}
