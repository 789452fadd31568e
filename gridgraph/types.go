// SPDX-License-Identifier: MIT

// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvlgrid.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a nil grid or one without cells.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNilPredicate indicates a missing land predicate.
	ErrNilPredicate = errors.New("gridgraph: land predicate is nil")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the (dx,dy) neighbour offsets for conn, clockwise from north.
// The returned slice is shared and must not be modified.
func Offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return offsets8
	}

	return offsets4
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings: Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph views a grid as a graph whose vertices are cells and whose edges
// join neighbouring cells. Land decides which cells belong to islands.
// The grid is borrowed, not copied: do not mutate it while a GridGraph
// method is running.
type GridGraph[T any] struct {
	Grid *grid.Grid[T]
	Land func(T) bool
	Conn Connectivity

	offsets [][2]int
}
