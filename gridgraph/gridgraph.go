// SPDX-License-Identifier: MIT

package gridgraph

import (
	"iter"

	"github.com/katalvlaran/lvlgrid/grid"
)

// NewGridGraph wraps g with the land predicate and options.
// Returns ErrEmptyGrid if g is nil or has no cells, ErrNilPredicate if land is nil.
// Complexity: O(1).
func NewGridGraph[T any](g *grid.Grid[T], land func(T) bool, opts GridOptions) (*GridGraph[T], error) {
	if g == nil || g.Len() == 0 {
		return nil, ErrEmptyGrid
	}
	if land == nil {
		return nil, ErrNilPredicate
	}

	return &GridGraph[T]{
		Grid:    g,
		Land:    land,
		Conn:    opts.Conn,
		offsets: Offsets(opts.Conn),
	}, nil
}

// Neighbors yields the in-bounds neighbours of c in clockwise order from north.
// Complexity: O(d).
func Neighbors[T any](g *grid.Grid[T], c grid.Coord, conn Connectivity) iter.Seq[grid.Coord] {
	offsets := Offsets(conn)
	return func(yield func(grid.Coord) bool) {
		for _, d := range offsets {
			n := c.Add(d[0], d[1])
			if !g.InBounds(n.X, n.Y) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Neighbors yields the in-bounds neighbours of c under gg.Conn.
func (gg *GridGraph[T]) Neighbors(c grid.Coord) iter.Seq[grid.Coord] {
	return Neighbors(gg.Grid, c, gg.Conn)
}

// IsLand reports whether the cell at c is land. c must be inside the grid.
func (gg *GridGraph[T]) IsLand(c grid.Coord) bool {
	return gg.Land(gg.Grid.GetAt(c))
}
