// SPDX-License-Identifier: MIT

// Package gridgraph treats a grid.Grid as a graph of neighbouring cells,
// enabling component analysis and minimal-cost "island" expansions.
//
// What:
//
//   - GridGraph wraps a *grid.Grid[T] with a land predicate deciding which
//     cells are "land".
//   - Neighbors yields the in-bounds 4- or 8-neighbours of a cell.
//   - ConnectedComponents finds contiguous regions ("islands") of land cells.
//   - ExpandIsland computes minimal conversions (0-1 BFS) to connect two islands.
//
// Why:
//
//   - Puzzle maps: contiguous region detection, flood fills, bridging.
//   - Topology analysis: count lakes, islands and enclosed regions.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbours, 4 or 8).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbours) or Conn8 (8-neighbours).
//
// Errors:
//
//   - ErrEmptyGrid: the grid is nil or has no cells.
//   - ErrNilPredicate: no land predicate was supplied.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
