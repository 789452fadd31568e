// SPDX-License-Identifier: MIT

package gridgraph

import "github.com/katalvlaran/lvlgrid/grid"

// ConnectedComponents finds all contiguous regions ("islands") of land cells,
// according to gg.Conn connectivity.
// Components are ordered by their first cell in row-major order; cells inside a
// component are in BFS order starting from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph[T]) ConnectedComponents() [][]grid.Coord {
	g := gg.Grid
	seen := make([]bool, g.Len())
	var comps [][]grid.Coord

	for c, v := range g.All() {
		if !gg.Land(v) {
			continue // water
		}
		i0 := g.Index(c.X, c.Y)
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []grid.Coord{c}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range gg.offsets {
				n := u.Add(d[0], d[1])
				nv, ok := g.Lookup(n.X, n.Y)
				if !ok || !gg.Land(nv) {
					continue
				}
				ni := g.Index(n.X, n.Y)
				if !seen[ni] {
					seen[ni] = true
					queue = append(queue, n)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
