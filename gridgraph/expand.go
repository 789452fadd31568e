// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"
	"slices"

	"github.com/katalvlaran/lvlgrid/grid"
)

// ExpandIsland finds a minimum-conversion path of water cells to connect any
// cell in component srcComp to any cell in component dstComp, as identified by
// ConnectedComponents(). Each water-cell conversion costs 1.
// Returns the cells of the path (including the start and end land cells) and
// the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • Moving into a land cell   → cost 0
//     • Moving into a water cell  → cost 1
//  3. Stop when any dstComp cell is reached.
//  4. Reconstruct path via predecessor offsets.
//
// Complexity: O(W·H·d).
// Memory:     O(W·H) for distance and prev offsets.
func (gg *GridGraph[T]) ExpandIsland(srcComp, dstComp int) (path []grid.Coord, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	g := gg.Grid
	dst := make([]bool, g.Len())
	for _, c := range comps[dstComp] {
		dst[g.Index(c.X, c.Y)] = true
	}

	n := g.Len()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, c := range comps[srcComp] {
		i := g.Index(c.X, c.Y)
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if dst[u] {
			target = u
			break
		}
		uc := g.Coord(u)
		for _, d := range gg.offsets {
			vc := uc.Add(d[0], d[1])
			val, ok := g.Lookup(vc.X, vc.Y)
			if !ok {
				continue
			}
			v := g.Index(vc.X, vc.Y)
			step := 0
			if !gg.Land(val) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, g.Coord(at))
	}
	slices.Reverse(path) // collected target→source

	return path, dist[target], nil
}
