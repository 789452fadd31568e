// Package lvlgrid is a small toolkit for character-map puzzles: a generic
// rectangular grid with bidirectional row, column and cell iterators, plus
// the helpers solvers keep rewriting around it.
//
// Subpackages:
//
//	grid/      — Grid[T]: flat row-major storage, O(1) access, Iter/Rows/Cols/Row/Col iterators
//	gridparse/ — text → Grid (one rune per cell, blank-line separated blocks)
//	gridgraph/ — neighbours, connected components, 0-1 BFS island bridging
//	gridmat/   — Grid ⇄ gonum mat.Dense
//	gridplot/  — heat maps via gonum/plot
//	cmd/gridctl — CLI over all of the above
//
// Quick ASCII example:
//
//	abc      g.Row(1)          → d e f
//	def      g.Col(2)          → c f
//	         g.Iter().Backward → f e d c b a
//
//	go get github.com/katalvlaran/lvlgrid
package lvlgrid
