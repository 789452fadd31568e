package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlgrid/grid"
)

// IterSuite exercises every iterator kind over the 3×2 grid
//
//	abc
//	def
type IterSuite struct {
	suite.Suite
	g *grid.Grid[rune]
}

func (s *IterSuite) SetupTest() {
	s.g = grid.New(2, 3, []rune("abcdef"))
}

func TestIterSuite(t *testing.T) {
	suite.Run(t, new(IterSuite))
}

func (s *IterSuite) TestCells_Forward() {
	var coords []grid.Coord
	var vals []rune
	for c, v := range s.g.All() {
		coords = append(coords, c)
		vals = append(vals, v)
	}
	want := []grid.Coord{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if diff := cmp.Diff(want, coords); diff != "" {
		s.T().Errorf("row-major order mismatch (-want +got):\n%s", diff)
	}
	s.Require().Equal("abcdef", string(vals))
}

func (s *IterSuite) TestCells_Backward() {
	var coords []grid.Coord
	var vals []rune
	for c, v := range s.g.Iter().Backward() {
		coords = append(coords, c)
		vals = append(vals, v)
	}
	want := []grid.Coord{{2, 1}, {1, 1}, {0, 1}, {2, 0}, {1, 0}, {0, 0}}
	if diff := cmp.Diff(want, coords); diff != "" {
		s.T().Errorf("reverse order mismatch (-want +got):\n%s", diff)
	}
	s.Require().Equal("fedcba", string(vals))
}

func (s *IterSuite) TestCells_MixedDraws() {
	it := s.g.Iter()
	s.Require().Equal(6, it.Len())

	c, v, ok := it.Next()
	s.Require().True(ok)
	s.Require().Equal(grid.Coord{X: 0, Y: 0}, c)
	s.Require().Equal('a', v)
	s.Require().Equal(5, it.Len())

	c, v, ok = it.NextBack()
	s.Require().True(ok)
	s.Require().Equal(grid.Coord{X: 2, Y: 1}, c)
	s.Require().Equal('f', v)
	s.Require().Equal(4, it.Len())

	var rest []rune
	for _, v := range it.All() {
		rest = append(rest, v)
	}
	s.Require().Equal("bcde", string(rest))
	s.Require().Equal(0, it.Len())

	_, _, ok = it.Next()
	s.Require().False(ok)
	_, _, ok = it.NextBack()
	s.Require().False(ok)
}

func (s *IterSuite) TestCells_Restartable() {
	it := s.g.Iter()
	for range it.All() {
	}
	s.Require().Equal(0, it.Len())
	s.Require().Equal(6, s.g.Iter().Len(), "a fresh iterator starts over")
}

func (s *IterSuite) TestCells_EarlyBreakKeepsCursor() {
	it := s.g.Iter()
	for _, v := range it.All() {
		if v == 'b' {
			break
		}
	}
	_, v, ok := it.Next()
	s.Require().True(ok)
	s.Require().Equal('c', v)
}

func (s *IterSuite) TestRows() {
	rows := s.g.Rows()
	s.Require().Equal(2, rows.Len())
	var got []string
	for row := range rows.All() {
		s.Require().Equal(3, row.Len())
		got = append(got, string(row.Collect()))
	}
	s.Require().Equal([]string{"abc", "def"}, got)
}

func (s *IterSuite) TestRows_Backward() {
	var got []int
	for row := range s.g.Rows().Backward() {
		got = append(got, row.Y())
	}
	s.Require().Equal([]int{1, 0}, got)
}

func (s *IterSuite) TestRows_Mixed() {
	rows := s.g.Rows()
	last, ok := rows.NextBack()
	s.Require().True(ok)
	s.Require().Equal(1, last.Y())
	first, ok := rows.Next()
	s.Require().True(ok)
	s.Require().Equal(0, first.Y())
	_, ok = rows.Next()
	s.Require().False(ok)
	_, ok = rows.NextBack()
	s.Require().False(ok)
}

func (s *IterSuite) TestCols() {
	cols := s.g.Cols()
	s.Require().Equal(3, cols.Len())
	var got []string
	for col := range cols.All() {
		s.Require().Equal(2, col.Len())
		got = append(got, string(col.Collect()))
	}
	s.Require().Equal([]string{"ad", "be", "cf"}, got)

	var xs []int
	for col := range s.g.Cols().Backward() {
		xs = append(xs, col.X())
	}
	s.Require().Equal([]int{2, 1, 0}, xs)
}

func (s *IterSuite) TestRow_ForwardAndReverse() {
	row := s.g.Row(1)
	s.Require().Equal("def", string(row.Collect()))

	row = s.g.Row(1)
	var rev []rune
	for v := range row.Backward() {
		rev = append(rev, v)
	}
	s.Require().Equal("fed", string(rev))
}

func (s *IterSuite) TestCol_ForwardAndReverse() {
	col := s.g.Col(2)
	s.Require().Equal("cf", string(col.Collect()))

	col = s.g.Col(0)
	var rev []rune
	for v := range col.Backward() {
		rev = append(rev, v)
	}
	s.Require().Equal("da", string(rev))
}

func (s *IterSuite) TestRow_GetBypassesCursor() {
	row := s.g.Row(0)
	_, _ = row.Next()
	s.Require().Equal('a', row.Get(0))
	s.Require().Equal('c', row.Get(2))
	s.Require().Equal(2, row.Len(), "Get must not advance the cursor")

	col := s.g.Col(1)
	_, _ = col.NextBack()
	s.Require().Equal('e', col.Get(1))
	s.Require().Equal(1, col.Len())

	err := panicErr(s.T(), func() { row.Get(3) })
	s.Require().ErrorIs(err, grid.ErrOutOfRange)
}

func (s *IterSuite) TestRow_Fork() {
	row := s.g.Row(1)
	v, _ := row.Next()
	s.Require().Equal('d', v)

	fork := row.Clone()
	s.Require().Equal("ef", string(fork.Collect()))
	s.Require().Equal(0, fork.Len())

	s.Require().Equal(2, row.Len(), "original cursor untouched by the fork")
	v, _ = row.NextBack()
	s.Require().Equal('f', v)
	v, _ = row.Next()
	s.Require().Equal('e', v)
	_, ok := row.Next()
	s.Require().False(ok)
}

func (s *IterSuite) TestCol_Fork() {
	col := s.g.Col(0)
	look := col
	v, _ := look.Next()
	s.Require().Equal('a', v)
	s.Require().Equal(2, col.Len())
	s.Require().Equal(1, look.Len())
}

func (s *IterSuite) TestRowCol_OutOfRange() {
	err := panicErr(s.T(), func() { s.g.Row(2) })
	s.Require().ErrorIs(err, grid.ErrOutOfRange)
	err = panicErr(s.T(), func() { s.g.Col(-1) })
	s.Require().ErrorIs(err, grid.ErrOutOfRange)
}

// drawer is the part of the iterator surface shared by every kind.
type drawer interface {
	Len() int
}

// checkAlternating draws alternately from each end through front/back until
// both fail, checking Len shrinks by one per draw and reaches zero exactly
// when the iterator reports exhaustion.
func checkAlternating(t *testing.T, it drawer, front, back func() bool) int {
	t.Helper()
	n := it.Len()
	draws := 0
	for i := 0; ; i++ {
		before := it.Len()
		var ok bool
		if i%2 == 0 {
			ok = front()
		} else {
			ok = back()
		}
		if !ok {
			require.Equal(t, 0, before)
			require.False(t, front())
			require.False(t, back())
			break
		}
		draws++
		require.Equal(t, before-1, it.Len())
	}
	require.Equal(t, n, draws)

	return draws
}

func TestMixedDraws_AllKinds(t *testing.T) {
	shapes := [][2]int{{0, 0}, {1, 1}, {1, 4}, {4, 1}, {2, 3}, {5, 5}}
	for _, sh := range shapes {
		h, w := sh[0], sh[1]
		g := grid.NewFilled(h, w, 0)

		cells := g.Iter()
		require.Equal(t, h*w, checkAlternating(t, cells,
			func() bool { _, _, ok := cells.Next(); return ok },
			func() bool { _, _, ok := cells.NextBack(); return ok }))

		rows := g.Rows()
		require.Equal(t, h, checkAlternating(t, rows,
			func() bool { _, ok := rows.Next(); return ok },
			func() bool { _, ok := rows.NextBack(); return ok }))

		cols := g.Cols()
		require.Equal(t, w, checkAlternating(t, cols,
			func() bool { _, ok := cols.Next(); return ok },
			func() bool { _, ok := cols.NextBack(); return ok }))

		for y := 0; y < h; y++ {
			row := g.Row(y)
			require.Equal(t, w, checkAlternating(t, &row,
				func() bool { _, ok := row.Next(); return ok },
				func() bool { _, ok := row.NextBack(); return ok }))
		}
		for x := 0; x < w; x++ {
			col := g.Col(x)
			require.Equal(t, h, checkAlternating(t, &col,
				func() bool { _, ok := col.Next(); return ok },
				func() bool { _, ok := col.NextBack(); return ok }))
		}
	}
}

func TestSingleCell(t *testing.T) {
	g := grid.New(1, 1, []string{"x"})

	it := g.Iter()
	c, v, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, grid.Coord{}, c)
	require.Equal(t, "x", v)
	_, _, ok = it.Next()
	require.False(t, ok)
	_, _, ok = it.NextBack()
	require.False(t, ok)

	it = g.Iter()
	_, v, ok = it.NextBack()
	require.True(t, ok)
	require.Equal(t, "x", v)
	require.Equal(t, 0, it.Len())
	_, _, ok = it.NextBack()
	require.False(t, ok)
	_, _, ok = it.Next()
	require.False(t, ok)

	row := g.Row(0)
	v, ok = row.NextBack()
	require.True(t, ok)
	require.Equal(t, "x", v)
	_, ok = row.Next()
	require.False(t, ok)

	col := g.Col(0)
	_, ok = col.NextBack()
	require.True(t, ok)
	_, ok = col.NextBack()
	require.False(t, ok)
}

func TestSingleColumnGrid(t *testing.T) {
	g := grid.New(3, 1, []int{1, 2, 3})
	var rev []int
	for _, v := range g.Iter().Backward() {
		rev = append(rev, v)
	}
	require.Equal(t, []int{3, 2, 1}, rev)

	var rowLens []int
	for row := range g.Rows().All() {
		rowLens = append(rowLens, row.Len())
	}
	require.Equal(t, []int{1, 1, 1}, rowLens)
}

func TestEmptyGrid(t *testing.T) {
	g := grid.New[int](0, 3, nil)
	require.Equal(t, 0, g.Iter().Len())
	require.Equal(t, 0, g.Rows().Len())
	cols := g.Cols()
	require.Equal(t, 3, cols.Len())
	col, ok := cols.Next()
	require.True(t, ok)
	require.Equal(t, 0, col.Len())
	_, ok = col.NextBack()
	require.False(t, ok)
}

func TestMutationVisibleToNewIterators(t *testing.T) {
	g := grid.New(2, 2, []int{1, 2, 3, 4})
	*g.Ptr(1, 0) = 20
	require.Equal(t, 20, g.Get(1, 0))
	row := g.Row(0)
	require.Equal(t, []int{1, 20}, row.Collect())
}
