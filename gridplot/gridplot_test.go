package gridplot_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/gridplot"
)

func toFloat(v int) float64 { return float64(v) }

func TestXYZ_FlipsRows(t *testing.T) {
	g := grid.New(2, 3, []int{1, 2, 3, 4, 5, 6})
	xyz := gridplot.NewXYZ(g, toFloat)
	c, r := xyz.Dims()
	require.Equal(t, 3, c)
	require.Equal(t, 2, r)
	require.Equal(t, 4.0, xyz.Z(0, 0), "plot row 0 is the bottom grid row")
	require.Equal(t, 3.0, xyz.Z(2, 1))
	require.Equal(t, 2.0, xyz.X(2))
	require.Equal(t, 1.0, xyz.Y(1))
}

func TestHeatMap_Empty(t *testing.T) {
	_, err := gridplot.HeatMap(grid.New[int](0, 0, nil), toFloat, gridplot.DefaultOptions())
	require.ErrorIs(t, err, gridplot.ErrEmptyGrid)
}

func TestWrite_PNG(t *testing.T) {
	g := grid.New(2, 2, []int{0, 1, 2, 3})
	var buf bytes.Buffer
	require.NoError(t, gridplot.Write(&buf, "png", g, toFloat, gridplot.DefaultOptions()))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestSave_ConstantGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.svg")
	g := grid.NewFilled(3, 3, 7)
	require.NoError(t, gridplot.Save(path, g, toFloat, gridplot.Options{Title: "flat"}))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}
