package pdftables

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBBoxNormalizesOrder(t *testing.T) {
	b := NewBBox(10, 10, 0, 0)
	require.Equal(t, BBox{X0: 0, Y0: 0, X1: 10, Y1: 10}, b)
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(5, 5, 20, 8)
	require.Equal(t, BBox{X0: 0, Y0: 0, X1: 20, Y1: 10}, a.Union(b))
}

func TestBBoxContainsPoint(t *testing.T) {
	b := NewBBox(0, 0, 10, 10)
	require.True(t, b.ContainsPoint(Point{X: 5, Y: 5}, 0))
	require.True(t, b.ContainsPoint(Point{X: 10, Y: 10}, 0))
	require.False(t, b.ContainsPoint(Point{X: 10.5, Y: 5}, 0.01))
	require.True(t, b.ContainsPoint(Point{X: 10.5, Y: 5}, 1))
}

func TestEdgeLengthAndPerp(t *testing.T) {
	h := NewHEdge(10, 0, 5, 1, Color{})
	require.Equal(t, 10.0, h.Length())
	require.Equal(t, 5.0, h.Perp())
	require.Equal(t, 0.0, h.P1.X)

	v := NewVEdge(20, 0, 3, 1, Color{})
	require.Equal(t, 20.0, v.Length())
	require.Equal(t, 3.0, v.Perp())
	require.Equal(t, 0.0, v.P1.Y)
}
