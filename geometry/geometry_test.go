package geometry_test

import (
	"testing"

	"github.com/meghashyamc/gametools/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_Arithmetic(t *testing.T) {
	v := geometry.Vector{X: 3, Y: 4}

	assert.Equal(t, 5.0, v.Magnitude())
	assert.Equal(t, geometry.Vector{X: 0.6, Y: 0.8}, v.Normalize())
	assert.Equal(t, geometry.Vector{}, geometry.Vector{}.Normalize())
	assert.Equal(t, geometry.Vector{X: 4, Y: 6}, v.Add(geometry.Vector{X: 1, Y: 2}))
	assert.Equal(t, geometry.Vector{X: 2, Y: 2}, v.Sub(geometry.Vector{X: 1, Y: 2}))
	assert.Equal(t, geometry.Vector{X: 6, Y: 8}, v.Scale(2))
	assert.Equal(t, 11.0, v.DotProduct(geometry.Vector{X: 1, Y: 2}))
}

func TestRect_ContainsAndIntersects(t *testing.T) {
	r := geometry.NewRect(10, 10, 100, 50)

	assert.True(t, r.Contains(geometry.Vector{X: 10, Y: 10}))
	assert.True(t, r.Contains(geometry.Vector{X: 110, Y: 60}))
	assert.False(t, r.Contains(geometry.Vector{X: 111, Y: 20}))

	assert.True(t, r.Intersects(geometry.NewRect(100, 50, 20, 20)))
	assert.False(t, r.Intersects(geometry.NewRect(110, 10, 20, 20)))

	assert.Equal(t, geometry.Vector{X: 60, Y: 35}, r.Center())
	assert.Equal(t, geometry.Vector{X: 110, Y: 60}, r.Max())
}

func TestRect_Corners(t *testing.T) {
	corners := geometry.NewRect(0, 0, 4, 2).Corners()

	assert.Equal(t, [4]geometry.Vector{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 0, Y: 2}}, corners)
}

func TestRect_Inset(t *testing.T) {
	assert.Equal(t, geometry.NewRect(2, 2, 6, 16), geometry.NewRect(0, 0, 10, 20).Inset(2))

	collapsed := geometry.NewRect(0, 0, 10, 20).Inset(6)
	assert.Equal(t, 0.0, collapsed.Width)
	assert.Equal(t, 5.0, collapsed.X)
	assert.Equal(t, 8.0, collapsed.Height)
}

func TestRect_Split(t *testing.T) {
	cells := geometry.NewRect(0, 0, 90, 40).Split(3, 2)

	require.Len(t, cells, 6)
	assert.Equal(t, geometry.NewRect(0, 0, 30, 20), cells[0])
	assert.Equal(t, geometry.NewRect(60, 0, 30, 20), cells[2])
	assert.Equal(t, geometry.NewRect(30, 20, 30, 20), cells[4])

	assert.Nil(t, geometry.NewRect(0, 0, 10, 10).Split(0, 2))
}

func TestRect_Edges(t *testing.T) {
	edges := geometry.NewRect(10, 20, 100, 50).Edges(1)

	assert.Equal(t, [4]geometry.Rect{
		geometry.NewRect(10, 20, 100, 1),
		geometry.NewRect(10, 69, 100, 1),
		geometry.NewRect(10, 20, 1, 50),
		geometry.NewRect(109, 20, 1, 50),
	}, edges)
}
