package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid_InBounds(t *testing.T) {
	g := Grid{Width: 20, Height: 10}

	assert.True(t, g.InBounds(Point{X: 0, Y: 0}))
	assert.True(t, g.InBounds(Point{X: 19, Y: 9}))
	assert.False(t, g.InBounds(Point{X: 20, Y: 0}))
	assert.False(t, g.InBounds(Point{X: 0, Y: -1}))
	assert.Equal(t, Point{X: 10, Y: 5}, g.Center())
}

func TestNeighbor_IsUnitTranslation(t *testing.T) {
	p := Point{X: 5, Y: 5}
	for _, d := range Directions {
		n := Neighbor(d, p)
		assert.Equal(t, 1, Manhattan(p, n), d.String())
		assert.Equal(t, p, Neighbor(d.Opposite(), n))
	}
	assert.Equal(t, p, Neighbor(None, p))
}

func TestDirection_Turns(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.TurnLeft().TurnRight())
		assert.Equal(t, d.Opposite(), d.TurnRight().TurnRight())
	}
}

func TestToward_PrefersXAxis(t *testing.T) {
	a := Point{X: 2, Y: 2}
	assert.Equal(t, Right, Toward(a, Point{X: 5, Y: 7}))
	assert.Equal(t, Down, Toward(a, Point{X: 2, Y: 7}))
	assert.Equal(t, None, Toward(a, a))
	assert.Equal(t, Left, Away(a, Point{X: 5, Y: 7}))
}

func TestEuclid(t *testing.T) {
	assert.InDelta(t, 5.0, Euclid(Point{X: 3, Y: 4}, 0, 0), 1e-9)
}
