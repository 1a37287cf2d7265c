package entity

import (
	"testing"

	"biome-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnake_LaysBodyBehindHead(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 10}, types.Right, 3)

	require.Equal(t, 3, s.Len())
	assert.Equal(t, []types.Point{{X: 5, Y: 10}, {X: 4, Y: 10}, {X: 3, Y: 10}}, s.Body)
	assert.Equal(t, types.Point{X: 5, Y: 10}, s.Head())
	assert.Equal(t, types.Point{X: 3, Y: 10}, s.Tail())
}

func TestSnake_MoveAndRemoveTail(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 10}, types.Right, 3)
	s.Move(types.Point{X: 6, Y: 10})
	s.RemoveTail()

	assert.Equal(t, []types.Point{{X: 6, Y: 10}, {X: 5, Y: 10}, {X: 4, Y: 10}}, s.Body)
}

func TestSnake_SetDirectionRejectsReverse(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 10}, types.Right, 3)

	s.SetDirection(types.Left)
	assert.Equal(t, types.None, s.Pending)

	s.SetDirection(types.Up)
	assert.Equal(t, types.Up, s.Pending)
}

func TestSnake_ShrinkFloorsAtMinimum(t *testing.T) {
	s := NewSnake(types.Point{X: 10, Y: 10}, types.Right, 5)
	s.Shrink(10, 3)
	assert.Equal(t, 3, s.Len())
}

func TestSnake_ContainsSkipTail(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 10}, types.Right, 3)
	assert.True(t, s.Contains(types.Point{X: 3, Y: 10}, false))
	assert.False(t, s.Contains(types.Point{X: 3, Y: 10}, true))
}

func TestHazardZone_ContainsUsesTolerance(t *testing.T) {
	z := HazardZone{CX: 10, CY: 10, Radius: 2.5}
	assert.True(t, z.Contains(types.Point{X: 11, Y: 10}))
	// 2.0 is inside the radius but outside 80% of it
	assert.False(t, z.Contains(types.Point{X: 12, Y: 10}))
}

func TestSnake_CloneIsDeep(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 10}, types.Right, 3)
	c := s.Clone()
	c.Body[0] = types.Point{}
	assert.Equal(t, types.Point{X: 5, Y: 10}, s.Head())
}

func TestPowerUpKind_Timed(t *testing.T) {
	var timed []PowerUpKind
	for _, k := range PowerUpKinds {
		if k.Timed() {
			timed = append(timed, k)
		}
	}
	assert.Equal(t, []PowerUpKind{PowerShield, PowerSlowMotion, PowerGhost}, timed)
}
