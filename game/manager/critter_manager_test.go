package manager

import (
	"testing"

	"biome-snake/game/entity"
	"biome-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCritterFixture(seed uint64) *CritterManager {
	grid := types.Grid{Width: 30, Height: 20}
	return NewCritterManager(NewCollisionManager(grid), newRNG(seed), 3)
}

func TestCritterManager_MovesEveryThirdTick(t *testing.T) {
	cm := newCritterFixture(1)
	start := types.Point{X: 15, Y: 10}
	cm.Add(&entity.Critter{Position: start, Facing: types.Up})

	cm.Step(CritterWorld{})
	cm.Step(CritterWorld{})
	c := cm.Critters()[0]
	assert.Equal(t, start, c.Position)
	assert.Equal(t, 2, c.MoveCounter)

	cm.Step(CritterWorld{})
	assert.Equal(t, 1, types.Manhattan(start, c.Position))
}

func TestCritterManager_BlockedCritterStaysPut(t *testing.T) {
	cm := newCritterFixture(2)
	cm.Add(&entity.Critter{Position: types.Point{X: 0, Y: 0}, Facing: types.Right})
	world := CritterWorld{
		Obstacles: []entity.Obstacle{
			{Position: types.Point{X: 1, Y: 0}},
			{Position: types.Point{X: 0, Y: 1}},
		},
	}

	for i := 0; i < 300; i++ {
		cm.Step(world)
		require.Equal(t, types.Point{X: 0, Y: 0}, cm.Critters()[0].Position)
	}
}

func TestCritterManager_NeverEntersSnakeOrOtherCritters(t *testing.T) {
	cm := newCritterFixture(3)
	snake := entity.NewSnake(types.Point{X: 10, Y: 10}, types.Right, 6)
	cm.Add(&entity.Critter{Position: types.Point{X: 7, Y: 9}, Behavior: entity.BehaviorHunter, Facing: types.Down})
	cm.Add(&entity.Critter{Position: types.Point{X: 8, Y: 9}, Behavior: entity.BehaviorScared, Facing: types.Left})
	world := CritterWorld{Snake: snake}

	for i := 0; i < 900; i++ {
		cm.Step(world)
		a, b := cm.Critters()[0], cm.Critters()[1]
		require.NotEqual(t, a.Position, b.Position)
		require.False(t, snake.Contains(a.Position, false))
		require.False(t, snake.Contains(b.Position, false))
	}
}

func TestCritterManager_EatsAdjacentFood(t *testing.T) {
	cm := newCritterFixture(4)
	home := types.Point{X: 5, Y: 5}
	cm.Add(&entity.Critter{Position: home, Behavior: entity.BehaviorHunter, Facing: types.Up})
	food := &entity.Food{Position: types.Point{X: 6, Y: 5}}
	world := CritterWorld{
		Food: food,
		Obstacles: []entity.Obstacle{
			{Position: types.Point{X: 4, Y: 5}},
			{Position: types.Point{X: 5, Y: 4}},
			{Position: types.Point{X: 5, Y: 6}},
		},
	}

	ate := false
	for i := 0; i < 300 && !ate; i++ {
		ate = cm.Step(world)
	}
	assert.True(t, ate)
	assert.Equal(t, home, cm.Critters()[0].Position)
}

func TestCritterManager_MagnetPullsTowardHead(t *testing.T) {
	cm := newCritterFixture(5)
	snake := entity.NewSnake(types.Point{X: 13, Y: 10}, types.Left, 3)
	cm.Add(&entity.Critter{Position: types.Point{X: 9, Y: 10}, Facing: types.Up})
	world := CritterWorld{Snake: snake, MagnetRange: 5}

	cm.Step(world)
	cm.Step(world)
	cm.Step(world)
	c := cm.Critters()[0]
	assert.Equal(t, types.Point{X: 10, Y: 10}, c.Position)
	assert.Equal(t, types.Right, c.Facing)
}

func TestCritterManager_SpawnAndRemove(t *testing.T) {
	cm := newCritterFixture(6)
	spawn := NewSpawnManager(types.Grid{Width: 30, Height: 20}, newRNG(6), DefaultSpawnAttempts)

	for i := 0; i < 4; i++ {
		_, err := cm.Spawn(spawn)
		require.NoError(t, err)
	}
	require.Len(t, cm.Critters(), 4)
	assert.Len(t, cm.Positions(), 4)

	target := cm.Critters()[2]
	removed, ok := cm.RemoveAt(target.Position)
	require.True(t, ok)
	assert.Equal(t, target.ID, removed.ID)
	assert.Len(t, cm.Critters(), 3)

	_, ok = cm.RemoveAt(types.Point{X: -1, Y: -1})
	assert.False(t, ok)

	cm.Clear()
	assert.Empty(t, cm.Critters())
}
