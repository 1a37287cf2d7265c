package manager

import (
	"testing"

	"biome-snake/game/entity"
	"biome-snake/game/types"

	"github.com/stretchr/testify/assert"
)

func TestCheckCollision_Classes(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 10, Height: 10})
	snake := entity.NewSnake(types.Point{X: 5, Y: 5}, types.Right, 3)
	obstacles := []entity.Obstacle{{Position: types.Point{X: 6, Y: 5}}}
	zones := []entity.HazardZone{{CX: 5, CY: 2, Radius: 2, BaseRadius: 2}}

	tests := []struct {
		name string
		head types.Point
		want CollisionType
	}{
		{"wall", types.Point{X: -1, Y: 5}, WallCollision},
		{"self", types.Point{X: 4, Y: 5}, SelfCollision},
		{"obstacle", types.Point{X: 6, Y: 5}, ObstacleCollision},
		{"hazard", types.Point{X: 5, Y: 3}, HazardCollision},
		{"free", types.Point{X: 5, Y: 6}, NoCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Movement{Head: tt.head, Snake: snake, Obstacles: obstacles, Zones: zones}
			assert.Equal(t, tt.want, cm.CheckCollision(m, 0))
		})
	}
}

func TestCheckCollision_Suppression(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 10, Height: 10})
	snake := entity.NewSnake(types.Point{X: 5, Y: 5}, types.Right, 3)
	obstacles := []entity.Obstacle{{Position: types.Point{X: 6, Y: 5}}}

	self := Movement{Head: types.Point{X: 4, Y: 5}, Snake: snake}
	assert.Equal(t, NoCollision, cm.CheckCollision(self, SuppressSelf))
	assert.Equal(t, NoCollision, cm.CheckCollision(self, EffectGhost.Suppresses()))

	obs := Movement{Head: types.Point{X: 6, Y: 5}, Snake: snake, Obstacles: obstacles}
	assert.Equal(t, ObstacleCollision, cm.CheckCollision(obs, SuppressSelf|SuppressHazard))
	assert.Equal(t, NoCollision, cm.CheckCollision(obs, SuppressAll))

	wall := Movement{Head: types.Point{X: 10, Y: 5}, Snake: snake}
	assert.Equal(t, WallCollision, cm.CheckCollision(wall, SuppressAll))
}

func TestCheckCollision_TailCountsOnlyWhenGrowing(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 10, Height: 10})
	// a loop whose tail sits next to the head
	snake := &entity.Snake{
		Body:      []types.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 4, Y: 6}, {X: 4, Y: 5}},
		Direction: types.Up,
	}
	m := Movement{Head: types.Point{X: 4, Y: 5}, Snake: snake}
	assert.Equal(t, NoCollision, cm.CheckCollision(m, 0))

	m.Growing = true
	assert.Equal(t, SelfCollision, cm.CheckCollision(m, 0))
}

func TestBlocked(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 10, Height: 10})
	snake := entity.NewSnake(types.Point{X: 5, Y: 5}, types.Right, 3)
	obstacles := []entity.Obstacle{{Position: types.Point{X: 1, Y: 1}}}
	zones := []entity.HazardZone{{CX: 8, CY: 8, Radius: 1.5}}

	assert.True(t, cm.Blocked(types.Point{X: -1, Y: 0}, snake, obstacles, zones))
	assert.True(t, cm.Blocked(types.Point{X: 3, Y: 5}, snake, obstacles, zones))
	assert.True(t, cm.Blocked(types.Point{X: 1, Y: 1}, snake, obstacles, zones))
	assert.True(t, cm.Blocked(types.Point{X: 8, Y: 8}, snake, obstacles, zones))
	assert.False(t, cm.Blocked(types.Point{X: 0, Y: 9}, snake, obstacles, zones))
	assert.False(t, cm.Blocked(types.Point{X: 0, Y: 9}, nil, nil, nil))
}
