package manager

import (
	"biome-snake/game/entity"
	"biome-snake/game/types"
)

// CollisionType names the class of a lethal contact
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	ObstacleCollision
	HazardCollision
)

var collisionNames = [...]string{"none", "wall", "self", "obstacle", "hazard"}

func (c CollisionType) String() string {
	if c < NoCollision || c > HazardCollision {
		return "unknown"
	}
	return collisionNames[c]
}

// Suppression is a set of collision classes that are currently ignored
type Suppression uint8

const (
	SuppressSelf Suppression = 1 << iota
	SuppressObstacle
	SuppressHazard

	SuppressAll = SuppressSelf | SuppressObstacle | SuppressHazard
)

// Ignores reports whether collisions of class c are suppressed. Walls never are.
func (s Suppression) Ignores(c CollisionType) bool {
	switch c {
	case SelfCollision:
		return s&SuppressSelf != 0
	case ObstacleCollision:
		return s&SuppressObstacle != 0
	case HazardCollision:
		return s&SuppressHazard != 0
	}
	return false
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Movement is everything a head move is checked against
type Movement struct {
	Head      types.Point
	Snake     *entity.Snake
	Obstacles []entity.Obstacle
	// Zones is non-empty only while the hazardous biome is active
	Zones []entity.HazardZone
	// Growing keeps the tail in place, so it counts as body
	Growing bool
}

// CheckCollision returns the first unsuppressed collision of the move, or NoCollision
func (cm *CollisionManager) CheckCollision(m Movement, suppress Suppression) CollisionType {
	if cm.isWallCollision(m.Head) {
		return WallCollision
	}
	if !suppress.Ignores(SelfCollision) && m.Snake.Contains(m.Head, !m.Growing) {
		return SelfCollision
	}
	if !suppress.Ignores(ObstacleCollision) && cm.IsObstacle(m.Head, m.Obstacles) {
		return ObstacleCollision
	}
	if !suppress.Ignores(HazardCollision) && entity.InAnyZone(m.Head, m.Zones) {
		return HazardCollision
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.InBounds(pos)
}

// IsObstacle reports whether pos holds an obstacle
func (cm *CollisionManager) IsObstacle(pos types.Point, obstacles []entity.Obstacle) bool {
	for _, o := range obstacles {
		if o.Position == pos {
			return true
		}
	}
	return false
}

// Blocked reports whether an autonomous entity may not enter pos
func (cm *CollisionManager) Blocked(pos types.Point, snake *entity.Snake, obstacles []entity.Obstacle, zones []entity.HazardZone) bool {
	if cm.isWallCollision(pos) || cm.IsObstacle(pos, obstacles) {
		return true
	}
	if snake != nil && snake.Contains(pos, false) {
		return true
	}
	return entity.InAnyZone(pos, zones)
}
