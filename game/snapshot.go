package game

import (
	"time"

	"biome-snake/game/entity"
	"biome-snake/game/manager"
	"biome-snake/game/types"

	"github.com/google/uuid"
)

// Snapshot is a read-only copy of the session for rendering. It shares no
// memory with the session.
type Snapshot struct {
	ID       uuid.UUID
	State    State
	Grid     types.Grid
	Tick     int
	Clock    time.Duration
	Interval time.Duration

	Snake     []types.Point
	Direction types.Direction
	Food      entity.Food
	HasFood   bool
	Obstacles []entity.Obstacle
	Critters  []entity.Critter
	Zones     []entity.HazardZone
	PowerUp   *entity.PowerUp

	Biome     types.Biome
	Score     int
	HighScore int
	Level     int
	NextLevel int

	Abilities [len(manager.Abilities)]manager.AbilityState
	Effects   []manager.ActiveEffect
	Choices   []Upgrade

	GameOver     bool
	Cause        manager.CollisionType
	Achievements manager.AchievementRecord
	History      manager.ScoreSummary
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:           s.ID,
		State:        s.state,
		Grid:         s.cfg.Grid,
		Tick:         s.ticks,
		Clock:        s.clock,
		Interval:     s.interval,
		Snake:        append([]types.Point(nil), s.snake.Body...),
		Direction:    s.snake.Direction,
		Obstacles:    append([]entity.Obstacle(nil), s.obstacles...),
		Zones:        append([]entity.HazardZone(nil), s.biomes.Zones()...),
		Biome:        s.biomes.Current(),
		Score:        s.score,
		HighScore:    s.persist.HighScore(),
		Level:        s.level,
		NextLevel:    s.nextLevel,
		Effects:      s.effects.List(s.clock),
		Choices:      s.Choices(),
		GameOver:     s.state == GameOver,
		Cause:        s.cause,
		Achievements: s.progress.Record(),
		History:      s.persist.Summary(),
	}
	snap.Food, snap.HasFood = s.food.Food()
	for _, c := range s.critters.Critters() {
		snap.Critters = append(snap.Critters, *c)
	}
	if s.powerUp != nil {
		pu := *s.powerUp
		snap.PowerUp = &pu
	}
	for _, a := range manager.Abilities {
		snap.Abilities[a] = s.abilities.State(a)
	}
	return snap
}
