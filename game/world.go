package game

import (
	"time"

	"biome-snake/game/config"
	"biome-snake/game/entity"
	"biome-snake/game/manager"
	"biome-snake/game/types"
)

// critterSpawnGap keeps new critters away from the snake head
const critterSpawnGap = 3

func (s *Session) occupied() manager.Rule {
	sets := [][]types.Point{
		s.snake.Body,
		entity.ObstaclePositions(s.obstacles),
		s.critters.Positions(),
	}
	if food, ok := s.food.Food(); ok {
		sets = append(sets, []types.Point{food.Position})
	}
	if s.powerUp != nil {
		sets = append(sets, []types.Point{s.powerUp.Position})
	}
	return manager.Occupied(sets...)
}

// placeObstacles scatters the difficulty's obstacles off the spawn row.
// Placement stops early when the grid is too crowded.
func (s *Session) placeObstacles() {
	row := manager.Row(s.snake.Head().Y)
	for i := 0; i < s.cfg.Balance.Obstacles; i++ {
		p, err := s.spawn.Find(s.occupied(), row)
		if err != nil {
			s.log.Warn("obstacle placement failed", "placed", i, "want", s.cfg.Balance.Obstacles, "err", err)
			return
		}
		s.obstacles = append(s.obstacles, entity.Obstacle{
			Position:     p,
			Destructible: s.rng.Intn(2) == 0,
		})
	}
}

// respawnFood replaces the food. On failure the grid stays without food
// and the next tick retries.
func (s *Session) respawnFood() {
	s.food.Clear()
	if err := s.food.Respawn(s.occupied(), manager.NearZones(s.biomes.Zones(), 0)); err != nil {
		s.log.Warn("food placement failed, retrying next tick", "err", err)
	}
}

func (s *Session) spawnCritter() bool {
	c, err := s.critters.Spawn(s.spawn,
		s.occupied(),
		manager.NearZones(s.biomes.Zones(), 0),
		manager.NearPoints([]types.Point{s.snake.Head()}, critterSpawnGap),
	)
	if err != nil {
		s.log.Warn("critter placement failed", "err", err)
		return false
	}
	s.log.Debug("critter spawned", "id", c.ID, "behavior", c.Behavior, "pos", c.Position)
	return true
}

// scheduleCritterRespawn brings a critter back at the given time. The
// handler only acts for the session that scheduled it.
func (s *Session) scheduleCritterRespawn(at time.Duration) {
	id := s.ID
	s.queue.Schedule(at, "critter.respawn", func(now time.Duration) {
		if s.ID != id || s.state != Running {
			return
		}
		if !s.spawnCritter() {
			s.scheduleCritterRespawn(now + s.interval)
		}
	})
}

func (s *Session) scheduleBiomeRotation(now time.Duration) {
	id := s.ID
	s.queue.Schedule(now+s.biomes.NextDelay(), "biome.rotate", func(at time.Duration) {
		if s.ID != id {
			return
		}
		s.enterBiome(s.biomes.Pick())
		s.scheduleBiomeRotation(at)
	})
}

func (s *Session) enterBiome(b types.Biome) {
	prev := s.biomes.Current()
	avoid := append([]types.Point{}, s.snake.Body...)
	avoid = append(avoid, s.critters.Positions()...)
	if food, ok := s.food.Food(); ok {
		avoid = append(avoid, food.Position)
	}
	if s.powerUp != nil {
		avoid = append(avoid, s.powerUp.Position)
	}

	zones := s.biomes.Enter(b, s.spawn, avoid, manager.Occupied(entity.ObstaclePositions(s.obstacles)))
	if b == types.BiomeToxic && zones < s.cfg.MinZones {
		s.log.Warn("hazard zone placement fell short", "placed", zones, "want", s.cfg.MinZones)
	}
	s.progress.RecordBiome(b)
	s.retime()
	s.log.Debug("biome changed", "from", prev, "to", b, "zones", zones)
}

// schedulePowerUp rolls for a pickup every PowerUpInterval
func (s *Session) schedulePowerUp(now time.Duration) {
	if s.cfg.PowerUpInterval <= 0 {
		return
	}
	id := s.ID
	s.queue.Schedule(now+s.cfg.PowerUpInterval, "powerup.roll", func(at time.Duration) {
		if s.ID != id {
			return
		}
		if s.powerUp == nil && s.rng.Float64() < s.cfg.PowerUpChance {
			s.spawnPowerUp(at)
		}
		s.schedulePowerUp(at)
	})
}

func (s *Session) spawnPowerUp(now time.Duration) {
	p, err := s.spawn.Find(s.occupied(), manager.NearZones(s.biomes.Zones(), 0))
	if err != nil {
		s.log.Warn("power-up placement failed", "err", err)
		return
	}
	pu := &entity.PowerUp{
		Position:  p,
		Kind:      entity.PowerUpKinds[s.rng.Intn(len(entity.PowerUpKinds))],
		ExpiresAt: now + s.cfg.PowerUpLifetime,
	}
	s.powerUp = pu
	s.queue.Schedule(pu.ExpiresAt, "powerup.expire", func(time.Duration) {
		if s.powerUp == pu {
			s.powerUp = nil
		}
	})
	s.log.Debug("power-up spawned", "kind", pu.Kind, "pos", p)
}

var powerUpEffects = map[entity.PowerUpKind]manager.Effect{
	entity.PowerShield:     manager.EffectShield,
	entity.PowerSlowMotion: manager.EffectSlowMotion,
	entity.PowerGhost:      manager.EffectGhost,
}

func (s *Session) effectDuration(e manager.Effect) time.Duration {
	switch e {
	case manager.EffectShield:
		return s.cfg.ShieldDuration
	case manager.EffectSlowMotion:
		return s.cfg.SlowMotionDuration
	case manager.EffectGhost:
		return s.cfg.GhostDuration
	case manager.EffectInvincibility:
		return s.cfg.InvincibilityDuration
	case manager.EffectImmunity:
		return s.cfg.ImmunityDuration
	}
	return 0
}

func (s *Session) applyPowerUp(kind entity.PowerUpKind) {
	s.progress.RecordPowerUp(kind)
	s.log.Debug("power-up collected", "kind", kind)
	if kind.Timed() {
		e := powerUpEffects[kind]
		s.effects.Grant(e, s.clock, s.effectDuration(e))
		return
	}

	switch kind {
	case entity.PowerGrowth:
		s.snake.Growth += config.GrowthSegments
	case entity.PowerShrink:
		s.snake.Shrink(config.ShrinkSegments, config.MinLength)
	case entity.PowerBomb:
		s.clearObstacles(func(o entity.Obstacle) bool {
			return types.Euclid(o.Position, float64(s.snake.Head().X), float64(s.snake.Head().Y)) <= config.BombRadius
		})
	}
}

// clearObstacles removes every obstacle matched by hit and returns the count
func (s *Session) clearObstacles(hit func(entity.Obstacle) bool) int {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if !hit(o) {
			kept = append(kept, o)
		}
	}
	removed := len(s.obstacles) - len(kept)
	s.obstacles = kept
	return removed
}
