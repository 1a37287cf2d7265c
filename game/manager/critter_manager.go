package manager

import (
	"biome-snake/game/entity"
	"biome-snake/game/types"

	"golang.org/x/exp/rand"
)

const (
	critterWanderChance = 0.1
	critterSeekChance   = 0.3
	critterHuntChance   = 0.7
	critterFleeChance   = 0.5
)

// CritterWorld is what critters see during a step
type CritterWorld struct {
	Snake     *entity.Snake
	Obstacles []entity.Obstacle
	Zones     []entity.HazardZone
	Food      *entity.Food
	// MagnetRange > 0 pulls critters within that many cells toward the head
	MagnetRange int
}

type CritterManager struct {
	collisions *CollisionManager
	rng        *rand.Rand
	stepEvery  int
	critters   []*entity.Critter
	nextID     int
}

func NewCritterManager(collisions *CollisionManager, rng *rand.Rand, stepEvery int) *CritterManager {
	if stepEvery <= 0 {
		stepEvery = 1
	}
	return &CritterManager{
		collisions: collisions,
		rng:        rng,
		stepEvery:  stepEvery,
	}
}

func (cm *CritterManager) Critters() []*entity.Critter {
	return cm.critters
}

func (cm *CritterManager) Positions() []types.Point {
	return entity.CritterPositions(cm.critters)
}

// Spawn places a critter of random behavior at a cell accepted by rules
func (cm *CritterManager) Spawn(spawn *SpawnManager, rules ...Rule) (*entity.Critter, error) {
	p, err := spawn.Find(append(rules[:len(rules):len(rules)], Occupied(cm.Positions()))...)
	if err != nil {
		return nil, err
	}
	cm.nextID++
	c := &entity.Critter{
		ID:       cm.nextID,
		Position: p,
		Facing:   cm.randomFacing(),
		Behavior: entity.Behavior(cm.rng.Intn(3)),
	}
	cm.critters = append(cm.critters, c)
	return c, nil
}

// Add inserts a critter as-is
func (cm *CritterManager) Add(c *entity.Critter) {
	cm.nextID++
	c.ID = cm.nextID
	cm.critters = append(cm.critters, c)
}

// RemoveAt removes the critter on p, if any
func (cm *CritterManager) RemoveAt(p types.Point) (*entity.Critter, bool) {
	for i, c := range cm.critters {
		if c.Position == p {
			cm.critters = append(cm.critters[:i], cm.critters[i+1:]...)
			return c, true
		}
	}
	return nil, false
}

func (cm *CritterManager) Clear() {
	cm.critters = nil
	cm.nextID = 0
}

// Step advances every critter by one tick. It reports whether a critter
// ate the food; the food stays in place for the caller to replace.
func (cm *CritterManager) Step(w CritterWorld) bool {
	ate := false
	for _, c := range cm.critters {
		c.MoveCounter++
		if c.MoveCounter%cm.stepEvery != 0 {
			continue
		}
		if cm.move(c, w, ate) {
			ate = true
		}
	}
	return ate
}

func (cm *CritterManager) move(c *entity.Critter, w CritterWorld, foodGone bool) bool {
	if cm.rng.Float64() < critterWanderChance {
		c.Facing = cm.randomFacing()
	}
	c.Facing = cm.steer(c, w, foodGone)

	next := types.Neighbor(c.Facing, c.Position)
	if !foodGone && w.Food != nil && next == w.Food.Position {
		return true
	}
	if cm.collisions.Blocked(next, w.Snake, w.Obstacles, w.Zones) || cm.occupiedByOther(c, next) {
		c.Facing = cm.randomFacing()
		return false
	}
	c.Position = next
	return false
}

// steer applies goal seeking on top of the current facing
func (cm *CritterManager) steer(c *entity.Critter, w CritterWorld, foodGone bool) types.Direction {
	facing := c.Facing
	if w.Snake != nil && w.MagnetRange > 0 && types.Manhattan(c.Position, w.Snake.Head()) <= w.MagnetRange {
		if d := types.Toward(c.Position, w.Snake.Head()); d != types.None {
			return d
		}
	}

	switch c.Behavior {
	case entity.BehaviorScared:
		if w.Snake != nil && cm.rng.Float64() < critterFleeChance {
			if d := types.Away(c.Position, w.Snake.Head()); d != types.None {
				facing = d
			}
		}
	default:
		chance := critterSeekChance
		if c.Behavior == entity.BehaviorHunter {
			chance = critterHuntChance
		}
		if !foodGone && w.Food != nil && cm.rng.Float64() < chance {
			if d := types.Toward(c.Position, w.Food.Position); d != types.None {
				facing = d
			}
		}
	}
	return facing
}

func (cm *CritterManager) occupiedByOther(self *entity.Critter, p types.Point) bool {
	for _, c := range cm.critters {
		if c != self && c.Position == p {
			return true
		}
	}
	return false
}

func (cm *CritterManager) randomFacing() types.Direction {
	return types.Directions[cm.rng.Intn(len(types.Directions))]
}
