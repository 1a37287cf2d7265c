package entity

import "biome-snake/game/types"

// Behavior selects a critter's goal-seeking rule
type Behavior int

const (
	BehaviorNormal Behavior = iota
	BehaviorHunter
	BehaviorScared
)

var behaviorNames = [...]string{"normal", "hunter", "scared"}

func (b Behavior) String() string {
	if b < BehaviorNormal || b > BehaviorScared {
		return "unknown"
	}
	return behaviorNames[b]
}

type Critter struct {
	ID          int
	Position    types.Point
	Facing      types.Direction
	Behavior    Behavior
	MoveCounter int
}

// CritterPositions extracts cells from a set of critters
func CritterPositions(cs []*Critter) []types.Point {
	out := make([]types.Point, len(cs))
	for i, c := range cs {
		out[i] = c.Position
	}
	return out
}
