package entity

import "biome-snake/game/types"

// FoodKind distinguishes regular from bonus food
type FoodKind int

const (
	FoodNormal FoodKind = iota
	FoodSpecial
)

func (k FoodKind) String() string {
	if k == FoodSpecial {
		return "special"
	}
	return "normal"
}

type Color struct {
	R, G, B uint8
}

// FoodColors is the palette food color tags are drawn from
var FoodColors = []Color{
	{R: 255, G: 82, B: 82},
	{R: 78, G: 204, B: 163},
	{R: 255, G: 171, B: 64},
	{R: 64, G: 196, B: 255},
	{R: 233, G: 69, B: 96},
}

// SpecialFoodColor marks Special food regardless of the palette
var SpecialFoodColor = Color{R: 255, G: 215, B: 0}

// Food is replaced, never mutated, when consumed
type Food struct {
	Position types.Point
	Color    Color
	Kind     FoodKind
}

type Obstacle struct {
	Position     types.Point
	Destructible bool
}

// ObstaclePositions extracts cells from a set of obstacles
func ObstaclePositions(obs []Obstacle) []types.Point {
	out := make([]types.Point, len(obs))
	for i, o := range obs {
		out[i] = o.Position
	}
	return out
}
