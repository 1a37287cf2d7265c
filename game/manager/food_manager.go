package manager

import (
	"biome-snake/game/config"
	"biome-snake/game/entity"
	"biome-snake/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager keeps the single food item. Food may be absent for a few
// ticks after a failed placement; Respawn is retried until it succeeds.
type FoodManager struct {
	spawn   *SpawnManager
	rng     *rand.Rand
	food    entity.Food
	present bool
}

func NewFoodManager(spawn *SpawnManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		spawn: spawn,
		rng:   rng,
	}
}

// Food returns the current food and whether one is on the grid
func (fm *FoodManager) Food() (entity.Food, bool) {
	return fm.food, fm.present
}

// Ref returns a pointer to the live food, or nil when none is present
func (fm *FoodManager) Ref() *entity.Food {
	if !fm.present {
		return nil
	}
	return &fm.food
}

func (fm *FoodManager) Pending() bool {
	return !fm.present
}

// Respawn replaces the food with a new item at a cell accepted by rules.
// On failure the grid is left without food.
func (fm *FoodManager) Respawn(rules ...Rule) error {
	fm.present = false
	p, err := fm.spawn.Find(rules...)
	if err != nil {
		return err
	}

	food := entity.Food{
		Position: p,
		Color:    entity.FoodColors[fm.rng.Intn(len(entity.FoodColors))],
		Kind:     entity.FoodNormal,
	}
	if fm.rng.Float64() < config.SpecialFoodChance {
		food.Kind = entity.FoodSpecial
		food.Color = entity.SpecialFoodColor
	}
	fm.food = food
	fm.present = true
	return nil
}

// Place puts food at an explicit cell
func (fm *FoodManager) Place(f entity.Food) {
	fm.food = f
	fm.present = true
}

func (fm *FoodManager) Clear() {
	fm.present = false
	fm.food = entity.Food{}
}

// Pull moves the food one cell toward head when it lies within reach
// cells. It stays put when the next cell is blocked.
func (fm *FoodManager) Pull(head types.Point, reach int, blocked Rule) bool {
	if !fm.present || reach <= 0 {
		return false
	}
	if fm.food.Position == head || types.Manhattan(fm.food.Position, head) > reach {
		return false
	}
	dir := types.Toward(fm.food.Position, head)
	if dir == types.None {
		return false
	}
	next := types.Neighbor(dir, fm.food.Position)
	if next == head || (blocked != nil && blocked(next)) {
		return false
	}
	fm.food.Position = next
	return true
}
