package manager

import (
	"errors"
	"math"

	"biome-snake/game/entity"
	"biome-snake/game/types"

	"golang.org/x/exp/rand"
)

// ErrNoSpaceFound is returned when rejection sampling exhausts its attempts.
// Callers skip the spawn and retry on a later tick.
var ErrNoSpaceFound = errors.New("no space found")

// DefaultSpawnAttempts caps the rejection sampling loop
const DefaultSpawnAttempts = 100

// Rule rejects a candidate cell when it returns true
type Rule func(p types.Point) bool

type SpawnManager struct {
	grid        types.Grid
	rng         *rand.Rand
	maxAttempts int
}

func NewSpawnManager(grid types.Grid, rng *rand.Rand, maxAttempts int) *SpawnManager {
	if maxAttempts <= 0 {
		maxAttempts = DefaultSpawnAttempts
	}
	return &SpawnManager{
		grid:        grid,
		rng:         rng,
		maxAttempts: maxAttempts,
	}
}

// Find draws uniformly random cells until one passes every rule
func (sm *SpawnManager) Find(rules ...Rule) (types.Point, error) {
	for attempt := 0; attempt < sm.maxAttempts; attempt++ {
		p := types.Point{
			X: sm.rng.Intn(sm.grid.Width),
			Y: sm.rng.Intn(sm.grid.Height),
		}
		if !rejected(p, rules) {
			return p, nil
		}
	}
	return types.Point{}, ErrNoSpaceFound
}

// FindZone places a hazard zone of the given radius with a cell-aligned centre
func (sm *SpawnManager) FindZone(radius float64, rules ...Rule) (entity.HazardZone, error) {
	p, err := sm.Find(rules...)
	if err != nil {
		return entity.HazardZone{}, err
	}
	return entity.HazardZone{
		CX:         float64(p.X),
		CY:         float64(p.Y),
		Radius:     radius,
		BaseRadius: radius,
		Phase:      sm.rng.Float64() * 100,
	}, nil
}

func rejected(p types.Point, rules []Rule) bool {
	for _, r := range rules {
		if r(p) {
			return true
		}
	}
	return false
}

// Occupied rejects cells present in any of the given sets
func Occupied(sets ...[]types.Point) Rule {
	taken := make(map[types.Point]struct{})
	for _, set := range sets {
		for _, p := range set {
			taken[p] = struct{}{}
		}
	}
	return func(p types.Point) bool {
		_, ok := taken[p]
		return ok
	}
}

// NearZones rejects cells closer to a zone centre than the sum of radii.
// Point entities pass selfRadius 0 and are still kept at least one cell away.
func NearZones(zones []entity.HazardZone, selfRadius float64) Rule {
	return func(p types.Point) bool {
		for _, z := range zones {
			if types.Euclid(p, z.CX, z.CY) < math.Max(z.Radius+selfRadius, 1) {
				return true
			}
		}
		return false
	}
}

// NearPoints rejects cells closer than minDist to any of points
func NearPoints(points []types.Point, minDist float64) Rule {
	return func(p types.Point) bool {
		for _, q := range points {
			if types.Euclid(p, float64(q.X), float64(q.Y)) < minDist {
				return true
			}
		}
		return false
	}
}

// Row rejects every cell on row y
func Row(y int) Rule {
	return func(p types.Point) bool {
		return p.Y == y
	}
}
