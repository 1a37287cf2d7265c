package manager

import (
	"time"

	"biome-snake/game/config"
	"biome-snake/game/entity"
	"biome-snake/game/types"

	"github.com/aquilax/go-perlin"
	"golang.org/x/exp/rand"
)

// Zone radius oscillates within this fraction of its base radius
const zoneSwing = 0.25

// BiomeManager owns the active biome and the hazard zones that exist
// while the toxic variant is active.
type BiomeManager struct {
	cfg     config.Config
	rng     *rand.Rand
	noise   *perlin.Perlin
	current types.Biome
	zones   []entity.HazardZone
}

func NewBiomeManager(cfg config.Config, rng *rand.Rand) *BiomeManager {
	return &BiomeManager{
		cfg:     cfg,
		rng:     rng,
		noise:   perlin.NewPerlin(2, 2, 3, rng.Int63()),
		current: types.BiomeNormal,
	}
}

func (bm *BiomeManager) Current() types.Biome {
	return bm.current
}

// Modifier returns the record of the active biome
func (bm *BiomeManager) Modifier() config.BiomeModifier {
	return bm.cfg.Biome(bm.current)
}

// NextDelay draws the wait before the next rotation from the difficulty window
func (bm *BiomeManager) NextDelay() time.Duration {
	lo := bm.cfg.Balance.BiomeMinDelay
	hi := bm.cfg.Balance.BiomeMaxDelay
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(bm.rng.Int63n(int64(hi-lo)+1))
}

// Pick draws a variant uniformly, rerolling until it differs from the current one
func (bm *BiomeManager) Pick() types.Biome {
	next := bm.current
	for next == bm.current {
		next = types.Biomes[bm.rng.Intn(len(types.Biomes))]
	}
	return next
}

// Enter switches to b. Leaving toxic clears the zones; entering it spawns a
// fresh set placed by spawn under rules. Returns the number of zones placed.
func (bm *BiomeManager) Enter(b types.Biome, spawn *SpawnManager, avoid []types.Point, rules ...Rule) int {
	if bm.current == types.BiomeToxic {
		bm.zones = nil
	}
	bm.current = b
	if b != types.BiomeToxic {
		return 0
	}

	want := bm.cfg.MinZones
	if bm.cfg.MaxZones > bm.cfg.MinZones {
		want += bm.rng.Intn(bm.cfg.MaxZones - bm.cfg.MinZones + 1)
	}
	for i := 0; i < want; i++ {
		radius := bm.cfg.MinZoneRadius + bm.rng.Float64()*(bm.cfg.MaxZoneRadius-bm.cfg.MinZoneRadius)
		zoneRules := append([]Rule{
			NearPoints(avoid, radius+1),
			NearZones(bm.zones, radius),
		}, rules...)
		z, err := spawn.FindZone(radius, zoneRules...)
		if err != nil {
			break
		}
		bm.zones = append(bm.zones, z)
	}
	return len(bm.zones)
}

// Zones returns the live hazard zones
func (bm *BiomeManager) Zones() []entity.HazardZone {
	return bm.zones
}

// Place adds zones as given, without spawn rules
func (bm *BiomeManager) Place(zones ...entity.HazardZone) {
	bm.zones = append(bm.zones, zones...)
}

// ClearZones removes every hazard zone without changing the biome
func (bm *BiomeManager) ClearZones() {
	bm.zones = nil
}

// Update oscillates zone radii at game time now
func (bm *BiomeManager) Update(now time.Duration) {
	t := now.Seconds() * 0.5
	for i := range bm.zones {
		z := &bm.zones[i]
		n := bm.noise.Noise1D(t + z.Phase)
		swing := clampF(n*2, -1, 1) * zoneSwing
		z.Radius = z.BaseRadius * (1 + swing)
	}
}

// Reset returns to the initial biome with no zones
func (bm *BiomeManager) Reset() {
	bm.current = types.BiomeNormal
	bm.zones = nil
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
