package manager

import (
	"testing"
	"time"

	"biome-snake/game/config"
	"biome-snake/game/entity"
	"biome-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBiomeFixture(seed uint64) (*BiomeManager, *SpawnManager, config.Config) {
	cfg := config.New(types.Normal)
	rng := newRNG(seed)
	return NewBiomeManager(cfg, rng), NewSpawnManager(cfg.Grid, rng, DefaultSpawnAttempts), cfg
}

func TestBiomeManager_PickNeverRepeats(t *testing.T) {
	bm, spawn, _ := newBiomeFixture(42)
	require.Equal(t, types.BiomeNormal, bm.Current())

	seen := make(map[types.Biome]bool)
	for i := 0; i < 1000; i++ {
		prev := bm.Current()
		next := bm.Pick()
		require.NotEqual(t, prev, next, "rotation %d repeated %s", i, prev)
		bm.Enter(next, spawn, nil)
		seen[next] = true
	}
	assert.Len(t, seen, len(types.Biomes))
}

func TestBiomeManager_NextDelayWithinWindow(t *testing.T) {
	for _, d := range []types.Difficulty{types.Easy, types.Normal, types.Hard, types.Extreme} {
		cfg := config.New(d)
		bm := NewBiomeManager(cfg, newRNG(9))
		for i := 0; i < 200; i++ {
			delay := bm.NextDelay()
			assert.GreaterOrEqual(t, delay, cfg.Balance.BiomeMinDelay)
			assert.LessOrEqual(t, delay, cfg.Balance.BiomeMaxDelay)
		}
	}
}

func TestBiomeManager_ToxicZonesClearedOnExitAndRegeneratedOnEntry(t *testing.T) {
	bm, spawn, cfg := newBiomeFixture(5)
	avoid := []types.Point{{X: 15, Y: 10}, {X: 14, Y: 10}, {X: 13, Y: 10}}

	n := bm.Enter(types.BiomeToxic, spawn, avoid)
	assert.GreaterOrEqual(t, n, cfg.MinZones)
	assert.LessOrEqual(t, n, cfg.MaxZones)
	for _, z := range bm.Zones() {
		assert.GreaterOrEqual(t, z.BaseRadius, cfg.MinZoneRadius)
		assert.LessOrEqual(t, z.BaseRadius, cfg.MaxZoneRadius)
	}
	for _, p := range avoid {
		assert.False(t, entity.InAnyZone(p, bm.Zones()), "zone placed over %v", p)
	}

	bm.Enter(types.BiomeIce, spawn, avoid)
	assert.Empty(t, bm.Zones())
	assert.Equal(t, types.BiomeIce, bm.Current())

	bm.Enter(types.BiomeToxic, spawn, avoid)
	assert.NotEmpty(t, bm.Zones())
}

func TestBiomeManager_ZonesDoNotOverlap(t *testing.T) {
	bm, spawn, _ := newBiomeFixture(11)
	bm.Enter(types.BiomeToxic, spawn, nil)

	zones := bm.Zones()
	for i := range zones {
		for j := i + 1; j < len(zones); j++ {
			p := types.Point{X: int(zones[i].CX), Y: int(zones[i].CY)}
			dist := types.Euclid(p, zones[j].CX, zones[j].CY)
			assert.GreaterOrEqual(t, dist, zones[i].BaseRadius+zones[j].BaseRadius)
		}
	}
}

func TestBiomeManager_UpdateKeepsRadiusInSwing(t *testing.T) {
	bm, spawn, _ := newBiomeFixture(13)
	bm.Enter(types.BiomeToxic, spawn, nil)
	require.NotEmpty(t, bm.Zones())

	for ms := 0; ms < 60000; ms += 100 {
		bm.Update(time.Duration(ms) * time.Millisecond)
		for _, z := range bm.Zones() {
			assert.GreaterOrEqual(t, z.Radius, z.BaseRadius*0.75-1e-9)
			assert.LessOrEqual(t, z.Radius, z.BaseRadius*1.25+1e-9)
		}
	}
}

func TestBiomeManager_Modifier(t *testing.T) {
	bm, spawn, _ := newBiomeFixture(1)
	assert.Equal(t, 1.0, bm.Modifier().SpeedFactor)

	bm.Enter(types.BiomeFire, spawn, nil)
	assert.Equal(t, 1.3, bm.Modifier().SpeedFactor)

	bm.Enter(types.BiomeIce, spawn, nil)
	assert.Equal(t, 150*time.Millisecond, bm.Modifier().TurnDelay)

	bm.Reset()
	assert.Equal(t, types.BiomeNormal, bm.Current())
}
