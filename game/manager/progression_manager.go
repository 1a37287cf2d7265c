package manager

import (
	"time"

	"biome-snake/game/entity"
	"biome-snake/game/types"

	"github.com/zyedidia/generic/mapset"
)

// Achievement ids
const (
	AchFirstDash     = "first_dash"
	AchDashMaster    = "dash_master"
	AchTimeLord      = "time_lord"
	AchBiomeExplorer = "biome_explorer"
	AchCollector     = "collector"
	AchSurvivor      = "survivor"
	AchCritterHunter = "critter_hunter"
	AchHighRoller    = "high_roller"
)

// Cumulative counters kept across sessions
const (
	CounterDashes    = "dashes"
	CounterTimeWarps = "time_warps"
	CounterCritters  = "critters"
)

const (
	dashMasterCount    = 10
	timeLordCount      = 5
	critterHunterCount = 10
	highRollerScore    = 500
	survivorTime       = 5 * time.Minute
)

type Achievement struct {
	ID          string
	Name        string
	Description string
}

// Achievements is the catalogue in display order
var Achievements = []Achievement{
	{AchFirstDash, "First Dash", "Use dash for the first time"},
	{AchDashMaster, "Dash Master", "Dash 10 times"},
	{AchTimeLord, "Time Lord", "Warp time 5 times"},
	{AchBiomeExplorer, "Biome Explorer", "Visit every biome in one game"},
	{AchCollector, "Collector", "Collect every power-up kind in one game"},
	{AchSurvivor, "Survivor", "Survive for 5 minutes"},
	{AchCritterHunter, "Critter Hunter", "Eat 10 critters"},
	{AchHighRoller, "High Roller", "Score 500 points in one game"},
}

// SessionStats accumulates per-session facts; reset when a session starts
type SessionStats struct {
	Elapsed       time.Duration
	Score         int
	Activations   [len(Abilities)]int
	Biomes        mapset.Set[types.Biome]
	PowerUps      mapset.Set[entity.PowerUpKind]
	CrittersEaten int
	FoodsEaten    int
}

func NewSessionStats() SessionStats {
	s := SessionStats{
		Biomes:   mapset.New[types.Biome](),
		PowerUps: mapset.New[entity.PowerUpKind](),
	}
	s.Biomes.Put(types.BiomeNormal)
	return s
}

// AchievementRecord is the persisted unlock state
type AchievementRecord struct {
	Unlocked map[string]bool `msgpack:"unlocked"`
	Counters map[string]int  `msgpack:"counters"`
}

func NewAchievementRecord() AchievementRecord {
	return AchievementRecord{
		Unlocked: make(map[string]bool),
		Counters: make(map[string]int),
	}
}

// Clone returns a deep copy
func (r AchievementRecord) Clone() AchievementRecord {
	out := NewAchievementRecord()
	for k, v := range r.Unlocked {
		out.Unlocked[k] = v
	}
	for k, v := range r.Counters {
		out.Counters[k] = v
	}
	return out
}

type ProgressionManager struct {
	stats  SessionStats
	record AchievementRecord
}

func NewProgressionManager(record AchievementRecord) *ProgressionManager {
	if record.Unlocked == nil || record.Counters == nil {
		fresh := NewAchievementRecord()
		for k, v := range record.Unlocked {
			fresh.Unlocked[k] = v
		}
		for k, v := range record.Counters {
			fresh.Counters[k] = v
		}
		record = fresh
	}
	return &ProgressionManager{
		stats:  NewSessionStats(),
		record: record,
	}
}

func (pm *ProgressionManager) Stats() *SessionStats {
	return &pm.stats
}

// Record returns a copy of the unlock state
func (pm *ProgressionManager) Record() AchievementRecord {
	return pm.record.Clone()
}

func (pm *ProgressionManager) Unlocked(id string) bool {
	return pm.record.Unlocked[id]
}

// Reset starts a fresh session; cumulative counters are kept
func (pm *ProgressionManager) Reset() {
	pm.stats = NewSessionStats()
}

func (pm *ProgressionManager) RecordActivation(a Ability) {
	pm.stats.Activations[a]++
	switch a {
	case Dash:
		pm.record.Counters[CounterDashes]++
	case TimeWarp:
		pm.record.Counters[CounterTimeWarps]++
	}
}

func (pm *ProgressionManager) RecordBiome(b types.Biome) {
	pm.stats.Biomes.Put(b)
}

func (pm *ProgressionManager) RecordPowerUp(k entity.PowerUpKind) {
	pm.stats.PowerUps.Put(k)
}

func (pm *ProgressionManager) RecordCritter() {
	pm.stats.CrittersEaten++
	pm.record.Counters[CounterCritters]++
}

func (pm *ProgressionManager) RecordFood() {
	pm.stats.FoodsEaten++
}

func (pm *ProgressionManager) AddElapsed(d time.Duration) {
	pm.stats.Elapsed += d
}

func (pm *ProgressionManager) SetScore(score int) {
	pm.stats.Score = score
}

// Evaluate unlocks every achievement whose condition now holds and
// returns the ids unlocked by this call, in catalogue order.
func (pm *ProgressionManager) Evaluate() []string {
	var unlocked []string
	for _, a := range Achievements {
		if pm.record.Unlocked[a.ID] || !pm.met(a.ID) {
			continue
		}
		pm.record.Unlocked[a.ID] = true
		unlocked = append(unlocked, a.ID)
	}
	return unlocked
}

func (pm *ProgressionManager) met(id string) bool {
	c := pm.record.Counters
	switch id {
	case AchFirstDash:
		return c[CounterDashes] >= 1
	case AchDashMaster:
		return c[CounterDashes] >= dashMasterCount
	case AchTimeLord:
		return c[CounterTimeWarps] >= timeLordCount
	case AchBiomeExplorer:
		return pm.stats.Biomes.Size() >= len(types.Biomes)
	case AchCollector:
		return pm.stats.PowerUps.Size() >= len(entity.PowerUpKinds)
	case AchSurvivor:
		return pm.stats.Elapsed >= survivorTime
	case AchCritterHunter:
		return c[CounterCritters] >= critterHunterCount
	case AchHighRoller:
		return pm.stats.Score >= highRollerScore
	}
	return false
}
