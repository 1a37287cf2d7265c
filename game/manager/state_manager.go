package manager

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"biome-snake/game/store"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	statsKey        = "stats"
	achievementsKey = "achievements"

	// MaxScoreHistory bounds the number of remembered final scores
	MaxScoreHistory = 50
)

type GameStats struct {
	HighScore    int   `msgpack:"high_score"`
	ScoreHistory []int `msgpack:"score_history"`
}

// StateManager persists high scores and achievements between sessions.
// Missing or unreadable records fall back to empty defaults.
type StateManager struct {
	kv           store.KV
	log          *slog.Logger
	stats        GameStats
	achievements AchievementRecord
}

func NewStateManager(kv store.KV, log *slog.Logger) *StateManager {
	if kv == nil {
		kv = store.NewMemoryKV()
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	sm := &StateManager{
		kv:           kv,
		log:          log,
		achievements: NewAchievementRecord(),
	}
	sm.Load()
	return sm
}

// Load reads both records from the store
func (sm *StateManager) Load() {
	sm.stats = GameStats{}
	if !sm.read(statsKey, &sm.stats) {
		sm.stats = GameStats{}
	}
	if len(sm.stats.ScoreHistory) > MaxScoreHistory {
		sm.stats.ScoreHistory = sm.stats.ScoreHistory[len(sm.stats.ScoreHistory)-MaxScoreHistory:]
	}

	var rec AchievementRecord
	if !sm.read(achievementsKey, &rec) {
		rec = AchievementRecord{}
	}
	sm.achievements = NewProgressionManager(rec).Record()
}

func (sm *StateManager) read(key string, v any) bool {
	data, ok, err := sm.kv.Get(key)
	if err != nil {
		sm.log.Warn("state read failed, using defaults", "key", key, "err", err)
		return false
	}
	if !ok {
		return false
	}
	if err := msgpack.Unmarshal(data, v); err != nil {
		sm.log.Warn("state record corrupt, using defaults", "key", key, "err", err)
		return false
	}
	return true
}

func (sm *StateManager) write(key string, v any) error {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := sm.kv.Put(key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (sm *StateManager) HighScore() int {
	return sm.stats.HighScore
}

// History returns the remembered final scores, oldest first
func (sm *StateManager) History() []int {
	out := make([]int, len(sm.stats.ScoreHistory))
	copy(out, sm.stats.ScoreHistory)
	return out
}

// ObserveScore raises the in-memory high score without writing
func (sm *StateManager) ObserveScore(score int) bool {
	if score > sm.stats.HighScore {
		sm.stats.HighScore = score
		return true
	}
	return false
}

// RecordScore appends a final score and saves the stats record
func (sm *StateManager) RecordScore(score int) error {
	sm.ObserveScore(score)
	sm.stats.ScoreHistory = append(sm.stats.ScoreHistory, score)
	if len(sm.stats.ScoreHistory) > MaxScoreHistory {
		sm.stats.ScoreHistory = sm.stats.ScoreHistory[len(sm.stats.ScoreHistory)-MaxScoreHistory:]
	}
	return sm.write(statsKey, sm.stats)
}

func (sm *StateManager) Achievements() AchievementRecord {
	return sm.achievements.Clone()
}

// SaveAchievements replaces and writes the achievement record
func (sm *StateManager) SaveAchievements(rec AchievementRecord) error {
	sm.achievements = rec.Clone()
	return sm.write(achievementsKey, sm.achievements)
}

// ScoreSummary aggregates the remembered final scores
type ScoreSummary struct {
	GamesPlayed int
	Average     float64
	Median      float64
	Best        int
}

// Summary computes statistics over the score history
func (sm *StateManager) Summary() ScoreSummary {
	scores := sm.History()
	if len(scores) == 0 {
		return ScoreSummary{}
	}

	var total int
	for _, s := range scores {
		total += s
	}
	sort.Ints(scores)

	sum := ScoreSummary{
		GamesPlayed: len(scores),
		Average:     float64(total) / float64(len(scores)),
		Best:        scores[len(scores)-1],
	}
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		sum.Median = float64(scores[mid-1]+scores[mid]) / 2
	} else {
		sum.Median = float64(scores[mid])
	}
	return sum
}
