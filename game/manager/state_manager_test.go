package manager

import (
	"testing"

	"biome-snake/game/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateManager_RoundTrip(t *testing.T) {
	kv := store.NewMemoryKV()
	sm := NewStateManager(kv, nil)
	assert.Equal(t, 0, sm.HighScore())

	require.NoError(t, sm.RecordScore(120))
	require.NoError(t, sm.RecordScore(80))

	rec := NewAchievementRecord()
	rec.Unlocked[AchFirstDash] = true
	rec.Counters[CounterDashes] = 1
	require.NoError(t, sm.SaveAchievements(rec))

	reloaded := NewStateManager(kv, nil)
	assert.Equal(t, 120, reloaded.HighScore())
	assert.Equal(t, []int{120, 80}, reloaded.History())
	assert.True(t, reloaded.Achievements().Unlocked[AchFirstDash])
	assert.Equal(t, 1, reloaded.Achievements().Counters[CounterDashes])
}

func TestStateManager_HistoryIsBounded(t *testing.T) {
	sm := NewStateManager(store.NewMemoryKV(), nil)
	for i := 1; i <= MaxScoreHistory+10; i++ {
		require.NoError(t, sm.RecordScore(i))
	}

	history := sm.History()
	require.Len(t, history, MaxScoreHistory)
	assert.Equal(t, 11, history[0])
	assert.Equal(t, MaxScoreHistory+10, sm.HighScore())
}

func TestStateManager_CorruptRecordsFallBackToDefaults(t *testing.T) {
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Put(statsKey, []byte{0xc1}))
	require.NoError(t, kv.Put(achievementsKey, []byte{0xc1}))

	sm := NewStateManager(kv, nil)
	assert.Equal(t, 0, sm.HighScore())
	assert.Empty(t, sm.History())
	assert.NotNil(t, sm.Achievements().Unlocked)

	require.NoError(t, sm.RecordScore(40))
	assert.Equal(t, 40, NewStateManager(kv, nil).HighScore())
}

func TestStateManager_FileStore(t *testing.T) {
	kv, err := store.NewFileKV(t.TempDir())
	require.NoError(t, err)

	sm := NewStateManager(kv, nil)
	require.NoError(t, sm.RecordScore(310))
	assert.Equal(t, 310, NewStateManager(kv, nil).HighScore())
}

func TestStateManager_ObserveScore(t *testing.T) {
	sm := NewStateManager(nil, nil)
	assert.True(t, sm.ObserveScore(10))
	assert.False(t, sm.ObserveScore(5))
	assert.Equal(t, 10, sm.HighScore())
}

func TestStateManager_Summary(t *testing.T) {
	sm := NewStateManager(nil, nil)
	assert.Equal(t, ScoreSummary{}, sm.Summary())

	for _, score := range []int{40, 10, 30, 20} {
		require.NoError(t, sm.RecordScore(score))
	}
	assert.Equal(t, ScoreSummary{GamesPlayed: 4, Average: 25, Median: 25, Best: 40}, sm.Summary())

	require.NoError(t, sm.RecordScore(100))
	sum := sm.Summary()
	assert.Equal(t, 30.0, sum.Median)
	assert.Equal(t, 100, sum.Best)
}
