package manager

import (
	"testing"
	"time"

	"biome-snake/game/sched"

	"github.com/stretchr/testify/assert"
)

func TestEffectManager_SuppressionComposes(t *testing.T) {
	q := sched.New()
	em := NewEffectManager(q)
	assert.Equal(t, Suppression(0), em.Suppression())

	em.Grant(EffectShield, 0, 10*time.Second)
	assert.Equal(t, SuppressHazard, em.Suppression())

	em.Grant(EffectGhost, 0, 5*time.Second)
	assert.Equal(t, SuppressAll, em.Suppression())

	q.RunDue(5 * time.Second)
	assert.False(t, em.Active(EffectGhost))
	assert.Equal(t, SuppressHazard, em.Suppression())

	q.RunDue(10 * time.Second)
	assert.Equal(t, Suppression(0), em.Suppression())
}

func TestEffectManager_RegrantReplacesExpiry(t *testing.T) {
	q := sched.New()
	em := NewEffectManager(q)

	em.Grant(EffectShield, 0, 10*time.Second)
	em.Grant(EffectShield, 5*time.Second, 10*time.Second)

	q.RunDue(10 * time.Second)
	assert.True(t, em.Active(EffectShield))

	q.RunDue(15 * time.Second)
	assert.False(t, em.Active(EffectShield))
}

func TestEffectManager_IntervalFactorAndList(t *testing.T) {
	q := sched.New()
	em := NewEffectManager(q)
	assert.Equal(t, 1.0, em.IntervalFactor())

	em.Grant(EffectSlowMotion, 0, 8*time.Second)
	em.Grant(EffectInvincibility, 0, 5*time.Second)
	assert.Equal(t, SlowMotionFactor, em.IntervalFactor())
	assert.Equal(t, SuppressAll, em.Suppression())

	list := em.List(2 * time.Second)
	assert.Equal(t, []ActiveEffect{
		{Effect: EffectSlowMotion, Remaining: 6 * time.Second},
		{Effect: EffectInvincibility, Remaining: 3 * time.Second},
	}, list)

	em.Clear()
	assert.Empty(t, em.List(0))
}
