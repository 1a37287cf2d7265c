package manager

import (
	"sort"
	"time"

	"biome-snake/game/sched"
)

// Effect is a timed modifier granted by power-ups, bonuses or upgrades
type Effect int

const (
	EffectShield Effect = iota
	EffectGhost
	EffectSlowMotion
	EffectInvincibility
	EffectImmunity
)

var effectNames = [...]string{"shield", "ghost", "slow_motion", "invincibility", "immunity"}

func (e Effect) String() string {
	if e < EffectShield || e > EffectImmunity {
		return "unknown"
	}
	return effectNames[e]
}

// Suppresses returns the collision classes the effect ignores
func (e Effect) Suppresses() Suppression {
	switch e {
	case EffectShield, EffectImmunity:
		return SuppressHazard
	case EffectGhost:
		return SuppressSelf | SuppressObstacle
	case EffectInvincibility:
		return SuppressAll
	}
	return 0
}

// SlowMotionFactor multiplies the tick interval while slow motion is active
const SlowMotionFactor = 1.5

type timedEffect struct {
	until time.Duration
	id    sched.ID
}

// ActiveEffect describes a running effect for snapshots
type ActiveEffect struct {
	Effect    Effect
	Remaining time.Duration
}

type EffectManager struct {
	queue  *sched.Queue
	active map[Effect]timedEffect
	// OnChange is called after an effect starts or expires
	OnChange func(e Effect, active bool)
}

func NewEffectManager(queue *sched.Queue) *EffectManager {
	return &EffectManager{
		queue:  queue,
		active: make(map[Effect]timedEffect),
	}
}

// Grant starts e for d. Granting a running effect replaces its expiry.
func (em *EffectManager) Grant(e Effect, now, d time.Duration) {
	if prev, ok := em.active[e]; ok {
		em.queue.Cancel(prev.id)
	}
	id := em.queue.Schedule(now+d, e.String()+".expire", func(time.Duration) {
		delete(em.active, e)
		if em.OnChange != nil {
			em.OnChange(e, false)
		}
	})
	em.active[e] = timedEffect{until: now + d, id: id}
	if em.OnChange != nil {
		em.OnChange(e, true)
	}
}

func (em *EffectManager) Active(e Effect) bool {
	_, ok := em.active[e]
	return ok
}

// Suppression ORs the suppressed classes of every running effect
func (em *EffectManager) Suppression() Suppression {
	var s Suppression
	for e := range em.active {
		s |= e.Suppresses()
	}
	return s
}

// IntervalFactor is the product of interval multipliers of running effects
func (em *EffectManager) IntervalFactor() float64 {
	f := 1.0
	if em.Active(EffectSlowMotion) {
		f *= SlowMotionFactor
	}
	return f
}

// List returns running effects ordered by id
func (em *EffectManager) List(now time.Duration) []ActiveEffect {
	out := make([]ActiveEffect, 0, len(em.active))
	for e, t := range em.active {
		out = append(out, ActiveEffect{Effect: e, Remaining: t.until - now})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Effect < out[j].Effect })
	return out
}

// Clear forgets every effect; their expiries must be cancelled with the queue
func (em *EffectManager) Clear() {
	em.active = make(map[Effect]timedEffect)
}
