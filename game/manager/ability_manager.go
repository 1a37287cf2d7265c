package manager

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"biome-snake/game/config"
	"biome-snake/game/sched"
)

// ErrNotReady is returned when an ability is active or cooling down
var ErrNotReady = errors.New("ability not ready")

// ErrUnknownAbility is returned for an unrecognised ability id
var ErrUnknownAbility = errors.New("unknown ability")

type Ability int

const (
	Dash Ability = iota
	TimeWarp
	Magnet
)

// Abilities lists every ability
var Abilities = [3]Ability{Dash, TimeWarp, Magnet}

var abilityNames = [...]string{"dash", "time_warp", "magnet"}

func (a Ability) String() string {
	if a < Dash || a > Magnet {
		return "unknown"
	}
	return abilityNames[a]
}

// ParseAbility maps an ability id to an Ability
func ParseAbility(s string) (Ability, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range abilityNames {
		if name == s {
			return Ability(i), nil
		}
	}
	return Dash, fmt.Errorf("%w: %q", ErrUnknownAbility, s)
}

// AbilityState is the Ready/Active/Cooling machine of one ability
type AbilityState struct {
	Active      bool
	Cooldown    time.Duration
	MaxCooldown time.Duration
	Duration    time.Duration
	expiry      sched.ID
}

// Ready reports whether Activate would succeed
func (s AbilityState) Ready() bool {
	return !s.Active && s.Cooldown == 0
}

type AbilityManager struct {
	queue  *sched.Queue
	states [len(Abilities)]AbilityState
	// OnChange is called after an ability starts or expires
	OnChange func(a Ability, active bool)
}

func NewAbilityManager(cfg config.Abilities, queue *sched.Queue) *AbilityManager {
	am := &AbilityManager{queue: queue}
	am.configure(cfg)
	return am
}

func (am *AbilityManager) configure(cfg config.Abilities) {
	for _, a := range Abilities {
		var t config.AbilityTiming
		switch a {
		case Dash:
			t = cfg.Dash
		case TimeWarp:
			t = cfg.TimeWarp
		case Magnet:
			t = cfg.Magnet
		}
		am.states[a] = AbilityState{Duration: t.Duration, MaxCooldown: t.MaxCooldown}
	}
}

// Activate starts a ready ability and schedules its expiry at now+duration
func (am *AbilityManager) Activate(a Ability, now time.Duration) error {
	if a < Dash || a > Magnet {
		return ErrUnknownAbility
	}
	s := &am.states[a]
	if !s.Ready() {
		return ErrNotReady
	}

	s.Active = true
	s.expiry = am.queue.Schedule(now+s.Duration, a.String()+".expire", func(time.Duration) {
		am.expire(a)
	})
	if am.OnChange != nil {
		am.OnChange(a, true)
	}
	return nil
}

func (am *AbilityManager) expire(a Ability) {
	s := &am.states[a]
	s.Active = false
	s.Cooldown = s.MaxCooldown
	s.expiry = 0
	if am.OnChange != nil {
		am.OnChange(a, false)
	}
}

// Halt ends every active window now, as if each had expired
func (am *AbilityManager) Halt() {
	for _, a := range Abilities {
		if s := am.states[a]; s.Active {
			am.queue.Cancel(s.expiry)
			am.expire(a)
		}
	}
}

// Tick decays the cooldown of every inactive ability by elapsed
func (am *AbilityManager) Tick(elapsed time.Duration) {
	for i := range am.states {
		s := &am.states[i]
		if s.Active || s.Cooldown == 0 {
			continue
		}
		s.Cooldown -= elapsed
		if s.Cooldown < 0 {
			s.Cooldown = 0
		}
	}
}

func (am *AbilityManager) State(a Ability) AbilityState {
	return am.states[a]
}

func (am *AbilityManager) IsActive(a Ability) bool {
	return am.states[a].Active
}

// ResetCooldown makes an inactive ability ready immediately
func (am *AbilityManager) ResetCooldown(a Ability) {
	am.states[a].Cooldown = 0
}

func (am *AbilityManager) ResetAll() {
	for _, a := range Abilities {
		am.ResetCooldown(a)
	}
}

// ScaleDuration multiplies the active window of a
func (am *AbilityManager) ScaleDuration(a Ability, f float64) {
	s := &am.states[a]
	s.Duration = time.Duration(float64(s.Duration) * f)
}

// ScaleCooldown multiplies the max cooldown of a, keeping the current one in range
func (am *AbilityManager) ScaleCooldown(a Ability, f float64) {
	s := &am.states[a]
	s.MaxCooldown = time.Duration(float64(s.MaxCooldown) * f)
	if s.Cooldown > s.MaxCooldown {
		s.Cooldown = s.MaxCooldown
	}
}

// Reset restores the configured timings with every ability ready.
// Pending expiries belong to the queue and are cancelled with it.
func (am *AbilityManager) Reset(cfg config.Abilities) {
	am.configure(cfg)
}
