package manager

import (
	"testing"
	"time"

	"biome-snake/game/config"
	"biome-snake/game/sched"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbilityManager_Lifecycle(t *testing.T) {
	q := sched.New()
	am := NewAbilityManager(config.DefaultAbilities(), q)

	var changes []bool
	am.OnChange = func(a Ability, active bool) {
		assert.Equal(t, Dash, a)
		changes = append(changes, active)
	}

	require.True(t, am.State(Dash).Ready())
	require.NoError(t, am.Activate(Dash, 0))
	assert.True(t, am.IsActive(Dash))

	q.RunDue(1400 * time.Millisecond)
	assert.True(t, am.IsActive(Dash))

	q.RunDue(1500 * time.Millisecond)
	st := am.State(Dash)
	assert.False(t, st.Active)
	assert.Equal(t, 10*time.Second, st.Cooldown)
	assert.Equal(t, []bool{true, false}, changes)

	am.Tick(3 * time.Second)
	assert.Equal(t, 7*time.Second, am.State(Dash).Cooldown)

	am.Tick(20 * time.Second)
	assert.Equal(t, time.Duration(0), am.State(Dash).Cooldown)
	assert.True(t, am.State(Dash).Ready())
}

func TestAbilityManager_NotReadyIsNoOp(t *testing.T) {
	q := sched.New()
	am := NewAbilityManager(config.DefaultAbilities(), q)

	require.NoError(t, am.Activate(Magnet, 0))
	before := am.State(Magnet)
	pending := q.Len()

	assert.ErrorIs(t, am.Activate(Magnet, time.Second), ErrNotReady)
	assert.Equal(t, before, am.State(Magnet))
	assert.Equal(t, pending, q.Len())

	q.RunDue(8 * time.Second)
	before = am.State(Magnet)
	assert.ErrorIs(t, am.Activate(Magnet, 8*time.Second), ErrNotReady)
	assert.Equal(t, before, am.State(Magnet))
}

func TestAbilityManager_HaltEndsActiveWindows(t *testing.T) {
	q := sched.New()
	am := NewAbilityManager(config.DefaultAbilities(), q)
	require.NoError(t, am.Activate(Dash, 0))
	require.NoError(t, am.Activate(TimeWarp, 0))

	am.Halt()
	assert.False(t, am.IsActive(Dash))
	assert.False(t, am.IsActive(TimeWarp))
	assert.Equal(t, 10*time.Second, am.State(Dash).Cooldown)
	assert.True(t, am.State(Magnet).Ready())
	assert.Equal(t, 0, q.Len())
}

func TestAbilityManager_CooldownStaysInRange(t *testing.T) {
	q := sched.New()
	am := NewAbilityManager(config.DefaultAbilities(), q)
	rng := newRNG(21)

	now := time.Duration(0)
	for i := 0; i < 2000; i++ {
		step := time.Duration(40+rng.Intn(360)) * time.Millisecond
		now += step
		q.RunDue(now)
		a := Abilities[rng.Intn(len(Abilities))]
		_ = am.Activate(a, now)
		am.Tick(step)

		for _, a := range Abilities {
			st := am.State(a)
			require.GreaterOrEqual(t, st.Cooldown, time.Duration(0))
			require.LessOrEqual(t, st.Cooldown, st.MaxCooldown)
		}
	}
}

func TestAbilityManager_ActiveAbilityDoesNotCoolDown(t *testing.T) {
	q := sched.New()
	am := NewAbilityManager(config.DefaultAbilities(), q)

	require.NoError(t, am.Activate(TimeWarp, 0))
	am.Tick(time.Second)
	assert.Equal(t, time.Duration(0), am.State(TimeWarp).Cooldown)
	assert.True(t, am.IsActive(TimeWarp))
}

func TestAbilityManager_Modifiers(t *testing.T) {
	q := sched.New()
	am := NewAbilityManager(config.DefaultAbilities(), q)

	am.ScaleDuration(Dash, 2)
	assert.Equal(t, 3*time.Second, am.State(Dash).Duration)

	require.NoError(t, am.Activate(Dash, 0))
	q.RunDue(3 * time.Second)
	require.Equal(t, 10*time.Second, am.State(Dash).Cooldown)

	am.ScaleCooldown(Dash, 0.5)
	assert.Equal(t, 5*time.Second, am.State(Dash).MaxCooldown)
	assert.Equal(t, 5*time.Second, am.State(Dash).Cooldown)

	am.ResetAll()
	assert.True(t, am.State(Dash).Ready())

	am.Reset(config.DefaultAbilities())
	assert.Equal(t, 1500*time.Millisecond, am.State(Dash).Duration)
	assert.Equal(t, 10*time.Second, am.State(Dash).MaxCooldown)
}

func TestParseAbility(t *testing.T) {
	a, err := ParseAbility(" Time_Warp ")
	require.NoError(t, err)
	assert.Equal(t, TimeWarp, a)

	_, err = ParseAbility("teleport")
	assert.ErrorIs(t, err, ErrUnknownAbility)

	assert.ErrorIs(t, NewAbilityManager(config.DefaultAbilities(), sched.New()).Activate(Ability(9), 0), ErrUnknownAbility)
}
