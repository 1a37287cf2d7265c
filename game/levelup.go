package game

import (
	"fmt"

	"biome-snake/game/entity"
	"biome-snake/game/manager"
	"biome-snake/game/types"
)

// Upgrade is a level-up reward, either permanent for the session or timed
type Upgrade int

const (
	UpgradeScoreBoost Upgrade = iota
	UpgradeDashMastery
	UpgradeLongerDash
	UpgradeWarpMastery
	UpgradeShield
	UpgradeGhost
	UpgradeCooldownReset
	UpgradeSlowMotion
	UpgradeTraction
	UpgradeMagnetMastery
)

var upgradeInfo = [...]struct {
	name string
	desc string
}{
	UpgradeScoreBoost:    {"score_boost", "+25% points for the rest of the game"},
	UpgradeDashMastery:   {"dash_mastery", "Dash cooldown 20% shorter"},
	UpgradeLongerDash:    {"longer_dash", "Dash lasts 50% longer"},
	UpgradeWarpMastery:   {"warp_mastery", "Time warp cooldown 20% shorter"},
	UpgradeShield:        {"shield", "Hazard shield for a while"},
	UpgradeGhost:         {"ghost", "Pass through yourself and obstacles for a while"},
	UpgradeCooldownReset: {"cooldown_reset", "All abilities ready now"},
	UpgradeSlowMotion:    {"slow_motion", "Slow the game down for a while"},
	UpgradeTraction:      {"traction", "Ice no longer delays turns"},
	UpgradeMagnetMastery: {"magnet_mastery", "Magnet reaches further and lasts longer"},
}

func (u Upgrade) String() string {
	if u < UpgradeScoreBoost || u > UpgradeMagnetMastery {
		return "unknown"
	}
	return upgradeInfo[u].name
}

func (u Upgrade) Description() string {
	if u < UpgradeScoreBoost || u > UpgradeMagnetMastery {
		return ""
	}
	return upgradeInfo[u].desc
}

var generalUpgrades = []Upgrade{
	UpgradeScoreBoost,
	UpgradeDashMastery,
	UpgradeLongerDash,
	UpgradeWarpMastery,
	UpgradeShield,
	UpgradeGhost,
	UpgradeCooldownReset,
}

var biomeUpgrades = map[types.Biome]Upgrade{
	types.BiomeNormal:   UpgradeScoreBoost,
	types.BiomeFire:     UpgradeSlowMotion,
	types.BiomeIce:      UpgradeTraction,
	types.BiomeMagnetic: UpgradeMagnetMastery,
	types.BiomeToxic:    UpgradeShield,
}

const (
	generalChoices     = 2
	masteryFactor      = 0.8
	longerDashFactor   = 1.5
	magnetReachBonus   = 2
	magnetLengthFactor = 1.5
)

// levelUp halts the clock and offers the next set of choices
func (s *Session) levelUp() {
	s.state = LevelingUp
	s.level++
	s.nextLevel += int(50 * (1 + float64(s.level)*0.5))
	s.choices = s.offerUpgrades()
	s.log.Info("level up", "level", s.level, "next", s.nextLevel, "choices", s.choices)
}

// offerUpgrades draws distinct general upgrades plus the current biome's own
func (s *Session) offerUpgrades() []Upgrade {
	special := biomeUpgrades[s.biomes.Current()]

	pool := make([]Upgrade, 0, len(generalUpgrades))
	for _, u := range generalUpgrades {
		if u != special {
			pool = append(pool, u)
		}
	}
	s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	out := append([]Upgrade{}, pool[:generalChoices]...)
	return append(out, special)
}

// Choices returns the pending level-up options
func (s *Session) Choices() []Upgrade {
	return append([]Upgrade(nil), s.choices...)
}

// ChooseUpgrade applies the i-th offered upgrade and resumes play
func (s *Session) ChooseUpgrade(i int) error {
	if s.state != LevelingUp {
		return invalid("choose upgrade", s.state)
	}
	if i < 0 || i >= len(s.choices) {
		return fmt.Errorf("%w: choice %d of %d", ErrUnknownUpgrade, i, len(s.choices))
	}

	u := s.choices[i]
	s.choices = nil
	s.applyUpgrade(u)
	s.state = Running
	s.log.Debug("upgrade chosen", "upgrade", u, "level", s.level)
	return nil
}

func (s *Session) applyUpgrade(u Upgrade) {
	switch u {
	case UpgradeScoreBoost:
		s.perks.scoreBoost++
	case UpgradeDashMastery:
		s.abilities.ScaleCooldown(manager.Dash, masteryFactor)
	case UpgradeLongerDash:
		s.abilities.ScaleDuration(manager.Dash, longerDashFactor)
	case UpgradeWarpMastery:
		s.abilities.ScaleCooldown(manager.TimeWarp, masteryFactor)
	case UpgradeShield:
		s.effects.Grant(manager.EffectShield, s.clock, s.cfg.ShieldDuration)
	case UpgradeGhost:
		s.effects.Grant(manager.EffectGhost, s.clock, s.cfg.GhostDuration)
	case UpgradeCooldownReset:
		s.abilities.ResetAll()
	case UpgradeSlowMotion:
		s.effects.Grant(manager.EffectSlowMotion, s.clock, s.cfg.SlowMotionDuration)
	case UpgradeTraction:
		s.perks.traction = true
	case UpgradeMagnetMastery:
		s.perks.magnetRange += magnetReachBonus
		s.abilities.ScaleDuration(manager.Magnet, magnetLengthFactor)
	}
}

// Bonus is the extra effect special food grants
type Bonus int

const (
	BonusNone Bonus = iota
	BonusCooldownReset
	BonusInvincibility
	BonusObstacleClear
	BonusHazardClear
	BonusImmunity
	BonusAbilityReset
)

var bonusNames = [...]string{"none", "cooldown_reset", "invincibility", "obstacle_clear", "hazard_clear", "immunity", "ability_reset"}

func (b Bonus) String() string {
	if b < BonusNone || b > BonusAbilityReset {
		return "unknown"
	}
	return bonusNames[b]
}

var bonusPools = map[types.Biome][]Bonus{
	types.BiomeNormal:   {BonusCooldownReset, BonusInvincibility},
	types.BiomeFire:     {BonusInvincibility, BonusObstacleClear},
	types.BiomeIce:      {BonusCooldownReset, BonusImmunity},
	types.BiomeMagnetic: {BonusAbilityReset, BonusObstacleClear},
	types.BiomeToxic:    {BonusHazardClear, BonusImmunity},
}

func (s *Session) drawBonus() Bonus {
	pool := bonusPools[s.biomes.Current()]
	if len(pool) == 0 {
		return BonusNone
	}
	return pool[s.rng.Intn(len(pool))]
}

func (s *Session) applyBonus(b Bonus) {
	switch b {
	case BonusCooldownReset:
		s.abilities.ResetCooldown(manager.Dash)
	case BonusAbilityReset:
		s.abilities.ResetAll()
	case BonusInvincibility:
		s.effects.Grant(manager.EffectInvincibility, s.clock, s.cfg.InvincibilityDuration)
	case BonusImmunity:
		s.effects.Grant(manager.EffectImmunity, s.clock, s.cfg.ImmunityDuration)
	case BonusObstacleClear:
		n := s.clearObstacles(func(o entity.Obstacle) bool { return o.Destructible })
		s.log.Debug("obstacles cleared", "count", n)
	case BonusHazardClear:
		s.biomes.ClearZones()
	}
}
