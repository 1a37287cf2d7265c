package config

import (
	"time"

	"biome-snake/game/types"
)

// Balance holds the per-difficulty gameplay tuning
type Balance struct {
	ScoreMultiplier int           `yaml:"score_multiplier"`
	BaseInterval    time.Duration `yaml:"base_interval"`
	Obstacles       int           `yaml:"obstacles"`
	Critters        int           `yaml:"critters"`

	// Biome rotation window
	BiomeMinDelay time.Duration `yaml:"biome_min_delay"`
	BiomeMaxDelay time.Duration `yaml:"biome_max_delay"`
}

// Default returns the balance for Normal difficulty
func Default() Balance {
	return Balance{
		ScoreMultiplier: 2,
		BaseInterval:    120 * time.Millisecond,
		Obstacles:       3,
		Critters:        2,
		BiomeMinDelay:   15 * time.Second,
		BiomeMaxDelay:   30 * time.Second,
	}
}

// Casual returns the Easy preset
func Casual() Balance {
	cfg := Default()
	cfg.ScoreMultiplier = 1
	cfg.BaseInterval = 150 * time.Millisecond
	cfg.Obstacles = 0
	cfg.Critters = 1
	cfg.BiomeMinDelay = 20 * time.Second
	cfg.BiomeMaxDelay = 35 * time.Second
	return cfg
}

// Hard returns the Hard preset
func Hard() Balance {
	cfg := Default()
	cfg.ScoreMultiplier = 3
	cfg.BaseInterval = 100 * time.Millisecond
	cfg.Obstacles = 6
	cfg.Critters = 3
	cfg.BiomeMinDelay = 12 * time.Second
	cfg.BiomeMaxDelay = 24 * time.Second
	return cfg
}

// Brutal returns the Extreme preset
func Brutal() Balance {
	cfg := Default()
	cfg.ScoreMultiplier = 4
	cfg.BaseInterval = 80 * time.Millisecond
	cfg.Obstacles = 10
	cfg.Critters = 4
	cfg.BiomeMinDelay = 8 * time.Second
	cfg.BiomeMaxDelay = 15 * time.Second
	return cfg
}

// Preset returns the built-in balance for a difficulty
func Preset(d types.Difficulty) Balance {
	switch d {
	case types.Easy:
		return Casual()
	case types.Hard:
		return Hard()
	case types.Extreme:
		return Brutal()
	default:
		return Default()
	}
}

// BiomeModifier is the modifier record of one biome variant
type BiomeModifier struct {
	SpeedFactor    float64       `yaml:"speed_factor"`
	TurnDelay      time.Duration `yaml:"turn_delay"`
	FoodAttraction float64       `yaml:"food_attraction"`
	FoodRepulsion  float64       `yaml:"food_repulsion"`
}

// DefaultBiomes returns the modifier table for every biome
func DefaultBiomes() map[string]BiomeModifier {
	return map[string]BiomeModifier{
		types.BiomeNormal.String():   {SpeedFactor: 1.0},
		types.BiomeFire.String():     {SpeedFactor: 1.3},
		types.BiomeIce.String():      {SpeedFactor: 0.9, TurnDelay: 150 * time.Millisecond},
		types.BiomeMagnetic.String(): {SpeedFactor: 1.0, FoodAttraction: 0.3},
		types.BiomeToxic.String():    {SpeedFactor: 1.0, FoodRepulsion: 0.2},
	}
}

// AbilityTiming configures one ability's active window and cooldown
type AbilityTiming struct {
	Duration    time.Duration `yaml:"duration"`
	MaxCooldown time.Duration `yaml:"max_cooldown"`
}

type Abilities struct {
	Dash     AbilityTiming `yaml:"dash"`
	TimeWarp AbilityTiming `yaml:"time_warp"`
	Magnet   AbilityTiming `yaml:"magnet"`
}

func DefaultAbilities() Abilities {
	return Abilities{
		Dash:     AbilityTiming{Duration: 1500 * time.Millisecond, MaxCooldown: 10 * time.Second},
		TimeWarp: AbilityTiming{Duration: 5 * time.Second, MaxCooldown: 20 * time.Second},
		Magnet:   AbilityTiming{Duration: 8 * time.Second, MaxCooldown: 25 * time.Second},
	}
}
