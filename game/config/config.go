package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"biome-snake/game/types"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnsupportedMode   = errors.New("unsupported game mode")
)

// Gameplay constants shared by every difficulty
const (
	GridWidth         = 30
	GridHeight        = 20
	StartLength       = 3
	MinLength         = 3
	MaxSpawnAttempts  = 100
	NormalFoodScore   = 10
	SpecialFoodScore  = 30
	SpecialFoodChance = 0.15
	CritterBonus      = 20
	CritterRespawn    = 5 * time.Second
	CritterStepEvery  = 3
	FirstLevelScore   = 50
	MagnetRange       = 5
	BombRadius        = 3.0
	GrowthSegments    = 3
	ShrinkSegments    = 3
	MinInterval       = 40 * time.Millisecond
	MaxInterval       = 400 * time.Millisecond
	SpeedStepScore    = 50
	SpeedStep         = 5 * time.Millisecond
	SpeedFloor        = 50 * time.Millisecond
)

type Config struct {
	Grid       types.Grid               `yaml:"-"`
	Width      int                      `yaml:"width"`
	Height     int                      `yaml:"height"`
	Difficulty types.Difficulty         `yaml:"-"`
	Mode       types.Mode               `yaml:"-"`
	Balance    Balance                  `yaml:"balance"`
	Biomes     map[string]BiomeModifier `yaml:"biomes"`
	Abilities  Abilities                `yaml:"abilities"`

	// Effect windows
	ShieldDuration        time.Duration `yaml:"shield_duration"`
	GhostDuration         time.Duration `yaml:"ghost_duration"`
	SlowMotionDuration    time.Duration `yaml:"slow_motion_duration"`
	InvincibilityDuration time.Duration `yaml:"invincibility_duration"`
	ImmunityDuration      time.Duration `yaml:"immunity_duration"`

	// Power-up pickups
	PowerUpInterval time.Duration `yaml:"power_up_interval"`
	PowerUpChance   float64       `yaml:"power_up_chance"`
	PowerUpLifetime time.Duration `yaml:"power_up_lifetime"`

	// Hazard zones
	MinZones      int     `yaml:"min_zones"`
	MaxZones      int     `yaml:"max_zones"`
	MinZoneRadius float64 `yaml:"min_zone_radius"`
	MaxZoneRadius float64 `yaml:"max_zone_radius"`
}

// New returns the built-in configuration for a difficulty
func New(d types.Difficulty) Config {
	return Config{
		Grid:                  types.Grid{Width: GridWidth, Height: GridHeight},
		Width:                 GridWidth,
		Height:                GridHeight,
		Difficulty:            d,
		Mode:                  types.Classic,
		Balance:               Preset(d),
		Biomes:                DefaultBiomes(),
		Abilities:             DefaultAbilities(),
		ShieldDuration:        10 * time.Second,
		GhostDuration:         5 * time.Second,
		SlowMotionDuration:    8 * time.Second,
		InvincibilityDuration: 5 * time.Second,
		ImmunityDuration:      8 * time.Second,
		PowerUpInterval:       10 * time.Second,
		PowerUpChance:         0.5,
		PowerUpLifetime:       12 * time.Second,
		MinZones:              3,
		MaxZones:              5,
		MinZoneRadius:         1.5,
		MaxZoneRadius:         3.0,
	}
}

// Load overlays a YAML file onto the preset for d. An empty path returns the preset.
func Load(path string, d types.Difficulty) (Config, error) {
	cfg := New(d)
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, d)
}

// Parse overlays YAML data onto the preset for d
func Parse(data []byte, d types.Difficulty) (Config, error) {
	cfg := New(d)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return New(d), fmt.Errorf("parse config: %w", err)
	}

	// Partially specified biome tables keep the defaults for the rest
	defaults := DefaultBiomes()
	if cfg.Biomes == nil {
		cfg.Biomes = make(map[string]BiomeModifier, len(defaults))
	}
	for name, mod := range defaults {
		if _, ok := cfg.Biomes[name]; !ok {
			cfg.Biomes[name] = mod
		}
	}

	cfg.Grid = types.Grid{Width: cfg.Width, Height: cfg.Height}
	if err := cfg.Validate(); err != nil {
		return New(d), err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run
func (c Config) Validate() error {
	if c.Width < 8 || c.Height < 8 {
		return fmt.Errorf("grid %dx%d is smaller than 8x8", c.Width, c.Height)
	}
	if c.Balance.BaseInterval <= 0 {
		return fmt.Errorf("base interval must be positive")
	}
	if c.Balance.BiomeMinDelay <= 0 || c.Balance.BiomeMaxDelay < c.Balance.BiomeMinDelay {
		return fmt.Errorf("biome delay window %v-%v is invalid", c.Balance.BiomeMinDelay, c.Balance.BiomeMaxDelay)
	}
	if c.MinZones < 0 || c.MaxZones < c.MinZones {
		return fmt.Errorf("zone count %d-%d is invalid", c.MinZones, c.MaxZones)
	}
	return nil
}

// Biome returns the modifier record for b
func (c Config) Biome(b types.Biome) BiomeModifier {
	if mod, ok := c.Biomes[b.String()]; ok {
		return mod
	}
	return BiomeModifier{SpeedFactor: 1.0}
}

// ParseDifficulty maps a name to a Difficulty
func ParseDifficulty(s string) (types.Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return types.Easy, nil
	case "", "normal":
		return types.Normal, nil
	case "hard":
		return types.Hard, nil
	case "extreme":
		return types.Extreme, nil
	}
	return types.Normal, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// ParseMode maps a name to a Mode. Only classic rules are simulated.
func ParseMode(s string) (types.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "classic":
		return types.Classic, nil
	case "time_attack", "survival":
		return types.Classic, fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
	}
	return types.Classic, fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}
