package entity

import (
	"time"

	"biome-snake/game/types"
)

// PowerUpKind enumerates collectible effects
type PowerUpKind int

const (
	PowerGrowth PowerUpKind = iota
	PowerShrink
	PowerBomb
	PowerShield
	PowerSlowMotion
	PowerGhost
)

// PowerUpKinds lists every collectible kind
var PowerUpKinds = [6]PowerUpKind{PowerGrowth, PowerShrink, PowerBomb, PowerShield, PowerSlowMotion, PowerGhost}

var powerUpNames = [...]string{"growth", "shrink", "bomb", "shield", "slow_motion", "ghost"}

func (k PowerUpKind) String() string {
	if k < PowerGrowth || k > PowerGhost {
		return "unknown"
	}
	return powerUpNames[k]
}

// Timed reports whether the kind registers an expiry rather than applying instantly
func (k PowerUpKind) Timed() bool {
	return k == PowerShield || k == PowerSlowMotion || k == PowerGhost
}

// PowerUp is a pickup lying on the grid until ExpiresAt
type PowerUp struct {
	Position  types.Point
	Kind      PowerUpKind
	ExpiresAt time.Duration
}
