package entity

import "biome-snake/game/types"

// HazardTolerance scales the radius used for membership tests
const HazardTolerance = 0.8

// HazardZone is a circular toxic cloud. Radius oscillates around BaseRadius.
type HazardZone struct {
	CX, CY     float64
	Radius     float64
	BaseRadius float64
	// Phase offsets the noise sample so zones do not pulse in unison
	Phase float64
}

// Contains reports whether cell p is inside the lethal part of the zone
func (z HazardZone) Contains(p types.Point) bool {
	return types.Euclid(p, z.CX, z.CY) < z.Radius*HazardTolerance
}

// InAnyZone reports whether p is inside any of zones
func InAnyZone(p types.Point, zones []HazardZone) bool {
	for _, z := range zones {
		if z.Contains(p) {
			return true
		}
	}
	return false
}
