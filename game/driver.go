package game

import (
	"time"

	"biome-snake/game/types"
)

// maxCatchUp bounds the ticks a single Update may run after a stall
const maxCatchUp = 5

// Driver turns real elapsed time into ticks. The interval is read again
// before every tick, so speed changes apply from the next tick on without
// dropping the one in flight.
type Driver struct {
	session *Session
	acc     time.Duration
}

func NewDriver(s *Session) *Driver {
	return &Driver{session: s}
}

// Update accumulates dt and runs every tick that is due. The intent is
// handed to the first tick only; the snake keeps it pending after that.
func (d *Driver) Update(dt time.Duration, intent types.Direction) []TickResult {
	if d.session.State() != Running {
		d.acc = 0
		return nil
	}

	d.acc += dt
	var results []TickResult
	for i := 0; i < maxCatchUp; i++ {
		iv := d.session.TickInterval()
		if d.acc < iv {
			return results
		}
		d.acc -= iv

		res, err := d.session.Advance(intent)
		if err != nil {
			d.acc = 0
			return results
		}
		intent = types.None
		results = append(results, res)
		if d.session.State() != Running {
			d.acc = 0
			return results
		}
	}
	if d.acc >= d.session.TickInterval() {
		// too far behind; drop the backlog
		d.acc = 0
	}
	return results
}
