package game

// State is the session lifecycle
type State int

const (
	Idle State = iota
	Running
	Paused
	LevelingUp
	GameOver
)

var stateNames = [...]string{"idle", "running", "paused", "leveling_up", "game_over"}

func (s State) String() string {
	if s < Idle || s > GameOver {
		return "unknown"
	}
	return stateNames[s]
}
