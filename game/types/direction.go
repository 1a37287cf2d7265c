package types

// Direction is a cardinal heading
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

var directionNames = [...]string{"none", "up", "right", "down", "left"}

// Directions lists the four cardinal headings in clockwise order
var Directions = [4]Direction{Up, Right, Down, Left}

func (d Direction) String() string {
	if d < None || d > Left {
		return "invalid"
	}
	return directionNames[d]
}

// Vector converts a Direction into a unit displacement
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the reversed heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

// TurnLeft rotates the heading counter-clockwise
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight rotates the heading clockwise
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

// Toward returns the heading that reduces the distance from a to b,
// preferring the x axis. Returns None when a == b.
func Toward(a, b Point) Direction {
	switch {
	case b.X > a.X:
		return Right
	case b.X < a.X:
		return Left
	case b.Y > a.Y:
		return Down
	case b.Y < a.Y:
		return Up
	}
	return None
}

// Away returns the heading that increases the distance from b, x axis first.
func Away(a, b Point) Direction {
	switch {
	case a.X > b.X:
		return Right
	case a.X < b.X:
		return Left
	case a.Y > b.Y:
		return Down
	case a.Y < b.Y:
		return Up
	}
	return None
}
