package entity

import "biome-snake/game/types"

// Snake is an ordered chain of cells with the head at index 0
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	// Pending holds a requested heading not yet applied (turn delay)
	Pending types.Direction
	// Growth counts ticks whose tail removal is skipped
	Growth int
}

// NewSnake lays out length cells behind head, opposite to dir
func NewSnake(head types.Point, dir types.Direction, length int) *Snake {
	body := make([]types.Point, 0, length)
	back := dir.Opposite().Vector()
	for i := 0; i < length; i++ {
		body = append(body, types.Point{X: head.X + back.X*i, Y: head.Y + back.Y*i})
	}
	return &Snake{
		Body:      body,
		Direction: dir,
	}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Move prepends the new head
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Contains reports whether p is on the body. When skipTail is set the last
// segment is ignored, since it moves away on a non-growing step.
func (s *Snake) Contains(p types.Point, skipTail bool) bool {
	end := len(s.Body)
	if skipTail {
		end--
	}
	for i := 0; i < end; i++ {
		if s.Body[i] == p {
			return true
		}
	}
	return false
}

// Shrink removes up to n tail segments without going below min
func (s *Snake) Shrink(n, min int) {
	target := len(s.Body) - n
	if target < min {
		target = min
	}
	if target < 1 {
		target = 1
	}
	if target < len(s.Body) {
		s.Body = s.Body[:target]
	}
}

// SetDirection stores dir as the pending heading. 180-degree turns are
// rejected against the heading actually travelled.
func (s *Snake) SetDirection(dir types.Direction) {
	if dir == types.None || dir == s.Direction.Opposite() {
		return
	}
	s.Pending = dir
}

// Clone returns a deep copy
func (s *Snake) Clone() *Snake {
	out := *s
	out.Body = make([]types.Point, len(s.Body))
	copy(out.Body, s.Body)
	return &out
}
