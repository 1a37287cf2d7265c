// Package ai steers a snake without a player, for demo and attract mode.
package ai

import (
	"biome-snake/game"
	"biome-snake/game/entity"
	"biome-snake/game/manager"
	"biome-snake/game/types"
)

// Cell scores, from lethal to eating
const (
	scoreDanger  = -1.0
	scoreFarther = -0.3
	scoreCloser  = 0.5
	scoreFood    = 1.0
)

// Autopilot picks a heading each tick from a snapshot: front, left or
// right, whichever scores best on danger, food distance and free room.
type Autopilot struct {
	// Lookahead caps the flood fill used to measure free room
	Lookahead int
}

func NewAutopilot() *Autopilot {
	return &Autopilot{Lookahead: 64}
}

type candidate struct {
	dir   types.Direction
	score float64
	room  int
}

// Next returns the heading to request this tick
func (a *Autopilot) Next(snap game.Snapshot) types.Direction {
	if len(snap.Snake) == 0 {
		return types.None
	}
	blocked := a.blockedCells(snap)
	cur := snap.Direction
	if cur == types.None {
		cur = types.Right
	}

	var best *candidate
	for _, dir := range [3]types.Direction{cur, cur.TurnLeft(), cur.TurnRight()} {
		c := a.evaluate(snap, blocked, dir)
		if best == nil || better(c, *best) {
			cc := c
			best = &cc
		}
	}
	return best.dir
}

// WantsDash reports whether every heading is lethal and a dash would save the snake
func (a *Autopilot) WantsDash(snap game.Snapshot) bool {
	if !snap.Abilities[manager.Dash].Ready() || len(snap.Snake) == 0 {
		return false
	}
	blocked := a.blockedCells(snap)
	cur := snap.Direction
	for _, dir := range [3]types.Direction{cur, cur.TurnLeft(), cur.TurnRight()} {
		next := types.Neighbor(dir, snap.Snake[0])
		if snap.Grid.InBounds(next) && !blocked[next] {
			return false
		}
	}
	return true
}

func better(a, b candidate) bool {
	if a.score == scoreDanger || b.score == scoreDanger {
		return a.score > b.score
	}
	// prefer room when the other choice would trap the snake
	if a.room != b.room && (a.room < 4 || b.room < 4) {
		return a.room > b.room
	}
	return a.score > b.score
}

func (a *Autopilot) evaluate(snap game.Snapshot, blocked map[types.Point]bool, dir types.Direction) candidate {
	head := snap.Snake[0]
	next := types.Neighbor(dir, head)
	c := candidate{dir: dir, score: scoreDanger}
	if !snap.Grid.InBounds(next) || blocked[next] {
		return c
	}
	c.room = a.room(snap.Grid, blocked, next)

	if !snap.HasFood {
		c.score = 0
		return c
	}
	food := snap.Food.Position
	switch {
	case next == food:
		c.score = scoreFood
	case types.Manhattan(next, food) < types.Manhattan(head, food):
		c.score = scoreCloser
	default:
		c.score = scoreFarther
	}
	return c
}

func (a *Autopilot) blockedCells(snap game.Snapshot) map[types.Point]bool {
	blocked := make(map[types.Point]bool, len(snap.Snake)+len(snap.Obstacles))
	// the tail moves away on the next tick
	for _, p := range snap.Snake[:len(snap.Snake)-1] {
		blocked[p] = true
	}
	for _, o := range snap.Obstacles {
		blocked[o.Position] = true
	}
	if len(snap.Zones) > 0 {
		for y := 0; y < snap.Grid.Height; y++ {
			for x := 0; x < snap.Grid.Width; x++ {
				p := types.Point{X: x, Y: y}
				if entity.InAnyZone(p, snap.Zones) {
					blocked[p] = true
				}
			}
		}
	}
	return blocked
}

// room counts free cells reachable from start, up to Lookahead
func (a *Autopilot) room(grid types.Grid, blocked map[types.Point]bool, start types.Point) int {
	seen := map[types.Point]bool{start: true}
	queue := []types.Point{start}
	for len(queue) > 0 && len(seen) < a.Lookahead {
		p := queue[0]
		queue = queue[1:]
		for _, d := range types.Directions {
			n := types.Neighbor(d, p)
			if !grid.InBounds(n) || blocked[n] || seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return len(seen)
}
