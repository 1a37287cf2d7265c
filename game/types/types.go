package types

import "math"

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Point is a cell coordinate on the grid
type Point struct {
	X, Y int
}

// InBounds reports whether p lies on the grid
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the middle cell of the grid
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Add translates p by v
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Neighbor returns the cell one step from p in dir
func Neighbor(dir Direction, p Point) Point {
	return p.Add(dir.Vector())
}

// Manhattan returns the grid distance between two cells
func Manhattan(a, b Point) int {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y)
}

// Euclid returns the straight-line distance between a cell and a real-valued centre
func Euclid(p Point, cx, cy float64) float64 {
	dx := float64(p.X) - cx
	dy := float64(p.Y) - cy
	return math.Sqrt(dx*dx + dy*dy)
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func Sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}
