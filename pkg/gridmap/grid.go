// pkg/gridmap/grid.go
package gridmap

import "math"

// Point is a cell on the square grid.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Center returns the continuous coordinates of the cell centre.
// Cell (x, y) is centred at (x, y): waypoints and positions share one space.
func (p Point) Center() (float64, float64) {
	return float64(p.X), float64(p.Y)
}

// Grid описывает размеры игрового поля в клетках.
type Grid struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
}

// Distance is the Euclidean distance between two continuous positions.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// CellAt returns the cell containing the continuous position (x, y).
func CellAt(x, y float64) Point {
	return Point{X: int(math.Round(x)), Y: int(math.Round(y))}
}
