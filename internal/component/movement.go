// internal/component/movement.go
package component

import "go-td-sim/pkg/gridmap"

// Position — компонент позиции (в единицах сетки).
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости. Base задаётся при спавне, Speed
// пересчитывается каждый тик с учётом эффектов.
type Velocity struct {
	Base  float64
	Speed float64
}

// Route — маршрут врага: имя пути и точки, по которым он идёт.
type Route struct {
	PathName  string
	Waypoints []gridmap.Point
	NextIndex int
}

// Remaining reports whether the enemy still has waypoints ahead.
func (r *Route) Remaining() bool {
	return r.NextIndex < len(r.Waypoints)
}
