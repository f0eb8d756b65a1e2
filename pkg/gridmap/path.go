// pkg/gridmap/path.go
package gridmap

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPath is returned for a path without waypoints.
	ErrEmptyPath = errors.New("path has no waypoints")
	// ErrOutOfGrid is returned when a waypoint lies outside the grid.
	ErrOutOfGrid = errors.New("waypoint outside grid")
)

// Path — неизменяемая последовательность точек, по которой идут враги.
type Path struct {
	name      string
	entry     string
	waypoints []Point
	cells     map[Point]struct{}
}

// NewPath validates the waypoints against grid and builds an immutable path.
func NewPath(grid Grid, name, entry string, waypoints []Point) (*Path, error) {
	if len(waypoints) == 0 {
		return nil, fmt.Errorf("path %q: %w", name, ErrEmptyPath)
	}
	for i, wp := range waypoints {
		if !grid.Contains(wp) {
			return nil, fmt.Errorf("path %q waypoint %d (%d,%d): %w", name, i, wp.X, wp.Y, ErrOutOfGrid)
		}
	}

	wps := make([]Point, len(waypoints))
	copy(wps, waypoints)

	p := &Path{
		name:      name,
		entry:     entry,
		waypoints: wps,
		cells:     make(map[Point]struct{}),
	}
	p.rasterize()
	return p, nil
}

// Name returns the path name.
func (p *Path) Name() string { return p.name }

// Entry returns the name of the entry point bound to this path.
func (p *Path) Entry() string { return p.entry }

// Len returns the number of waypoints.
func (p *Path) Len() int { return len(p.waypoints) }

// Waypoints returns a copy of the waypoint sequence.
func (p *Path) Waypoints() []Point {
	out := make([]Point, len(p.waypoints))
	copy(out, p.waypoints)
	return out
}

// Start returns the first waypoint.
func (p *Path) Start() Point { return p.waypoints[0] }

// End returns the last waypoint.
func (p *Path) End() Point { return p.waypoints[len(p.waypoints)-1] }

// Covers reports whether the polyline passes through cell c.
func (p *Path) Covers(c Point) bool {
	_, ok := p.cells[c]
	return ok
}

// Cells returns every cell the polyline passes through, in walking order
// without duplicates.
func (p *Path) Cells() []Point {
	out := make([]Point, 0, len(p.cells))
	seen := make(map[Point]struct{}, len(p.cells))
	p.walk(func(c Point) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	})
	return out
}

func (p *Path) rasterize() {
	p.walk(func(c Point) {
		p.cells[c] = struct{}{}
	})
}

// walk visits every cell along every segment, including both endpoints.
func (p *Path) walk(visit func(Point)) {
	visit(p.waypoints[0])
	for i := 1; i < len(p.waypoints); i++ {
		a, b := p.waypoints[i-1], p.waypoints[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		steps := max(abs(dx), abs(dy))
		for s := 1; s <= steps; s++ {
			t := float64(s) / float64(steps)
			visit(CellAt(float64(a.X)+float64(dx)*t, float64(a.Y)+float64(dy)*t))
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
