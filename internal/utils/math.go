// internal/utils/math.go
package utils

import "math"

// Direction returns the unit vector from (x1, y1) to (x2, y2) and the
// distance between them. A zero distance yields a zero vector instead of
// dividing by zero.
func Direction(x1, y1, x2, y2 float64) (nx, ny, dist float64) {
	dx := x2 - x1
	dy := y2 - y1
	dist = math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return 0, 0, 0
	}
	return dx / dist, dy / dist, dist
}

// ScaleMultiplier returns 1 + growth*(n-1), the per-wave difficulty scalar.
func ScaleMultiplier(growth float64, n int) float64 {
	if n < 1 {
		return 1
	}
	return 1 + growth*float64(n-1)
}
