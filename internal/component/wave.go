// internal/component/wave.go
package component

import "go-td-sim/internal/defs"

// Wave — состояние текущей волны.
type Wave struct {
	Number  int
	Target  int // enemies this wave should spawn
	Spawned int // spawned so far, escorts included

	SpawnTimer    int
	SpawnInterval int
	Timer         int // ticks since the wave started
	Interval      int

	Pool             []defs.EnemyKind
	HealthMultiplier float64
	SpeedMultiplier  float64
	RewardMultiplier float64
}

// Exhausted reports whether the wave has spawned its whole budget.
func (w *Wave) Exhausted() bool {
	return w.Spawned >= w.Target
}
