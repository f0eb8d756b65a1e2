// internal/system/aura.go
package system

import (
	"go-td-sim/internal/entity"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/gridmap"
)

// BuffTowersInRange multiplies the damage of every other tower within
// radius of the support tower. The buff compounds every tick and is never
// removed. A positive limit caps the resulting damage; 0 leaves it unbounded.
// Returns how many towers were buffed.
func BuffTowersInRange(ecs *entity.ECS, supportID types.EntityID, radius, factor, limit float64) int {
	origin, ok := ecs.Positions[supportID]
	if !ok {
		return 0
	}
	buffed := 0
	for _, towerID := range ecs.TowerIDs() {
		// Аура не действует на саму себя.
		if towerID == supportID {
			continue
		}
		combat, ok := ecs.Combats[towerID]
		if !ok {
			continue
		}
		pos, ok := ecs.Positions[towerID]
		if !ok || gridmap.Distance(origin.X, origin.Y, pos.X, pos.Y) > radius {
			continue
		}
		combat.Damage *= factor
		if limit > 0 && combat.Damage > limit {
			combat.Damage = limit
		}
		buffed++
	}
	return buffed
}
