// internal/system/targeting.go
package system

import (
	"math"

	"github.com/sirupsen/logrus"

	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/gridmap"
)

// TargetingSystem выбирает цели для башен.
type TargetingSystem struct {
	ecs *entity.ECS
	lib *defs.Library
	log logrus.FieldLogger
}

func NewTargetingSystem(ecs *entity.ECS, lib *defs.Library, log logrus.FieldLogger) *TargetingSystem {
	return &TargetingSystem{ecs: ecs, lib: lib, log: log.WithField("component", "targeting")}
}

func (s *TargetingSystem) Update() {
	for _, towerID := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[towerID]
		combat, ok := s.ecs.Combats[towerID]
		if !ok {
			continue
		}
		def, err := s.lib.Tower(tower.Kind)
		if err != nil {
			s.log.WithError(err).WithField("tower_id", towerID).Warn("tower without definition")
			continue
		}
		if !def.AcquiresTargets() {
			continue
		}

		if s.isValidTarget(towerID, def, combat.Range, tower.TargetID) {
			continue
		}
		tower.TargetID = s.findNearest(towerID, def, combat.Range)
	}
}

// isValidTarget reports whether the tower may keep shooting at targetID.
func (s *TargetingSystem) isValidTarget(towerID types.EntityID, def defs.TowerDefinition, rangeCells float64, targetID types.EntityID) bool {
	if !s.ecs.IsEnemyAlive(targetID) {
		return false
	}
	if !canSee(s.ecs, def, targetID) {
		return false
	}
	d, ok := towerToEnemy(s.ecs, towerID, targetID)
	return ok && d <= rangeCells
}

// findNearest returns the closest visible enemy in range, 0 if none.
// Ties go to the lowest ID.
func (s *TargetingSystem) findNearest(towerID types.EntityID, def defs.TowerDefinition, rangeCells float64) types.EntityID {
	var best types.EntityID
	bestDist := math.MaxFloat64
	for _, enemyID := range s.ecs.EnemyIDs() {
		if !canSee(s.ecs, def, enemyID) {
			continue
		}
		d, ok := towerToEnemy(s.ecs, towerID, enemyID)
		if !ok || d > rangeCells {
			continue
		}
		if d < bestDist {
			best = enemyID
			bestDist = d
		}
	}
	return best
}

// canSee — скрытых врагов видят только башни с обнаружением.
func canSee(ecs *entity.ECS, def defs.TowerDefinition, enemyID types.EntityID) bool {
	if stealth, ok := ecs.Stealths[enemyID]; ok && stealth.Hidden {
		return def.DetectsStealth
	}
	return true
}

func towerToEnemy(ecs *entity.ECS, towerID, enemyID types.EntityID) (float64, bool) {
	towerPos, ok := ecs.Positions[towerID]
	if !ok {
		return 0, false
	}
	enemyPos, ok := ecs.Positions[enemyID]
	if !ok {
		return 0, false
	}
	return gridmap.Distance(towerPos.X, towerPos.Y, enemyPos.X, enemyPos.Y), true
}
