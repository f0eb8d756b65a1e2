// internal/system/combat.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/types"
	"go-td-sim/internal/utils"
)

// CombatSystem управляет атакой башен.
type CombatSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	rules           *config.Rules
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	log             logrus.FieldLogger
}

func NewCombatSystem(ecs *entity.ECS, lib *defs.Library, rules *config.Rules, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, log logrus.FieldLogger) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		lib:             lib,
		rules:           rules,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		log:             log.WithField("component", "combat"),
	}
}

// Shot is one activation of a tower: who fires, at whom, from where.
type Shot struct {
	TowerID  types.EntityID
	TargetID types.EntityID
	Def      defs.TowerDefinition
	Combat   *component.Combat
	X, Y     float64 // центр клетки башни
}

// Update resolves the towers in ascending ID order. Support towers act every
// tick; attackers honour their cooldown and need a live target.
func (s *CombatSystem) Update() {
	for _, towerID := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[towerID]
		combat, hasCombat := s.ecs.Combats[towerID]
		pos, hasPos := s.ecs.Positions[towerID]
		if !hasCombat || !hasPos {
			continue
		}
		def, err := s.lib.Tower(tower.Kind)
		if err != nil {
			continue
		}
		effect := EffectFor(def.Effect)
		shot := Shot{TowerID: towerID, Def: def, Combat: combat, X: pos.X, Y: pos.Y}

		if !def.AcquiresTargets() {
			effect.Apply(s, shot)
			continue
		}

		if combat.Cooldown > 0 {
			combat.Cooldown--
			continue
		}
		if !s.ecs.IsEnemyAlive(tower.TargetID) {
			continue
		}

		shot.TargetID = tower.TargetID
		s.recordTrace(shot)
		effect.Apply(s, shot)
		combat.Cooldown = combat.Interval
	}
}

// hit наносит урон и убирает убитого врага. Returns true on a kill.
func (s *CombatSystem) hit(id types.EntityID, damage float64) bool {
	if !ApplyDamage(s.ecs, id, damage) {
		return false
	}
	return Kill(s.ecs, s.eventDispatcher, id)
}

// recordTrace must run before the effect: the target may be gone afterwards.
func (s *CombatSystem) recordTrace(shot Shot) {
	target, ok := s.ecs.Positions[shot.TargetID]
	if !ok {
		return
	}
	s.ecs.Traces = append(s.ecs.Traces, component.AttackTrace{
		TowerID:  shot.TowerID,
		TargetID: shot.TargetID,
		FromX:    shot.X,
		FromY:    shot.Y,
		ToX:      target.X,
		ToY:      target.Y,
		Effect:   shot.Def.Effect,
	})
}
