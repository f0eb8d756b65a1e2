// internal/system/effects.go
package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/gridmap"
)

// Effect — поведение выстрела башни. Набор вариантов закрыт,
// EffectFor выбирает его по определению башни.
type Effect interface {
	Apply(s *CombatSystem, shot Shot)
}

type (
	directEffect   struct{}
	splashEffect   struct{}
	slowEffect     struct{}
	freezeEffect   struct{}
	poisonEffect   struct{}
	criticalEffect struct{}
	buffEffect     struct{}
)

// EffectFor maps an effect kind to its behaviour. Pierce and unknown kinds
// deal plain damage.
func EffectFor(kind defs.EffectKind) Effect {
	switch kind {
	case defs.EffectSplash:
		return splashEffect{}
	case defs.EffectSlow:
		return slowEffect{}
	case defs.EffectFreeze:
		return freezeEffect{}
	case defs.EffectPoison:
		return poisonEffect{}
	case defs.EffectCritical:
		return criticalEffect{}
	case defs.EffectBuff:
		return buffEffect{}
	default:
		return directEffect{}
	}
}

func (directEffect) Apply(s *CombatSystem, shot Shot) {
	s.hit(shot.TargetID, shot.Combat.Damage)
}

// Apply hits the target and everything within the splash radius of it.
// Victims are collected before any damage so each is hit once.
func (splashEffect) Apply(s *CombatSystem, shot Shot) {
	center, ok := s.ecs.Positions[shot.TargetID]
	if !ok {
		return
	}
	cx, cy := center.X, center.Y

	victims := []types.EntityID{shot.TargetID}
	for _, id := range s.ecs.EnemyIDs() {
		if id == shot.TargetID {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if gridmap.Distance(cx, cy, pos.X, pos.Y) <= s.rules.SplashRadius {
			victims = append(victims, id)
		}
	}
	for _, id := range victims {
		s.hit(id, shot.Combat.Damage)
	}
}

func (slowEffect) Apply(s *CombatSystem, shot Shot) {
	if s.hit(shot.TargetID, shot.Combat.Damage) {
		return
	}
	s.ecs.SlowEffects[shot.TargetID] = &component.SlowEffect{
		TicksLeft:  s.rules.SlowDuration,
		SlowFactor: s.rules.SlowFactor,
	}
}

func (freezeEffect) Apply(s *CombatSystem, shot Shot) {
	if s.hit(shot.TargetID, shot.Combat.Damage) {
		return
	}
	s.ecs.FreezeEffects[shot.TargetID] = &component.FreezeEffect{}
}

// Apply refreshes the poison instead of stacking a second one.
func (poisonEffect) Apply(s *CombatSystem, shot Shot) {
	if s.hit(shot.TargetID, shot.Combat.Damage) {
		return
	}
	s.ecs.PoisonEffects[shot.TargetID] = &component.PoisonEffect{
		TicksLeft:     s.rules.PoisonDuration,
		DamagePerTick: s.rules.PoisonDamage,
	}
}

func (criticalEffect) Apply(s *CombatSystem, shot Shot) {
	damage := shot.Combat.Damage
	if s.rng.Chance(s.rules.CritChance) {
		damage *= s.rules.CritMultiplier
	}
	s.hit(shot.TargetID, damage)
}

func (buffEffect) Apply(s *CombatSystem, shot Shot) {
	BuffTowersInRange(s.ecs, shot.TowerID, shot.Combat.Range, s.rules.SupportBuffFactor, s.rules.SupportBuffCap)
}
