// internal/system/status_effect.go
package system

import (
	"go-td-sim/internal/config"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/types"
)

// StatusEffectSystem управляет жизненным циклом эффектов: заморозка,
// замедление, яд, лечение и невидимость. Выполняется до движения:
// посчитанная здесь скорость и есть скорость врага в этом тике.
type StatusEffectSystem struct {
	ecs   *entity.ECS
	rules *config.Rules
}

func NewStatusEffectSystem(ecs *entity.ECS, rules *config.Rules) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, rules: rules}
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update() {
	for _, id := range s.ecs.EnemyIDs() {
		// Шаг 1: скорость на этот тик (замедление, заморозка)
		s.updateSpeed(id)
		// Шаг 2: урон от яда
		s.applyPoison(id)
		// Шаг 3: лечение соседей
		s.applyHealAura(id)

		// Шаг 4: переключение невидимости
		if stealth, ok := s.ecs.Stealths[id]; ok {
			stealth.Hidden = !stealth.Hidden
		}
	}
}

func (s *StatusEffectSystem) updateSpeed(id types.EntityID) {
	vel, ok := s.ecs.Velocities[id]
	if !ok {
		return
	}
	speed := vel.Base

	if slow, isSlowed := s.ecs.SlowEffects[id]; isSlowed {
		speed *= slow.SlowFactor
		slow.TicksLeft--
		if slow.TicksLeft <= 0 {
			delete(s.ecs.SlowEffects, id)
		}
	}

	// Заморозка действует ровно один тик.
	if _, frozen := s.ecs.FreezeEffects[id]; frozen {
		speed = 0
		delete(s.ecs.FreezeEffects, id)
	}

	vel.Speed = speed
}

func (s *StatusEffectSystem) applyPoison(id types.EntityID) {
	poison, ok := s.ecs.PoisonEffects[id]
	if !ok {
		return
	}
	ApplyDamage(s.ecs, id, poison.DamagePerTick)
	poison.TicksLeft--
	if poison.TicksLeft <= 0 {
		delete(s.ecs.PoisonEffects, id)
	}
}

func (s *StatusEffectSystem) applyHealAura(healerID types.EntityID) {
	aura, ok := s.ecs.HealAuras[healerID]
	if !ok {
		return
	}
	if self, ok := s.ecs.Healths[healerID]; ok && self.Dead() {
		return
	}

	if aura.Cooldown <= 0 {
		for _, id := range s.ecs.EnemyIDs() {
			if id == healerID {
				continue
			}
			health, ok := s.ecs.Healths[id]
			if !ok || health.Dead() || health.Current >= health.Max {
				continue
			}
			health.Heal(s.rules.HealAmount)
		}
		aura.Cooldown = s.rules.HealCooldown
	}
	aura.Cooldown--
}
