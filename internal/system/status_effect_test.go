package system

import (
	"testing"

	"go-td-sim/internal/component"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/event"
)

func TestHealNeverExceedsMax(t *testing.T) {
	w := newWorld(t)
	healer := w.addEnemy(defs.EnemyHealer, 1, 1, 60, 20)
	w.ecs.HealAuras[healer] = &component.HealAura{}
	hurt := w.addEnemy(defs.EnemyNormal, 2, 1, 50, 10)
	w.ecs.Healths[hurt].Current = 48
	full := w.addEnemy(defs.EnemyNormal, 3, 1, 50, 10)
	w.ecs.Healths[healer].Current = 10

	NewStatusEffectSystem(w.ecs, &w.rules).Update()

	if got := w.ecs.Healths[hurt].Current; got != 50 {
		t.Errorf("hurt enemy health = %v, want clamped 50", got)
	}
	if got := w.ecs.Healths[full].Current; got != 50 {
		t.Errorf("full enemy health = %v, want 50", got)
	}
	if got := w.ecs.Healths[healer].Current; got != 10 {
		t.Errorf("healer healed itself: %v", got)
	}
	if got := w.ecs.HealAuras[healer].Cooldown; got != w.rules.HealCooldown-1 {
		t.Errorf("cooldown = %d, want %d", got, w.rules.HealCooldown-1)
	}
}

func TestHealCooldownPeriod(t *testing.T) {
	w := newWorld(t)
	w.rules.HealCooldown = 3
	healer := w.addEnemy(defs.EnemyHealer, 1, 1, 60, 20)
	w.ecs.HealAuras[healer] = &component.HealAura{}
	hurt := w.addEnemy(defs.EnemyTank, 2, 1, 1000, 10)
	w.ecs.Healths[hurt].Current = 1

	sys := NewStatusEffectSystem(w.ecs, &w.rules)
	for i := 0; i < 7; i++ {
		sys.Update()
	}
	// Лечение на тиках 1, 4 и 7.
	want := 1 + 3*w.rules.HealAmount
	if got := w.ecs.Healths[hurt].Current; got != want {
		t.Errorf("health after 7 ticks = %v, want %v", got, want)
	}
}

func TestFreezeLastsOneTick(t *testing.T) {
	w := newWorld(t)
	id := w.addEnemy(defs.EnemyNormal, 1, 1, 50, 10)
	w.ecs.Velocities[id].Base = 0.05
	w.ecs.FreezeEffects[id] = &component.FreezeEffect{}
	sys := NewStatusEffectSystem(w.ecs, &w.rules)

	sys.Update()
	if got := w.ecs.Velocities[id].Speed; got != 0 {
		t.Fatalf("frozen speed = %v, want 0", got)
	}
	sys.Update()
	if got := w.ecs.Velocities[id].Speed; got != 0.05 {
		t.Errorf("speed after thaw = %v, want base 0.05", got)
	}
}

func TestSlowDecays(t *testing.T) {
	w := newWorld(t)
	id := w.addEnemy(defs.EnemyNormal, 1, 1, 50, 10)
	w.ecs.Velocities[id].Base = 0.1
	w.ecs.SlowEffects[id] = &component.SlowEffect{TicksLeft: 2, SlowFactor: 0.5}
	sys := NewStatusEffectSystem(w.ecs, &w.rules)

	sys.Update()
	sys.Update()
	if got := w.ecs.Velocities[id].Speed; got != 0.05 {
		t.Errorf("slowed speed = %v, want 0.05", got)
	}
	if _, ok := w.ecs.SlowEffects[id]; ok {
		t.Error("slow should have expired")
	}
	sys.Update()
	if got := w.ecs.Velocities[id].Speed; got != 0.1 {
		t.Errorf("speed after slow = %v, want 0.1", got)
	}
}

func TestPoisonKillIsCreditedOnce(t *testing.T) {
	w := newWorld(t)
	id := w.addEnemy(defs.EnemyNormal, 1, 1, 2, 10)
	w.ecs.PoisonEffects[id] = &component.PoisonEffect{TicksLeft: 5, DamagePerTick: 1.5}
	sys := NewStatusEffectSystem(w.ecs, &w.rules)
	money := w.ecs.Economy.Money

	sys.Update()
	ReapDead(w.ecs, w.dispatcher)
	if !w.ecs.IsEnemyAlive(id) {
		t.Fatal("enemy died after one poison tick")
	}
	sys.Update()
	if n := ReapDead(w.ecs, w.dispatcher); n != 1 {
		t.Fatalf("reaped %d, want 1", n)
	}
	if n := ReapDead(w.ecs, w.dispatcher); n != 0 {
		t.Errorf("second reap removed %d", n)
	}
	if got := w.ecs.Economy.Money - money; got != 10 {
		t.Errorf("money gained %d, want 10", got)
	}
	if got := w.count(event.EnemyKilled); got != 1 {
		t.Errorf("EnemyKilled dispatched %d times", got)
	}
}

func TestStealthToggles(t *testing.T) {
	w := newWorld(t)
	id := w.addEnemy(defs.EnemyStealth, 1, 1, 45, 18)
	w.ecs.Stealths[id] = &component.Stealth{}
	sys := NewStatusEffectSystem(w.ecs, &w.rules)

	for i, want := range []bool{true, false, true} {
		sys.Update()
		if got := w.ecs.Stealths[id].Hidden; got != want {
			t.Errorf("tick %d: hidden = %v, want %v", i+1, got, want)
		}
	}
}
