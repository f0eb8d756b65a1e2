package system

import (
	"testing"

	"go-td-sim/internal/component"
	"go-td-sim/internal/defs"
)

func TestTargetingPicksNearestLowestID(t *testing.T) {
	w := newWorld(t)
	tower := w.addTower(defs.TowerArrow, 5, 5)
	far := w.addEnemy(defs.EnemyNormal, 7, 5, 50, 10)
	tieA := w.addEnemy(defs.EnemyNormal, 6, 5, 50, 10)
	tieB := w.addEnemy(defs.EnemyNormal, 4, 5, 50, 10)
	_ = w.addEnemy(defs.EnemyNormal, 15, 5, 50, 10)

	sys := w.targeting()
	sys.Update()
	if got := w.ecs.Towers[tower].TargetID; got != tieA {
		t.Fatalf("target = %d, want %d (nearest, lowest id)", got, tieA)
	}

	// Цель сохраняется, пока она валидна, даже если появился кто-то ближе.
	w.ecs.Positions[tieA].X = 7.5
	sys.Update()
	if got := w.ecs.Towers[tower].TargetID; got != tieA {
		t.Errorf("target switched to %d while still valid", got)
	}

	w.ecs.RemoveEnemy(tieA)
	sys.Update()
	if got := w.ecs.Towers[tower].TargetID; got != tieB {
		t.Errorf("after removal target = %d, want %d", got, tieB)
	}
	_ = far
}

func TestTargetingRespectsRangeAndStealth(t *testing.T) {
	tests := []struct {
		name   string
		tower  defs.TowerKind
		hidden bool
		x      float64
		want   bool
	}{
		{"in range", defs.TowerArrow, false, 7, true},
		{"out of range", defs.TowerArrow, false, 9, false},
		{"hidden from arrow", defs.TowerArrow, true, 7, false},
		{"sniper sees hidden", defs.TowerSniper, true, 7, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t)
			tower := w.addTower(tt.tower, 5, 5)
			enemy := w.addEnemy(defs.EnemyStealth, tt.x, 5, 45, 18)
			w.ecs.Stealths[enemy] = &component.Stealth{Hidden: tt.hidden}

			w.targeting().Update()

			got := w.ecs.Towers[tower].TargetID == enemy
			if got != tt.want {
				t.Errorf("targeted = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSupportTowersDoNotTarget(t *testing.T) {
	w := newWorld(t)
	support := w.addTower(defs.TowerSupport, 5, 5)
	w.addEnemy(defs.EnemyNormal, 6, 5, 50, 10)

	w.targeting().Update()
	if got := w.ecs.Towers[support].TargetID; got != 0 {
		t.Errorf("support tower acquired target %d", got)
	}
}
