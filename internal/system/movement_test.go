package system

import (
	"testing"

	"go-td-sim/internal/defs"
	"go-td-sim/internal/event"
	"go-td-sim/pkg/gridmap"
)

func TestMovementSnapsAndAdvances(t *testing.T) {
	w := newWorld(t)
	w.rules.JitterFraction = 0
	id := w.addEnemy(defs.EnemyNormal, 0, 0, 50, 10)
	route := w.ecs.Routes[id]
	route.Waypoints = []gridmap.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 5}}
	w.ecs.Velocities[id].Speed = 0.4

	sys := NewMovementSystem(w.ecs, &w.rules, w.rng, w.dispatcher, w.log)
	sys.Update()
	sys.Update()
	if pos := w.ecs.Positions[id]; pos.X != 0.8 || pos.Y != 0 {
		t.Fatalf("position after 2 ticks = (%v, %v), want (0.8, 0)", pos.X, pos.Y)
	}
	sys.Update()
	if pos := w.ecs.Positions[id]; pos.X != 1 || pos.Y != 0 || route.NextIndex != 2 {
		t.Fatalf("expected snap to (1,0) and index 2, got (%v,%v) idx %d", pos.X, pos.Y, route.NextIndex)
	}
}

func TestJitterStaysInBounds(t *testing.T) {
	w := newWorld(t)
	id := w.addEnemy(defs.EnemyNormal, 0, 0, 50, 10)
	w.ecs.Routes[id].Waypoints = []gridmap.Point{{X: 0, Y: 0}, {X: 19, Y: 0}}
	w.ecs.Velocities[id].Speed = 0.1

	sys := NewMovementSystem(w.ecs, &w.rules, w.rng, w.dispatcher, w.log)
	prev := 0.0
	for i := 0; i < 50; i++ {
		sys.Update()
		x := w.ecs.Positions[id].X
		step := x - prev
		if step < 0.09-1e-9 || step > 0.11+1e-9 {
			t.Fatalf("tick %d: step %v outside [0.09, 0.11]", i, step)
		}
		prev = x
	}
}

func TestLeakRemovesOnceAndCostsOneLife(t *testing.T) {
	w := newWorld(t)
	id := w.addEnemy(defs.EnemyNormal, 0, 0, 50, 10)
	w.ecs.Routes[id].Waypoints = []gridmap.Point{{X: 0, Y: 0}, {X: 0, Y: 0}}
	lives := w.ecs.Economy.Lives

	sys := NewMovementSystem(w.ecs, &w.rules, w.rng, w.dispatcher, w.log)
	sys.Update()
	sys.Update()

	if w.ecs.IsEnemyAlive(id) {
		t.Fatal("enemy at its last waypoint should have leaked")
	}
	if got := lives - w.ecs.Economy.Lives; got != 1 {
		t.Errorf("lost %d lives, want 1", got)
	}
	if got := w.count(event.EnemyLeaked); got != 1 {
		t.Errorf("EnemyLeaked dispatched %d times", got)
	}
}

func TestLastLifeEndsSession(t *testing.T) {
	w := newWorld(t)
	w.ecs.Economy.Lives = 1
	for i := 0; i < 3; i++ {
		id := w.addEnemy(defs.EnemyNormal, 0, 0, 50, 10)
		w.ecs.Routes[id].Waypoints = []gridmap.Point{{X: 0, Y: 0}}
	}

	NewMovementSystem(w.ecs, &w.rules, w.rng, w.dispatcher, w.log).Update()

	if got := w.count(event.SessionOver); got != 1 {
		t.Errorf("SessionOver dispatched %d times, want 1", got)
	}
	if w.ecs.Economy.Lives != 0 {
		t.Errorf("lives = %d, want 0", w.ecs.Economy.Lives)
	}
	if got := w.ecs.EnemyCount(); got != 2 {
		t.Errorf("%d enemies left, want 2 frozen in place", got)
	}
}
