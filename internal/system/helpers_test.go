package system

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/types"
	"go-td-sim/internal/utils"
	"go-td-sim/pkg/gridmap"
)

type world struct {
	ecs        *entity.ECS
	lib        *defs.Library
	paths      *gridmap.Library
	rules      config.Rules
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	log        logrus.FieldLogger
	economy    *EconomySystem
	events     []event.Event
}

func newWorld(t *testing.T) *world {
	t.Helper()
	cfg := config.Default()
	paths, err := cfg.PathLibrary()
	if err != nil {
		t.Fatalf("path library: %v", err)
	}
	lib, err := cfg.Library()
	if err != nil {
		t.Fatalf("library: %v", err)
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	w := &world{
		ecs:        entity.NewECS(),
		lib:        lib,
		paths:      paths,
		rules:      cfg.Rules,
		rng:        utils.NewPRNGService(42),
		dispatcher: event.NewDispatcher(),
		log:        logger,
	}
	w.economy = NewEconomySystem(w.ecs, &w.rules, w.dispatcher, w.log)
	w.dispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		w.events = append(w.events, e)
	}), event.EnemyKilled, event.EnemyLeaked, event.EnemySpawned, event.WaveStarted, event.WaveSpawned, event.SessionOver)
	return w
}

func (w *world) count(t event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// addEnemy places a stationary enemy at (x, y) with a one-step route.
func (w *world) addEnemy(kind defs.EnemyKind, x, y, health float64, reward int) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Velocities[id] = &component.Velocity{}
	w.ecs.Routes[id] = &component.Route{
		PathName:  "test",
		Waypoints: []gridmap.Point{{X: int(x), Y: int(y)}, {X: int(x) + 50, Y: int(y)}},
		NextIndex: 1,
	}
	w.ecs.Healths[id] = &component.Health{Current: health, Max: health}
	w.ecs.Enemies[id] = &component.Enemy{Kind: kind, Entry: "west", Reward: reward}
	return id
}

func (w *world) addTower(kind defs.TowerKind, x, y int) types.EntityID {
	def, _ := w.lib.Tower(kind)
	id := w.ecs.NewEntity()
	w.ecs.Towers[id] = &component.Tower{Kind: kind, Cell: gridmap.Point{X: x, Y: y}, Level: 1, UpgradeCostScale: w.rules.UpgradeCostScale}
	w.ecs.Combats[id] = &component.Combat{Damage: def.Damage, Range: def.Range, Interval: def.Cooldown}
	cx, cy := gridmap.Point{X: x, Y: y}.Center()
	w.ecs.Positions[id] = &component.Position{X: cx, Y: cy}
	return id
}

func (w *world) combat() *CombatSystem {
	return NewCombatSystem(w.ecs, w.lib, &w.rules, w.rng, w.dispatcher, w.log)
}

func (w *world) targeting() *TargetingSystem {
	return NewTargetingSystem(w.ecs, w.lib, w.log)
}
