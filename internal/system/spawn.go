// internal/system/spawn.go
package system

import (
	"math"

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

// SpawnSystem создаёт врагов на входах карты.
type SpawnSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	paths           *gridmap.Library
	rules           *config.Rules
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	log             logrus.FieldLogger
}

func NewSpawnSystem(ecs *entity.ECS, lib *defs.Library, paths *gridmap.Library, rules *config.Rules, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, log logrus.FieldLogger) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		lib:             lib,
		paths:           paths,
		rules:           rules,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		log:             log.WithField("component", "spawn"),
	}
}

// SpawnNext spawns the next enemy of the wave, plus escorts for a healer.
// Escorts count against the wave budget, so Spawned may overshoot Target.
func (s *SpawnSystem) SpawnNext(wave *component.Wave) {
	kind := s.chooseKind(wave)
	path, ok := s.paths.ByEntry(utils.Pick(s.rng, s.paths.Entries()))
	if !ok {
		return
	}

	s.Spawn(kind, path, wave)
	wave.Spawned++

	def, err := s.lib.Enemy(kind)
	if err != nil || !def.HealsOthers {
		return
	}
	for i := 0; i < s.rules.EscortCount; i++ {
		s.Spawn(defs.EnemySwarm, path, wave)
		wave.Spawned++
	}
}

func (s *SpawnSystem) chooseKind(wave *component.Wave) defs.EnemyKind {
	if wave.Number > s.rules.BossMinWave && s.rng.Chance(s.rules.BossChance) {
		return defs.EnemyBoss
	}
	if len(wave.Pool) == 0 {
		return defs.EnemyNormal
	}
	return utils.Pick(s.rng, wave.Pool)
}

// Spawn creates one enemy at the start of path with the wave's stats.
// Returns 0 when the kind has no definition.
func (s *SpawnSystem) Spawn(kind defs.EnemyKind, path *gridmap.Path, wave *component.Wave) types.EntityID {
	def, err := s.lib.Enemy(kind)
	if err != nil {
		s.log.WithError(err).Warn("cannot spawn enemy")
		return 0
	}

	waypoints := path.Waypoints()
	if def.IgnoresTerrain {
		// Летающие идут напрямую от входа к выходу.
		waypoints = []gridmap.Point{path.Start(), path.End()}
	}
	x, y := waypoints[0].Center()
	health := def.Health * wave.HealthMultiplier
	speed := def.Speed * wave.SpeedMultiplier

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Base: speed, Speed: speed}
	s.ecs.Routes[id] = &component.Route{PathName: path.Name(), Waypoints: waypoints, NextIndex: 1}
	s.ecs.Healths[id] = &component.Health{Current: health, Max: health}
	s.ecs.Enemies[id] = &component.Enemy{
		Kind:   kind,
		Entry:  path.Entry(),
		Reward: int(math.Round(float64(def.Reward) * wave.RewardMultiplier)),
	}
	if def.StealthCapable {
		s.ecs.Stealths[id] = &component.Stealth{}
	}
	if def.HealsOthers {
		s.ecs.HealAuras[id] = &component.HealAura{Cooldown: s.rules.HealCooldown}
	}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{ID: id, Kind: kind, Entry: path.Entry(), Reward: s.ecs.Enemies[id].Reward},
	})
	return id
}
