// internal/system/wave.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/utils"
)

// WaveSystem решает, когда начинается следующая волна, и выпускает врагов
// текущей волны через SpawnSystem.
type WaveSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	rules           *config.Rules
	spawner         *SpawnSystem
	eventDispatcher *event.Dispatcher
	log             logrus.FieldLogger
}

func NewWaveSystem(ecs *entity.ECS, lib *defs.Library, rules *config.Rules, spawner *SpawnSystem, eventDispatcher *event.Dispatcher, log logrus.FieldLogger) *WaveSystem {
	// Волна 0: пустой бюджет, таймер до первой волны уже идёт.
	*ecs.Wave = component.Wave{
		SpawnInterval:    rules.SpawnInterval,
		Interval:         rules.WaveInterval,
		HealthMultiplier: 1,
		SpeedMultiplier:  1,
		RewardMultiplier: 1,
	}
	return &WaveSystem{
		ecs:             ecs,
		lib:             lib,
		rules:           rules,
		spawner:         spawner,
		eventDispatcher: eventDispatcher,
		log:             log.WithField("component", "wave"),
	}
}

func (s *WaveSystem) Update() {
	wave := s.ecs.Wave
	wave.Timer++

	if wave.Exhausted() && s.ecs.EnemyCount() == 0 && wave.Timer >= wave.Interval {
		s.StartWave(wave.Number + 1)
	}

	if wave.Exhausted() {
		return
	}
	wave.SpawnTimer++
	if wave.SpawnTimer < wave.SpawnInterval {
		return
	}
	wave.SpawnTimer = 0
	s.spawner.SpawnNext(wave)

	if wave.Exhausted() {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveSpawned,
			Data: event.WaveData{Number: wave.Number, Target: wave.Target},
		})
	}
}

// StartWave resets the wave state for wave n. The first enemy comes out
// on the same tick.
func (s *WaveSystem) StartWave(n int) {
	tier := s.lib.TierFor(n)
	pool := make([]defs.EnemyKind, len(tier.Pool))
	copy(pool, tier.Pool)

	*s.ecs.Wave = component.Wave{
		Number:           n,
		Target:           tier.Count,
		SpawnInterval:    s.rules.SpawnInterval,
		SpawnTimer:       s.rules.SpawnInterval - 1,
		Interval:         s.rules.WaveInterval,
		Pool:             pool,
		HealthMultiplier: utils.ScaleMultiplier(s.rules.HealthGrowthPerWave, n),
		SpeedMultiplier:  utils.ScaleMultiplier(s.rules.SpeedGrowthPerWave, n),
		RewardMultiplier: utils.ScaleMultiplier(s.rules.RewardGrowthPerWave, n),
	}

	s.log.WithFields(logrus.Fields{
		"wave":   n,
		"target": tier.Count,
		"health": s.ecs.Wave.HealthMultiplier,
	}).Debug("wave prepared")

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Number: n, Target: tier.Count},
	})
}
