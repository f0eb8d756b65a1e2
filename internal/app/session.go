// internal/app/session.go
package app

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/system"
	"go-td-sim/internal/utils"
	"go-td-sim/pkg/gridmap"
	"go-td-sim/pkg/logger"
)

// Session — одна партия: хранилище сущностей, системы и часы симуляции.
// Сессию ведёт одна горутина, блокировок нет.
type Session struct {
	id    uuid.UUID
	rules config.Rules
	lib   *defs.Library
	paths *gridmap.Library

	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	WaveSystem         *system.WaveSystem
	SpawnSystem        *system.SpawnSystem
	StatusEffectSystem *system.StatusEffectSystem
	MovementSystem     *system.MovementSystem
	TargetingSystem    *system.TargetingSystem
	CombatSystem       *system.CombatSystem
	EconomySystem      *system.EconomySystem
	StateSystem        *system.StateSystem

	log     logrus.FieldLogger
	tick    uint64
	ticking bool
}

type sessionOptions struct {
	seed   int64
	logger logrus.FieldLogger
}

// Option configures NewSession.
type Option func(*sessionOptions)

// WithSeed fixes the random seed. Seed 0 picks one from the clock.
func WithSeed(seed int64) Option {
	return func(o *sessionOptions) { o.seed = seed }
}

// WithLogger replaces the package logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *sessionOptions) { o.logger = l }
}

// NewSession starts a session: wave 0, starting lives and money, running.
// A nil cfg means config.Default().
func NewSession(cfg *config.Config, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	options := sessionOptions{logger: logger.Log}
	for _, opt := range opts {
		opt(&options)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	lib, err := cfg.Library()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	paths, err := cfg.PathLibrary()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	id := uuid.New()
	rng := utils.NewPRNGService(options.seed)
	log := options.logger.WithFields(logrus.Fields{
		"session_id": id.String(),
		"seed":       rng.Seed(),
	})

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	s := &Session{
		id:              id,
		rules:           cfg.Rules,
		lib:             lib,
		paths:           paths,
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Rng:             rng,
		log:             log,
	}

	// Порядок подписки важен: лог первым, чтобы вложенный SessionOver
	// шёл после вызвавшей его утечки; экономика раньше фазового автомата.
	listener := &eventLogger{log: log}
	dispatcher.SubscribeAll(listener,
		event.WaveStarted, event.WaveSpawned, event.EnemyKilled, event.EnemyLeaked,
		event.TowerPlaced, event.TowerUpgraded, event.SessionOver)
	s.EconomySystem = system.NewEconomySystem(ecs, &s.rules, dispatcher, log)
	s.StateSystem = system.NewStateSystem(dispatcher, log)
	s.SpawnSystem = system.NewSpawnSystem(ecs, lib, paths, &s.rules, rng, dispatcher, log)
	s.WaveSystem = system.NewWaveSystem(ecs, lib, &s.rules, s.SpawnSystem, dispatcher, log)
	s.StatusEffectSystem = system.NewStatusEffectSystem(ecs, &s.rules)
	s.MovementSystem = system.NewMovementSystem(ecs, &s.rules, rng, dispatcher, log)
	s.TargetingSystem = system.NewTargetingSystem(ecs, lib, log)
	s.CombatSystem = system.NewCombatSystem(ecs, lib, &s.rules, rng, dispatcher, log)

	log.WithFields(logrus.Fields{
		"lives": ecs.Economy.Lives,
		"money": ecs.Economy.Money,
		"paths": len(paths.Paths()),
	}).Info("session started")
	return s, nil
}

// Tick advances the simulation by one tick. It returns false without doing
// anything when the session is over or when called from inside a tick.
func (s *Session) Tick() bool {
	if s.ticking || !s.Running() {
		return false
	}
	s.ticking = true
	defer func() { s.ticking = false }()

	s.tick++
	s.ECS.Traces = nil

	s.WaveSystem.Update()
	s.StatusEffectSystem.Update()
	system.ReapDead(s.ECS, s.EventDispatcher)
	s.MovementSystem.Update()
	if !s.Running() {
		return true
	}
	s.TargetingSystem.Update()
	s.CombatSystem.Update()
	return true
}

// ID returns the session identifier used in logs.
func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Running() bool { return s.StateSystem.Running() }

func (s *Session) Phase() component.Phase { return s.StateSystem.Current() }

func (s *Session) Lives() int { return s.ECS.Economy.Lives }

func (s *Session) Money() int { return s.ECS.Economy.Money }

func (s *Session) Score() int { return s.ECS.Economy.Score }

func (s *Session) WaveNumber() int { return s.ECS.Wave.Number }

// TickCount returns how many ticks have been simulated.
func (s *Session) TickCount() uint64 { return s.tick }

// Seed returns the seed the session runs with.
func (s *Session) Seed() int64 { return s.Rng.Seed() }

// Paths returns the immutable path library.
func (s *Session) Paths() *gridmap.Library { return s.paths }

// Library returns the archetype tables.
func (s *Session) Library() *defs.Library { return s.lib }

// Rules returns a copy of the balance parameters.
func (s *Session) Rules() config.Rules { return s.rules }
