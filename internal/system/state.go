// internal/system/state.go
package system

import (
	"context"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"

	"go-td-sim/internal/component"
	"go-td-sim/internal/event"
)

const (
	startWaveEvent   = "start_wave"
	waveSpawnedEvent = "wave_spawned"
	sessionOverEvent = "session_over"
)

// StateSystem ведёт фазу сессии: intermission -> spawning -> intermission
// ... -> over. Переходы запускают события волн и экономики.
type StateSystem struct {
	machine *fsm.FSM
	log     logrus.FieldLogger
}

func NewStateSystem(eventDispatcher *event.Dispatcher, log logrus.FieldLogger) *StateSystem {
	ss := &StateSystem{log: log.WithField("component", "state")}
	intermission := string(component.IntermissionPhase)
	spawning := string(component.SpawningPhase)
	over := string(component.OverPhase)

	ss.machine = fsm.NewFSM(
		intermission,
		fsm.Events{
			{Name: startWaveEvent, Src: []string{intermission}, Dst: spawning},
			{Name: waveSpawnedEvent, Src: []string{spawning}, Dst: intermission},
			{Name: sessionOverEvent, Src: []string{intermission, spawning}, Dst: over},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				ss.log.WithFields(logrus.Fields{"from": e.Src, "to": e.Dst}).Debug("phase changed")
			},
		},
	)
	eventDispatcher.SubscribeAll(ss, event.WaveStarted, event.WaveSpawned, event.SessionOver)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	var name string
	switch e.Type {
	case event.WaveStarted:
		name = startWaveEvent
	case event.WaveSpawned:
		name = waveSpawnedEvent
	case event.SessionOver:
		name = sessionOverEvent
	default:
		return
	}
	if err := s.machine.Event(context.Background(), name); err != nil {
		s.log.WithError(err).WithField("event", name).Warn("phase transition rejected")
	}
}

func (s *StateSystem) Current() component.Phase {
	return component.Phase(s.machine.Current())
}

// Running reports whether the session still accepts ticks and commands.
func (s *StateSystem) Running() bool {
	return !s.machine.Is(string(component.OverPhase))
}
