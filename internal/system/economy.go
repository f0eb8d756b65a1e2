// internal/system/economy.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-td-sim/internal/config"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
)

// EconomySystem ведёт жизни, деньги и очки. Меняет их только в ответ на
// события: одно начисление или одна потерянная жизнь на одно событие.
type EconomySystem struct {
	ecs             *entity.ECS
	rules           *config.Rules
	eventDispatcher *event.Dispatcher
	log             logrus.FieldLogger
	over            bool
}

func NewEconomySystem(ecs *entity.ECS, rules *config.Rules, eventDispatcher *event.Dispatcher, log logrus.FieldLogger) *EconomySystem {
	ecs.Economy.Lives = rules.StartingLives
	ecs.Economy.Money = rules.StartingMoney
	ecs.Economy.Score = 0

	es := &EconomySystem{
		ecs:             ecs,
		rules:           rules,
		eventDispatcher: eventDispatcher,
		log:             log.WithField("component", "economy"),
	}
	eventDispatcher.SubscribeAll(es, event.EnemyKilled, event.EnemyLeaked, event.WaveStarted)
	return es
}

func (s *EconomySystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		data, ok := e.Data.(event.EnemyData)
		if !ok {
			return
		}
		s.ecs.Economy.Money += data.Reward
		s.ecs.Economy.Score += data.Reward

	case event.EnemyLeaked:
		if s.over {
			return
		}
		s.ecs.Economy.Lives--
		if s.ecs.Economy.Lives <= 0 {
			s.ecs.Economy.Lives = 0
			s.over = true
			s.eventDispatcher.Dispatch(event.Event{Type: event.SessionOver})
		}

	case event.WaveStarted:
		data, ok := e.Data.(event.WaveData)
		if ok && data.Number > 1 {
			s.ecs.Economy.Money += s.rules.WaveBonus
		}
	}
}

// CanAfford reports whether cost can be paid.
func (s *EconomySystem) CanAfford(cost int) bool {
	return s.ecs.Economy.Money >= cost
}

// Spend списывает деньги. При нехватке возвращает false и ничего не трогает.
func (s *EconomySystem) Spend(cost int) bool {
	if !s.CanAfford(cost) {
		return false
	}
	s.ecs.Economy.Money -= cost
	return true
}
