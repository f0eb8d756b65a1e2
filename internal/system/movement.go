// internal/system/movement.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-td-sim/internal/config"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/types"
	"go-td-sim/internal/utils"
)

// MovementSystem обновляет позиции врагов и обрабатывает утечки.
type MovementSystem struct {
	ecs             *entity.ECS
	rules           *config.Rules
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	log             logrus.FieldLogger
}

func NewMovementSystem(ecs *entity.ECS, rules *config.Rules, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, log logrus.FieldLogger) *MovementSystem {
	return &MovementSystem{
		ecs:             ecs,
		rules:           rules,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		log:             log.WithField("component", "movement"),
	}
}

// Update advances every enemy one tick along its route. Enemies that have
// no waypoints left after moving leak in the same tick.
func (s *MovementSystem) Update() {
	for _, id := range s.ecs.EnemyIDs() {
		// Сессия окончена: остальные враги остаются на месте.
		if s.ecs.Economy.Lives <= 0 {
			return
		}
		route, hasRoute := s.ecs.Routes[id]
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasRoute || !hasPos || !hasVel {
			continue
		}

		if route.Remaining() {
			tx, ty := route.Waypoints[route.NextIndex].Center()
			nx, ny, dist := utils.Direction(pos.X, pos.Y, tx, ty)

			if dist <= vel.Speed {
				pos.X = tx
				pos.Y = ty
				route.NextIndex++
			} else {
				step := vel.Speed * s.rng.Jitter(s.rules.JitterFraction)
				if step > dist {
					step = dist
				}
				pos.X += nx * step
				pos.Y += ny * step
			}
		}

		if !route.Remaining() {
			s.leak(id)
		}
	}
}

func (s *MovementSystem) leak(id types.EntityID) {
	enemy, ok := s.ecs.Enemies[id]
	if !ok {
		return
	}
	data := event.EnemyData{ID: id, Kind: enemy.Kind, Entry: enemy.Entry, Reward: enemy.Reward}
	if !s.ecs.RemoveEnemy(id) {
		return
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: data})
}
