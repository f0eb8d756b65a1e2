// internal/system/utils.go
package system

import (
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/types"
)

// ApplyDamage наносит урон врагу, но не удаляет его: это делает Kill.
// Возвращает true, если враг мёртв.
func ApplyDamage(ecs *entity.ECS, id types.EntityID, damage float64) bool {
	health, ok := ecs.Healths[id]
	if !ok {
		return false
	}
	if damage > 0 {
		health.Current -= damage
	}
	return health.Dead()
}

// Kill removes a dead enemy and announces its reward. The store's presence
// check makes the reward exactly-once even when several hits land on the
// same enemy in one tick.
func Kill(ecs *entity.ECS, dispatcher *event.Dispatcher, id types.EntityID) bool {
	enemy, ok := ecs.Enemies[id]
	if !ok {
		return false
	}
	data := event.EnemyData{ID: id, Kind: enemy.Kind, Entry: enemy.Entry, Reward: enemy.Reward}
	if !ecs.RemoveEnemy(id) {
		return false
	}
	dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
	return true
}

// ReapDead removes every enemy whose health dropped to zero outside of
// combat (poison), crediting rewards like a tower kill.
func ReapDead(ecs *entity.ECS, dispatcher *event.Dispatcher) int {
	reaped := 0
	for _, id := range ecs.EnemyIDs() {
		if health, ok := ecs.Healths[id]; ok && health.Dead() {
			if Kill(ecs, dispatcher, id) {
				reaped++
			}
		}
	}
	return reaped
}
