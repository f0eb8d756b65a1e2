// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-td-sim/internal/component"
	"go-td-sim/internal/types"
)

// ECS owns every live tower and enemy of one session. Components are kept
// in per-type maps keyed by a stable EntityID; systems hold IDs, never
// pointers across ticks.
type ECS struct {
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Routes        map[types.EntityID]*component.Route
	Healths       map[types.EntityID]*component.Health
	Enemies       map[types.EntityID]*component.Enemy
	Towers        map[types.EntityID]*component.Tower
	Combats       map[types.EntityID]*component.Combat
	FreezeEffects map[types.EntityID]*component.FreezeEffect
	SlowEffects   map[types.EntityID]*component.SlowEffect
	PoisonEffects map[types.EntityID]*component.PoisonEffect
	Stealths      map[types.EntityID]*component.Stealth
	HealAuras     map[types.EntityID]*component.HealAura
	Traces        []component.AttackTrace // выстрелы текущего тика
	Wave          *component.Wave
	Economy       *component.Economy
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Routes:        make(map[types.EntityID]*component.Route),
		Healths:       make(map[types.EntityID]*component.Health),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Towers:        make(map[types.EntityID]*component.Tower),
		Combats:       make(map[types.EntityID]*component.Combat),
		FreezeEffects: make(map[types.EntityID]*component.FreezeEffect),
		SlowEffects:   make(map[types.EntityID]*component.SlowEffect),
		PoisonEffects: make(map[types.EntityID]*component.PoisonEffect),
		Stealths:      make(map[types.EntityID]*component.Stealth),
		HealAuras:     make(map[types.EntityID]*component.HealAura),
		Wave:          &component.Wave{},
		Economy:       &component.Economy{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// EnemyIDs returns live enemy IDs in creation order. The slice is a copy,
// so callers may remove enemies while ranging over it.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return sortedKeys(ecs.Enemies)
}

// TowerIDs returns tower IDs in creation order.
func (ecs *ECS) TowerIDs() []types.EntityID {
	return sortedKeys(ecs.Towers)
}

// IsEnemyAlive reports whether id still refers to a live enemy.
func (ecs *ECS) IsEnemyAlive(id types.EntityID) bool {
	if id == 0 {
		return false
	}
	_, ok := ecs.Enemies[id]
	return ok
}

// EnemyCount returns the number of live enemies.
func (ecs *ECS) EnemyCount() int {
	return len(ecs.Enemies)
}

// RemoveEnemy deletes every component of the enemy. It reports false when
// the enemy was already gone, which callers use for exactly-once accounting.
func (ecs *ECS) RemoveEnemy(id types.EntityID) bool {
	if _, ok := ecs.Enemies[id]; !ok {
		return false
	}
	delete(ecs.Enemies, id)
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Routes, id)
	delete(ecs.Healths, id)
	delete(ecs.FreezeEffects, id)
	delete(ecs.SlowEffects, id)
	delete(ecs.PoisonEffects, id)
	delete(ecs.Stealths, id)
	delete(ecs.HealAuras, id)
	return true
}

// TowerAt returns the tower standing on cell (x, y).
func (ecs *ECS) TowerAt(x, y int) (types.EntityID, bool) {
	for id, tower := range ecs.Towers {
		if tower.Cell.X == x && tower.Cell.Y == y {
			return id, true
		}
	}
	return 0, false
}

func sortedKeys[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
