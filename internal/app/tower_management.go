// internal/app/tower_management.go
package app

import (
	"fmt"
	"math"

	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/event"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/gridmap"
)

// PlaceTower строит башню на клетке (x, y). Checks run in a fixed order:
// running, archetype, bounds, path, occupancy, funds. On failure nothing
// changes.
func (s *Session) PlaceTower(kind defs.TowerKind, x, y int) (types.EntityID, error) {
	fail := func(err error) (types.EntityID, error) {
		return 0, &PlacementError{Kind: kind, X: x, Y: y, Err: err}
	}

	if !s.Running() {
		return fail(ErrSessionNotRunning)
	}
	def, err := s.lib.Tower(kind)
	if err != nil {
		return fail(err)
	}
	cell := gridmap.Point{X: x, Y: y}
	if !s.paths.Grid().Contains(cell) {
		return fail(ErrOutOfBounds)
	}
	if s.paths.OnPath(cell) {
		return fail(ErrOnPath)
	}
	if _, occupied := s.ECS.TowerAt(x, y); occupied {
		return fail(ErrOccupied)
	}
	if !s.EconomySystem.Spend(def.Cost) {
		return fail(fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, def.Cost, s.Money()))
	}

	id := s.createTowerEntity(def, cell)
	s.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{ID: id, Kind: kind, X: x, Y: y, Level: 1, Cost: def.Cost},
	})
	return id, nil
}

func (s *Session) createTowerEntity(def defs.TowerDefinition, cell gridmap.Point) types.EntityID {
	id := s.ECS.NewEntity()
	cx, cy := cell.Center()
	s.ECS.Positions[id] = &component.Position{X: cx, Y: cy}
	s.ECS.Towers[id] = &component.Tower{
		Kind:             def.ID,
		Cell:             cell,
		Level:            1,
		UpgradeCostScale: s.rules.UpgradeCostScale,
	}
	s.ECS.Combats[id] = &component.Combat{
		Damage:   def.Damage,
		Range:    def.Range,
		Interval: def.Cooldown,
		Cooldown: 0,
	}
	return id
}

// UpgradeCost returns the price of the next level of the tower.
func (s *Session) UpgradeCost(id types.EntityID) (int, error) {
	tower, ok := s.ECS.Towers[id]
	if !ok {
		return 0, &UpgradeError{TowerID: id, Err: ErrUnknownTower}
	}
	def, err := s.lib.Tower(tower.Kind)
	if err != nil {
		return 0, &UpgradeError{TowerID: id, Err: err}
	}
	return upgradeCost(def, tower), nil
}

func upgradeCost(def defs.TowerDefinition, tower *component.Tower) int {
	return int(math.Round(float64(def.Cost) * float64(tower.Level) * tower.UpgradeCostScale))
}

// UpgradeTower поднимает уровень башни, усиливая урон, дальность и скорострельность.
func (s *Session) UpgradeTower(id types.EntityID) error {
	fail := func(err error) error {
		return &UpgradeError{TowerID: id, Err: err}
	}

	if !s.Running() {
		return fail(ErrSessionNotRunning)
	}
	tower, ok := s.ECS.Towers[id]
	if !ok {
		return fail(ErrUnknownTower)
	}
	if tower.Level >= config.MaxTowerLevel {
		return fail(ErrMaxLevelReached)
	}
	def, err := s.lib.Tower(tower.Kind)
	if err != nil {
		return fail(err)
	}
	cost := upgradeCost(def, tower)
	if !s.EconomySystem.Spend(cost) {
		return fail(fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, cost, s.Money()))
	}

	tower.Level++
	combat := s.ECS.Combats[id]
	combat.Damage *= s.rules.UpgradeDamage
	combat.Range *= s.rules.UpgradeRange
	combat.Interval = int(math.Round(float64(combat.Interval) * s.rules.UpgradeCooldown))

	s.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerUpgraded,
		Data: event.TowerData{ID: id, Kind: tower.Kind, X: tower.Cell.X, Y: tower.Cell.Y, Level: tower.Level, Cost: cost},
	})
	return nil
}
