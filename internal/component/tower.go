// internal/component/tower.go
package component

import (
	"go-td-sim/internal/defs"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/gridmap"
)

type Tower struct {
	Kind             defs.TowerKind
	Cell             gridmap.Point  // Клетка, на которой стоит башня
	Level            int            // 1..MaxTowerLevel
	UpgradeCostScale float64        // Множитель стоимости следующего улучшения
	TargetID         types.EntityID // Текущая цель, 0 — нет цели
}
