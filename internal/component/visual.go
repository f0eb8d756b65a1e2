// internal/component/visual.go
package component

import (
	"go-td-sim/internal/defs"
	"go-td-sim/internal/types"
)

// AttackTrace records one shot for external rendering. It has no gameplay
// effect and lives for a single tick.
type AttackTrace struct {
	TowerID      types.EntityID
	TargetID     types.EntityID
	FromX, FromY float64
	ToX, ToY     float64
	Effect       defs.EffectKind
}
