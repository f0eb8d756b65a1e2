// internal/defs/types.go
package defs

// EnemyKind identifies an enemy archetype.
type EnemyKind string

const (
	EnemyNormal  EnemyKind = "NORMAL"
	EnemyFast    EnemyKind = "FAST"
	EnemyTank    EnemyKind = "TANK"
	EnemyBoss    EnemyKind = "BOSS"
	EnemyFlying  EnemyKind = "FLYING"
	EnemyStealth EnemyKind = "STEALTH"
	EnemyHealer  EnemyKind = "HEALER"
	EnemySwarm   EnemyKind = "SWARM"
)

// AllEnemyKinds lists every archetype in declaration order.
var AllEnemyKinds = []EnemyKind{
	EnemyNormal, EnemyFast, EnemyTank, EnemyBoss,
	EnemyFlying, EnemyStealth, EnemyHealer, EnemySwarm,
}

// TowerKind identifies a tower archetype.
type TowerKind string

const (
	TowerArrow   TowerKind = "ARROW"
	TowerCannon  TowerKind = "CANNON"
	TowerMagic   TowerKind = "MAGIC"
	TowerLaser   TowerKind = "LASER"
	TowerIce     TowerKind = "ICE"
	TowerPoison  TowerKind = "POISON"
	TowerSniper  TowerKind = "SNIPER"
	TowerSupport TowerKind = "SUPPORT"
)

// AllTowerKinds lists every archetype in declaration order.
var AllTowerKinds = []TowerKind{
	TowerArrow, TowerCannon, TowerMagic, TowerLaser,
	TowerIce, TowerPoison, TowerSniper, TowerSupport,
}

// EffectKind — тип особого эффекта атаки башни.
type EffectKind string

const (
	EffectNone     EffectKind = "none"
	EffectSplash   EffectKind = "splash"
	EffectSlow     EffectKind = "slow"
	EffectPierce   EffectKind = "pierce"
	EffectFreeze   EffectKind = "freeze"
	EffectPoison   EffectKind = "poison"
	EffectCritical EffectKind = "critical"
	EffectBuff     EffectKind = "buff"
)

// Valid reports whether k is one of the known effect kinds.
func (k EffectKind) Valid() bool {
	switch k {
	case EffectNone, EffectSplash, EffectSlow, EffectPierce,
		EffectFreeze, EffectPoison, EffectCritical, EffectBuff:
		return true
	}
	return false
}
