// internal/defs/towers.go
package defs

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID             TowerKind  `yaml:"id" json:"id"`
	Damage         float64    `yaml:"damage" json:"damage"`
	Cooldown       int        `yaml:"cooldown" json:"cooldown"` // ticks between shots
	Range          float64    `yaml:"range" json:"range"`       // grid units
	Cost           int        `yaml:"cost" json:"cost"`
	Effect         EffectKind `yaml:"effect" json:"effect"`
	DetectsStealth bool       `yaml:"detects_stealth" json:"detects_stealth"`
}

// AcquiresTargets reports whether the tower attacks enemies at all.
// Buff towers only work on other towers.
func (d TowerDefinition) AcquiresTargets() bool {
	return d.Effect != EffectBuff
}

// DefaultTowers returns the stock tower table.
func DefaultTowers() []TowerDefinition {
	return []TowerDefinition{
		{ID: TowerArrow, Damage: 10, Cooldown: 20, Range: 3, Cost: 100, Effect: EffectNone},
		{ID: TowerCannon, Damage: 15, Cooldown: 45, Range: 2.5, Cost: 200, Effect: EffectSplash},
		{ID: TowerMagic, Damage: 18, Cooldown: 30, Range: 3, Cost: 150, Effect: EffectNone},
		{ID: TowerLaser, Damage: 4, Cooldown: 3, Range: 3.5, Cost: 250, Effect: EffectPierce},
		{ID: TowerIce, Damage: 5, Cooldown: 25, Range: 2.5, Cost: 175, Effect: EffectFreeze},
		{ID: TowerPoison, Damage: 4, Cooldown: 30, Range: 3, Cost: 150, Effect: EffectPoison},
		{ID: TowerSniper, Damage: 40, Cooldown: 60, Range: 6, Cost: 300, Effect: EffectCritical, DetectsStealth: true},
		{ID: TowerSupport, Damage: 0, Cooldown: 0, Range: 2.5, Cost: 200, Effect: EffectBuff},
	}
}
