// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID             EnemyKind `yaml:"id" json:"id"`
	Health         float64   `yaml:"health" json:"health"`
	Speed          float64   `yaml:"speed" json:"speed"` // grid units per tick
	Reward         int       `yaml:"reward" json:"reward"`
	IgnoresTerrain bool      `yaml:"ignores_terrain" json:"ignores_terrain"`
	StealthCapable bool      `yaml:"stealth_capable" json:"stealth_capable"`
	HealsOthers    bool      `yaml:"heals_others" json:"heals_others"`
}

// DefaultEnemies returns the stock enemy table.
func DefaultEnemies() []EnemyDefinition {
	return []EnemyDefinition{
		{ID: EnemyNormal, Health: 50, Speed: 0.05, Reward: 10},
		{ID: EnemyFast, Health: 35, Speed: 0.09, Reward: 12},
		{ID: EnemyTank, Health: 100, Speed: 0.03, Reward: 25},
		{ID: EnemyBoss, Health: 500, Speed: 0.025, Reward: 100},
		{ID: EnemyFlying, Health: 40, Speed: 0.06, Reward: 15, IgnoresTerrain: true},
		{ID: EnemyStealth, Health: 45, Speed: 0.06, Reward: 18, StealthCapable: true},
		{ID: EnemyHealer, Health: 60, Speed: 0.045, Reward: 20, HealsOthers: true},
		{ID: EnemySwarm, Health: 20, Speed: 0.07, Reward: 4},
	}
}
