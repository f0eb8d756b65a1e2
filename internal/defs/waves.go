// internal/defs/waves.go
package defs

// WaveTier — ступень таблицы сложности: диапазон волн, пул врагов и их число.
// To == 0 означает открытый диапазон.
type WaveTier struct {
	From  int         `yaml:"from" json:"from"`
	To    int         `yaml:"to" json:"to"`
	Pool  []EnemyKind `yaml:"pool" json:"pool"`
	Count int         `yaml:"count" json:"count"`
}

// Contains reports whether wave number n falls into the tier.
func (t WaveTier) Contains(n int) bool {
	return n >= t.From && (t.To == 0 || n <= t.To)
}

// DefaultWaves returns the stock stepped difficulty table. Bosses are not in
// any pool, they only appear through the forced-boss roll.
func DefaultWaves() []WaveTier {
	return []WaveTier{
		{From: 1, To: 2, Pool: []EnemyKind{EnemyNormal, EnemyFast}, Count: 8},
		{From: 3, To: 4, Pool: []EnemyKind{EnemyNormal, EnemyFast, EnemySwarm}, Count: 12},
		{From: 5, To: 7, Pool: []EnemyKind{EnemyNormal, EnemyFast, EnemyTank, EnemyFlying}, Count: 15},
		{From: 8, To: 10, Pool: []EnemyKind{EnemyNormal, EnemyFast, EnemyTank, EnemyFlying, EnemyStealth, EnemyHealer}, Count: 18},
		{From: 11, To: 0, Pool: []EnemyKind{EnemyFast, EnemyTank, EnemyFlying, EnemyStealth, EnemyHealer, EnemySwarm}, Count: 24},
	}
}
