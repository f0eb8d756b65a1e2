// internal/component/status_effect.go
package component

// FreezeEffect stops the enemy for exactly one tick.
type FreezeEffect struct{}

// SlowEffect indicates that an entity is slowed.
type SlowEffect struct {
	TicksLeft  int     // How many ticks are left for the effect.
	SlowFactor float64 // Multiplier for speed (e.g., 0.5 for 50% slow).
}

// PoisonEffect deals damage every tick until it runs out.
type PoisonEffect struct {
	TicksLeft     int
	DamagePerTick float64
}

// Stealth marks a stealth-capable enemy; Hidden flips every tick.
type Stealth struct {
	Hidden bool
}

// HealAura marks an enemy that heals the others.
type HealAura struct {
	Cooldown int
}
