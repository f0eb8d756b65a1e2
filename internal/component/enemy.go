// internal/component/enemy.go
package component

import "go-td-sim/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	Kind   defs.EnemyKind
	Entry  string
	Reward int // credited on kill, already scaled by the wave
}

// Health — компонент здоровья.
type Health struct {
	Current float64
	Max     float64
}

// Heal adds amount, clamped to Max.
func (h *Health) Heal(amount float64) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Dead reports whether the entity has run out of health.
func (h *Health) Dead() bool {
	return h.Current <= 0
}
