// internal/defs/library.go
package defs

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownEnemy is returned when a kind has no definition.
	ErrUnknownEnemy = errors.New("unknown enemy kind")
	// ErrUnknownTower is returned when a kind has no definition.
	ErrUnknownTower = errors.New("unknown tower kind")
	// ErrInvalidDefinition is returned for definitions that fail validation.
	ErrInvalidDefinition = errors.New("invalid definition")
)

// Library holds the archetype tables of one session. It is built once and
// never mutated afterwards.
type Library struct {
	enemies map[EnemyKind]EnemyDefinition
	towers  map[TowerKind]TowerDefinition
	waves   []WaveTier
}

// NewLibrary validates the tables and indexes them by kind.
func NewLibrary(enemies []EnemyDefinition, towers []TowerDefinition, waves []WaveTier) (*Library, error) {
	lib := &Library{
		enemies: make(map[EnemyKind]EnemyDefinition, len(enemies)),
		towers:  make(map[TowerKind]TowerDefinition, len(towers)),
	}

	for _, def := range enemies {
		if def.ID == "" {
			return nil, fmt.Errorf("enemy without id: %w", ErrInvalidDefinition)
		}
		if def.Health <= 0 {
			return nil, fmt.Errorf("enemy %s: health must be positive, got %v: %w", def.ID, def.Health, ErrInvalidDefinition)
		}
		if def.Speed < 0 {
			return nil, fmt.Errorf("enemy %s: speed cannot be negative, got %v: %w", def.ID, def.Speed, ErrInvalidDefinition)
		}
		if def.Reward < 0 {
			return nil, fmt.Errorf("enemy %s: reward cannot be negative, got %d: %w", def.ID, def.Reward, ErrInvalidDefinition)
		}
		lib.enemies[def.ID] = def
	}

	for _, def := range towers {
		if def.ID == "" {
			return nil, fmt.Errorf("tower without id: %w", ErrInvalidDefinition)
		}
		if !def.Effect.Valid() {
			return nil, fmt.Errorf("tower %s: unknown effect %q: %w", def.ID, def.Effect, ErrInvalidDefinition)
		}
		if def.Damage < 0 || def.Cooldown < 0 || def.Range <= 0 || def.Cost < 0 {
			return nil, fmt.Errorf("tower %s: damage, cooldown and cost must be non-negative and range positive: %w", def.ID, ErrInvalidDefinition)
		}
		lib.towers[def.ID] = def
	}

	if len(waves) == 0 {
		return nil, fmt.Errorf("difficulty table is empty: %w", ErrInvalidDefinition)
	}
	lib.waves = make([]WaveTier, len(waves))
	copy(lib.waves, waves)
	sort.SliceStable(lib.waves, func(i, j int) bool { return lib.waves[i].From < lib.waves[j].From })

	for i, tier := range lib.waves {
		if tier.From < 1 || (tier.To != 0 && tier.To < tier.From) {
			return nil, fmt.Errorf("wave tier %d: bad range %d-%d: %w", i, tier.From, tier.To, ErrInvalidDefinition)
		}
		if tier.Count <= 0 || len(tier.Pool) == 0 {
			return nil, fmt.Errorf("wave tier %d: needs a pool and a positive count: %w", i, ErrInvalidDefinition)
		}
		for _, kind := range tier.Pool {
			if _, ok := lib.enemies[kind]; !ok {
				return nil, fmt.Errorf("wave tier %d: %s: %w", i, kind, ErrUnknownEnemy)
			}
		}
	}

	return lib, nil
}

// DefaultLibrary builds the library from the stock tables.
func DefaultLibrary() *Library {
	lib, err := NewLibrary(DefaultEnemies(), DefaultTowers(), DefaultWaves())
	if err != nil {
		// Встроенные таблицы проверяются тестами.
		panic(err)
	}
	return lib
}

// Enemy returns the definition for kind.
func (l *Library) Enemy(kind EnemyKind) (EnemyDefinition, error) {
	def, ok := l.enemies[kind]
	if !ok {
		return EnemyDefinition{}, fmt.Errorf("%s: %w", kind, ErrUnknownEnemy)
	}
	return def, nil
}

// Tower returns the definition for kind.
func (l *Library) Tower(kind TowerKind) (TowerDefinition, error) {
	def, ok := l.towers[kind]
	if !ok {
		return TowerDefinition{}, fmt.Errorf("%s: %w", kind, ErrUnknownTower)
	}
	return def, nil
}

// TierFor returns the difficulty tier for wave n. Waves past the end of the
// table keep using the last tier; waves before the first tier use the first.
func (l *Library) TierFor(n int) WaveTier {
	for _, tier := range l.waves {
		if tier.Contains(n) {
			return tier
		}
	}
	if n < l.waves[0].From {
		return l.waves[0]
	}
	return l.waves[len(l.waves)-1]
}
