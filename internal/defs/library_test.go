package defs

import (
	"errors"
	"testing"
)

func TestDefaultLibraryCoversAllKinds(t *testing.T) {
	lib := DefaultLibrary()

	for _, kind := range AllEnemyKinds {
		if _, err := lib.Enemy(kind); err != nil {
			t.Errorf("missing enemy %s: %v", kind, err)
		}
	}
	for _, kind := range AllTowerKinds {
		if _, err := lib.Tower(kind); err != nil {
			t.Errorf("missing tower %s: %v", kind, err)
		}
	}

	sniper, _ := lib.Tower(TowerSniper)
	if !sniper.DetectsStealth {
		t.Error("sniper must detect stealth")
	}
	support, _ := lib.Tower(TowerSupport)
	if support.AcquiresTargets() {
		t.Error("support tower must not acquire enemy targets")
	}
	arrow, _ := lib.Tower(TowerArrow)
	if arrow.Cost != 100 {
		t.Errorf("arrow cost: expected 100, got %d", arrow.Cost)
	}
}

func TestTierFor(t *testing.T) {
	lib := DefaultLibrary()

	tests := []struct {
		wave      int
		wantFrom  int
		wantCount int
	}{
		{1, 1, 8},
		{2, 1, 8},
		{3, 3, 12},
		{7, 5, 15},
		{10, 8, 18},
		{11, 11, 24},
		{99, 11, 24},
		{0, 1, 8},
	}

	for _, tt := range tests {
		tier := lib.TierFor(tt.wave)
		if tier.From != tt.wantFrom || tier.Count != tt.wantCount {
			t.Errorf("TierFor(%d) = from %d count %d, expected from %d count %d",
				tt.wave, tier.From, tier.Count, tt.wantFrom, tt.wantCount)
		}
	}

	first := lib.TierFor(1)
	if len(first.Pool) != 2 || first.Pool[0] != EnemyNormal || first.Pool[1] != EnemyFast {
		t.Errorf("wave 1 pool: %v", first.Pool)
	}
}

func TestNewLibraryValidation(t *testing.T) {
	tests := []struct {
		name    string
		enemies []EnemyDefinition
		towers  []TowerDefinition
		waves   []WaveTier
		wantErr error
	}{
		{
			name:    "zero health",
			enemies: []EnemyDefinition{{ID: EnemyNormal, Health: 0, Speed: 1}},
			waves:   []WaveTier{{From: 1, Pool: []EnemyKind{EnemyNormal}, Count: 1}},
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "unknown effect",
			enemies: DefaultEnemies(),
			towers:  []TowerDefinition{{ID: TowerArrow, Damage: 1, Range: 1, Effect: "lightning"}},
			waves:   DefaultWaves(),
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "pool references unknown enemy",
			enemies: []EnemyDefinition{{ID: EnemyNormal, Health: 1, Speed: 1}},
			waves:   []WaveTier{{From: 1, Pool: []EnemyKind{EnemyBoss}, Count: 1}},
			wantErr: ErrUnknownEnemy,
		},
		{
			name:    "empty table",
			enemies: DefaultEnemies(),
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "inverted range",
			enemies: DefaultEnemies(),
			waves:   []WaveTier{{From: 5, To: 2, Pool: []EnemyKind{EnemyNormal}, Count: 1}},
			wantErr: ErrInvalidDefinition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLibrary(tt.enemies, tt.towers, tt.waves)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUnknownKindLookup(t *testing.T) {
	lib := DefaultLibrary()
	if _, err := lib.Tower("CATAPULT"); !errors.Is(err, ErrUnknownTower) {
		t.Errorf("expected ErrUnknownTower, got %v", err)
	}
	if _, err := lib.Enemy("DRAGON"); !errors.Is(err, ErrUnknownEnemy) {
		t.Errorf("expected ErrUnknownEnemy, got %v", err)
	}
}
