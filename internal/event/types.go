// internal/event/types.go
package event

import (
	"go-td-sim/internal/defs"
	"go-td-sim/internal/types"
)

const (
	WaveStarted   EventType = "WaveStarted"   // Началась новая волна
	WaveSpawned   EventType = "WaveSpawned"   // Волна выпустила всех врагов
	EnemySpawned  EventType = "EnemySpawned"  // Враг появился на входе
	EnemyKilled   EventType = "EnemyKilled"   // Враг уничтожен башней или ядом
	EnemyLeaked   EventType = "EnemyLeaked"   // Враг дошёл до конца пути
	TowerPlaced   EventType = "TowerPlaced"   // Башня построена
	TowerUpgraded EventType = "TowerUpgraded" // Башня улучшена
	SessionOver   EventType = "SessionOver"   // Жизни закончились
)

// WaveData accompanies WaveStarted and WaveSpawned.
type WaveData struct {
	Number int
	Target int
}

// EnemyData accompanies EnemySpawned, EnemyKilled and EnemyLeaked.
type EnemyData struct {
	ID     types.EntityID
	Kind   defs.EnemyKind
	Entry  string
	Reward int
}

// TowerData accompanies TowerPlaced and TowerUpgraded.
type TowerData struct {
	ID    types.EntityID
	Kind  defs.TowerKind
	X, Y  int
	Level int
	Cost  int
}
