// internal/app/snapshot.go
package app

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/types"
)

// Snapshot is a read-only copy of the session state between two ticks.
// Entities are sorted by ID, so equal states give equal snapshots.
type Snapshot struct {
	SessionID string          `json:"session_id"`
	Tick      uint64          `json:"tick"`
	Running   bool            `json:"running"`
	Phase     component.Phase `json:"phase"`
	Lives     int             `json:"lives"`
	Money     int             `json:"money"`
	Score     int             `json:"score"`
	Wave      WaveSnapshot    `json:"wave"`
	Enemies   []EnemySnapshot `json:"enemies"`
	Towers    []TowerSnapshot `json:"towers"`
	Traces    []TraceSnapshot `json:"traces"`
}

type WaveSnapshot struct {
	Number  int `json:"number"`
	Target  int `json:"target"`
	Spawned int `json:"spawned"`
}

type EnemySnapshot struct {
	ID        types.EntityID `json:"id"`
	Kind      defs.EnemyKind `json:"kind"`
	Entry     string         `json:"entry"`
	X         float64        `json:"x"`
	Y         float64        `json:"y"`
	Health    float64        `json:"health"`
	MaxHealth float64        `json:"max_health"`
	Hidden    bool           `json:"hidden"`
	Frozen    bool           `json:"frozen"`
	Slowed    bool           `json:"slowed"`
	Poisoned  bool           `json:"poisoned"`
}

type TowerSnapshot struct {
	ID       types.EntityID `json:"id"`
	Kind     defs.TowerKind `json:"kind"`
	X        int            `json:"x"`
	Y        int            `json:"y"`
	Level    int            `json:"level"`
	Damage   float64        `json:"damage"`
	Range    float64        `json:"range"`
	Cooldown int            `json:"cooldown"`
	TargetID types.EntityID `json:"target_id,omitempty"`
}

type TraceSnapshot struct {
	TowerID  types.EntityID  `json:"tower_id"`
	TargetID types.EntityID  `json:"target_id"`
	FromX    float64         `json:"from_x"`
	FromY    float64         `json:"from_y"`
	ToX      float64         `json:"to_x"`
	ToY      float64         `json:"to_y"`
	Effect   defs.EffectKind `json:"effect"`
}

// Snapshot copies the current state. It never mutates the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID: s.id.String(),
		Tick:      s.tick,
		Running:   s.Running(),
		Phase:     s.Phase(),
		Lives:     s.ECS.Economy.Lives,
		Money:     s.ECS.Economy.Money,
		Score:     s.ECS.Economy.Score,
		Wave: WaveSnapshot{
			Number:  s.ECS.Wave.Number,
			Target:  s.ECS.Wave.Target,
			Spawned: s.ECS.Wave.Spawned,
		},
		Enemies: make([]EnemySnapshot, 0, s.ECS.EnemyCount()),
		Towers:  make([]TowerSnapshot, 0, len(s.ECS.Towers)),
		Traces:  make([]TraceSnapshot, 0, len(s.ECS.Traces)),
	}

	for _, id := range s.ECS.EnemyIDs() {
		enemy := s.ECS.Enemies[id]
		es := EnemySnapshot{ID: id, Kind: enemy.Kind, Entry: enemy.Entry}
		if pos, ok := s.ECS.Positions[id]; ok {
			es.X, es.Y = pos.X, pos.Y
		}
		if health, ok := s.ECS.Healths[id]; ok {
			es.Health, es.MaxHealth = health.Current, health.Max
		}
		if stealth, ok := s.ECS.Stealths[id]; ok {
			es.Hidden = stealth.Hidden
		}
		_, es.Frozen = s.ECS.FreezeEffects[id]
		_, es.Slowed = s.ECS.SlowEffects[id]
		_, es.Poisoned = s.ECS.PoisonEffects[id]
		snap.Enemies = append(snap.Enemies, es)
	}

	for _, id := range s.ECS.TowerIDs() {
		tower := s.ECS.Towers[id]
		ts := TowerSnapshot{
			ID:       id,
			Kind:     tower.Kind,
			X:        tower.Cell.X,
			Y:        tower.Cell.Y,
			Level:    tower.Level,
			TargetID: tower.TargetID,
		}
		if combat, ok := s.ECS.Combats[id]; ok {
			ts.Damage, ts.Range, ts.Cooldown = combat.Damage, combat.Range, combat.Cooldown
		}
		snap.Towers = append(snap.Towers, ts)
	}

	for _, tr := range s.ECS.Traces {
		snap.Traces = append(snap.Traces, TraceSnapshot{
			TowerID:  tr.TowerID,
			TargetID: tr.TargetID,
			FromX:    tr.FromX,
			FromY:    tr.FromY,
			ToX:      tr.ToX,
			ToY:      tr.ToY,
			Effect:   tr.Effect,
		})
	}
	return snap
}
