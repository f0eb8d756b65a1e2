// internal/component/game_state.go
package component

// Phase — фаза сессии. Values double as looplab/fsm state names.
type Phase string

const (
	IntermissionPhase Phase = "intermission" // между волнами
	SpawningPhase     Phase = "spawning"     // волна выпускает врагов
	OverPhase         Phase = "over"         // жизни кончились
)
