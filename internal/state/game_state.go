// internal/state/game_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-td-sim/internal/app"
	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/types"
	"go-td-sim/internal/ui"
	"go-td-sim/pkg/render"
)

const messageTicks = 3 * config.TicksPerSecond

var towerKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8,
}

// GameState — состояние игры: один тик симуляции на один тик ebiten.
type GameState struct {
	sm       *StateMachine
	session  *app.Session
	renderer *render.GridRenderer
	hud      *ui.HUD

	selectedKind  defs.TowerKind
	selectedTower types.EntityID
	message       string
	messageLeft   int
	paused        bool
}

func NewGameState(sm *StateMachine, session *app.Session) *GameState {
	mapColors := render.MapColors{
		BackgroundColor: config.BackgroundColor,
		GridLineColor:   config.GridLineColor,
		PathColor:       config.PathColor,
		EntryColor:      config.EntryColor,
		ExitColor:       config.ExitColor,
	}
	entityColors := render.EntityColors{
		Enemies:         make(map[string]color.RGBA, len(config.EnemyColors)),
		Towers:          make(map[string]color.RGBA, len(config.TowerColors)),
		HealthBarColor:  config.HealthBarColor,
		HealthBackColor: config.HealthBackColor,
		TraceColor:      config.TraceColor,
	}
	for kind, c := range config.EnemyColors {
		entityColors.Enemies[string(kind)] = c
	}
	for kind, c := range config.TowerColors {
		entityColors.Towers[string(kind)] = c
	}

	renderer := render.NewGridRenderer(session.Paths(), config.CellSize, config.HUDHeight, mapColors, entityColors)
	renderer.RenderMapImage()

	return &GameState{
		sm:           sm,
		session:      session,
		renderer:     renderer,
		hud:          ui.NewHUD(),
		selectedKind: defs.TowerArrow,
	}
}

func (g *GameState) Enter() { g.paused = false }

func (g *GameState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.session.Running() {
		g.paused = true
		g.sm.Push(NewPauseState(g.sm, g))
		return
	}

	for i, key := range towerKeys {
		if i < len(defs.AllTowerKinds) && inpututil.IsKeyJustPressed(key) {
			g.selectedKind = defs.AllTowerKinds[i]
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(ebiten.CursorPosition())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.handleUpgrade(ebiten.CursorPosition())
	}

	g.session.Tick()
	if g.messageLeft > 0 {
		g.messageLeft--
	}
}

// handleClick выбирает башню под курсором или строит новую.
func (g *GameState) handleClick(x, y int) {
	cell, ok := g.renderer.CellAtScreen(x, y)
	if !ok {
		return
	}
	if id, found := g.session.ECS.TowerAt(cell.X, cell.Y); found {
		g.selectedTower = id
		return
	}
	id, err := g.session.PlaceTower(g.selectedKind, cell.X, cell.Y)
	if err != nil {
		g.showMessage(err.Error())
		return
	}
	g.selectedTower = id
}

func (g *GameState) handleUpgrade(x, y int) {
	cell, ok := g.renderer.CellAtScreen(x, y)
	if !ok {
		return
	}
	id, found := g.session.ECS.TowerAt(cell.X, cell.Y)
	if !found {
		return
	}
	g.selectedTower = id
	if err := g.session.UpgradeTower(id); err != nil {
		g.showMessage(err.Error())
	}
}

func (g *GameState) showMessage(msg string) {
	g.message = msg
	g.messageLeft = messageTicks
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()

	g.renderer.DrawMap(screen)

	towers := make([]render.Tower, 0, len(snap.Towers))
	for _, t := range snap.Towers {
		towers = append(towers, render.Tower{
			Kind:     string(t.Kind),
			X:        t.X,
			Y:        t.Y,
			Level:    t.Level,
			Range:    t.Range,
			Selected: t.ID == g.selectedTower,
		})
	}
	g.renderer.DrawTowers(screen, towers)

	enemies := make([]render.Enemy, 0, len(snap.Enemies))
	for _, e := range snap.Enemies {
		enemies = append(enemies, render.Enemy{
			Kind:      string(e.Kind),
			X:         e.X,
			Y:         e.Y,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Hidden:    e.Hidden,
			Frozen:    e.Frozen,
		})
	}
	g.renderer.DrawEnemies(screen, enemies)

	traces := make([]render.Trace, 0, len(snap.Traces))
	for _, tr := range snap.Traces {
		traces = append(traces, render.Trace{FromX: tr.FromX, FromY: tr.FromY, ToX: tr.ToX, ToY: tr.ToY})
	}
	g.renderer.DrawTraces(screen, traces)

	cost := 0
	if def, err := g.session.Library().Tower(g.selectedKind); err == nil {
		cost = def.Cost
	}
	msg := ""
	if g.messageLeft > 0 {
		msg = g.message
	}
	g.hud.Draw(screen, ui.HUDState{
		Lives:        snap.Lives,
		Money:        snap.Money,
		Score:        snap.Score,
		Wave:         snap.Wave.Number,
		BossWave:     snap.Wave.Number > g.session.Rules().BossMinWave,
		Phase:        string(snap.Phase),
		Paused:       g.paused,
		Over:         snap.Phase == component.OverPhase,
		Selected:     g.selectedKind,
		SelectedCost: cost,
		Message:      msg,
	})
}

func (g *GameState) Exit() {}
