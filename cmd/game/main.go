// cmd/game/main.go
package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"go-td-sim/internal/app"
	"go-td-sim/internal/config"
	"go-td-sim/internal/state"
	"go-td-sim/pkg/logger"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

// Update вызывается ebiten с частотой TicksPerSecond: один тик симуляции.
func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "balance file (YAML); built-in defaults when empty")
	seed := flag.Int64("seed", 0, "random seed; 0 picks one from the clock")
	logLevel := flag.String("log-level", "", "log level; LOG_LEVEL or info when empty")
	logFormat := flag.String("log-format", "", "log format: text or json; LOG_FORMAT when empty")
	flag.Parse()

	if err := logger.Init(logger.Options{Level: *logLevel, Format: *logFormat}); err != nil {
		logger.Log.WithError(err).Fatal("cannot configure logging")
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Log.WithError(err).Fatal("cannot load config")
		}
		cfg = loaded
	}

	session, err := app.NewSession(cfg, app.WithSeed(*seed))
	if err != nil {
		logger.Log.WithError(err).Fatal("cannot start session")
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, session))

	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Defense")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		logger.Log.WithError(err).Fatal("game loop stopped")
	}
}
