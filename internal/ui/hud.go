// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
)

// HUDState is what the panel shows on one frame.
type HUDState struct {
	Lives, Money, Score int
	Wave                int
	BossWave            bool
	Phase               string
	Paused              bool
	Over                bool
	Selected            defs.TowerKind
	SelectedCost        int
	Message             string
}

// HUD — верхняя панель: жизни, деньги, очки, выбранная башня.
type HUD struct {
	height int
	wave   *WaveIndicator
}

func NewHUD() *HUD {
	return &HUD{
		height: config.HUDHeight,
		wave:   NewWaveIndicator(config.ScreenWidth-70, 22),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, st HUDState) {
	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(h.height), color.RGBA{10, 10, 16, 255}, false)

	face := basicfont.Face7x13
	line1 := fmt.Sprintf("Lives %d   Money %d   Score %d   Phase %s", st.Lives, st.Money, st.Score, st.Phase)
	text.Draw(screen, line1, face, 10, 20, config.TextLightColor)

	line2 := fmt.Sprintf("[1-8] %s (%d)   LMB build   RMB upgrade   Space pause", st.Selected, st.SelectedCost)
	text.Draw(screen, line2, face, 10, 38, config.TextLightColor)
	if st.Message != "" {
		text.Draw(screen, st.Message, face, 10, 54, config.GameOverColor)
	}

	h.wave.Draw(screen, st.Wave, st.BossWave)

	switch {
	case st.Over:
		h.banner(screen, "GAME OVER")
	case st.Paused:
		h.banner(screen, "PAUSED")
	}
}

func (h *HUD) banner(screen *ebiten.Image, label string) {
	face := basicfont.Face7x13
	x := config.ScreenWidth/2 - len(label)*7/2
	y := config.ScreenHeight / 2
	vector.DrawFilledRect(screen, float32(x-20), float32(y-20), float32(len(label)*7+40), 30, color.RGBA{0, 0, 0, 200}, false)
	text.Draw(screen, label, face, x, y, config.GameOverColor)
}
