// pkg/render/grid_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-td-sim/pkg/gridmap"
)

// Enemy, Tower and Trace are the minimal views the renderer needs. Callers
// convert their own state into them once per frame.
type Enemy struct {
	Kind      string
	X, Y      float64
	Health    float64
	MaxHealth float64
	Hidden    bool
	Frozen    bool
}

type Tower struct {
	Kind     string
	X, Y     int
	Level    int
	Range    float64
	Selected bool
}

type Trace struct {
	FromX, FromY float64
	ToX, ToY     float64
}

// GridRenderer рисует квадратную сетку, пути и сущности.
type GridRenderer struct {
	paths     *gridmap.Library
	cellSize  float64
	offsetY   float64
	mapColors MapColors
	colors    EntityColors
	mapImage  *ebiten.Image // Предрендеренная карта
}

func NewGridRenderer(paths *gridmap.Library, cellSize, offsetY float64, mapColors MapColors, colors EntityColors) *GridRenderer {
	return &GridRenderer{
		paths:     paths,
		cellSize:  cellSize,
		offsetY:   offsetY,
		mapColors: mapColors,
		colors:    colors,
	}
}

// ToScreen converts grid coordinates (cell centres are integers) to pixels.
func (r *GridRenderer) ToScreen(x, y float64) (float32, float32) {
	return float32((x + 0.5) * r.cellSize), float32((y+0.5)*r.cellSize + r.offsetY)
}

// CellAtScreen returns the cell under pixel (px, py).
func (r *GridRenderer) CellAtScreen(px, py int) (gridmap.Point, bool) {
	fy := float64(py) - r.offsetY
	if px < 0 || fy < 0 {
		return gridmap.Point{}, false
	}
	cell := gridmap.Point{X: int(float64(px) / r.cellSize), Y: int(fy / r.cellSize)}
	return cell, r.paths.Grid().Contains(cell)
}

// RenderMapImage draws the static background once.
func (r *GridRenderer) RenderMapImage() {
	grid := r.paths.Grid()
	w := int(float64(grid.Width) * r.cellSize)
	h := int(float64(grid.Height)*r.cellSize + r.offsetY)
	img := ebiten.NewImage(w, h)
	img.Fill(r.mapColors.BackgroundColor)

	size := float32(r.cellSize)
	for _, path := range r.paths.Paths() {
		for _, cell := range path.Cells() {
			x, y := r.cellOrigin(cell)
			vector.DrawFilledRect(img, x, y, size, size, r.mapColors.PathColor, false)
		}
	}

	for x := 0; x <= grid.Width; x++ {
		px := float32(float64(x) * r.cellSize)
		vector.StrokeLine(img, px, float32(r.offsetY), px, float32(h), 1, r.mapColors.GridLineColor, false)
	}
	for y := 0; y <= grid.Height; y++ {
		py := float32(float64(y)*r.cellSize + r.offsetY)
		vector.StrokeLine(img, 0, py, float32(w), py, 1, r.mapColors.GridLineColor, false)
	}

	for _, path := range r.paths.Paths() {
		sx, sy := r.cellOrigin(path.Start())
		vector.StrokeRect(img, sx+2, sy+2, size-4, size-4, 3, r.mapColors.EntryColor, false)
		ex, ey := r.cellOrigin(path.End())
		vector.StrokeRect(img, ex+2, ey+2, size-4, size-4, 3, r.mapColors.ExitColor, false)
	}
	r.mapImage = img
}

func (r *GridRenderer) cellOrigin(c gridmap.Point) (float32, float32) {
	return float32(float64(c.X) * r.cellSize), float32(float64(c.Y)*r.cellSize + r.offsetY)
}

// DrawMap draws the cached background, rendering it on first use.
func (r *GridRenderer) DrawMap(screen *ebiten.Image) {
	if r.mapImage == nil {
		r.RenderMapImage()
	}
	screen.DrawImage(r.mapImage, nil)
}

func (r *GridRenderer) DrawTowers(screen *ebiten.Image, towers []Tower) {
	size := float32(r.cellSize)
	for _, t := range towers {
		clr := r.colorOf(r.colors.Towers, t.Kind)
		x, y := r.cellOrigin(gridmap.Point{X: t.X, Y: t.Y})
		inset := size * 0.15
		vector.DrawFilledRect(screen, x+inset, y+inset, size-2*inset, size-2*inset, clr, false)
		vector.StrokeRect(screen, x+inset, y+inset, size-2*inset, size-2*inset, 2, DarkenColor(clr), false)

		// Уровень башни — точки в нижней части клетки.
		for i := 0; i < t.Level; i++ {
			vector.DrawFilledCircle(screen, x+size*0.3+float32(i)*size*0.2, y+size*0.75, 2.5, color.White, true)
		}
		if t.Selected {
			cx, cy := r.ToScreen(float64(t.X), float64(t.Y))
			vector.StrokeCircle(screen, cx, cy, float32(t.Range*r.cellSize), 1.5, Translucent(clr, 160), true)
		}
	}
}

func (r *GridRenderer) DrawEnemies(screen *ebiten.Image, enemies []Enemy) {
	radius := float32(r.cellSize * 0.25)
	for _, e := range enemies {
		clr := r.colorOf(r.colors.Enemies, e.Kind)
		if e.Hidden {
			clr = Translucent(clr, 70)
		}
		cx, cy := r.ToScreen(e.X, e.Y)
		vector.DrawFilledCircle(screen, cx, cy, radius, clr, true)
		if e.Frozen {
			vector.StrokeCircle(screen, cx, cy, radius+2, 2, color.RGBA{150, 220, 255, 255}, true)
		}

		if e.MaxHealth > 0 {
			w := radius * 2
			frac := float32(e.Health / e.MaxHealth)
			if frac < 0 {
				frac = 0
			}
			vector.DrawFilledRect(screen, cx-radius, cy-radius-6, w, 3, r.colors.HealthBackColor, false)
			vector.DrawFilledRect(screen, cx-radius, cy-radius-6, w*frac, 3, r.colors.HealthBarColor, false)
		}
	}
}

func (r *GridRenderer) DrawTraces(screen *ebiten.Image, traces []Trace) {
	for _, tr := range traces {
		x0, y0 := r.ToScreen(tr.FromX, tr.FromY)
		x1, y1 := r.ToScreen(tr.ToX, tr.ToY)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, r.colors.TraceColor, true)
	}
}

func (r *GridRenderer) colorOf(m map[string]color.RGBA, kind string) color.RGBA {
	if c, ok := m[kind]; ok {
		return c
	}
	return color.RGBA{255, 0, 255, 255}
}
