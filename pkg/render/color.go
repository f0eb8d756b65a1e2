// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	GridLineColor   color.RGBA
	PathColor       color.RGBA
	EntryColor      color.RGBA
	ExitColor       color.RGBA
}

// EntityColors — цвета динамических объектов.
type EntityColors struct {
	Enemies         map[string]color.RGBA
	Towers          map[string]color.RGBA
	HealthBarColor  color.RGBA
	HealthBackColor color.RGBA
	TraceColor      color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Translucent returns c with its alpha replaced.
func Translucent(c color.RGBA, alpha uint8) color.RGBA {
	c.A = alpha
	return c
}
