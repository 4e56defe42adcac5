package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// View describes how the camera maps the world onto the screen: Center is
// the world point shown in the middle of the window and Zoom the number of
// screen pixels per world unit.
type View struct {
	Center cp.Vector
	Zoom   float64
	Screen cp.Vector
}

// GeoM returns the world to screen transform. World y points up, screen y
// points down.
func (v View) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-v.Center.X, -v.Center.Y)
	g.Scale(v.Zoom, -v.Zoom)
	g.Translate(v.Screen.X/2, v.Screen.Y/2)
	return g
}

// Project maps a world point to screen pixels.
func (v View) Project(world cp.Vector) cp.Vector {
	g := v.GeoM()
	x, y := g.Apply(world.X, world.Y)
	return cp.Vector{X: x, Y: y}
}

// Unproject maps a screen point back into the world by inverting the view
// transform. A degenerate view returns the camera center.
func Unproject(cursor cp.Vector, v View) cp.Vector {
	g := v.GeoM()
	if v.Zoom == 0 || !g.IsInvertible() {
		return v.Center
	}
	g.Invert()
	x, y := g.Apply(cursor.X, cursor.Y)
	return cp.Vector{X: x, Y: y}
}
