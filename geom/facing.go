// Package geom holds the small amount of 2D math the game needs on top of
// cp.Vector: cardinal facings, axis-aligned rectangles and clamping.
package geom

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Facing is one of the four cardinal directions. The zero value is Left.
type Facing uint8

const (
	Left Facing = iota
	Right
	Up
	Down
)

var facingNames = [...]string{"Left", "Right", "Up", "Down"}

func (f Facing) String() string {
	if int(f) < len(facingNames) {
		return facingNames[f]
	}
	return "Facing(?)"
}

// ParseFacing maps an editor enum value to a Facing. Unknown values report false.
func ParseFacing(name string) (Facing, bool) {
	for i, n := range facingNames {
		if n == name {
			return Facing(i), true
		}
	}
	return Left, false
}

// Vector returns the unit vector of the facing. World y points up.
func (f Facing) Vector() cp.Vector {
	switch f {
	case Right:
		return cp.Vector{X: 1}
	case Up:
		return cp.Vector{Y: 1}
	case Down:
		return cp.Vector{Y: -1}
	default:
		return cp.Vector{X: -1}
	}
}

// Angle returns the facing as an angle in radians.
func (f Facing) Angle() float64 {
	v := f.Vector()
	return math.Atan2(v.Y, v.X)
}

// Horizontal reports whether the facing is Left or Right.
func (f Facing) Horizontal() bool {
	return f == Left || f == Right
}

// Normalize returns v scaled to unit length, or the zero vector for a zero v.
func Normalize(v cp.Vector) cp.Vector {
	l := math.Hypot(v.X, v.Y)
	if l == 0 {
		return cp.Vector{}
	}
	return cp.Vector{X: v.X / l, Y: v.Y / l}
}
