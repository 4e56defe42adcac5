package geom

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Rect is an axis-aligned rectangle. Min is the lower left corner.
type Rect struct {
	Min, Max cp.Vector
}

// RectFromSize returns the rectangle from the origin to (w, h).
func RectFromSize(w, h float64) Rect {
	return Rect{Max: cp.Vector{X: w, Y: h}}
}

// RectFromCenter returns the rectangle with the given center and half extents.
func RectFromCenter(center, half cp.Vector) Rect {
	return Rect{
		Min: cp.Vector{X: center.X - half.X, Y: center.Y - half.Y},
		Max: cp.Vector{X: center.X + half.X, Y: center.Y + half.Y},
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p cp.Vector) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) Center() cp.Vector {
	return cp.Vector{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

func (r Rect) HalfExtents() cp.Vector {
	return cp.Vector{X: (r.Max.X - r.Min.X) / 2, Y: (r.Max.Y - r.Min.Y) / 2}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Scale multiplies the rectangle's coordinates around the origin.
func (r Rect) Scale(sx, sy float64) Rect {
	return Rect{
		Min: cp.Vector{X: r.Min.X * sx, Y: r.Min.Y * sy},
		Max: cp.Vector{X: r.Max.X * sx, Y: r.Max.Y * sy},
	}
}

// BB converts to a Chipmunk bounding box.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.Min.X, B: r.Min.Y, R: r.Max.X, T: r.Max.Y}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g]-[%g,%g]", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// ClampAxis clamps v into [lo, hi]. When the range is inverted the midpoint
// is returned.
func ClampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return max(lo, min(v, hi))
}
