package geom_test

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/geom"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestFacing(t *testing.T) {
	var zero geom.Facing
	assert.Equal(t, geom.Left, zero)

	tests := []struct {
		facing geom.Facing
		vector cp.Vector
		angle  float64
	}{
		{geom.Left, cp.Vector{X: -1}, math.Pi},
		{geom.Right, cp.Vector{X: 1}, 0},
		{geom.Up, cp.Vector{Y: 1}, math.Pi / 2},
		{geom.Down, cp.Vector{Y: -1}, -math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.facing.String(), func(t *testing.T) {
			assert.Equal(t, tt.vector, tt.facing.Vector())
			assert.InDelta(t, tt.angle, tt.facing.Angle(), 1e-9)

			parsed, ok := geom.ParseFacing(tt.facing.String())
			assert.True(t, ok)
			assert.Equal(t, tt.facing, parsed)
		})
	}

	_, ok := geom.ParseFacing("Diagonal")
	assert.False(t, ok)
	_, ok = geom.ParseFacing("left")
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, cp.Vector{}, geom.Normalize(cp.Vector{}))

	n := geom.Normalize(cp.Vector{X: 1, Y: 1})
	assert.InDelta(t, math.Sqrt2/2, n.X, 1e-9)
	assert.InDelta(t, math.Sqrt2/2, n.Y, 1e-9)
}

func TestRect(t *testing.T) {
	r := geom.RectFromSize(640, 512)

	assert.Equal(t, cp.Vector{X: 320, Y: 256}, r.Center())
	assert.Equal(t, cp.Vector{X: 320, Y: 256}, r.HalfExtents())
	assert.True(t, r.Contains(cp.Vector{X: 640, Y: 0}))
	assert.False(t, r.Contains(cp.Vector{X: 640.5, Y: 0}))

	bounds := geom.Rect{Min: cp.Vector{X: -1, Y: -1}, Max: cp.Vector{X: 1, Y: 1}}.Scale(1280, 512)
	assert.Equal(t, cp.Vector{X: -1280, Y: -512}, bounds.Min)
	assert.Equal(t, cp.Vector{X: 1280, Y: 512}, bounds.Max)

	c := geom.RectFromCenter(cp.Vector{X: 8, Y: 24}, cp.Vector{X: 8, Y: 24})
	assert.Equal(t, cp.BB{L: 0, B: 0, R: 16, T: 48}, c.BB())
}

func TestClampAxis(t *testing.T) {
	assert.Equal(t, 5.0, geom.ClampAxis(5, 0, 10))
	assert.Equal(t, 0.0, geom.ClampAxis(-3, 0, 10))
	assert.Equal(t, 10.0, geom.ClampAxis(12, 0, 10))
	assert.Equal(t, 5.0, geom.ClampAxis(100, 10, 0))
}

func TestClampAxisIsNearestInRangeValue(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.Float64Range(-1e6, 1e6).Draw(t, "lo")
		hi := lo + rapid.Float64Range(0, 1e6).Draw(t, "width")
		v := rapid.Float64Range(-1e7, 1e7).Draw(t, "v")

		got := geom.ClampAxis(v, lo, hi)
		if got < lo || got > hi {
			t.Fatalf("%v outside [%v, %v]", got, lo, hi)
		}
		if v >= lo && v <= hi && got != v {
			t.Fatalf("in-range value %v changed to %v", v, got)
		}
		if v < lo && got != lo {
			t.Fatalf("below range: got %v want %v", got, lo)
		}
		if v > hi && got != hi {
			t.Fatalf("above range: got %v want %v", got, hi)
		}
	})
}
