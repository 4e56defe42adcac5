package main

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/config"
	"github.com/plus3/astro/input"
	"github.com/plus3/astro/level"
	"github.com/plus3/astro/shooter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arena(t *testing.T, cfg config.Config) *shooter.World {
	t.Helper()
	lvl := &level.Level{
		Identifier: "Arena",
		PxWid:      640,
		PxHei:      512,
		GridSize:   32,
		Entities: []level.EntityInstance{
			{Identifier: level.PlayerIdentifier, Px: [2]int{320, 256}},
		},
	}
	w, err := shooter.NewWorld(cfg, lvl, shooter.WithoutPhysics())
	require.NoError(t, err)
	w.Tick(1.0 / 60)
	return w
}

func TestAimLine(t *testing.T) {
	w := arena(t, config.Default())

	*w.Input() = input.State{Cursor: cp.Vector{X: 320, Y: 256}, CursorInside: true}
	muzzle, target, ok := aimLine(w)
	require.True(t, ok)
	assert.Equal(t, cp.Vector{X: 320, Y: 249}, muzzle)
	assert.InDelta(t, 320, target.X, 1e-9)
	assert.InDelta(t, 256, target.Y, 1e-9)

	w.Input().Captured = true
	_, _, ok = aimLine(w)
	assert.False(t, ok)

	*w.Input() = input.State{Cursor: cp.Vector{X: 320, Y: 256}}
	_, _, ok = aimLine(w)
	assert.False(t, ok, "cursor outside the window")
}

func TestAimLineFacingMode(t *testing.T) {
	cfg := config.Default()
	cfg.Player.Aim = config.AimFacing
	w := arena(t, cfg)

	*w.Input() = input.State{Cursor: cp.Vector{X: 100, Y: 100}, CursorInside: true}
	_, _, ok := aimLine(w)
	assert.False(t, ok)
}
