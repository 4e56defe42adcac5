package shooter_test

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/config"
	"github.com/plus3/astro/faction"
	"github.com/plus3/astro/geom"
	"github.com/plus3/astro/input"
	"github.com/plus3/astro/physics"
	"github.com/plus3/astro/shooter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerRespawnsAtOrigin(t *testing.T) {
	w := newWorld(t, quietConfig(), playerAt(320, 256))
	id, p, tr, vel := playerOf(t, w)
	origin := p.Origin
	require.Equal(t, cp.Vector{X: 320, Y: 256}, origin)

	press(w, input.State{Right: true, Up: true})
	for range 10 {
		w.Tick(tick)
	}
	require.NotEqual(t, origin, tr.Position)

	inject(w, physics.Contact{A: spawnProjectile(w, tr.Position, faction.EnemyBullet), B: id})
	w.Tick(tick)
	assert.True(t, p.Dead)
	assert.NotEqual(t, cp.Vector{}, vel.Linear)

	press(w, input.State{})
	w.Tick(tick)

	assert.False(t, p.Dead)
	assert.Equal(t, origin, tr.Position)
	assert.Equal(t, cp.Vector{}, vel.Linear)
	assert.Equal(t, shooter.Normal, p.State)
	_, alive := w.Player()
	assert.True(t, alive)
}

func TestRespawnWithHeldDirection(t *testing.T) {
	w := newWorld(t, quietConfig(), playerAt(320, 256))
	id, p, tr, vel := playerOf(t, w)
	origin := p.Origin

	press(w, input.State{Left: true})
	for range 10 {
		w.Tick(tick)
	}
	inject(w, physics.Contact{A: spawnProjectile(w, tr.Position, faction.EnemyBullet), B: id})
	w.Tick(tick)
	require.True(t, p.Dead)

	// respawn runs before the controller, so the held key moves the player
	// one tick away from its origin on the respawn tick itself
	press(w, input.State{Right: true})
	w.Tick(tick)

	assert.False(t, p.Dead)
	assert.Equal(t, geom.Right, p.Facing)
	assert.Equal(t, cp.Vector{X: 300}, vel.Linear)
	assert.InDelta(t, origin.X+300*tick, tr.Position.X, 1e-9)
	assert.InDelta(t, origin.Y, tr.Position.Y, 1e-9)
}

func TestRespawnEndsDash(t *testing.T) {
	w := newWorld(t, quietConfig(), playerAt(320, 256))
	id, p, _, _ := playerOf(t, w)
	body := dashBody(t, w)
	normal := w.Config.Table().Groups(faction.Player)

	press(w, input.State{Dash: true})
	inject(w, physics.Contact{A: id, B: spawnProjectile(w, cp.Vector{}, faction.EnemyBullet)})
	w.Tick(tick)
	require.Equal(t, shooter.Dashing, p.State)
	require.True(t, p.Dead)

	press(w, input.State{})
	w.Tick(tick)
	assert.Equal(t, shooter.Normal, p.State)
	assert.Equal(t, normal, body.Groups)
}

func TestRespawnedPlayerActsOnSameTick(t *testing.T) {
	w := newWorld(t, quietConfig(), playerAt(320, 256))
	id, p, _, _ := playerOf(t, w)

	inject(w, physics.Contact{A: id, B: spawnProjectile(w, cp.Vector{}, faction.EnemyBullet)})
	w.Tick(tick)
	require.True(t, p.Dead)

	// the respawn runs first, so this tick's fire is honored
	press(w, input.State{Fire: true})
	w.Tick(tick)
	assert.False(t, p.Dead)
	assert.Equal(t, 1, w.ProjectileCount())
}

func TestDespawnPolicy(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.Death = config.DeathDespawn
	w := newWorld(t, cfg, playerAt(320, 256), enemyAt(100, 100, ""))
	id, _, _, _ := playerOf(t, w)

	inject(w, physics.Contact{A: spawnProjectile(w, cp.Vector{}, faction.EnemyBullet), B: id})
	w.Tick(tick)
	_, alive := w.Player()
	require.True(t, alive, "removal happens on the following tick")

	w.Tick(tick)
	_, alive = w.Player()
	assert.False(t, alive)

	camera := w.Camera().Position
	assert.NotPanics(t, func() {
		for range 60 {
			w.Tick(tick)
		}
	})
	assert.Equal(t, camera, w.Camera().Position)
	assert.Len(t, enemies(w), 1)
}
