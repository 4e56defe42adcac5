package shooter_test

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/config"
	"github.com/plus3/astro/ecs"
	"github.com/plus3/astro/faction"
	"github.com/plus3/astro/physics"
	"github.com/plus3/astro/shooter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func componentOf[T any](t *testing.T, comps []any) T {
	t.Helper()
	for _, c := range comps {
		if v, ok := c.(T); ok {
			return v
		}
	}
	require.FailNow(t, "component not found")
	var zero T
	return zero
}

func TestProjectileComponents(t *testing.T) {
	cfg := config.Default()
	comps := shooter.ProjectileComponents(cfg, cp.Vector{X: 5, Y: 6}, cp.Vector{X: 0, Y: 3}, faction.EnemyBullet, 42)

	tr := componentOf[shooter.Transform](t, comps)
	assert.Equal(t, cp.Vector{X: 5, Y: 6}, tr.Position)
	assert.InDelta(t, math.Pi/2, tr.Rotation, 1e-9)

	vel := componentOf[shooter.Velocity](t, comps)
	assert.InDelta(t, 0, vel.Linear.X, 1e-9)
	assert.InDelta(t, 1300, vel.Linear.Y, 1e-9)

	proj := componentOf[shooter.Projectile](t, comps)
	assert.Equal(t, faction.EnemyBullet, proj.Faction)
	assert.Equal(t, ecs.EntityId(42), proj.Owner)

	body := componentOf[physics.Body](t, comps)
	assert.Equal(t, cfg.Table().Groups(faction.EnemyBullet), body.Groups)
	assert.True(t, body.Sensor)
	assert.Equal(t, cp.Vector{X: 15, Y: 4}, body.Size)
}

func TestProjectileZeroDirectionFiresRight(t *testing.T) {
	comps := shooter.ProjectileComponents(config.Default(), cp.Vector{}, cp.Vector{}, faction.PlayerBullet, 0)
	vel := componentOf[shooter.Velocity](t, comps)
	assert.Equal(t, cp.Vector{X: 1300}, vel.Linear)
}

func TestSpawnProjectileIsDeferred(t *testing.T) {
	w := newWorld(t, quietConfig(), playerAt(320, 256))
	cmds := ecs.NewCommands()

	shooter.SpawnProjectile(cmds, w.Config, cp.Vector{}, cp.Vector{X: -1}, faction.PlayerBullet, 0)
	assert.Equal(t, 0, w.ProjectileCount())

	cmds.Flush(w.Storage)
	assert.Equal(t, 1, w.ProjectileCount())
}

func TestOutOfBoundsProjectilesAreRemoved(t *testing.T) {
	w := newWorld(t, quietConfig(), playerAt(320, 256))

	inside := spawnProjectile(w, cp.Vector{X: 1280, Y: -512}, faction.PlayerBullet)
	left := spawnProjectile(w, cp.Vector{X: -1281, Y: 0}, faction.PlayerBullet)
	above := spawnProjectile(w, cp.Vector{X: 0, Y: 513}, faction.EnemyBullet)

	w.Tick(tick)

	assert.True(t, w.Storage.Alive(inside))
	assert.False(t, w.Storage.Alive(left))
	assert.False(t, w.Storage.Alive(above))

	assert.NotPanics(t, func() {
		w.Storage.Delete(left)
		w.Tick(tick)
	})
	assert.True(t, w.Storage.Alive(inside))
}

func TestProjectileBoundsProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := newWorld(t, quietConfig(), playerAt(320, 256))
		bounds := w.Config.ProjectileBounds()

		pos := cp.Vector{
			X: rapid.Float64Range(-4000, 4000).Draw(rt, "x"),
			Y: rapid.Float64Range(-2000, 2000).Draw(rt, "y"),
		}
		id := spawnProjectile(w, pos, faction.PlayerBullet)

		w.Tick(tick)
		if bounds.Contains(pos) != w.Storage.Alive(id) {
			rt.Fatalf("projectile at %v alive=%v, bounds %v", pos, w.Storage.Alive(id), bounds)
		}

		// removing what is already gone changes nothing
		before := w.Storage.Count()
		w.Storage.Delete(id)
		if !bounds.Contains(pos) && w.Storage.Count() != before {
			rt.Fatalf("second removal changed the entity count")
		}
	})
}
