package shooter_test

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/config"
	"github.com/plus3/astro/ecs"
	"github.com/plus3/astro/faction"
	"github.com/plus3/astro/level"
	"github.com/plus3/astro/physics"
	"github.com/plus3/astro/shooter"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

func playerAt(x, y int) level.EntityInstance {
	return level.EntityInstance{Identifier: level.PlayerIdentifier, Px: [2]int{x, y}}
}

func enemyAt(x, y int, rotation string) level.EntityInstance {
	e := level.EntityInstance{Identifier: level.EnemyIdentifier, Px: [2]int{x, y}}
	if rotation != "" {
		e.Fields = []level.FieldInstance{{Identifier: level.RotationField, Value: rotation}}
	}
	return e
}

func testLevel(entities ...level.EntityInstance) *level.Level {
	return &level.Level{
		Identifier: "Test",
		PxWid:      640,
		PxHei:      512,
		GridSize:   32,
		Entities:   entities,
	}
}

// quietConfig keeps enemies from firing during a test unless asked to.
func quietConfig() config.Config {
	cfg := config.Default()
	cfg.Enemy.Fire = config.FireFixed
	cfg.Enemy.FixedInterval = 1 << 40
	cfg.Seed = 1
	return cfg
}

func newWorld(t testing.TB, cfg config.Config, entities ...level.EntityInstance) *shooter.World {
	t.Helper()
	w, err := shooter.NewWorld(cfg, testLevel(entities...), shooter.WithoutPhysics())
	require.NoError(t, err)
	return w
}

func playerOf(t testing.TB, w *shooter.World) (ecs.EntityId, *shooter.Player, *shooter.Transform, *shooter.Velocity) {
	t.Helper()
	id, ok := w.Player()
	require.True(t, ok)
	return id,
		ecs.ReadComponent[shooter.Player](w.Storage, id),
		ecs.ReadComponent[shooter.Transform](w.Storage, id),
		ecs.ReadComponent[shooter.Velocity](w.Storage, id)
}

func enemies(w *shooter.World) []ecs.EntityId {
	var ids []ecs.EntityId
	for id := range ecs.NewView[struct {
		ecs.EntityId
		*shooter.Enemy
	}](w.Storage).Iter() {
		ids = append(ids, id)
	}
	return ids
}

type projectileView struct {
	ecs.EntityId
	*shooter.Projectile
	*shooter.Transform
	*shooter.Velocity
}

func projectiles(w *shooter.World) []projectileView {
	var out []projectileView
	for _, p := range ecs.NewView[projectileView](w.Storage).Iter() {
		out = append(out, p)
	}
	return out
}

// spawnProjectile adds a projectile right away, bypassing the command buffer.
func spawnProjectile(w *shooter.World, pos cp.Vector, f faction.Faction) ecs.EntityId {
	comps := shooter.ProjectileComponents(w.Config, pos, cp.Vector{X: 1}, f, 0)
	// keep it in place so only the tested rule can remove it
	for i, c := range comps {
		if _, ok := c.(shooter.Velocity); ok {
			comps[i] = shooter.Velocity{}
		}
	}
	return w.Storage.Spawn(comps...)
}

func inject(w *shooter.World, pairs ...physics.Contact) {
	c := w.Contacts()
	c.Began = append(c.Began[:0], pairs...)
}
