package shooter

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/config"
	"github.com/plus3/astro/ecs"
	"github.com/plus3/astro/faction"
	"github.com/plus3/astro/geom"
	"github.com/plus3/astro/physics"
)

// ProjectileComponents builds the components of a projectile fired from
// origin. The direction is normalized; a zero direction fires along +x.
func ProjectileComponents(cfg config.Config, origin, direction cp.Vector, f faction.Faction, owner ecs.EntityId) []any {
	dir := geom.Normalize(direction)
	if dir == (cp.Vector{}) {
		dir = cp.Vector{X: 1}
	}
	vel := dir.Mult(cfg.Projectile.Speed)

	return []any{
		Transform{Position: origin, Rotation: math.Atan2(vel.Y, vel.X)},
		Velocity{Linear: vel},
		Projectile{Faction: f, Owner: owner},
		physics.Body{
			Kind:   physics.Dynamic,
			Size:   cfg.Projectile.Collider.Size,
			Offset: cfg.Projectile.Collider.Offset,
			Groups: cfg.Table().Groups(f),
			Mass:   1,
			Sensor: true,
		},
	}
}

// SpawnProjectile queues a projectile; it appears when the commands flush.
func SpawnProjectile(cmds *ecs.Commands, cfg config.Config, origin, direction cp.Vector, f faction.Faction, owner ecs.EntityId) {
	cmds.Spawn(ProjectileComponents(cfg, origin, direction, f, owner)...)
}

// ProjectileBoundsSystem removes projectiles that left the bounds rectangle,
// whether or not they hit anything.
type ProjectileBoundsSystem struct {
	Bounds      geom.Rect
	Projectiles ecs.Query[struct {
		ecs.EntityId
		*Projectile
		*Transform
	}]
}

func (s *ProjectileBoundsSystem) Execute(frame *ecs.UpdateFrame) {
	for id, p := range s.Projectiles.Iter() {
		if !s.Bounds.Contains(p.Transform.Position) {
			frame.Commands.Delete(id)
		}
	}
}
