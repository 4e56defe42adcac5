package shooter

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/ecs"
	"github.com/plus3/astro/faction"
	"github.com/plus3/astro/geom"
	"github.com/plus3/astro/input"
	"github.com/plus3/astro/physics"
)

// The physics package owns the motion components; they are re-exported here
// so gameplay code reads naturally.
type (
	Transform = physics.Transform
	Velocity  = physics.Velocity
	Impulse   = physics.Impulse
)

type DashState uint8

const (
	Normal DashState = iota
	Dashing
)

type Player struct {
	Origin cp.Vector
	Facing geom.Facing
	Dead   bool

	State    DashState
	Dash     Timer
	Cooldown Timer

	// Groups are the collision groups outside of a dash.
	Groups faction.Groups
}

type Enemy struct {
	Facing geom.Facing
	Fire   Timer
}

type Projectile struct {
	Faction faction.Faction
	Owner   ecs.EntityId
}

type Wall struct{}

// SpriteFrame selects the sprite drawn for an entity.
type SpriteFrame struct {
	Index int
	FlipX bool
}

// Camera is the singleton view onto the level.
type Camera struct {
	Position cp.Vector
	Zoom     float64

	// Viewport is the window size in pixels.
	Viewport cp.Vector
	World    geom.Rect
}

// View converts the camera to an input.View for projection.
func (c Camera) View() input.View {
	return input.View{Center: c.Position, Zoom: c.Zoom, Screen: c.Viewport}
}

// HalfExtents is half the visible area in world units.
func (c Camera) HalfExtents() cp.Vector {
	if c.Zoom == 0 {
		return cp.Vector{}
	}
	return cp.Vector{X: c.Viewport.X / c.Zoom / 2, Y: c.Viewport.Y / c.Zoom / 2}
}

// Scoreboard counts what happened during the session.
type Scoreboard struct {
	Kills      int
	Deaths     int
	Shots      int
	EnemyShots int
	Streak     int
	BestStreak int
}

// Rng is the seeded random source of the world.
type Rng struct {
	*rand.Rand
}

// NewRng seeds a PCG source.
func NewRng(seed uint64) Rng {
	return Rng{rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// RegisterComponents registers every component a world uses.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	physics.RegisterComponents(registry)
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[Enemy](registry)
	ecs.RegisterComponent[Projectile](registry)
	ecs.RegisterComponent[Wall](registry)
	ecs.RegisterComponent[SpriteFrame](registry)
}
