// Package shooter holds the gameplay of the arcade shooter: the actor
// controllers, the projectile lifecycle, combat resolution and the camera,
// all written as ECS systems, plus the assembly of a playable world from a
// config and a level.
package shooter

import (
	"fmt"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/config"
	"github.com/plus3/astro/ecs"
	"github.com/plus3/astro/faction"
	"github.com/plus3/astro/input"
	"github.com/plus3/astro/level"
	"github.com/plus3/astro/physics"
)

type options struct {
	physics    bool
	components []func(*ecs.ComponentRegistry)
}

type Option func(*options)

// WithoutPhysics replaces the physics space with plain velocity integration.
// No contacts are produced; tests inject them into the Contacts singleton.
func WithoutPhysics() Option {
	return func(o *options) {
		o.physics = false
	}
}

// WithComponents registers extra component types, such as the debug UI's,
// in the world's registry.
func WithComponents(register ...func(*ecs.ComponentRegistry)) Option {
	return func(o *options) {
		o.components = append(o.components, register...)
	}
}

// World is a running game: storage, systems and the physics space.
type World struct {
	Config    config.Config
	Level     *level.Level
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler
	Physics   *physics.World

	player ecs.EntityId
}

// NewWorld builds a world from a validated config and a level.
func NewWorld(cfg config.Config, lvl *level.Level, opts ...Option) (*World, error) {
	o := options{physics: true}
	for _, opt := range opts {
		opt(&o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	spawns, err := lvl.Spawns()
	if err != nil {
		return nil, err
	}

	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	for _, register := range o.components {
		register(registry)
	}
	storage := ecs.NewStorage(registry)

	w := &World{
		Config:    cfg,
		Level:     lvl,
		Storage:   storage,
		Scheduler: ecs.NewScheduler(storage),
	}

	ecs.NewSingleton(storage, input.State{})
	ecs.NewSingleton(storage, physics.Contacts{})
	ecs.NewSingleton(storage, Scoreboard{})
	rng := ecs.NewSingleton(storage, NewRng(cfg.Seed))
	ecs.NewSingleton(storage, Camera{
		Zoom:     cfg.Camera.Zoom,
		Viewport: cp.Vector{X: float64(cfg.Window.Width), Y: float64(cfg.Window.Height)},
		World:    lvl.Bounds(),
		Position: lvl.Bounds().Center(),
	})

	if o.physics {
		w.Physics = physics.NewWorld(cfg.Physics.Substeps)
		w.Physics.Install(storage)
	}

	table := cfg.Table()
	for _, rect := range lvl.Walls() {
		storage.Spawn(
			Wall{},
			Transform{Position: rect.Center()},
			physics.Body{
				Kind:   physics.Static,
				Size:   cp.Vector{X: rect.Width(), Y: rect.Height()},
				Groups: table.Groups(faction.Wall),
			},
		)
	}

	for _, s := range spawns {
		switch s.Kind {
		case level.PlayerSpawn:
			if w.player != 0 {
				slog.Debug("ignoring extra player spawn", "level", lvl.Identifier, "position", s.Position)
				continue
			}
			w.player = storage.Spawn(
				NewPlayer(cfg, s.Position, s.Facing),
				Transform{Position: s.Position},
				Velocity{},
				Impulse{},
				SpriteFrame{},
				physics.Body{
					Kind:   physics.Dynamic,
					Size:   cfg.Player.Collider.Size,
					Offset: cfg.Player.Collider.Offset,
					Groups: table.Groups(faction.Player),
					Mass:   1,
				},
			)
		case level.EnemySpawn:
			storage.Spawn(
				NewEnemy(cfg, s.Facing, rng.Get()),
				Transform{Position: s.Position},
				Velocity{},
				SpriteFrame{},
				physics.Body{
					Kind:   physics.Dynamic,
					Size:   cfg.Enemy.Collider.Size,
					Offset: cfg.Enemy.Collider.Offset,
					Groups: table.Groups(faction.Enemy),
					Mass:   cfg.Enemy.Mass,
				},
			)
		}
	}

	w.Scheduler.Register(&RespawnSystem{Policy: cfg.Player.Death})
	w.Scheduler.Register(&PlayerControlSystem{Config: cfg})
	w.Scheduler.Register(&EnemyFireSystem{Config: cfg})
	if o.physics {
		w.Scheduler.Register(&physics.StepSystem{World: w.Physics})
	} else {
		w.Scheduler.Register(&physics.IntegrateSystem{})
	}
	w.Scheduler.Register(&ProjectileBoundsSystem{Bounds: cfg.ProjectileBounds()})
	w.Scheduler.Register(&CombatSystem{Config: cfg})
	w.Scheduler.Register(&CameraFollowSystem{Clamp: cfg.Camera.Clamp})
	w.Scheduler.Register(&SpriteFrameSystem{})

	// settle the camera before the first frame is drawn
	if cam, err := CameraOf(storage); err == nil {
		if tr := ecs.ReadComponent[Transform](storage, w.player); tr != nil {
			cam.Position = Follow(tr.Position, cam.HalfExtents(), cam.World, cfg.Camera.Clamp)
		}
	}

	slog.Debug("world ready",
		"level", lvl.Identifier,
		"entities", storage.Count(),
		"physics", o.physics,
	)
	return w, nil
}

// Tick advances the simulation by dt seconds.
func (w *World) Tick(dt float64) {
	w.Scheduler.Once(dt)
}

// Player returns the player entity while it is alive.
func (w *World) Player() (ecs.EntityId, bool) {
	return w.player, w.Storage.Alive(w.player)
}

// Input returns the input snapshot the next tick will read.
func (w *World) Input() *input.State {
	var state *input.State
	w.Storage.ReadSingleton(&state)
	return state
}

func (w *World) Camera() *Camera {
	cam, _ := CameraOf(w.Storage)
	return cam
}

func (w *World) Scoreboard() *Scoreboard {
	var score *Scoreboard
	w.Storage.ReadSingleton(&score)
	return score
}

// Contacts returns the contact singleton; tests running WithoutPhysics
// write into it.
func (w *World) Contacts() *physics.Contacts {
	var contacts *physics.Contacts
	w.Storage.ReadSingleton(&contacts)
	return contacts
}

// ProjectileCount returns the number of live projectiles.
func (w *World) ProjectileCount() int {
	return ecs.NewView[struct{ *Projectile }](w.Storage).Count()
}

func (w *World) String() string {
	return fmt.Sprintf("World(%s, %d entities)", w.Level.Identifier, w.Storage.Count())
}
