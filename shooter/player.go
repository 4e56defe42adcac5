package shooter

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/config"
	"github.com/plus3/astro/ecs"
	"github.com/plus3/astro/faction"
	"github.com/plus3/astro/geom"
	"github.com/plus3/astro/input"
	"github.com/plus3/astro/physics"
)

type playerView struct {
	ecs.EntityId
	*Player
	*Transform
	*Velocity
	Impulse *Impulse      `ecs:"optional"`
	Body    *physics.Body `ecs:"optional"`
}

// NewPlayer returns the player component for a spawn point.
func NewPlayer(cfg config.Config, origin cp.Vector, facing geom.Facing) Player {
	return Player{
		Origin:   origin,
		Facing:   facing,
		Dash:     NewTimer(cfg.Player.DashDuration, Once),
		Cooldown: NewFinishedTimer(cfg.Player.DashCooldown),
		Groups:   cfg.Table().Groups(faction.Player),
	}
}

// PlayerControlSystem turns the input snapshot into velocity, facing,
// dashes and shots.
type PlayerControlSystem struct {
	Config  config.Config
	Players ecs.Query[playerView]
	Input   ecs.Singleton[input.State]
	Camera  ecs.Singleton[Camera]
	Score   ecs.Singleton[Scoreboard]
}

func (s *PlayerControlSystem) Execute(frame *ecs.UpdateFrame) {
	var in input.State
	if state := s.Input.Get(); state != nil {
		in = *state
	}
	dt := seconds(frame.DeltaTime)

	for id, p := range s.Players.Iter() {
		if p.Player.Dead {
			continue
		}

		x, y := input.Axes(in)
		p.Player.Facing = facingFor(p.Player.Facing, x, y)
		dir := geom.Normalize(cp.Vector{X: float64(x), Y: float64(y)})
		p.Velocity.Linear = dir.Mult(s.Config.Player.Speed)

		s.dash(p, in, dt)

		if in.Fire {
			s.fire(frame.Commands, id, p, in)
		}
	}
}

// facingFor applies the horizontal axis first; a vertical input wins.
func facingFor(current geom.Facing, x, y int) geom.Facing {
	switch {
	case x > 0:
		current = geom.Right
	case x < 0:
		current = geom.Left
	}
	switch {
	case y > 0:
		current = geom.Up
	case y < 0:
		current = geom.Down
	}
	return current
}

func (s *PlayerControlSystem) dash(p playerView, in input.State, dt time.Duration) {
	pl := p.Player
	switch pl.State {
	case Dashing:
		if pl.Dash.Tick(dt) > 0 {
			pl.State = Normal
			pl.Cooldown.Reset()
			if p.Body != nil {
				p.Body.Groups = pl.Groups
			}
		}
	case Normal:
		pl.Cooldown.Tick(dt)
		if !in.Dash || !pl.Cooldown.Finished() {
			return
		}
		pl.State = Dashing
		pl.Dash.Reset()
		if p.Impulse != nil {
			p.Impulse.Linear = pl.Facing.Vector().Mult(s.Config.Player.DashImpulse)
		}
		if p.Body != nil {
			p.Body.Groups = pl.Groups.Only(s.Config.Player.DashCollidesWith...)
		}
	}
}

func (s *PlayerControlSystem) fire(cmds *ecs.Commands, id ecs.EntityId, p playerView, in input.State) {
	origin := p.Transform.Position.Add(s.Config.Player.Muzzle)
	dir := p.Player.Facing.Vector()

	if s.Config.Player.Aim == config.AimPointer {
		if in.Captured {
			return
		}
		if cam := s.Camera.Get(); cam != nil && in.CursorInside {
			target := input.Unproject(in.Cursor, cam.View())
			if d := target.Sub(origin); d != (cp.Vector{}) {
				dir = d
			}
		}
	}

	SpawnProjectile(cmds, s.Config, origin, dir, faction.PlayerBullet, id)
	if score := s.Score.Get(); score != nil {
		score.Shots++
	}
}
