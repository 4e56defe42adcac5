package shooter

import (
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/config"
	"github.com/plus3/astro/ecs"
	"github.com/plus3/astro/physics"
)

// RespawnSystem runs first in the tick and handles players marked dead on
// the previous tick, according to the death policy.
type RespawnSystem struct {
	Policy  config.DeathPolicy
	Players ecs.Query[playerView]
}

func (s *RespawnSystem) Execute(frame *ecs.UpdateFrame) {
	for id, p := range s.Players.Iter() {
		if !p.Player.Dead {
			continue
		}

		if s.Policy == config.DeathDespawn {
			slog.Debug("player despawned", "entity", id)
			frame.Commands.Delete(id)
			continue
		}

		if p.Body != nil {
			physics.Warp(p.Body, p.Transform, p.Player.Origin)
			p.Body.Groups = p.Player.Groups
		} else {
			p.Transform.Position = p.Player.Origin
		}
		p.Velocity.Linear = cp.Vector{}
		if p.Impulse != nil {
			p.Impulse.Linear = cp.Vector{}
		}
		p.Player.State = Normal
		p.Player.Dead = false
		slog.Debug("player respawned", "entity", id, "origin", p.Player.Origin)
	}
}
