package shooter

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/config"
	"github.com/plus3/astro/ecs"
	"github.com/plus3/astro/faction"
	"github.com/plus3/astro/geom"
)

// NewEnemy returns an enemy whose fire timer starts with a first cooldown.
func NewEnemy(cfg config.Config, facing geom.Facing, rng *Rng) Enemy {
	return Enemy{
		Facing: facing,
		Fire:   NewTimer(nextCooldown(cfg, rng), Repeating),
	}
}

func nextCooldown(cfg config.Config, rng *Rng) time.Duration {
	switch {
	case cfg.Enemy.Fire == config.FireFixed:
		return cfg.Enemy.FixedInterval
	case rng == nil || rng.Rand == nil:
		return cfg.Enemy.CooldownMax
	}
	span := int64(cfg.Enemy.CooldownMax - cfg.Enemy.CooldownMin)
	return cfg.Enemy.CooldownMin + time.Duration(rng.Int64N(span))
}

// enemyDirection fires to the right only when facing right.
func enemyDirection(f geom.Facing) cp.Vector {
	if f == geom.Right {
		return cp.Vector{X: 1}
	}
	return cp.Vector{X: -1}
}

// EnemyFireSystem fires one enemy projectile per completed cooldown.
type EnemyFireSystem struct {
	Config  config.Config
	Enemies ecs.Query[struct {
		ecs.EntityId
		*Enemy
		*Transform
	}]
	Rng   ecs.Singleton[Rng]
	Score ecs.Singleton[Scoreboard]
}

func (s *EnemyFireSystem) Execute(frame *ecs.UpdateFrame) {
	dt := seconds(frame.DeltaTime)
	rng := s.Rng.Get()
	score := s.Score.Get()

	for id, e := range s.Enemies.Iter() {
		origin := e.Transform.Position.Add(s.Config.Enemy.Muzzle)
		dir := enemyDirection(e.Enemy.Facing)

		e.Enemy.Fire.TickEach(dt, func() {
			SpawnProjectile(frame.Commands, s.Config, origin, dir, faction.EnemyBullet, id)
			if score != nil {
				score.EnemyShots++
			}
			if s.Config.Enemy.Fire == config.FireRandom {
				e.Enemy.Fire.SetDuration(nextCooldown(s.Config, rng))
			}
		})
	}
}
