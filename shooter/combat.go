package shooter

import (
	"fmt"
	"log/slog"

	"github.com/plus3/astro/config"
	"github.com/plus3/astro/ecs"
	"github.com/plus3/astro/faction"
	"github.com/plus3/astro/physics"
)

// Class is what combat needs to know about one side of a contact.
type Class uint8

const (
	ClassOther Class = iota
	ClassPlayer
	ClassEnemy
	ClassWall
	ClassProjectile
)

// Classification is the class of an entity plus, for projectiles, the
// faction that fired it.
type Classification struct {
	Class   Class
	Faction faction.Faction
}

// Classifier looks up the classification of an entity.
type Classifier func(ecs.EntityId) Classification

// StorageClassifier classifies entities by the components they carry.
func StorageClassifier(storage *ecs.Storage) Classifier {
	return func(id ecs.EntityId) Classification {
		if p := ecs.ReadComponent[Projectile](storage, id); p != nil {
			return Classification{Class: ClassProjectile, Faction: p.Faction}
		}
		switch {
		case ecs.ReadComponent[Player](storage, id) != nil:
			return Classification{Class: ClassPlayer, Faction: faction.Player}
		case ecs.ReadComponent[Enemy](storage, id) != nil:
			return Classification{Class: ClassEnemy, Faction: faction.Enemy}
		case ecs.ReadComponent[Wall](storage, id) != nil:
			return Classification{Class: ClassWall, Faction: faction.Wall}
		}
		return Classification{Class: ClassOther}
	}
}

type EffectKind uint8

const (
	DespawnProjectile EffectKind = iota
	DespawnEnemy
	KillPlayer
)

func (k EffectKind) String() string {
	switch k {
	case DespawnProjectile:
		return "DespawnProjectile"
	case DespawnEnemy:
		return "DespawnEnemy"
	case KillPlayer:
		return "KillPlayer"
	}
	return fmt.Sprintf("EffectKind(%d)", uint8(k))
}

type Effect struct {
	Kind   EffectKind
	Entity ecs.EntityId
}

// Resolve maps contact-begin pairs to effects. The first side found to be a
// projectile decides the outcome; the other side is only affected when it is
// the opposing actor. Each projectile and each target is resolved at most
// once.
func Resolve(contacts []physics.Contact, classify Classifier) []Effect {
	var effects []Effect
	resolved := make(map[ecs.EntityId]struct{})
	done := func(id ecs.EntityId) bool {
		_, ok := resolved[id]
		return ok
	}

	for _, c := range contacts {
		a, b := classify(c.A), classify(c.B)

		projectile, other := c.A, c.B
		pc, oc := a, b
		switch {
		case a.Class == ClassProjectile:
		case b.Class == ClassProjectile:
			projectile, other = c.B, c.A
			pc, oc = b, a
		default:
			continue
		}

		if done(projectile) {
			continue
		}
		resolved[projectile] = struct{}{}

		switch {
		case pc.Faction == faction.PlayerBullet && oc.Class == ClassEnemy && !done(other):
			resolved[other] = struct{}{}
			effects = append(effects, Effect{Kind: DespawnEnemy, Entity: other})
		case pc.Faction == faction.EnemyBullet && oc.Class == ClassPlayer && !done(other):
			resolved[other] = struct{}{}
			effects = append(effects, Effect{Kind: KillPlayer, Entity: other})
		}
		effects = append(effects, Effect{Kind: DespawnProjectile, Entity: projectile})
	}
	return effects
}

// CombatSystem applies the effects of this tick's contacts. Despawns and the
// dead flag go through the command buffer, so they land after every system
// has run.
type CombatSystem struct {
	Config   config.Config
	Contacts ecs.Singleton[physics.Contacts]
	Score    ecs.Singleton[Scoreboard]
}

func (s *CombatSystem) Execute(frame *ecs.UpdateFrame) {
	contacts := s.Contacts.Get()
	if contacts == nil || len(contacts.Began) == 0 {
		return
	}
	score := s.Score.Get()
	if score == nil {
		score = &Scoreboard{}
	}
	storage := frame.Storage

	for _, e := range Resolve(contacts.Began, StorageClassifier(storage)) {
		switch e.Kind {
		case DespawnProjectile:
			frame.Commands.Delete(e.Entity)

		case DespawnEnemy:
			frame.Commands.Delete(e.Entity)
			score.Kills++
			score.Streak++
			score.BestStreak = max(score.BestStreak, score.Streak)
			slog.Debug("enemy destroyed", "entity", e.Entity, "kills", score.Kills)

		case KillPlayer:
			if s.Config.Player.Invulnerable {
				continue
			}
			id := e.Entity
			score.Deaths++
			score.Streak = 0
			frame.Commands.Defer(func() {
				if p := ecs.ReadComponent[Player](storage, id); p != nil {
					p.Dead = true
				}
			})
			slog.Debug("player hit", "entity", id, "deaths", score.Deaths)
		}
	}
	contacts.Began = contacts.Began[:0]
}
