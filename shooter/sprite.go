package shooter

import (
	"github.com/plus3/astro/ecs"
	"github.com/plus3/astro/geom"
)

// playerFrames maps a facing to the player's sprite sheet index.
var playerFrames = [...]int{
	geom.Right: 0,
	geom.Left:  1,
	geom.Up:    2,
	geom.Down:  3,
}

// SpriteFrameSystem picks sprite frames from facings.
type SpriteFrameSystem struct {
	Players ecs.Query[struct {
		*Player
		*SpriteFrame
	}]
	Enemies ecs.Query[struct {
		*Enemy
		*SpriteFrame
	}]
}

func (s *SpriteFrameSystem) Execute(frame *ecs.UpdateFrame) {
	for _, p := range s.Players.Iter() {
		p.SpriteFrame.Index = playerFrames[p.Player.Facing]
	}
	for _, e := range s.Enemies.Iter() {
		e.SpriteFrame.FlipX = e.Enemy.Facing == geom.Left
	}
}
