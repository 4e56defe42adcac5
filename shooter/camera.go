package shooter

import (
	"errors"

	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/ecs"
	"github.com/plus3/astro/geom"
)

// ErrNoCamera is returned when a storage holds no camera.
var ErrNoCamera = errors.New("no active camera")

// Follow returns the camera position for a tracked target. With clamp set,
// each axis is kept within [world.Min+half, world.Max-half] so the view
// never shows past the world edge; an axis on which the world is smaller
// than the view is centered instead.
func Follow(target, half cp.Vector, world geom.Rect, clamp bool) cp.Vector {
	if !clamp {
		return target
	}
	return cp.Vector{
		X: geom.ClampAxis(target.X, world.Min.X+half.X, world.Max.X-half.X),
		Y: geom.ClampAxis(target.Y, world.Min.Y+half.Y, world.Max.Y-half.Y),
	}
}

// CameraOf returns the camera singleton of storage.
func CameraOf(storage *ecs.Storage) (*Camera, error) {
	var cam *Camera
	if !storage.ReadSingleton(&cam) {
		return nil, ErrNoCamera
	}
	return cam, nil
}

type CameraFollowSystem struct {
	Clamp   bool
	Camera  ecs.Singleton[Camera]
	Players ecs.Query[struct {
		*Player
		*Transform
	}]
}

func (s *CameraFollowSystem) Execute(frame *ecs.UpdateFrame) {
	cam := s.Camera.Get()
	if cam == nil {
		return
	}
	_, p, ok := s.Players.Single()
	if !ok {
		return
	}
	cam.Position = Follow(p.Transform.Position, cam.HalfExtents(), cam.World, s.Clamp)
}
