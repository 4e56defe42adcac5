// Package physics binds entities to a Chipmunk2D space: bodies are created
// from Body components, velocities and impulses are pushed in before each
// step, positions are pulled back afterwards, and contact-begin pairs are
// published to the Contacts singleton.
package physics

import (
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/kamstrup/intmap"
	"github.com/plus3/astro/ecs"
)

// World owns a zero-gravity Chipmunk space and the entity to body mapping.
type World struct {
	space    *cp.Space
	bodies   *intmap.Map[ecs.EntityId, *handle]
	substeps int

	began []Contact
	seen  map[Contact]struct{}
}

// NewWorld creates an empty space stepped substeps times per tick.
func NewWorld(substeps int) *World {
	w := &World{
		space:    cp.NewSpace(),
		bodies:   intmap.New[ecs.EntityId, *handle](64),
		substeps: max(substeps, 1),
		seen:     make(map[Contact]struct{}),
	}
	w.space.SetGravity(cp.Vector{})

	handler := w.space.NewWildcardCollisionHandler(0)
	handler.BeginFunc = w.begin
	return w
}

// Install detaches bodies of deleted entities from the space.
func (w *World) Install(storage *ecs.Storage) {
	storage.OnDelete(w.Detach)
}

// Space exposes the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	return w.space
}

// BodyCount returns the number of attached bodies.
func (w *World) BodyCount() int {
	return w.bodies.Len()
}

// Attach creates the Chipmunk body and shape for an entity.
func (w *World) Attach(id ecs.EntityId, b *Body, t Transform) {
	if b.handle != nil {
		return
	}

	var body *cp.Body
	switch b.Kind {
	case Static:
		body = cp.NewStaticBody()
	case Kinematic:
		body = cp.NewKinematicBody()
	default:
		mass := b.Mass
		if mass <= 0 {
			mass = 1
		}
		// infinite moment: actors and bullets never spin
		body = cp.NewBody(mass, cp.INFINITY)
	}
	body.UserData = id
	body.SetPosition(t.Position)
	body.SetAngle(t.Rotation)

	half := cp.Vector{X: b.Size.X / 2, Y: b.Size.Y / 2}
	shape := cp.NewBox2(body, cp.BB{
		L: b.Offset.X - half.X,
		B: b.Offset.Y - half.Y,
		R: b.Offset.X + half.X,
		T: b.Offset.Y + half.Y,
	}, 0)
	shape.SetSensor(b.Sensor)
	shape.SetFilter(filterOf(b.Groups))
	shape.UserData = id

	w.space.AddBody(body)
	w.space.AddShape(shape)

	h := &handle{body: body, shape: shape, groups: b.Groups, synced: t.Position}
	b.handle = h
	w.bodies.Put(id, h)
}

// Detach removes an entity's body from the space. Unknown ids are ignored.
func (w *World) Detach(id ecs.EntityId) {
	h, ok := w.bodies.Get(id)
	if !ok {
		return
	}
	w.space.RemoveShape(h.shape)
	w.space.RemoveBody(h.body)
	w.bodies.Del(id)
	slog.Debug("physics body detached", "entity", id)
}

// Warp teleports an entity and stops it. The body, when attached, moves
// immediately instead of on the next step.
func Warp(b *Body, t *Transform, pos cp.Vector) {
	t.Position = pos
	if b.handle == nil || b.Kind == Static {
		return
	}
	b.handle.body.SetPosition(pos)
	b.handle.body.SetVelocityVector(cp.Vector{})
	b.handle.synced = pos
}

// Step advances the simulation and returns the contact-begin pairs of this
// step, each unordered pair at most once.
func (w *World) Step(dt float64) []Contact {
	w.began = w.began[:0]
	clear(w.seen)

	sub := dt / float64(w.substeps)
	for i := 0; i < w.substeps; i++ {
		w.space.Step(sub)
	}

	out := make([]Contact, len(w.began))
	copy(out, w.began)
	return out
}

func (w *World) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Bodies()
	idA, okA := a.UserData.(ecs.EntityId)
	idB, okB := b.UserData.(ecs.EntityId)
	if !okA || !okB {
		return true
	}

	key := Contact{A: min(idA, idB), B: max(idA, idB)}
	if _, dup := w.seen[key]; !dup {
		w.seen[key] = struct{}{}
		w.began = append(w.began, Contact{A: idA, B: idB})
	}
	return true
}
