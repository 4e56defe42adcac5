package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/ecs"
	"github.com/plus3/astro/faction"
)

// Transform is an entity's world position (y up) and rotation in radians.
type Transform struct {
	Position cp.Vector
	Rotation float64
}

// Velocity is the linear velocity pushed into the body every step.
type Velocity struct {
	Linear cp.Vector
}

// Impulse is applied once on the next step and then cleared.
type Impulse struct {
	Linear cp.Vector
}

type Kind uint8

const (
	Dynamic Kind = iota
	Kinematic
	Static
)

// Body describes the collider of an entity. The step system creates the
// Chipmunk body the first time it sees the component; Groups may be changed
// at any time and is pushed to the shape on the next step.
type Body struct {
	Kind   Kind
	Size   cp.Vector
	Offset cp.Vector
	Groups faction.Groups
	Mass   float64
	Sensor bool

	handle *handle
}

type handle struct {
	body   *cp.Body
	shape  *cp.Shape
	groups faction.Groups
	synced cp.Vector
}

// Attached reports whether the body lives in a physics space.
func (b *Body) Attached() bool {
	return b.handle != nil
}

// Position returns the simulated position of an attached body.
func (b *Body) Position() (cp.Vector, bool) {
	if b.handle == nil {
		return cp.Vector{}, false
	}
	return b.handle.body.Position(), true
}

// Contact is a contact-begin event between two entities.
type Contact struct {
	A, B ecs.EntityId
}

// Contacts is the singleton holding the contact-begin events of the last step.
// It is overwritten every step, so each event is seen by one tick only.
type Contacts struct {
	Began []Contact
}

// RegisterComponents registers the physics component types.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Impulse](registry)
	ecs.RegisterComponent[Body](registry)
}
