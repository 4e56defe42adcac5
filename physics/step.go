package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/plus3/astro/ecs"
)

type bodyView struct {
	ecs.EntityId
	*Body
	*Transform
	Velocity *Velocity `ecs:"optional"`
	Impulse  *Impulse  `ecs:"optional"`
}

// StepSystem runs the physics step between the controllers that set
// velocities and the systems that react to contacts.
type StepSystem struct {
	World    *World
	Bodies   ecs.Query[bodyView]
	Contacts ecs.Singleton[Contacts]
}

func (s *StepSystem) Execute(frame *ecs.UpdateFrame) {
	for id, item := range s.Bodies.Iter() {
		if !item.Body.Attached() {
			s.World.Attach(id, item.Body, *item.Transform)
		}
		push(item)
	}

	contacts := s.World.Step(frame.DeltaTime)

	for _, item := range s.Bodies.Iter() {
		h := item.Body.handle
		if h == nil || item.Body.Kind == Static {
			continue
		}
		item.Transform.Position = h.body.Position()
		h.synced = item.Transform.Position
		if item.Velocity != nil {
			item.Velocity.Linear = h.body.Velocity()
		}
	}

	s.Contacts.Get().Began = contacts
}

func push(item bodyView) {
	h := item.Body.handle
	if h.groups != item.Body.Groups {
		h.shape.SetFilter(filterOf(item.Body.Groups))
		h.groups = item.Body.Groups
	}
	if item.Body.Kind == Static {
		return
	}

	// a Transform edited outside physics is a teleport
	if item.Transform.Position != h.synced {
		h.body.SetPosition(item.Transform.Position)
		h.synced = item.Transform.Position
	}
	if item.Velocity != nil {
		h.body.SetVelocityVector(item.Velocity.Linear)
	}
	if item.Impulse != nil && item.Impulse.Linear != (cp.Vector{}) {
		if item.Body.Kind == Dynamic {
			h.body.ApplyImpulseAtLocalPoint(item.Impulse.Linear, cp.Vector{})
		}
		item.Impulse.Linear = cp.Vector{}
	}
}

// IntegrateSystem moves entities without a physics space: position advances
// by velocity plus any pending impulse (unit mass), and no contacts are made.
type IntegrateSystem struct {
	Movers ecs.Query[struct {
		*Transform
		*Velocity
		Impulse *Impulse `ecs:"optional"`
	}]
}

func (s *IntegrateSystem) Execute(frame *ecs.UpdateFrame) {
	for _, m := range s.Movers.Iter() {
		v := m.Velocity.Linear
		if m.Impulse != nil {
			v = v.Add(m.Impulse.Linear)
			m.Impulse.Linear = cp.Vector{}
		}
		m.Velocity.Linear = v
		m.Transform.Position = m.Transform.Position.Add(v.Mult(frame.DeltaTime))
	}
}
