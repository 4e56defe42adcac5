package ecs

// System represents a behavior that operates on entities with specific components.
// Systems are structs; their Query and Singleton fields are bound by the
// Scheduler, and any other fields persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame is what a system sees for one tick.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

// NewUpdateFrame creates a frame with an empty command buffer. Tests use it to
// drive a single system without a Scheduler.
func NewUpdateFrame(dt float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  NewCommands(),
		Storage:   storage,
	}
}
