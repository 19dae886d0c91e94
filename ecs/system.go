package ecs

// System is a unit of per-tick behavior, typically one or more bulk operations
// over the frame's World. Returning an error aborts the tick.
type System interface {
	Execute(frame *UpdateFrame) error
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *UpdateFrame) error

// Execute calls f(frame).
func (f SystemFunc) Execute(frame *UpdateFrame) error {
	return f(frame)
}
