package ecs

// UpdateFrame is passed to every system during one tick.
type UpdateFrame struct {
	DeltaTime float64
	Tick      uint64
	World     *World
	Commands  *Commands
}

func newUpdateFrame(w *World) *UpdateFrame {
	return &UpdateFrame{
		World:    w,
		Commands: newCommands(),
	}
}
