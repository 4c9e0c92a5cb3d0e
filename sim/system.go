package sim

// System is one step of a tick. Systems may declare Singleton fields, which
// the Scheduler wires on Register, and keep their own state between ticks.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame is passed to every system during one tick.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	World     *World
}

func newUpdateFrame(dt float64, world *World, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  commands,
		World:     world,
	}
}
