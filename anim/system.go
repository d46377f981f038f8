package anim

// System is extra per-pass behavior run by the Scheduler after every animator was ticked,
// such as debug overlays or game logic reacting to animated values.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame describes one scheduler pass.
type UpdateFrame struct {
	Now       float64
	DeltaTime float64
	Commands  *Commands
	Registry  *Registry
}
