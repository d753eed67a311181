package engine

// System is a unit of per-tick simulation logic
type System interface {
	// Name identifies the system in logs and halt reports
	Name() string

	// Priority orders systems within a tick, lower runs first
	Priority() int

	// Update advances the system by one tick
	// A panic is treated as an invariant violation: the system is halted and reported
	Update()
}

// Releaser is implemented by systems that hold event readers
// The scheduler calls Release once when the system halts; a halted reader would otherwise pin its channel's log
type Releaser interface {
	Release()
}
