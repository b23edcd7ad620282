package engine

import "github.com/san-kum/kinetic/internal/vector"

// Listener receives notifications from a running physics simulation,
// including on every animation frame.
//
// Callbacks may synchronously call back into the engine, including
// Start/Stop and force or listener registration; the engine snapshots its
// listener list before each notification pass, so such mutations never
// affect the pass in progress.
type Listener interface {
	// OnStart notifies the start of the simulation.
	OnStart()

	// OnUpdate notifies another processed frame, after the frame's values
	// have been calculated. The vectors are owned by the engine and are only
	// valid for the duration of the callback; use Engine.State for a copy.
	OnUpdate(x, v *vector.Vector)

	// OnSettle notifies that the total energy of the system fell below the
	// settle threshold.
	OnSettle()

	// OnStop notifies the end of the simulation, either after settling or
	// after an explicit Stop.
	OnStop()
}

// ListenerFuncs adapts a set of optional callbacks to the Listener
// interface. Nil fields are simply skipped, so callers implement only the
// notifications they care about.
type ListenerFuncs struct {
	Start  func()
	Update func(x, v *vector.Vector)
	Settle func()
	Stop   func()
}

var _ Listener = (*ListenerFuncs)(nil)

func (l *ListenerFuncs) OnStart() {
	if l.Start != nil {
		l.Start()
	}
}

func (l *ListenerFuncs) OnUpdate(x, v *vector.Vector) {
	if l.Update != nil {
		l.Update(x, v)
	}
}

func (l *ListenerFuncs) OnSettle() {
	if l.Settle != nil {
		l.Settle()
	}
}

func (l *ListenerFuncs) OnStop() {
	if l.Stop != nil {
		l.Stop()
	}
}
