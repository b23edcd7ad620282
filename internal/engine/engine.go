// Package engine runs an ongoing physics simulation of a single object with
// multiple forces applied to it.
//
// An Engine owns the simulation lifecycle: it is driven one frame at a time
// by an injected FrameScheduler, checks on every frame whether the system
// has settled (negligible kinetic and potential energy), and otherwise
// delegates numerical stepping to an injected Solver. Listeners observe
// lifecycle transitions and the interpolated state of every frame.
//
// An Engine is confined to a single logical timeline: it never creates
// goroutines, and it must be driven by one scheduling source at a time. If a
// host drives one engine from several goroutines, synchronization is the
// host's responsibility.
package engine

import (
	"errors"

	"github.com/google/uuid"
	"github.com/san-kum/kinetic/internal/force"
	"github.com/san-kum/kinetic/internal/vector"
)

var (
	// ErrNilScheduler reports construction without a frame scheduler. The
	// engine cannot run without one.
	ErrNilScheduler = errors.New("engine: frame scheduler is required")

	// ErrNilSolver reports construction without a stepping strategy.
	ErrNilSolver = errors.New("engine: solver is required")

	// ErrTimeScale reports a non-positive simulation speed scale.
	ErrTimeScale = errors.New("engine: time scale must be positive")
)

const (
	frameInterval       = 1.0 / 60
	maxFramesToSimulate = 4

	// maxDelta caps the elapsed time consumed by a single frame. A long
	// pause between frames would otherwise force the solver through an
	// unbounded number of substeps.
	maxDelta = maxFramesToSimulate * frameInterval

	// settleThreshold is the minimum energy required to keep simulating.
	settleThreshold = force.SomeEnergy

	// unresolvedTime marks a frame or activation timestamp that has not
	// been observed yet.
	unresolvedTime = -1.0
)

// ForceHandle identifies a registered force. Handles are issued by AddForce
// and stay valid until the force is removed.
type ForceHandle uuid.UUID

func (h ForceHandle) String() string {
	return uuid.UUID(h).String()
}

// registration pairs a force with the simulation time at which it became
// active. Registration order is preserved.
type registration struct {
	handle      ForceHandle
	force       force.Force
	activatedAt float64
}

// Engine simulates one object. Construct it with New, register forces and
// listeners, then Start it.
type Engine struct {
	solver    Solver
	scheduler FrameScheduler
	timeScale float64

	listeners []Listener
	forces    []registration

	current      State
	previous     State
	interpolated State

	active    bool
	scheduled bool
	lastTime  float64
}

// New creates an engine that steps with the given solver and receives frames
// from the given scheduler. Both are required.
func New(solver Solver, scheduler FrameScheduler) (*Engine, error) {
	if solver == nil {
		return nil, ErrNilSolver
	}
	if scheduler == nil {
		return nil, ErrNilScheduler
	}
	return &Engine{
		solver:    solver,
		scheduler: scheduler,
		timeScale: 1,
		lastTime:  unresolvedTime,
	}, nil
}

// SetTimeScale sets the global slow-motion multiplier. 1 is real time,
// larger values slow the simulation down.
func (e *Engine) SetTimeScale(scale float64) error {
	if scale <= 0 {
		return ErrTimeScale
	}
	e.timeScale = scale
	return nil
}

// Start activates the simulation and requests the next frame. It is
// idempotent while already running: the frame request is always renewed, but
// OnStart fires only on the idle-to-running edge. On that edge every
// registered force's activation time is reset, to be resolved lazily to the
// next processed frame's timestamp.
func (e *Engine) Start() {
	wasActive := e.active

	e.active = true
	e.schedule()

	if !wasActive {
		e.lastTime = unresolvedTime
		for i := range e.forces {
			e.forces[i].activatedAt = unresolvedTime
		}
		for _, l := range e.snapshotListeners() {
			l.OnStart()
		}
	}
}

// Stop deactivates the simulation immediately. OnStop fires only if it was
// running.
func (e *Engine) Stop() {
	wasActive := e.active

	e.active = false
	e.unschedule()

	if wasActive {
		for _, l := range e.snapshotListeners() {
			l.OnStop()
		}
	}
}

// SetState hard-resets the current, previous and interpolated states to the
// given position and velocity. It is used when an external actor, such as a
// drag gesture, overrides the simulated trajectory.
func (e *Engine) SetState(x, v *vector.Vector) *Engine {
	e.current.X.Set(x)
	e.current.V.Set(v)

	e.previous.X.Set(x)
	e.previous.V.Set(v)

	e.interpolated.X.Set(x)
	e.interpolated.V.Set(v)
	return e
}

// State returns a copy of the externally visible interpolated state.
func (e *Engine) State() *State {
	return new(State).Set(&e.interpolated)
}

// AddListener registers a listener. Adding the same listener twice is a
// no-op.
func (e *Engine) AddListener(l Listener) *Engine {
	for _, existing := range e.listeners {
		if existing == l {
			return e
		}
	}
	e.listeners = append(e.listeners, l)
	return e
}

// RemoveListener removes a previously added listener.
func (e *Engine) RemoveListener(l Listener) *Engine {
	for i, existing := range e.listeners {
		if existing == l {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			break
		}
	}
	return e
}

// AddForce registers a force and returns its handle. Each force identity is
// registered at most once; re-adding returns the existing handle.
func (e *Engine) AddForce(f force.Force) ForceHandle {
	for _, reg := range e.forces {
		if reg.force == f {
			return reg.handle
		}
	}
	handle := ForceHandle(uuid.New())
	e.forces = append(e.forces, registration{
		handle:      handle,
		force:       f,
		activatedAt: e.activationTime(),
	})
	return handle
}

// RemoveForce unregisters the force identified by the handle.
func (e *Engine) RemoveForce(h ForceHandle) *Engine {
	for i, reg := range e.forces {
		if reg.handle == h {
			e.forces = append(e.forces[:i], e.forces[i+1:]...)
			break
		}
	}
	return e
}

// RemoveForceByValue unregisters the given force, if registered.
func (e *Engine) RemoveForceByValue(f force.Force) *Engine {
	for i, reg := range e.forces {
		if reg.force == f {
			e.forces = append(e.forces[:i], e.forces[i+1:]...)
			break
		}
	}
	return e
}

// HasForce reports whether the handle identifies a registered force.
func (e *Engine) HasForce(h ForceHandle) bool {
	for _, reg := range e.forces {
		if reg.handle == h {
			return true
		}
	}
	return false
}

// HasForces reports whether any force is registered.
func (e *Engine) HasForces() bool {
	return len(e.forces) > 0
}

// ClearForces unregisters every force.
func (e *Engine) ClearForces() *Engine {
	e.forces = nil
	return e
}

// Acceleration sums the acceleration of every registered force at state s
// into out. Each force sees the time elapsed since its own activation.
func (e *Engine) Acceleration(s *State, out *vector.Vector) *vector.Vector {
	out.Clear()
	for _, reg := range e.forces {
		out.Add(reg.force.Acceleration(&s.X, &s.V, s.T-reg.activatedAt))
	}
	return out
}

// activationTime is the timestamp recorded for a force registered right now:
// the current simulation time if a frame has been processed, otherwise the
// unresolved sentinel, to be filled in by the next processed frame.
func (e *Engine) activationTime() float64 {
	if e.lastTime == unresolvedTime {
		return unresolvedTime
	}
	return e.current.T
}

func (e *Engine) schedule() {
	wasScheduled := e.scheduled

	e.scheduled = true

	if !wasScheduled {
		e.scheduler.Schedule(e.frame)
	}
}

func (e *Engine) unschedule() {
	wasScheduled := e.scheduled

	e.scheduled = false

	if wasScheduled {
		e.scheduler.Cancel()
	}
}

func (e *Engine) frame(frameTime float64) {
	e.scheduled = false
	e.doFrame(frameTime)
}

func (e *Engine) doFrame(frameTime float64) {
	if !e.hasKineticEnergy(settleThreshold) && !e.hasPotentialEnergy(settleThreshold) {
		for _, l := range e.snapshotListeners() {
			l.OnSettle()
		}

		// A listener may have re-armed the schedule via Start.
		if !e.scheduled {
			e.Stop()
		}
		return
	}

	e.schedule()

	if e.lastTime == unresolvedTime {
		e.lastTime = frameTime
	}

	deltaTime := frameTime - e.lastTime
	e.lastTime = frameTime

	if deltaTime > maxDelta {
		deltaTime = maxDelta
	}

	for i := range e.forces {
		if e.forces[i].activatedAt == unresolvedTime {
			e.forces[i].activatedAt = e.current.T
		}
	}

	e.solver.Advance(deltaTime, e.timeScale, e, &e.current, &e.previous, &e.interpolated)

	for _, l := range e.snapshotListeners() {
		l.OnUpdate(&e.interpolated.X, &e.interpolated.V)
	}
}

func (e *Engine) hasKineticEnergy(threshold float64) bool {
	v := &e.current.V
	return 0.5*force.Mass*v.Dot(v) > threshold
}

// hasPotentialEnergy reports whether any force still holds a non-negligible
// amount. The threshold itself counts: a force answering the SomeEnergy
// sentinel keeps the simulation running.
func (e *Engine) hasPotentialEnergy(threshold float64) bool {
	for _, reg := range e.forces {
		pe := reg.force.PotentialEnergy(&e.current.X, e.current.T-reg.activatedAt)
		if pe >= threshold {
			return true
		}
	}
	return false
}

// snapshotListeners copies the listener list so that callbacks mutating it
// do not affect the notification pass in progress.
func (e *Engine) snapshotListeners() []Listener {
	return append([]Listener(nil), e.listeners...)
}
