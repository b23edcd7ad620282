package engine

import "github.com/san-kum/kinetic/internal/vector"

// Accelerator computes the total acceleration acting on an object at a given
// state. The engine implements it by summing over its registered forces.
type Accelerator interface {
	// Acceleration sets out to the total acceleration at state s and
	// returns it.
	Acceleration(s *State, out *vector.Vector) *vector.Vector
}

// Solver is a numerical stepping strategy. The engine owns the simulation
// lifecycle and delegates the actual advancement of state to a Solver.
type Solver interface {
	// Advance moves the simulation forward by deltaTime seconds of real
	// time, divided by timeScale (a slow-motion multiplier; 1 is real
	// time). Implementations update current and previous in place through
	// whole substeps, then write the externally visible blend of the two
	// into interpolated.
	Advance(deltaTime, timeScale float64, acc Accelerator, current, previous, interpolated *State)
}
