// Package force defines the force laws that drive a physics simulation.
//
// A Force is a pure function of an object's position, velocity and the time
// elapsed since the force became active. Forces carry their own scratch
// vectors so that evaluating them in a tight integration loop allocates
// nothing.
package force

import "github.com/san-kum/kinetic/internal/vector"

// Mass of the simulated object. All accelerations are computed against this.
const Mass = 1.0

const (
	// NoEnergy can be returned from PotentialEnergy to signify that the
	// force holds zero or a trivial amount of potential energy, for
	// example when the force is not a function of the object's position.
	NoEnergy = 0.0

	// SomeEnergy can be returned from PotentialEnergy when the exact
	// potential energy is difficult or unrealistic to calculate but is a
	// non-trivial amount. It biases the settle check conservatively: the
	// simulation keeps running while any force reports it.
	SomeEnergy = 1.0
)

// Force models a dynamic force acting on an object.
type Force interface {
	// Acceleration calculates the acceleration this force applies to an
	// object at position x with velocity v, where t is the time elapsed
	// since this force became active. The returned vector may be scratch
	// space owned by the force; it is only valid until the next call.
	Acceleration(x, v *vector.Vector, t float64) *vector.Vector

	// PotentialEnergy calculates the potential energy this force holds
	// for an object at position x. It may return an exact value, or the
	// NoEnergy / SomeEnergy sentinels.
	PotentialEnergy(x *vector.Vector, t float64) float64
}
