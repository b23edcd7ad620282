package force

import (
	"math"

	"github.com/san-kum/kinetic/internal/vector"
)

// Default spring constants, tuned for snappy but stable motion at a 60Hz
// frame rate.
const (
	DefaultStiffness = 342.0
	DefaultDamping   = 30.0
)

// Spring models a damped spring with spring constant K and damping
// coefficient B. All springs assume zero resting distance from the anchor
// point.
type Spring struct {
	Anchored

	K float64
	B float64

	tmp1 vector.Vector
	tmp2 vector.Vector
}

// NewSpring creates a spring with the given spring constant and damping
// coefficient.
func NewSpring(k, b float64) *Spring {
	return &Spring{K: k, B: b}
}

// NewCriticallyDampedSpring creates a spring with the given spring constant
// whose damping coefficient is chosen so that, for any initial state, the
// spring overshoots at most once and comes to rest in the minimum possible
// duration.
func NewCriticallyDampedSpring(k float64) *Spring {
	return &Spring{K: k, B: math.Sqrt(4 * Mass * k)}
}

// NewFriction creates a viscous frictional force with coefficient mu that
// opposes the object's velocity. It has no anchor attraction and no
// potential energy.
func NewFriction(mu float64) *Spring {
	return &Spring{K: 0, B: mu}
}

// WithAnchorPoint sets the anchor point and returns the spring for chaining.
func (s *Spring) WithAnchorPoint(p *vector.Vector) *Spring {
	s.SetAnchorPoint(p)
	return s
}

// Acceleration returns (−K·displacement − B·v) ∕ Mass.
func (s *Spring) Acceleration(x, v *vector.Vector, t float64) *vector.Vector {
	displacement := s.Displacement(x, &s.tmp2)

	tension := s.tmp1.ScaleOf(displacement, -s.K)
	damping := s.tmp2.ScaleOf(v, -s.B)

	return tension.Add(damping).Scale(1 / Mass)
}

// PotentialEnergy returns ½·K·‖displacement‖².
func (s *Spring) PotentialEnergy(x *vector.Vector, t float64) float64 {
	displacement := s.Displacement(x, &s.tmp2)
	return 0.5 * s.K * displacement.Dot(displacement)
}
