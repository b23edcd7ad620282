package force

import "github.com/san-kum/kinetic/internal/vector"

// Gravity models a constant acceleration field, such as gravity pulling in a
// fixed direction. Its potential energy is linear in position and unbounded,
// so it reports the SomeEnergy sentinel: an object under gravity alone never
// settles.
type Gravity struct {
	g   vector.Vector
	tmp vector.Vector
}

// NewGravity creates a constant force with the given acceleration vector.
func NewGravity(g *vector.Vector) *Gravity {
	f := &Gravity{}
	f.g.Set(g)
	return f
}

// Acceleration returns the constant field acceleration.
func (f *Gravity) Acceleration(x, v *vector.Vector, t float64) *vector.Vector {
	return f.tmp.Set(&f.g)
}

// PotentialEnergy always reports a non-trivial amount.
func (f *Gravity) PotentialEnergy(x *vector.Vector, t float64) float64 {
	return SomeEnergy
}
