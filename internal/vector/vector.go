// Package vector provides a general purpose one dimensional vector type.
//
// The size of a Vector is effectively final: every calculation involving
// multiple vectors assumes all vectors involved are the same size, and
// combining two differently sized vectors panics. All calculations that
// return a *Vector mutate the receiver and return it, so calls chain.
//
// The only exception is the zero-size vector. It stands for an arbitrarily
// sized vector whose every component is zero, and acts as the additive
// identity in every operation.
package vector

import (
	"errors"
	"fmt"
	"math"
)

// DefaultEpsilon is the tolerance used by comparisons that do not take an
// explicit epsilon.
const DefaultEpsilon = 1e-6

// ErrSizeMismatch is the panic value raised when two nonzero-size vectors of
// different sizes are combined.
var ErrSizeMismatch = errors.New("vector: size mismatch")

// Vector is a mutable vector of float64 components. The zero value is the
// zero-size vector.
type Vector struct {
	size   int
	values []float64
}

// New returns a vector holding a copy of the given components. With no
// arguments it returns the zero-size vector.
func New(values ...float64) *Vector {
	v := &Vector{}
	if len(values) > 0 {
		v.size = len(values)
		v.values = make([]float64, len(values))
		copy(v.values, values)
	}
	return v
}

// Clone returns an independent copy of v.
func (v *Vector) Clone() *Vector {
	return New(v.values...)
}

// Size returns the logical size. Zero means "not yet sized".
func (v *Vector) Size() int {
	return v.size
}

// Value returns the component at index i. On a zero-size vector any index
// reads as 0.
func (v *Vector) Value(i int) float64 {
	if v.size == 0 {
		return 0
	}
	return v.values[i]
}

// Values returns a copy of the components. A zero-size vector yields nil.
func (v *Vector) Values() []float64 {
	if v.size == 0 {
		return nil
	}
	out := make([]float64, v.size)
	copy(out, v.values)
	return out
}

// Set sets v to the other vector's components and returns v.
func (v *Vector) Set(other *Vector) *Vector {
	if other.size == 0 {
		v.size = 0
		v.values = nil
		return v
	}
	v.resizeTo(other.size)
	copy(v.values, other.values)
	return v
}

// SetValues sets v to the given components and returns v.
func (v *Vector) SetValues(values ...float64) *Vector {
	if v.size == 0 {
		v.size = len(values)
		v.values = make([]float64, len(values))
	}
	if v.size != len(values) {
		panic(ErrSizeMismatch)
	}
	copy(v.values, values)
	return v
}

// Clear zeroes every component without changing the size and returns v.
func (v *Vector) Clear() *Vector {
	for i := range v.values {
		v.values[i] = 0
	}
	return v
}

// Add sets v to v + b and returns v.
func (v *Vector) Add(b *Vector) *Vector {
	return v.AddOf(v, b)
}

// AddOf sets v to a + b and returns v.
func (v *Vector) AddOf(a, b *Vector) *Vector {
	if a.size == 0 {
		return v.Set(b)
	}
	if b.size == 0 {
		return v.Set(a)
	}
	if a.size != b.size {
		panic(ErrSizeMismatch)
	}
	v.resizeTo(a.size)
	for i := range v.values {
		v.values[i] = a.values[i] + b.values[i]
	}
	return v
}

// Sub sets v to v − b and returns v.
func (v *Vector) Sub(b *Vector) *Vector {
	return v.SubOf(v, b)
}

// SubOf sets v to a − b and returns v.
func (v *Vector) SubOf(a, b *Vector) *Vector {
	if a.size == 0 {
		return v.ScaleOf(b, -1)
	}
	if b.size == 0 {
		return v.Set(a)
	}
	if a.size != b.size {
		panic(ErrSizeMismatch)
	}
	v.resizeTo(a.size)
	for i := range v.values {
		v.values[i] = a.values[i] - b.values[i]
	}
	return v
}

// Scale sets v to k·v and returns v.
func (v *Vector) Scale(k float64) *Vector {
	return v.ScaleOf(v, k)
}

// ScaleOf sets v to k·u and returns v. Scaling by 1 is an assignment,
// so a zero-size receiver still adopts u's size. Scaling a zero-size
// vector yields the zero-size vector regardless of k.
func (v *Vector) ScaleOf(u *Vector, k float64) *Vector {
	if k == 1 {
		return v.Set(u)
	}
	if u.size == 0 {
		v.size = 0
		v.values = nil
		return v
	}
	v.resizeTo(u.size)
	for i := range v.values {
		v.values[i] = u.values[i] * k
	}
	return v
}

// Normalize sets v to v∕‖v‖ and returns v. Normalizing a zero vector
// yields a zero vector.
func (v *Vector) Normalize() *Vector {
	return v.NormalizeOf(v)
}

// NormalizeOf sets v to u∕‖u‖ and returns v.
func (v *Vector) NormalizeOf(u *Vector) *Vector {
	if u.size == 0 {
		v.size = 0
		v.values = nil
		return v
	}
	v.resizeTo(u.size)
	mag := u.Magnitude()
	if mag == 0 {
		return v.Clear()
	}
	for i := range v.values {
		v.values[i] = u.values[i] / mag
	}
	return v
}

// Proj sets v to proj_v(b), the projection of b onto v, and returns v.
// Projecting onto a zero vector yields b itself.
func (v *Vector) Proj(b *Vector) *Vector {
	return v.ProjOf(v, b)
}

// ProjOf sets v to proj_a(b), the projection of b onto a, and returns v.
func (v *Vector) ProjOf(a, b *Vector) *Vector {
	if a.size == 0 {
		return v.Set(b)
	}
	if b.size == 0 {
		return v.Clear()
	}
	if a.size != b.size {
		panic(ErrSizeMismatch)
	}
	v.resizeTo(a.size)
	aa := a.Dot(a)
	if aa == 0 {
		return v.Set(b)
	}
	return v.ScaleOf(a, a.Dot(b)/aa)
}

// Dot returns v·other. A zero-size operand contributes 0.
func (v *Vector) Dot(other *Vector) float64 {
	if v.size == 0 || other.size == 0 {
		return 0
	}
	if v.size != other.size {
		panic(ErrSizeMismatch)
	}
	sum := 0.0
	for i := range v.values {
		sum += v.values[i] * other.values[i]
	}
	return sum
}

// Magnitude returns ‖v‖.
func (v *Vector) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Distance returns ‖v−other‖ without allocating an intermediate vector.
func (v *Vector) Distance(other *Vector) float64 {
	if v.size == 0 {
		return other.Magnitude()
	}
	if other.size == 0 {
		return v.Magnitude()
	}
	if v.size != other.size {
		panic(ErrSizeMismatch)
	}
	sum := 0.0
	for i := range v.values {
		d := v.values[i] - other.values[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Angle returns the unsigned angle between v and other. Both vectors must
// already be normalized. Zero vectors have angle 0 with any vector.
func (v *Vector) Angle(other *Vector) float64 {
	if !v.IsNormalized(DefaultEpsilon) || !other.IsNormalized(DefaultEpsilon) {
		panic(errors.New("vector: Angle requires normalized operands"))
	}
	if v.IsZero(DefaultEpsilon) || other.IsZero(DefaultEpsilon) {
		return 0
	}
	return math.Acos(clamp(v.Dot(other), -1, 1))
}

// AngleWithNormalization normalizes both vectors in place, then returns
// their unsigned angle.
func (v *Vector) AngleWithNormalization(other *Vector) float64 {
	v.Normalize()
	other.Normalize()
	return v.Angle(other)
}

// IsNormalized reports whether ‖v‖ is 1 within epsilon. A zero vector is
// considered normalized.
func (v *Vector) IsNormalized(epsilon float64) bool {
	mag := v.Magnitude()
	return eq(mag, 1, epsilon) || eq(mag, 0, epsilon)
}

// IsZero reports whether ‖v‖ is 0 within epsilon.
func (v *Vector) IsZero(epsilon float64) bool {
	return eq(v.Magnitude(), 0, epsilon)
}

// Equal reports whether v and other hold the same components. A zero-size
// vector compares equal to any vector whose magnitude is exactly zero;
// "unsized" and "all zero values" are deliberately indistinguishable here.
func (v *Vector) Equal(other *Vector) bool {
	switch {
	case v.size == 0 && other.size == 0:
		return true
	case v.size == 0:
		return other.Magnitude() == 0
	case other.size == 0:
		return v.Magnitude() == 0
	case v.size != other.size:
		return false
	}
	for i := range v.values {
		if v.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

func (v *Vector) String() string {
	return fmt.Sprintf("Vector%v", v.values)
}

// resizeTo sizes a zero-size vector, and panics if v already has a
// different nonzero size.
func (v *Vector) resizeTo(size int) {
	if v.size == 0 {
		v.size = size
		v.values = make([]float64, size)
		return
	}
	if v.size != size {
		panic(ErrSizeMismatch)
	}
}

func eq(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
