package vector

import (
	"math"
	"testing"
)

func TestAdd_Commutative(t *testing.T) {
	tests := []struct {
		name string
		a, b *Vector
	}{
		{"plain", New(1, 2, 3), New(4, 5, 6)},
		{"negative", New(-1, 0.5), New(2, -7)},
		{"zero sized left", New(), New(3, 4)},
		{"zero sized right", New(3, 4), New()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := tt.a.Clone().Add(tt.b)
			ba := tt.b.Clone().Add(tt.a)
			if !ab.Equal(ba) {
				t.Errorf("a+b = %v, b+a = %v", ab, ba)
			}
		})
	}
}

func TestZeroSize_AdditiveIdentity(t *testing.T) {
	v := New(3, -4, 5)

	sum := v.Clone().Add(New())
	if !sum.Equal(v) {
		t.Errorf("v + 0 = %v, want %v", sum, v)
	}

	diff := v.Clone().Sub(New())
	if !diff.Equal(v) {
		t.Errorf("v - 0 = %v, want %v", diff, v)
	}

	neg := New().Sub(v)
	want := v.Clone().Scale(-1)
	if !neg.Equal(want) {
		t.Errorf("0 - v = %v, want %v", neg, want)
	}
}

func TestScale(t *testing.T) {
	v := New(1, 2)

	one := v.Clone().Scale(1)
	if !one.Equal(v) {
		t.Errorf("1*v = %v, want %v", one, v)
	}

	// Scaling by 1 is an assignment, so it sizes a zero-size receiver.
	assigned := New().ScaleOf(v, 1)
	if assigned.Size() != 2 {
		t.Errorf("ScaleOf(v, 1) size = %d, want 2", assigned.Size())
	}

	// Scaling a zero-size vector stays zero-size for any k.
	if got := New().Scale(42); got.Size() != 0 {
		t.Errorf("scaled zero-size vector has size %d", got.Size())
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	tests := []struct {
		name string
		v    *Vector
	}{
		{"plain", New(3, 4)},
		{"negative", New(-1, -1, -1)},
		{"already unit", New(1, 0)},
		{"zero valued", New(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := tt.v.Clone().Normalize()
			twice := once.Clone().Normalize()

			if !once.IsNormalized(DefaultEpsilon) {
				t.Errorf("normalize(%v) = %v is not normalized", tt.v, once)
			}
			for i := 0; i < once.Size(); i++ {
				if math.Abs(once.Value(i)-twice.Value(i)) > DefaultEpsilon {
					t.Errorf("normalize twice diverged: %v vs %v", once, twice)
				}
			}
		})
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		v        *Vector
		expected float64
	}{
		{New(3, 4), 5},
		{New(1, 0), 1},
		{New(0, 0), 0},
		{New(1, 1, 1, 1), 2},
		{New(), 0},
	}

	for _, tt := range tests {
		got := tt.v.Magnitude()
		if got < 0 {
			t.Errorf("Magnitude(%v) = %v, must be non-negative", tt.v, got)
		}
		if math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("Magnitude(%v) = %v, want %v", tt.v, got, tt.expected)
		}
	}
}

func TestZeroSize_NormalizedAndZero(t *testing.T) {
	v := New()
	if !v.IsNormalized(DefaultEpsilon) {
		t.Error("zero-size vector should be considered normalized")
	}
	if !v.IsZero(DefaultEpsilon) {
		t.Error("zero-size vector should be considered zero")
	}
}

func TestValue_ZeroSizeReadsZero(t *testing.T) {
	v := New()
	for _, i := range []int{0, 1, 17} {
		if got := v.Value(i); got != 0 {
			t.Errorf("Value(%d) on zero-size vector = %v, want 0", i, got)
		}
	}
}

func TestProj(t *testing.T) {
	// proj onto a zero-size vector returns b itself.
	b := New(2, 3)
	if got := New().Proj(b); !got.Equal(b) {
		t.Errorf("proj_0(b) = %v, want %v", got, b)
	}

	// Projecting a zero-size b yields a zero vector.
	if got := New(1, 0).Proj(New()); !got.IsZero(DefaultEpsilon) {
		t.Errorf("proj_a(0) = %v, want zero", got)
	}

	// A zero-size receiver stays zero-size when b is zero-size; it is
	// cleared, never resized to match a.
	if got := New().ProjOf(New(1, 0), New()); got.Size() != 0 {
		t.Errorf("ProjOf left the receiver at size %d, want 0", got.Size())
	}

	// proj onto the x axis keeps only the x component.
	got := New(1, 0).Proj(New(3, 4))
	if math.Abs(got.Value(0)-3) > 1e-10 || math.Abs(got.Value(1)) > 1e-10 {
		t.Errorf("proj_x((3,4)) = %v, want (3,0)", got)
	}
}

func TestDot(t *testing.T) {
	tests := []struct {
		a, b     *Vector
		expected float64
	}{
		{New(1, 2), New(3, 4), 11},
		{New(1, 0), New(0, 1), 0},
		{New(), New(3, 4), 0},
		{New(3, 4), New(), 0},
	}

	for _, tt := range tests {
		if got := tt.a.Dot(tt.b); math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("Dot(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b     *Vector
		expected float64
	}{
		{New(0, 0), New(3, 4), 5},
		{New(), New(3, 4), 5},
		{New(3, 4), New(), 5},
		{New(1, 1), New(1, 1), 0},
	}

	for _, tt := range tests {
		if got := tt.a.Distance(tt.b); math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestEqual_ZeroSizeConflation(t *testing.T) {
	tests := []struct {
		name  string
		a, b  *Vector
		equal bool
	}{
		{"both zero-size", New(), New(), true},
		{"zero-size vs zero-valued", New(), New(0, 0, 0), true},
		{"zero-valued vs zero-size", New(0, 0), New(), true},
		{"zero-size vs nonzero", New(), New(0, 1), false},
		{"same values", New(1, 2), New(1, 2), true},
		{"different values", New(1, 2), New(1, 3), false},
		{"different sizes", New(1, 2), New(1, 2, 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.equal {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.equal)
			}
		})
	}
}

func TestSizeMismatch_Panics(t *testing.T) {
	tests := []struct {
		name string
		op   func()
	}{
		{"add", func() { New(1, 2).Add(New(1, 2, 3)) }},
		{"sub", func() { New(1, 2).Sub(New(1)) }},
		{"dot", func() { New(1, 2).Dot(New(1, 2, 3)) }},
		{"distance", func() { New(1, 2).Distance(New(1, 2, 3)) }},
		{"set values", func() { New(1, 2).SetValues(1, 2, 3) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != ErrSizeMismatch {
					t.Errorf("recovered %v, want ErrSizeMismatch", r)
				}
			}()
			tt.op()
		})
	}
}

func TestAngle(t *testing.T) {
	x := New(1, 0)
	y := New(0, 1)

	if got := x.Angle(y); math.Abs(got-math.Pi/2) > 1e-10 {
		t.Errorf("angle(x, y) = %v, want pi/2", got)
	}

	if got := New().Angle(x); got != 0 {
		t.Errorf("angle(0, x) = %v, want 0", got)
	}

	diag := New(3, 3)
	if got := diag.AngleWithNormalization(x.Clone()); math.Abs(got-math.Pi/4) > 1e-9 {
		t.Errorf("angle((3,3), x) = %v, want pi/4", got)
	}
}

func TestSetAndClear(t *testing.T) {
	v := New(1, 2, 3)

	v.Clear()
	for i := 0; i < 3; i++ {
		if v.Value(i) != 0 {
			t.Errorf("Clear left component %d = %v", i, v.Value(i))
		}
	}
	if v.Size() != 3 {
		t.Errorf("Clear changed size to %d", v.Size())
	}

	v.Set(New())
	if v.Size() != 0 {
		t.Errorf("Set(zero-size) left size %d", v.Size())
	}
}
