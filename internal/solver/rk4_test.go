package solver

import (
	"math"
	"testing"

	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/vector"
)

// freeAccelerator applies no force at all.
type freeAccelerator struct{}

func (freeAccelerator) Acceleration(s *engine.State, out *vector.Vector) *vector.Vector {
	return out.Clear()
}

// harmonicAccelerator models a = -x, the unit harmonic oscillator.
type harmonicAccelerator struct{}

func (harmonicAccelerator) Acceleration(s *engine.State, out *vector.Vector) *vector.Vector {
	return out.ScaleOf(&s.X, -1)
}

func newStates(x, v *vector.Vector) (current, previous, interpolated *engine.State) {
	current = &engine.State{}
	current.X.Set(x)
	current.V.Set(v)
	previous = new(engine.State).Set(current)
	interpolated = new(engine.State).Set(current)
	return current, previous, interpolated
}

func TestAdvance_ForceFree(t *testing.T) {
	r := NewRK4()
	current, previous, interpolated := newStates(vector.New(0, 0), vector.New(3, -2))

	// Exactly four substeps worth of time.
	elapsed := 4 * substep
	r.Advance(elapsed, 1, freeAccelerator{}, current, previous, interpolated)

	if math.Abs(current.V.Value(0)-3) > 1e-12 || math.Abs(current.V.Value(1)+2) > 1e-12 {
		t.Errorf("velocity changed under zero acceleration: %v", &current.V)
	}

	wantX := 3 * elapsed
	wantY := -2 * elapsed
	if math.Abs(current.X.Value(0)-wantX) > 1e-9 || math.Abs(current.X.Value(1)-wantY) > 1e-9 {
		t.Errorf("position = %v, want (%v, %v)", &current.X, wantX, wantY)
	}

	// The accumulator is empty, so the visible state sits one whole
	// substep behind current.
	if math.Abs(interpolated.X.Value(0)-3*(elapsed-substep)) > 1e-9 {
		t.Errorf("interpolated position = %v, want %v", interpolated.X.Value(0), 3*(elapsed-substep))
	}
}

func TestAdvance_InterpolatesRemainder(t *testing.T) {
	r := NewRK4()
	current, previous, interpolated := newStates(vector.New(0), vector.New(1))

	// One and a half substeps: one whole step plus alpha = 0.5.
	r.Advance(1.5*substep, 1, freeAccelerator{}, current, previous, interpolated)

	if math.Abs(current.X.Value(0)-substep) > 1e-12 {
		t.Errorf("current position = %v, want %v", current.X.Value(0), substep)
	}
	if previous.X.Value(0) != 0 {
		t.Errorf("previous position = %v, want 0", previous.X.Value(0))
	}

	want := 0.5 * substep
	if math.Abs(interpolated.X.Value(0)-want) > 1e-12 {
		t.Errorf("interpolated position = %v, want %v", interpolated.X.Value(0), want)
	}
}

func TestAdvance_AccumulatorCarriesRemainder(t *testing.T) {
	r := NewRK4()
	current, previous, interpolated := newStates(vector.New(0), vector.New(1))

	// Two calls of 0.75 substeps each: the first performs no whole step,
	// the second consumes the carried remainder and performs one.
	r.Advance(0.75*substep, 1, freeAccelerator{}, current, previous, interpolated)
	if current.T != 0 {
		t.Fatalf("stepped too early: t = %v", current.T)
	}

	r.Advance(0.75*substep, 1, freeAccelerator{}, current, previous, interpolated)
	if math.Abs(current.T-substep) > 1e-12 {
		t.Errorf("current t = %v, want %v", current.T, substep)
	}
}

func TestAdvance_TimeScaleSlowsSimulation(t *testing.T) {
	run := func(scale float64) float64 {
		r := NewRK4()
		current, previous, interpolated := newStates(vector.New(0), vector.New(1))
		for i := 0; i < 60; i++ {
			r.Advance(frameInterval, scale, harmonicAccelerator{}, current, previous, interpolated)
		}
		return current.X.Value(0)
	}

	// At double time scale, one wall-clock second covers half the
	// simulated trajectory.
	realTime := run(1)
	slowed := run(2)

	wantReal := math.Sin(1.0)
	wantSlow := math.Sin(0.5)
	if math.Abs(realTime-wantReal) > 1e-6 {
		t.Errorf("x(1s, scale 1) = %v, want %v", realTime, wantReal)
	}
	if math.Abs(slowed-wantSlow) > 1e-6 {
		t.Errorf("x(1s, scale 2) = %v, want %v", slowed, wantSlow)
	}
}

func TestAdvance_HarmonicAccuracy(t *testing.T) {
	r := NewRK4()
	current, previous, interpolated := newStates(vector.New(1), vector.New(0))

	// x(t) = cos(t) for a = -x with x(0)=1, v(0)=0.
	var elapsed float64
	for i := 0; i < 120; i++ {
		r.Advance(frameInterval, 1, harmonicAccelerator{}, current, previous, interpolated)
		elapsed += frameInterval
	}

	want := math.Cos(elapsed)
	if math.Abs(current.X.Value(0)-want) > 1e-6 {
		t.Errorf("x(%v) = %v, want %v", elapsed, current.X.Value(0), want)
	}
}

func TestAdvance_SteadyStateDoesNotAllocate(t *testing.T) {
	r := NewRK4()
	current, previous, interpolated := newStates(vector.New(1, 1), vector.New(0, 0))
	acc := harmonic2D{}

	// Warm up so every scratch vector acquires its size.
	r.Advance(frameInterval, 1, acc, current, previous, interpolated)

	allocs := testing.AllocsPerRun(50, func() {
		r.Advance(frameInterval, 1, acc, current, previous, interpolated)
	})
	if allocs != 0 {
		t.Errorf("Advance allocated %v times per call in steady state", allocs)
	}
}

type harmonic2D struct{}

func (harmonic2D) Acceleration(s *engine.State, out *vector.Vector) *vector.Vector {
	return out.ScaleOf(&s.X, -1)
}
