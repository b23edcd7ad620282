// Package solver provides numerical stepping strategies for the engine.
package solver

import (
	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/vector"
)

const (
	frameInterval = 1.0 / 60

	// substepsPerFrame was determined experimentally: the lowest substep
	// count with acceptable accuracy.
	substepsPerFrame = 2

	substep = frameInterval / substepsPerFrame
)

// RK4 advances state with the classic fourth-order Runge-Kutta method. It
// consumes elapsed time in fixed substeps through an accumulator and
// linearly interpolates the externally visible state from the remainder.
// All scratch values are reused across calls, so steady-state stepping does
// not allocate.
type RK4 struct {
	accumulator float64

	tmpState State
	d1, d2   Derivative
	d3, d4   Derivative
	tmp1     vector.Vector
	tmp2     vector.Vector
}

type (
	// State and Derivative alias the engine's types; the solver's scratch
	// copies never leave this package.
	State      = engine.State
	Derivative = engine.Derivative
)

// NewRK4 returns a solver with an empty accumulator.
func NewRK4() *RK4 {
	return &RK4{}
}

var _ engine.Solver = (*RK4)(nil)

// Advance implements engine.Solver.
func (r *RK4) Advance(deltaTime, timeScale float64, acc engine.Accelerator, current, previous, interpolated *State) {
	deltaTime = deltaTime / timeScale
	h := substep / timeScale

	r.accumulator += deltaTime

	for r.accumulator >= h {
		r.accumulator -= h
		previous.Set(current)
		r.integrate(acc, current, h)
	}

	r.interpolate(previous, current, r.accumulator/h, interpolated)
}

// integrate advances state by one RK4 step of size h, combining the four
// stage derivatives with weights 1:2:2:1 over 6.
func (r *RK4) integrate(acc engine.Accelerator, state *State, h float64) {
	a := r.evaluate(acc, state, &r.d1)
	b := r.evaluateAt(acc, state, h*0.5, a, &r.d2)
	c := r.evaluateAt(acc, state, h*0.5, b, &r.d3)
	d := r.evaluateAt(acc, state, h, c, &r.d4)

	// dxdt = (a.dx + 2*(b.dx + c.dx) + d.dx) / 6
	dxdt := &r.tmp1
	dxdt.AddOf(&b.DX, &c.DX)
	dxdt.Scale(2)
	dxdt.Add(&a.DX)
	dxdt.Add(&d.DX)
	dxdt.Scale(1.0 / 6.0)

	// dvdt = (a.dv + 2*(b.dv + c.dv) + d.dv) / 6
	dvdt := &r.tmp2
	dvdt.AddOf(&b.DV, &c.DV)
	dvdt.Scale(2)
	dvdt.Add(&a.DV)
	dvdt.Add(&d.DV)
	dvdt.Scale(1.0 / 6.0)

	state.X.Add(dxdt.Scale(h))
	state.V.Add(dvdt.Scale(h))
	state.T += h
}

// evaluate computes the derivative at the initial state itself.
func (r *RK4) evaluate(acc engine.Accelerator, initial *State, out *Derivative) *Derivative {
	out.DX.Set(&initial.V)
	out.DV.Set(acc.Acceleration(initial, &r.tmp1))
	return out
}

// evaluateAt computes the derivative at the state reached by following d for
// dt from the initial state.
func (r *RK4) evaluateAt(acc engine.Accelerator, initial *State, dt float64, d *Derivative, out *Derivative) *Derivative {
	state := &r.tmpState

	state.X.ScaleOf(&d.DX, dt)
	state.X.Add(&initial.X)

	state.V.ScaleOf(&d.DV, dt)
	state.V.Add(&initial.V)

	state.T = initial.T + dt

	out.DX.Set(&state.V)
	out.DV.Set(acc.Acceleration(state, &r.tmp1))
	return out
}

// interpolate blends previous and current by alpha; alpha 1 lands exactly
// on current.
func (r *RK4) interpolate(previous, current *State, alpha float64, out *State) {
	out.X.ScaleOf(&current.X, alpha)
	r.tmp1.ScaleOf(&previous.X, 1-alpha)
	out.X.Add(&r.tmp1)

	out.V.ScaleOf(&current.V, alpha)
	r.tmp1.ScaleOf(&previous.V, 1-alpha)
	out.V.Add(&r.tmp1)

	out.T = current.T*alpha + previous.T*(1-alpha)
}
