package engine

import (
	"fmt"

	"github.com/san-kum/kinetic/internal/vector"
)

// State holds an object's position X and velocity V at simulation time T.
type State struct {
	X vector.Vector
	V vector.Vector
	T float64
}

// Set copies the other state into s and returns s.
func (s *State) Set(other *State) *State {
	s.X.Set(&other.X)
	s.V.Set(&other.V)
	s.T = other.T
	return s
}

func (s *State) String() string {
	return fmt.Sprintf("State t=%.4f x=%v v=%v", s.T, &s.X, &s.V)
}

// Derivative holds a rate of change used to calculate intermediary states
// during a solver step. It is scratch data and is never exposed to callers.
type Derivative struct {
	DX vector.Vector
	DV vector.Vector
}
