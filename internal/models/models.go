// Package models provides the built-in DDE systems: each couples a
// right-hand side that reads past state through a history with the
// analytic history that seeds it.
package models

import (
	"fmt"

	"github.com/san-kum/delaysim/internal/dde"
)

type Model interface {
	Name() string
	Dim() int
	// History is the generator: Y(t) for t at or before the start time.
	History(t float64) dde.State
	// Derive is the DDE right-hand side dY/dt at time t.
	Derive(h dde.History, t float64) dde.State
}

// Configurable models expose tunable parameters for the CLI and the
// live view.
type Configurable interface {
	Params() map[string]float64
	SetParam(name string, value float64) error
}

// Func adapts a Model's Derive to the solver's rhs signature.
func Func(m Model) dde.Func {
	return func(h dde.History, t float64, args []float64) dde.State {
		return m.Derive(h, t)
	}
}

func unknownParam(model, name string) error {
	return fmt.Errorf("%s: unknown parameter %q", model, name)
}
