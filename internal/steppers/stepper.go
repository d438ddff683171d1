package steppers

import (
	"fmt"
	"sort"

	"github.com/san-kum/delaysim/internal/dde"
)

// Deriv is the bound right-hand side of a plain initial-value problem.
type Deriv func(t float64, y dde.State) dde.State

type Stepper interface {
	Step(f Deriv, y dde.State, t, dt float64) dde.State
}

// AdaptiveStepper extends Stepper with an embedded error estimate.
// StepAdaptive returns the candidate state, the error ratio (estimate
// divided by tolerance; a ratio above 1 means the step should be
// rejected) and the suggested size for the next step.
type AdaptiveStepper interface {
	Stepper
	StepAdaptive(f Deriv, y dde.State, t, dt, tol float64) (dde.State, float64, float64)
}

// DefaultAlgorithm is the stepper used when none is selected.
const DefaultAlgorithm = "rk45"

var registry = map[string]func() Stepper{
	"rk45":  func() Stepper { return NewRK45() },
	"bs23":  func() Stepper { return NewBS23() },
	"rk4":   func() Stepper { return NewRK4() },
	"euler": func() Stepper { return NewEuler() },
}

func newStepper(name string) (Stepper, error) {
	if name == "" {
		name = DefaultAlgorithm
	}
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q (available: %v): %w", name, Algorithms(), dde.ErrUnknownAlgorithm)
	}
	return factory(), nil
}

// Algorithms lists the selectable stepper names, sorted.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
