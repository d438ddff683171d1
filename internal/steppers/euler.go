package steppers

import "github.com/san-kum/delaysim/internal/dde"

// Euler is the fixed-step forward Euler scheme.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(f Deriv, y dde.State, t, dt float64) dde.State {
	dy := f(t, y)
	result := make(dde.State, len(y))
	for i := range y {
		result[i] = y[i] + dt*dy[i]
	}
	return result
}
