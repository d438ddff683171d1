package dde

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// History is the read capability handed to right-hand sides. Eval
// returns Y(t) for any t: the analytic pre-cutoff definition for
// t <= cutoff, the interpolated simulated trace after it.
type History interface {
	Eval(t float64) State
}

// Generator defines Y(t) analytically for t at or before the cutoff.
type Generator func(t float64) State

// Func is a DDE right-hand side. It receives the live history rather
// than a plain state vector, so it may look up Y(t-d) for any delay d,
// including delays that depend on the state itself via h.Eval(t).
type Func func(h History, t float64, args []float64) State
