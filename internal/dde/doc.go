// Package dde provides core primitives for delay differential equations.
//
// A DDE couples the derivative of the state at time t to the state at
// earlier times t-d, where the delay d may itself depend on the state:
//
//	dY/dt = f(Y(t), Y(t-d1), Y(t-d2), ...)
//
// The package defines the fundamental types shared across the solver:
//
//   - [State]: vector representing the system state at one instant
//   - [History]: read capability over past values of Y
//   - [Func]: right-hand side f(H, t, args) -> dY/dt, which reads past
//     values only through the history
//
// # Example
//
//	f := func(h dde.History, t float64, args []float64) dde.State {
//		y := h.Eval(t - 3*math.Pi/2)
//		return dde.State{y[0]}
//	}
//	yy, _ := solver.Solve(f, gen, tt, solver.DefaultConfig())
//
// # Thread Safety
//
// A solve is strictly sequential. The history backing a solve is
// mutated only between stepper invocations and must never be shared
// across concurrent solves.
package dde
