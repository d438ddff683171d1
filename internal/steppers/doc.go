// Package steppers provides the adaptive ODE stepping capability the
// DDE solver is built on.
//
// A [Stepper] advances a plain initial-value problem y' = f(t, y) by
// one trial step; an [AdaptiveStepper] additionally reports an error
// ratio and a suggested next step size. The [Engine] owns the
// accept/reject loop and drives a stepper from its current time to a
// requested target, clipping the final step so the target is reached
// exactly.
//
// The delay machinery lives one layer up: the solver binds a
// derivative closure that reads past state through a history track,
// so steppers here never see delays at all.
package steppers
