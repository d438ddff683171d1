package steppers

import (
	"fmt"
	"math"

	"github.com/san-kum/delaysim/internal/dde"
)

// Options bound the engine's step-size control.
type Options struct {
	Tolerance   float64
	InitialStep float64
	MinStep     float64
	MaxStep     float64
	MaxSteps    int
}

func DefaultOptions() Options {
	return Options{
		Tolerance:   1e-6,
		InitialStep: 0.01,
		MinStep:     1e-12,
		MaxStep:     0.1,
		MaxSteps:    1_000_000,
	}
}

// Stats accumulates step accounting across AdvanceTo calls. Evals
// counts right-hand-side evaluations, including those of rejected
// attempts.
type Stats struct {
	Steps    int
	Rejected int
	Evals    int
	LastStep float64
}

// Engine drives a stepper from its current time to requested target
// times, owning the accept/reject loop for adaptive steppers and the
// final-step clipping that makes each target an exact grid point.
type Engine struct {
	name    string
	stepper Stepper
	opts    Options
	f       Deriv
	t       float64
	y       dde.State
	dt      float64
	stats   Stats
}

func NewEngine(algorithm string, opts Options) (*Engine, error) {
	if opts.Tolerance <= 0 || opts.InitialStep <= 0 || opts.MinStep <= 0 ||
		opts.MaxStep <= 0 || opts.MaxSteps <= 0 {
		return nil, fmt.Errorf("engine options must be positive, got %+v", opts)
	}
	if opts.MinStep > opts.MaxStep {
		return nil, fmt.Errorf("MinStep %.3g above MaxStep %.3g", opts.MinStep, opts.MaxStep)
	}
	if opts.InitialStep > opts.MaxStep {
		opts.InitialStep = opts.MaxStep
	}

	st, err := newStepper(algorithm)
	if err != nil {
		return nil, err
	}
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}
	return &Engine{
		name:    algorithm,
		stepper: st,
		opts:    opts,
		dt:      opts.InitialStep,
	}, nil
}

func (e *Engine) Name() string { return e.name }
func (e *Engine) Stats() Stats { return e.stats }

// Bind sets the right-hand side. The closure may capture external
// mutable structures (the DDE solver binds one that reads a history
// track); the engine only ever calls it between SetInitial and the
// return of AdvanceTo.
func (e *Engine) Bind(f Deriv) {
	e.f = func(t float64, y dde.State) dde.State {
		e.stats.Evals++
		return f(t, y)
	}
}

func (e *Engine) SetInitial(t0 float64, y0 dde.State) {
	e.t = t0
	e.y = y0.Clone()
	e.dt = e.opts.InitialStep
}

// Current returns the latest accepted (t, y).
func (e *Engine) Current() (float64, dde.State) {
	return e.t, e.y.Clone()
}

// AdvanceTo integrates from the current time to target and returns the
// accepted state there. On failure the engine's state is the last
// accepted point, not the target.
func (e *Engine) AdvanceTo(target float64) (dde.State, error) {
	if e.f == nil {
		return nil, fmt.Errorf("engine: no right-hand side bound")
	}
	if target <= e.t {
		return nil, fmt.Errorf("target t=%.6g not after current t=%.6g: %w",
			target, e.t, dde.ErrNonIncreasingTimes)
	}

	adaptive, isAdaptive := e.stepper.(AdaptiveStepper)
	budget := e.opts.MaxSteps

	for e.t < target {
		if budget <= 0 {
			return nil, dde.ErrMaxSteps
		}
		budget--

		dt := e.dt
		clipped := false
		if e.t+dt >= target {
			dt = target - e.t
			clipped = true
		}

		var yNew dde.State
		if isAdaptive {
			var ratio, dtNext float64
			yNew, ratio, dtNext = adaptive.StepAdaptive(e.f, e.y, e.t, dt, e.opts.Tolerance)
			if ratio > 1 {
				e.stats.Rejected++
				if dtNext < e.opts.MinStep {
					return nil, fmt.Errorf("dt=%.3g at t=%.6g: %w", dtNext, e.t, dde.ErrStepTooSmall)
				}
				e.dt = dtNext
				continue
			}
			if !clipped {
				e.dt = math.Min(math.Max(dtNext, e.opts.MinStep), e.opts.MaxStep)
			}
		} else {
			yNew = e.stepper.Step(e.f, e.y, e.t, dt)
		}

		if !yNew.IsValid() {
			return nil, fmt.Errorf("at t=%.6g: %w", e.t, dde.ErrInvalidState)
		}

		e.y = yNew
		if clipped {
			e.t = target
		} else {
			e.t += dt
		}
		e.stats.Steps++
		e.stats.LastStep = dt
	}

	return e.y.Clone(), nil
}
