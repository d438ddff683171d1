package dde

import (
	"errors"
	"fmt"
)

// Domain errors for DDE solves.
var (
	// ErrEmptyTimes indicates an empty output-time sequence.
	ErrEmptyTimes = errors.New("dde: output times must contain at least one point")

	// ErrNonIncreasingTimes indicates output times that are not strictly increasing.
	ErrNonIncreasingTimes = errors.New("dde: output times must be strictly increasing")

	// ErrDimensionMismatch indicates mismatched state dimensions between
	// the generator and a recorded or derived value.
	ErrDimensionMismatch = errors.New("dde: state dimension mismatch")

	// ErrRecordOrder indicates an attempt to record a history point at a
	// time not strictly greater than the last recorded time.
	ErrRecordOrder = errors.New("dde: history record time not strictly increasing")

	// ErrInvalidState indicates a state with NaN or Inf components.
	ErrInvalidState = errors.New("dde: invalid state (NaN or Inf detected)")

	// ErrStepTooSmall indicates the adaptive step size fell below the minimum.
	ErrStepTooSmall = errors.New("dde: adaptive step size below minimum")

	// ErrMaxSteps indicates the step budget was exhausted before the target time.
	ErrMaxSteps = errors.New("dde: maximum step count exceeded before reaching target")

	// ErrUnknownAlgorithm indicates an algorithm name outside the registry.
	ErrUnknownAlgorithm = errors.New("dde: unknown stepping algorithm")
)

// SolveError wraps a fatal solve failure with the target time that
// could not be reached and the last successfully recorded history
// point, for diagnosis.
type SolveError struct {
	Target    float64
	LastTime  float64
	LastState State
	Wrapped   error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("solve failed advancing to t=%.6g (last accepted t=%.6g): %v",
		e.Target, e.LastTime, e.Wrapped)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
