// Package history implements the time-indexed state record backing a
// DDE solve: an analytic generator region for t at or before the
// cutoff, and a growing piecewise interpolant over the points the
// integrator has accepted since.
package history

import (
	"fmt"
	"sort"

	"github.com/san-kum/delaysim/internal/dde"
)

// Track is the concrete history of one solve. The generator is
// authoritative for t <= cutoff and is never interpolated; values
// after the cutoff come from interpolation over recorded samples,
// with constant (flat) fill outside the sampled range.
// Flat fill matters: a state-dependent delay may probe a time at or
// slightly past the current integration frontier, and the lookup must
// resolve to the nearest accepted value rather than overshoot.
//
// Interpolation is cubic Hermite on intervals where both endpoint
// slopes are known, linear otherwise. The upgrade is not cosmetic:
// delay lookups feed interpolation error back into the derivative,
// and on systems with a growing characteristic mode a piecewise-linear
// O(h^2) node error compounds exponentially over long horizons. The
// O(h^4) Hermite error keeps that seed below the solve tolerance.
type Track struct {
	generator dde.Generator
	cutoff    float64
	times     []float64
	states    []dde.State
	slopes    []dde.State // nil entry: no slope known at that node
	dim       int
}

// New seeds the track with a single sample at the cutoff, taken from
// the generator. Sample times stay strictly increasing from there.
func New(generator dde.Generator, cutoff float64) *Track {
	seed := generator(cutoff).Clone()
	return &Track{
		generator: generator,
		cutoff:    cutoff,
		times:     []float64{cutoff},
		states:    []dde.State{seed},
		slopes:    []dde.State{nil},
		dim:       len(seed),
	}
}

func (h *Track) Cutoff() float64 { return h.cutoff }

// Dim is the state dimension, fixed by the generator at construction.
func (h *Track) Dim() int { return h.dim }

// Len is the number of recorded samples, including the cutoff seed.
func (h *Track) Len() int { return len(h.times) }

// Last returns the most recently recorded (time, state) pair.
func (h *Track) Last() (float64, dde.State) {
	i := len(h.times) - 1
	return h.times[i], h.states[i].Clone()
}

// Eval returns Y(t). The returned slice is always a copy; callers may
// not mutate the track through it.
func (h *Track) Eval(t float64) dde.State {
	if t <= h.cutoff {
		return h.generator(t).Clone()
	}

	// Index of the first sample time >= t.
	k := sort.SearchFloat64s(h.times, t)

	switch {
	case k >= len(h.times):
		// Past the frontier: flat fill with the last accepted value.
		return h.states[len(h.states)-1].Clone()
	case h.times[k] == t || k == 0:
		return h.states[k].Clone()
	}

	t0, t1 := h.times[k-1], h.times[k]
	y0, y1 := h.states[k-1], h.states[k]
	d0, d1 := h.slopes[k-1], h.slopes[k]
	dt := t1 - t0
	w := (t - t0) / dt

	out := make(dde.State, h.dim)
	if d0 != nil && d1 != nil {
		h00 := (1 + 2*w) * (1 - w) * (1 - w)
		h10 := w * (1 - w) * (1 - w)
		h01 := w * w * (3 - 2*w)
		h11 := w * w * (w - 1)
		for i := 0; i < h.dim; i++ {
			out[i] = h00*y0[i] + h10*dt*d0[i] + h01*y1[i] + h11*dt*d1[i]
		}
		return out
	}
	for i := 0; i < h.dim; i++ {
		out[i] = y0[i] + w*(y1[i]-y0[i])
	}
	return out
}

// Record appends one accepted point. The time must be strictly greater
// than the last recorded time and the state must match the seed
// dimension; violations signal an integration logic error and are fatal.
func (h *Track) Record(t float64, y dde.State) error {
	last := h.times[len(h.times)-1]
	if t <= last {
		return fmt.Errorf("record at t=%.6g after t=%.6g: %w", t, last, dde.ErrRecordOrder)
	}
	if len(y) != h.dim {
		return fmt.Errorf("record dim %d, track dim %d: %w", len(y), h.dim, dde.ErrDimensionMismatch)
	}

	h.times = append(h.times, t)
	h.states = append(h.states, y.Clone())
	h.slopes = append(h.slopes, nil)
	return nil
}

// SetSlope attaches the solution derivative to the newest node, making
// the adjoining intervals cubic Hermite instead of linear. Mismatched
// dimensions are ignored and the node stays linear.
func (h *Track) SetSlope(dy dde.State) {
	if len(dy) != h.dim {
		return
	}
	h.slopes[len(h.slopes)-1] = dy.Clone()
}
