// Package solver couples the stepping engine to the history track and
// drives a DDE solve across a caller-supplied output grid.
package solver

import (
	"github.com/san-kum/delaysim/internal/dde"
	"github.com/san-kum/delaysim/internal/history"
	"github.com/san-kum/delaysim/internal/steppers"
)

// Driver wraps a stepping engine so that the bound derivative reads
// state through the live history track, and every accepted point is
// published back into the track before the next advance begins. That
// ordering is what makes delay lookups resolvable: all derivative
// evaluations inside one AdvanceTo see every previously accepted
// point, and lookups at or past the frontier fall back to the track's
// flat fill.
type Driver struct {
	engine *steppers.Engine
	track  *history.Track
	rhs    dde.Func
	args   []float64
	t      float64
	y      dde.State
}

func NewDriver(rhs dde.Func, algorithm string, opts steppers.Options) (*Driver, error) {
	engine, err := steppers.NewEngine(algorithm, opts)
	if err != nil {
		return nil, err
	}

	d := &Driver{engine: engine, rhs: rhs}
	// The engine hands the derivative its own trial state, but a DDE
	// right-hand side reads Y only through the history: mid-step
	// evaluations at the frontier see the last accepted value, exactly
	// the contract state-dependent delays rely on.
	engine.Bind(func(t float64, _ dde.State) dde.State {
		return rhs(d.track, t, d.args)
	})
	return d, nil
}

// Init binds the history track and seats the engine at the cutoff.
// The seed node gets its slope here so the first interval interpolates
// at the same order as the rest of the track.
func (d *Driver) Init(track *history.Track) {
	d.track = track
	d.t = track.Cutoff()
	d.y = track.Eval(track.Cutoff())
	d.engine.SetInitial(d.t, d.y)
	track.SetSlope(d.rhs(track, d.t, d.args))
}

// SetArgs forwards extra parameters to the right-hand side.
func (d *Driver) SetArgs(args []float64) {
	d.args = args
}

// AdvanceTo integrates to t and records the accepted point into the
// track before returning. The driver's (t, y) and the track's last
// sample stay in lock-step.
func (d *Driver) AdvanceTo(t float64) (dde.State, error) {
	y, err := d.engine.AdvanceTo(t)
	if err != nil {
		lastT, lastY := d.track.Last()
		return nil, &dde.SolveError{Target: t, LastTime: lastT, LastState: lastY, Wrapped: err}
	}

	if err := d.track.Record(t, y); err != nil {
		lastT, lastY := d.track.Last()
		return nil, &dde.SolveError{Target: t, LastTime: lastT, LastState: lastY, Wrapped: err}
	}
	// The point is in the track, so this evaluation sees Y(t) exactly
	// and yields the node slope for Hermite lookups between targets.
	d.track.SetSlope(d.rhs(d.track, t, d.args))

	d.t = t
	d.y = y
	return y, nil
}

// Stats exposes the underlying engine's step accounting.
func (d *Driver) Stats() steppers.Stats {
	return d.engine.Stats()
}
