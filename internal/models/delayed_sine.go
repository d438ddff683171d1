package models

import (
	"math"

	"github.com/san-kum/delaysim/internal/dde"
)

// DelayedSine is the pure delay identity Y'(t) = Y(t - 3pi/2). With a
// sine history the delayed value equals the derivative of sin, so the
// solution continues sin(t) indefinitely.
type DelayedSine struct {
	Delay float64
}

func NewDelayedSine() *DelayedSine {
	return &DelayedSine{Delay: 3 * math.Pi / 2}
}

func (m *DelayedSine) Name() string { return "sine" }
func (m *DelayedSine) Dim() int     { return 1 }

func (m *DelayedSine) History(t float64) dde.State {
	return dde.State{math.Sin(t)}
}

func (m *DelayedSine) Derive(h dde.History, t float64) dde.State {
	return dde.State{h.Eval(t - m.Delay)[0]}
}

func (m *DelayedSine) Params() map[string]float64 {
	return map[string]float64{"delay": m.Delay}
}

func (m *DelayedSine) SetParam(name string, value float64) error {
	if name != "delay" {
		return unknownParam(m.Name(), name)
	}
	m.Delay = value
	return nil
}
