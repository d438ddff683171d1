package models

import (
	"math"

	"github.com/san-kum/delaysim/internal/dde"
)

// VariableDelay has a state-dependent delay:
//
//	Y'(t) = -Y(t - k*cos^2(Y(t)))
//
// The lookup offset shrinks toward zero whenever cos(Y) does, so the
// history is probed arbitrarily close to the integration frontier.
type VariableDelay struct {
	K float64
}

func NewVariableDelay() *VariableDelay {
	return &VariableDelay{K: 3.0}
}

func (m *VariableDelay) Name() string { return "vardelay" }
func (m *VariableDelay) Dim() int     { return 1 }

func (m *VariableDelay) History(t float64) dde.State {
	return dde.State{1}
}

func (m *VariableDelay) Derive(h dde.History, t float64) dde.State {
	c := math.Cos(h.Eval(t)[0])
	return dde.State{-h.Eval(t - m.K*c*c)[0]}
}

func (m *VariableDelay) Params() map[string]float64 {
	return map[string]float64{"k": m.K}
}

func (m *VariableDelay) SetParam(name string, value float64) error {
	if name != "k" {
		return unknownParam(m.Name(), name)
	}
	m.K = value
	return nil
}
