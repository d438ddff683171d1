package models

import (
	"math"

	"github.com/san-kum/delaysim/internal/dde"
)

// MackeyGlass is the classic physiological control benchmark:
//
//	Y'(t) = beta * Y(t-tau) / (1 + Y(t-tau)^n) - gamma * Y(t)
//
// Periodic for small tau, chaotic for tau beyond roughly 17 with the
// standard parameters.
type MackeyGlass struct {
	Beta  float64
	Gamma float64
	N     float64
	Tau   float64
}

func NewMackeyGlass() *MackeyGlass {
	return &MackeyGlass{Beta: 0.2, Gamma: 0.1, N: 10, Tau: 17}
}

func (m *MackeyGlass) Name() string { return "mackeyglass" }
func (m *MackeyGlass) Dim() int     { return 1 }

func (m *MackeyGlass) History(t float64) dde.State {
	return dde.State{0.5}
}

func (m *MackeyGlass) Derive(h dde.History, t float64) dde.State {
	yTau := h.Eval(t - m.Tau)[0]
	y := h.Eval(t)[0]
	return dde.State{m.Beta*yTau/(1+math.Pow(yTau, m.N)) - m.Gamma*y}
}

func (m *MackeyGlass) Params() map[string]float64 {
	return map[string]float64{"beta": m.Beta, "gamma": m.Gamma, "n": m.N, "tau": m.Tau}
}

func (m *MackeyGlass) SetParam(name string, value float64) error {
	switch name {
	case "beta":
		m.Beta = value
	case "gamma":
		m.Gamma = value
	case "n":
		m.N = value
	case "tau":
		m.Tau = value
	default:
		return unknownParam(m.Name(), name)
	}
	return nil
}
