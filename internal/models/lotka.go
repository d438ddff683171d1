package models

import "github.com/san-kum/delaysim/internal/dde"

// LotkaVolterra is a delayed predator-prey system:
//
//	x'(t) =  r * x(t) * (1 - y(t-d))
//	y'(t) = -r * y(t) * (1 - x(t-d))
//
// With d = 0 it reduces to the plain (non-delayed) model; growing d
// deforms the closed orbits.
type LotkaVolterra struct {
	Rate  float64
	Delay float64
}

func NewLotkaVolterra() *LotkaVolterra {
	return &LotkaVolterra{Rate: 0.5, Delay: 0.2}
}

func (m *LotkaVolterra) Name() string { return "lotka" }
func (m *LotkaVolterra) Dim() int     { return 2 }

func (m *LotkaVolterra) History(t float64) dde.State {
	return dde.State{1, 2}
}

func (m *LotkaVolterra) Derive(h dde.History, t float64) dde.State {
	y := h.Eval(t)
	yd := h.Eval(t - m.Delay)
	return dde.State{
		m.Rate * y[0] * (1 - yd[1]),
		-m.Rate * y[1] * (1 - yd[0]),
	}
}

func (m *LotkaVolterra) Params() map[string]float64 {
	return map[string]float64{"rate": m.Rate, "delay": m.Delay}
}

func (m *LotkaVolterra) SetParam(name string, value float64) error {
	switch name {
	case "rate":
		m.Rate = value
	case "delay":
		m.Delay = value
	default:
		return unknownParam(m.Name(), name)
	}
	return nil
}
