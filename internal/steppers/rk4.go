package steppers

import "github.com/san-kum/delaysim/internal/dde"

// RK4 is the classical fixed-step fourth-order Runge-Kutta scheme.
type RK4 struct {
	k1, k2, k3, k4 dde.State
	scratch        dde.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(dde.State, n)
		r.k2 = make(dde.State, n)
		r.k3 = make(dde.State, n)
		r.k4 = make(dde.State, n)
		r.scratch = make(dde.State, n)
	}
}

func (r *RK4) Step(f Deriv, y dde.State, t, dt float64) dde.State {
	n := len(y)
	r.ensureScratch(n)

	copy(r.k1, f(t, y))

	for i := 0; i < n; i++ {
		r.scratch[i] = y[i] + dt*0.5*r.k1[i]
	}
	copy(r.k2, f(t+dt*0.5, r.scratch))

	for i := 0; i < n; i++ {
		r.scratch[i] = y[i] + dt*0.5*r.k2[i]
	}
	copy(r.k3, f(t+dt*0.5, r.scratch))

	for i := 0; i < n; i++ {
		r.scratch[i] = y[i] + dt*r.k3[i]
	}
	copy(r.k4, f(t+dt, r.scratch))

	result := make(dde.State, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = y[i] + dt6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}

	return result
}
