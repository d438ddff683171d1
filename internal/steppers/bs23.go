package steppers

import (
	"math"

	"github.com/san-kum/delaysim/internal/dde"
)

// Bogacki-Shampine coefficients (3(2) pair)
var (
	bsC2 = 1.0 / 2.0
	bsC3 = 3.0 / 4.0

	bsB1 = 2.0 / 9.0
	bsB2 = 1.0 / 3.0
	bsB3 = 4.0 / 9.0

	bsE1 = bsB1 - 7.0/24.0
	bsE2 = bsB2 - 1.0/4.0
	bsE3 = bsB3 - 1.0/3.0
	bsE4 = -1.0 / 8.0
)

// BS23 is the Bogacki-Shampine 3(2) pair: three stages plus FSAL,
// cheaper per step than RK45 at looser tolerances.
type BS23 struct {
	safety   float64
	minScale float64
	maxScale float64
}

func NewBS23() *BS23 {
	return &BS23{
		safety:   0.9,
		minScale: 0.2,
		maxScale: 10.0,
	}
}

func (b *BS23) Step(f Deriv, y dde.State, t, dt float64) dde.State {
	yNew, _, _ := b.StepAdaptive(f, y, t, dt, 1e-6)
	return yNew
}

func (b *BS23) StepAdaptive(f Deriv, y dde.State, t, dt, tol float64) (dde.State, float64, float64) {
	n := len(y)

	k1 := f(t, y)

	y2 := make(dde.State, n)
	for i := 0; i < n; i++ {
		y2[i] = y[i] + dt*bsC2*k1[i]
	}
	k2 := f(t+bsC2*dt, y2)

	y3 := make(dde.State, n)
	for i := 0; i < n; i++ {
		y3[i] = y[i] + dt*bsC3*k2[i]
	}
	k3 := f(t+bsC3*dt, y3)

	yNew := make(dde.State, n)
	for i := 0; i < n; i++ {
		yNew[i] = y[i] + dt*(bsB1*k1[i]+bsB2*k2[i]+bsB3*k3[i])
	}

	k4 := f(t+dt, yNew)

	errMax := 0.0
	for i := 0; i < n; i++ {
		errEst := dt * (bsE1*k1[i] + bsE2*k2[i] + bsE3*k3[i] + bsE4*k4[i])
		scale := math.Abs(y[i]) + math.Abs(dt*k1[i]) + 1e-10
		errMax = math.Max(errMax, math.Abs(errEst)/scale)
	}

	errRatio := errMax / tol

	var dtNext float64
	if errRatio > 1 {
		scale := math.Max(b.minScale, b.safety*math.Pow(errRatio, -1.0/3.0))
		dtNext = dt * scale
	} else if errRatio > 0 {
		scale := math.Min(b.maxScale, b.safety*math.Pow(errRatio, -1.0/4.0))
		dtNext = dt * scale
	} else {
		dtNext = dt * b.maxScale
	}

	return yNew, errRatio, dtNext
}
