package steppers

import (
	"math"
	"testing"

	"github.com/san-kum/delaysim/internal/dde"
)

// harmonic oscillator: y'' = -y, energy 0.5*(y^2 + v^2)
func oscillator(t float64, y dde.State) dde.State {
	return dde.State{y[1], -y[0]}
}

func energy(y dde.State) float64 {
	return 0.5 * (y[0]*y[0] + y[1]*y[1])
}

func TestRK45_Step(t *testing.T) {
	r := NewRK45()
	y := dde.State{1.0, 0.0}
	dt := 0.01

	for i := 0; i < 1000; i++ {
		y = r.Step(oscillator, y, float64(i)*dt, dt)
	}

	if !y.IsValid() {
		t.Error("RK45 produced invalid state")
	}
}

func TestRK45_EnergyConservation(t *testing.T) {
	r := NewRK45()
	y := dde.State{1.0, 0.0}
	dt := 0.01

	initial := energy(y)
	for i := 0; i < 10000; i++ {
		y = r.Step(oscillator, y, float64(i)*dt, dt)
	}

	drift := math.Abs(energy(y)-initial) / initial
	if drift > 1e-6 {
		t.Errorf("RK45 energy drift too high: %e", drift)
	}
}

func TestRK45_ErrorRatio(t *testing.T) {
	r := NewRK45()
	y := dde.State{1.0, 0.0}

	// A huge step at a tight tolerance must report rejection.
	_, ratio, dtNext := r.StepAdaptive(oscillator, y, 0, 2.0, 1e-12)
	if ratio <= 1 {
		t.Errorf("expected rejection ratio > 1, got %f", ratio)
	}
	if dtNext >= 2.0 {
		t.Errorf("rejected step should suggest a smaller dt, got %f", dtNext)
	}

	// A tiny step at a loose tolerance must be acceptable.
	_, ratio, dtNext = r.StepAdaptive(oscillator, y, 0, 1e-4, 1e-6)
	if ratio > 1 {
		t.Errorf("expected acceptance, got ratio %f", ratio)
	}
	if dtNext <= 0 {
		t.Errorf("invalid suggested dt: %f", dtNext)
	}
}

func TestBS23_Accuracy(t *testing.T) {
	b := NewBS23()
	y := dde.State{1.0, 0.0}
	dt := 0.001

	steps := 1000
	for i := 0; i < steps; i++ {
		y = b.Step(oscillator, y, float64(i)*dt, dt)
	}

	want := math.Cos(float64(steps) * dt)
	if math.Abs(y[0]-want) > 1e-5 {
		t.Errorf("position error too large: got %.8f, want %.8f", y[0], want)
	}
}

func TestRK4Accuracy(t *testing.T) {
	r := NewRK4()
	y := dde.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		y = r.Step(oscillator, y, float64(i)*dt, dt)
	}

	expectedY := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(y[0]-expectedY) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", y[0], expectedY)
	}
	if math.Abs(y[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", y[1], expectedV)
	}
}

func TestEulerConverges(t *testing.T) {
	e := NewEuler()
	decay := func(t float64, y dde.State) dde.State {
		return dde.State{-y[0]}
	}

	y := dde.State{1.0}
	dt := 1e-4
	steps := 10000

	for i := 0; i < steps; i++ {
		y = e.Step(decay, y, float64(i)*dt, dt)
	}

	want := math.Exp(-1.0)
	if math.Abs(y[0]-want) > 1e-3 {
		t.Errorf("euler decay: got %.6f, want %.6f", y[0], want)
	}
}

func TestAlgorithmsRegistry(t *testing.T) {
	names := Algorithms()
	if len(names) != 4 {
		t.Fatalf("expected 4 algorithms, got %v", names)
	}

	for _, name := range names {
		st, err := newStepper(name)
		if err != nil {
			t.Errorf("newStepper(%q): %v", name, err)
		}
		if st == nil {
			t.Errorf("newStepper(%q) returned nil", name)
		}
	}

	if _, err := newStepper("dopri-nonexistent"); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}
