package registry

import (
	"testing"
)

func TestModelLookup(t *testing.T) {
	r := New()

	for _, name := range r.Models() {
		m, err := r.Model(name, nil)
		if err != nil {
			t.Errorf("Model(%q): %v", name, err)
			continue
		}
		if m.Name() != name {
			t.Errorf("model %q reports name %q", name, m.Name())
		}
		if m.Dim() <= 0 {
			t.Errorf("model %q has dim %d", name, m.Dim())
		}
	}
}

func TestModelUnknown(t *testing.T) {
	r := New()
	if _, err := r.Model("heat-equation", nil); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestModelParams(t *testing.T) {
	r := New()

	m, err := r.Model("lotka", map[string]float64{"delay": 0.7})
	if err != nil {
		t.Fatal(err)
	}
	cfg := m.(interface{ Params() map[string]float64 })
	if cfg.Params()["delay"] != 0.7 {
		t.Errorf("delay = %f, want 0.7", cfg.Params()["delay"])
	}

	if _, err := r.Model("lotka", map[string]float64{"nope": 1}); err == nil {
		t.Error("expected error for unknown parameter")
	}
}

func TestAlgorithms(t *testing.T) {
	r := New()
	algos := r.Algorithms()
	if len(algos) == 0 {
		t.Fatal("no algorithms registered")
	}

	found := false
	for _, a := range algos {
		if a == "rk45" {
			found = true
		}
	}
	if !found {
		t.Error("rk45 missing from algorithm list")
	}
}
