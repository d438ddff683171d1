package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/delaysim/internal/dde"
)

func TestComponent(t *testing.T) {
	states := []dde.State{{1, 10}, {2, 20}, {3, 30}}

	got := Component(states, 1)
	want := []float64{10, 20, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Component[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestDownsample(t *testing.T) {
	data := make([]float64, 1000)
	for i := range data {
		data[i] = float64(i)
	}

	out := Downsample(data, 100)
	if len(out) != 100 {
		t.Fatalf("len = %d, want 100", len(out))
	}
	if out[0] != 0 {
		t.Errorf("first = %f, want 0", out[0])
	}
	if out[99] != 999 {
		t.Errorf("last = %f, want 999", out[99])
	}

	short := []float64{1, 2, 3}
	if len(Downsample(short, 100)) != 3 {
		t.Error("short series should pass through unchanged")
	}
}

func TestPlot(t *testing.T) {
	states := []dde.State{{0, 1}, {1, 0}, {0, -1}, {-1, 0}, {0, 1}}

	out := Plot(states, []string{"prey", "predator"})
	if !strings.Contains(out, "prey") || !strings.Contains(out, "predator") {
		t.Error("captions missing from plot output")
	}

	if got := Plot(nil, nil); !strings.Contains(got, "no data") {
		t.Errorf("empty plot = %q", got)
	}
}
