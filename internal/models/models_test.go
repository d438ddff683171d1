package models_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/delaysim/internal/dde"
	"github.com/san-kum/delaysim/internal/models"
	"github.com/san-kum/delaysim/internal/solver"
)

func solve(m models.Model, start, end float64, n int) [][]float64 {
	tt := solver.Linspace(start, end, n)
	yy, err := solver.Solve(models.Func(m), m.History, tt, solver.DefaultConfig())
	Expect(err).NotTo(HaveOccurred())

	out := make([][]float64, len(yy))
	for i := range yy {
		out[i] = yy[i]
	}
	return out
}

var _ = Describe("DelayedSine", func() {
	It("continues sin(t) under the 3pi/2 delay", func() {
		m := models.NewDelayedSine()
		tt := solver.Linspace(0, 30, 6000)
		yy, err := solver.Solve(models.Func(m), m.History, tt, solver.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())

		for i, ti := range tt {
			Expect(yy[i][0]).To(BeNumerically("~", math.Sin(ti), 1e-2))
		}
	})

	It("exposes its delay as a parameter", func() {
		m := models.NewDelayedSine()
		Expect(m.Params()).To(HaveKeyWithValue("delay", 3*math.Pi/2))
		Expect(m.SetParam("delay", 1.0)).To(Succeed())
		Expect(m.Delay).To(Equal(1.0))
		Expect(m.SetParam("bogus", 1.0)).NotTo(Succeed())
	})
})

var _ = Describe("LotkaVolterra", func() {
	It("has a 2-dimensional state", func() {
		m := models.NewLotkaVolterra()
		Expect(m.Dim()).To(Equal(2))
		Expect(m.History(0)).To(HaveLen(2))
		Expect(m.Derive(historyOf(m), 0)).To(HaveLen(2))
	})

	It("stays bounded over a few periods", func() {
		m := models.NewLotkaVolterra()
		yy := solve(m, 0, 30, 8000)
		for _, y := range yy {
			Expect(y[0]).To(And(BeNumerically(">", 0), BeNumerically("<", 20)))
			Expect(y[1]).To(And(BeNumerically(">", 0), BeNumerically("<", 20)))
		}
	})
})

var _ = Describe("VariableDelay", func() {
	It("survives lookups at the integration frontier", func() {
		m := models.NewVariableDelay()
		yy := solve(m, 0, 30, 2000)
		for _, y := range yy {
			Expect(math.IsNaN(y[0])).To(BeFalse())
			Expect(math.Abs(y[0])).To(BeNumerically("<", 10))
		}
	})
})

var _ = Describe("MackeyGlass", func() {
	It("keeps the concentration positive and bounded", func() {
		m := models.NewMackeyGlass()
		yy := solve(m, 0, 200, 4000)
		for _, y := range yy {
			Expect(y[0]).To(BeNumerically(">", 0))
			Expect(y[0]).To(BeNumerically("<", 2))
		}
	})

	It("oscillates rather than settling", func() {
		m := models.NewMackeyGlass()
		yy := solve(m, 0, 300, 6000)

		lo, hi := math.Inf(1), math.Inf(-1)
		for _, y := range yy[len(yy)/2:] {
			lo = math.Min(lo, y[0])
			hi = math.Max(hi, y[0])
		}
		Expect(hi-lo).To(BeNumerically(">", 0.2), "late-time amplitude")
	})
})

// historyOf wraps a model's own generator as a history for direct
// Derive probes at the start time.
func historyOf(m models.Model) generatorHistory {
	return generatorHistory{m}
}

type generatorHistory struct{ m models.Model }

func (g generatorHistory) Eval(t float64) dde.State { return g.m.History(t) }
