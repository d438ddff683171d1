package solver

import (
	"fmt"

	"github.com/san-kum/delaysim/internal/dde"
	"github.com/san-kum/delaysim/internal/history"
	"github.com/san-kum/delaysim/internal/steppers"
)

// Config selects the stepping algorithm and its tunables for one solve.
type Config struct {
	Algorithm   string
	Args        []float64
	Tolerance   float64
	InitialStep float64
	MinStep     float64
	MaxStep     float64
	MaxSteps    int
}

func DefaultConfig() Config {
	opts := steppers.DefaultOptions()
	return Config{
		Algorithm:   steppers.DefaultAlgorithm,
		Tolerance:   opts.Tolerance,
		InitialStep: opts.InitialStep,
		MinStep:     opts.MinStep,
		MaxStep:     opts.MaxStep,
		MaxSteps:    opts.MaxSteps,
	}
}

// Options translates the solve configuration into engine options.
func (c Config) Options() steppers.Options {
	return steppers.Options{
		Tolerance:   c.Tolerance,
		InitialStep: c.InitialStep,
		MinStep:     c.MinStep,
		MaxStep:     c.MaxStep,
		MaxSteps:    c.MaxSteps,
	}
}

// Solve integrates a DDE system
//
//	Y(t)  = generator(t)       for t <= tt[0]
//	Y'(t) = rhs(Y, t, args)    for t >  tt[0]
//
// across the strictly increasing output grid tt, returning one state
// per output time. The first result is generator(tt[0]) by definition;
// a single-element grid performs no stepping at all.
func Solve(rhs dde.Func, generator dde.Generator, tt []float64, cfg Config) ([]dde.State, error) {
	if err := validateTimes(tt); err != nil {
		return nil, err
	}

	y0 := generator(tt[0])
	results := make([]dde.State, 0, len(tt))
	results = append(results, y0.Clone())

	if len(tt) == 1 {
		return results, nil
	}

	track := history.New(generator, tt[0])

	// Dimension probe: the right-hand side must produce the generator's
	// dimension before any stepping happens.
	if dy := rhs(track, tt[0], cfg.Args); len(dy) != track.Dim() {
		return nil, fmt.Errorf("rhs dim %d, generator dim %d: %w",
			len(dy), track.Dim(), dde.ErrDimensionMismatch)
	}

	driver, err := NewDriver(rhs, cfg.Algorithm, cfg.Options())
	if err != nil {
		return nil, err
	}
	driver.SetArgs(cfg.Args)
	driver.Init(track)

	for _, target := range tt[1:] {
		y, err := driver.AdvanceTo(target)
		if err != nil {
			return nil, err
		}
		results = append(results, y)
	}

	return results, nil
}

func validateTimes(tt []float64) error {
	if len(tt) == 0 {
		return dde.ErrEmptyTimes
	}
	for i := 1; i < len(tt); i++ {
		if tt[i] <= tt[i-1] {
			return fmt.Errorf("tt[%d]=%.6g, tt[%d]=%.6g: %w",
				i-1, tt[i-1], i, tt[i], dde.ErrNonIncreasingTimes)
		}
	}
	return nil
}

// Linspace returns n evenly spaced points from start to end inclusive,
// the usual way to build an output grid for Solve.
func Linspace(start, end float64, n int) []float64 {
	if n <= 1 {
		return []float64{start}
	}
	tt := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range tt {
		tt[i] = start + float64(i)*step
	}
	tt[n-1] = end
	return tt
}
