package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/delaysim/internal/solver"
)

const (
	DefaultStart     = 0.0
	DefaultEnd       = 50.0
	DefaultPoints    = 5000
	DefaultTolerance = 1e-6
	DefaultStep      = 0.01
)

type Config struct {
	Model       string             `yaml:"model"`
	Algorithm   string             `yaml:"algorithm"`
	Start       float64            `yaml:"start"`
	End         float64            `yaml:"end"`
	Points      int                `yaml:"points"`
	Tolerance   float64            `yaml:"tolerance"`
	InitialStep float64            `yaml:"initial_step"`
	Params      map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:       "sine",
		Algorithm:   "rk45",
		Start:       DefaultStart,
		End:         DefaultEnd,
		Points:      DefaultPoints,
		Tolerance:   DefaultTolerance,
		InitialStep: DefaultStep,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.End <= c.Start {
		return fmt.Errorf("end %.4g must be after start %.4g", c.End, c.Start)
	}
	if c.Points < 1 {
		return fmt.Errorf("points must be at least 1, got %d", c.Points)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", c.Tolerance)
	}
	if c.InitialStep <= 0 {
		return fmt.Errorf("initial step must be positive, got %g", c.InitialStep)
	}
	return nil
}

// SolverConfig translates the run configuration into solver settings.
func (c *Config) SolverConfig() solver.Config {
	sc := solver.DefaultConfig()
	sc.Algorithm = c.Algorithm
	sc.Tolerance = c.Tolerance
	sc.InitialStep = c.InitialStep
	return sc
}

// Times builds the output grid for the run.
func (c *Config) Times() []float64 {
	return solver.Linspace(c.Start, c.End, c.Points)
}
