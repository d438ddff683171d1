// Package registry wires model and algorithm names to constructors
// for the CLI and the live view.
package registry

import (
	"fmt"
	"sort"

	"github.com/san-kum/delaysim/internal/models"
	"github.com/san-kum/delaysim/internal/steppers"
)

type Registry struct {
	models map[string]func() models.Model
}

func New() *Registry {
	r := &Registry{
		models: make(map[string]func() models.Model),
	}

	r.models["sine"] = func() models.Model { return models.NewDelayedSine() }
	r.models["lotka"] = func() models.Model { return models.NewLotkaVolterra() }
	r.models["vardelay"] = func() models.Model { return models.NewVariableDelay() }
	r.models["mackeyglass"] = func() models.Model { return models.NewMackeyGlass() }

	return r
}

// Model constructs the named model and applies any parameter overrides.
func (r *Registry) Model(name string, params map[string]float64) (models.Model, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s (available: %v)", name, r.Models())
	}

	m := fn()
	if len(params) > 0 {
		cfg, ok := m.(models.Configurable)
		if !ok {
			return nil, fmt.Errorf("model %s takes no parameters", name)
		}
		for k, v := range params {
			if err := cfg.SetParam(k, v); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Models lists the registered model names, sorted.
func (r *Registry) Models() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Algorithms lists the selectable stepping algorithms.
func (r *Registry) Algorithms() []string {
	return steppers.Algorithms()
}
