// Package viz renders solved trajectories as terminal graphs.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/delaysim/internal/dde"
)

const (
	plotWidth  = 80
	plotHeight = 10
	maxPlots   = 6
)

// Component extracts one state component as a plain series.
func Component(states []dde.State, idx int) []float64 {
	data := make([]float64, len(states))
	for i := range states {
		if idx < len(states[i]) {
			data[i] = states[i][idx]
		}
	}
	return data
}

// Downsample thins a series to at most width points so dense output
// grids stay readable in a terminal plot.
func Downsample(data []float64, width int) []float64 {
	if len(data) <= width || width < 2 {
		return data
	}
	out := make([]float64, width)
	for i := range out {
		out[i] = data[i*(len(data)-1)/(width-1)]
	}
	return out
}

// Plot renders every state component (capped) over the output grid.
func Plot(states []dde.State, captions []string) string {
	if len(states) == 0 {
		return "no data to plot"
	}

	var b strings.Builder
	numVars := len(states[0])
	if numVars > maxPlots {
		numVars = maxPlots
	}

	for idx := 0; idx < numVars; idx++ {
		caption := fmt.Sprintf("y%d vs time", idx)
		if idx < len(captions) && captions[idx] != "" {
			caption = captions[idx]
		}

		data := Downsample(Component(states, idx), plotWidth*4)
		graph := asciigraph.Plot(data,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(caption),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}

	return b.String()
}
