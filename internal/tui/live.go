// Package tui provides a live terminal view of a running solve.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/delaysim/internal/history"
	"github.com/san-kum/delaysim/internal/models"
	"github.com/san-kum/delaysim/internal/solver"
)

const (
	graphWidth  = 70
	graphHeight = 12
	windowSize  = 400
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps a solve incrementally, one batch of output points per
// tick, streaming the leading state component into a scrolling graph.
type Model struct {
	name    string
	driver  *solver.Driver
	tt      []float64
	idx     int
	series  []float64
	running bool
	done    bool
	err     error
}

func NewModel(m models.Model, tt []float64, cfg solver.Config) (Model, error) {
	driver, err := solver.NewDriver(models.Func(m), cfg.Algorithm, cfg.Options())
	if err != nil {
		return Model{}, err
	}

	track := history.New(m.History, tt[0])
	driver.SetArgs(cfg.Args)
	driver.Init(track)

	return Model{
		name:    m.Name(),
		driver:  driver,
		tt:      tt,
		idx:     0,
		series:  []float64{m.History(tt[0])[0]},
		running: true,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
	case TickMsg:
		if m.running && !m.done && m.err == nil {
			m.advance()
		}
		return m, tick()
	}
	return m, nil
}

// advance steps through a slice of the output grid so the view keeps
// up with dense grids without stalling the event loop.
func (m *Model) advance() {
	batch := len(m.tt) / 300
	if batch < 1 {
		batch = 1
	}

	for i := 0; i < batch && m.idx < len(m.tt)-1; i++ {
		m.idx++
		y, err := m.driver.AdvanceTo(m.tt[m.idx])
		if err != nil {
			m.err = err
			return
		}
		m.series = append(m.series, y[0])
		if len(m.series) > windowSize {
			m.series = m.series[1:]
		}
	}

	if m.idx >= len(m.tt)-1 {
		m.done = true
	}
}

func (m Model) View() string {
	var graph string
	if len(m.series) >= 2 {
		graph = asciigraph.Plot(m.series,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
		)
	}

	stats := lipgloss.JoinVertical(lipgloss.Left,
		statLine("model", m.name),
		statLine("t", fmt.Sprintf("%.3f / %.3f", m.tt[m.idx], m.tt[len(m.tt)-1])),
		statLine("points", fmt.Sprintf("%d / %d", m.idx+1, len(m.tt))),
		statLine("steps", fmt.Sprintf("%d (%d rejected)", m.driver.Stats().Steps, m.driver.Stats().Rejected)),
	)

	status := ""
	switch {
	case m.err != nil:
		status = errStyle.Render(fmt.Sprintf("solve failed: %v", m.err))
	case m.done:
		status = valueStyle.Render("done")
	case !m.running:
		status = valueStyle.Render("paused")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("delaysim live: "+m.name),
		graphStyle.Render(graph),
		stats,
		status,
		helpStyle.Render("space pause · q quit"),
	)
}

func statLine(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

// Run launches the live view and blocks until the user quits.
func Run(m models.Model, tt []float64, cfg solver.Config) error {
	model, err := NewModel(m, tt, cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model).Run()
	return err
}
