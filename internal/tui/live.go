// Package tui renders a running simulation in the terminal.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/kinetic/internal/config"
	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/solver"
	"github.com/san-kum/kinetic/internal/trace"
)

const (
	graphWidth  = 70
	graphHeight = 14
	historyCap  = 600
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	runStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	idleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type tickMsg time.Time

// Model drives one engine from a bubbletea frame loop.
type Model struct {
	scenario string
	cfg      *config.Config

	eng   *engine.Engine
	sched *engine.ManualScheduler
	rec   *trace.Recorder

	history []float64
	now     float64
	frame   int
	paused  bool
}

// NewModel builds a live view for the given scenario.
func NewModel(cfg *config.Config, scenario string) (Model, error) {
	sched := engine.NewManualScheduler()
	eng, err := engine.New(solver.NewRK4(), sched)
	if err != nil {
		return Model{}, err
	}
	if err := eng.SetTimeScale(cfg.TimeScale); err != nil {
		return Model{}, err
	}

	for _, f := range cfg.BuildForces() {
		eng.AddForce(f)
	}
	eng.SetState(cfg.InitialState())

	rec := trace.NewRecorder()
	eng.AddListener(rec)

	return Model{
		scenario: scenario,
		cfg:      cfg,
		eng:      eng,
		sched:    sched,
		rec:      rec,
	}, nil
}

func (m Model) Init() tea.Cmd {
	m.eng.Start()
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	interval := time.Second / time.Duration(m.cfg.FrameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.eng.Stop()
			return m, tea.Quit
		case " ":
			if m.paused {
				m.paused = false
				m.eng.Start()
				return m, m.tick()
			}
			m.paused = true
			m.eng.Stop()
			return m, nil
		case "r":
			// A fresh recorder, or the settled status of the previous
			// run would stick to the restarted one.
			m.eng.RemoveListener(m.rec)
			m.rec = trace.NewRecorder()
			m.eng.AddListener(m.rec)

			m.eng.SetState(m.cfg.InitialState())
			m.history = nil
			m.frame = 0
			m.paused = false
			m.eng.Start()
			return m, m.tick()
		}

	case tickMsg:
		if m.paused {
			return m, nil
		}
		m.now += 1.0 / float64(m.cfg.FrameRate)
		m.frame++
		m.sched.Tick(m.now)

		m.history = append(m.history, m.eng.State().X.Value(0))
		if len(m.history) > historyCap {
			m.history = m.history[1:]
		}

		if m.sched.Pending() {
			return m, m.tick()
		}
		// Settled; keep the view up until the user quits or resets.
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	s := m.eng.State()

	var graph string
	if len(m.history) > 1 {
		graph = asciigraph.Plot(m.history,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("position x"),
		)
	} else {
		graph = "collecting samples..."
	}

	status := runStyle.Render("running")
	switch {
	case m.paused:
		status = idleStyle.Render("paused")
	case m.rec.Settled():
		status = idleStyle.Render("settled")
	}

	stats := fmt.Sprintf("%s%s\n%s%s\n%s%s\n%s%s",
		labelStyle.Render("status"), status,
		labelStyle.Render("frame"), valueStyle.Render(fmt.Sprintf("%d", m.frame)),
		labelStyle.Render("|x|"), valueStyle.Render(fmt.Sprintf("%.3f", s.X.Magnitude())),
		labelStyle.Render("|v|"), valueStyle.Render(fmt.Sprintf("%.3f", s.V.Magnitude())),
	)

	return headerStyle.Render("kinetic · "+m.scenario) + "\n" +
		graphStyle.Render(graph) + "\n" +
		stats +
		helpStyle.Render("\nspace pause · r reset · q quit")
}

// Run starts the live view and blocks until the user quits.
func Run(cfg *config.Config, scenario string) error {
	m, err := NewModel(cfg, scenario)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}
