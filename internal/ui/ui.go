// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/waqtapp/waqt/internal/astro"
	"github.com/waqtapp/waqt/internal/salat"
	"github.com/waqtapp/waqt/internal/version"
)

// TickMsg triggers periodic clock updates so the current-prayer
// highlight and countdown stay fresh.
type TickMsg time.Time

// Model is the root Bubble Tea model: one day's schedule with date
// navigation.
type Model struct {
	coordinates astro.Coordinates
	params      salat.CalculationParameters
	zone        *time.Location

	date     astro.Date
	schedule *salat.Schedule
	markers  *salat.NightMarkers
	qibla    float64
	err      error

	width  int
	height int
	ready  bool
	now    time.Time
}

// New creates the root UI model showing the given date.
func New(coordinates astro.Coordinates, params salat.CalculationParameters, zone *time.Location, date astro.Date) Model {
	m := Model{
		coordinates: coordinates,
		params:      params,
		zone:        zone,
		date:        date,
		qibla:       salat.Qibla(coordinates),
		now:         time.Now(),
	}
	return m.recompute()
}

// recompute rebuilds the schedule for the model's current date. The
// solver can fail inside the polar envelope; the error is kept for the
// view rather than crashing navigation.
func (m Model) recompute() Model {
	m.schedule, m.err = salat.Times(m.date, m.coordinates, m.params)
	m.markers = nil
	if m.err == nil {
		if markers, err := salat.Night(m.schedule); err == nil {
			m.markers = &markers
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "left", "h":
			m.date = m.date.Add(-1)
			m = m.recompute()
		case "right", "l":
			m.date = m.date.Add(1)
			m = m.recompute()
		case "t":
			m.date = astro.DateOf(time.Now().In(m.zone))
			m = m.recompute()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
		b.WriteString("  " + errorStyle.Render("No schedule: "+m.err.Error()) + "\n")
	} else {
		for _, line := range strings.Split(RenderSchedulePanel(m.schedule, m.zone, m.now), "\n") {
			b.WriteString("  " + line + "\n")
		}
		if m.markers != nil {
			b.WriteString("\n")
			for _, line := range strings.Split(RenderNightPanel(*m.markers, m.zone), "\n") {
				b.WriteString("  " + line + "\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	today := astro.DateOf(time.Now().In(m.zone))
	dateLabel := m.date.String()
	if m.date == today {
		dateLabel += " (today)"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("waqt") + dimStyle.Render(" · v"+version.Version) + "\n")
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("%s · %s · %s", dateLabel, m.coordinates, m.params.Method)) + "\n")
	return b.String()
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	status := RenderQibla(m.qibla)
	if m.err == nil {
		today := astro.DateOf(m.now.In(m.zone))
		if m.date == today {
			if countdown := RenderCountdown(m.schedule, m.now); countdown != "" {
				status = countdown + "  " + dimStyle.Render("|") + "  " + status
			}
		}
	}

	help := dimStyle.Render("←/→: day | t: today | q: quit")
	return "  " + status + "\n  " + help
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
