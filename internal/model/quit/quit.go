package quit

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/presents/internal/render"
	"github.com/vinser/presents/internal/sim"
	"github.com/vinser/presents/internal/style"
)

const quitPeriod = 2 * time.Second

type Model struct {
	termWidth  int
	termHeight int

	results   []sim.Result
	quitUntil time.Time
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

// New shows the final counts for results until the quit period ends.
func New(results ...sim.Result) Model {
	return Model{
		results:   results,
		quitUntil: time.Now().Add(quitPeriod),
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		// Any key skips the farewell.
		return m, timedoutCmd()
	}
	if time.Now().After(m.quitUntil) {
		return m, timedoutCmd()
	}
	return m, tick()
}

func (m Model) View() string {
	lines := []string{""}
	for _, r := range m.results {
		lines = append(lines, style.Content.Render(render.Headline(r)+"!"))
	}
	lines = append(lines, "", style.Title.Render("Bye!"), "")
	view := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if m.termWidth > 0 && m.termHeight > 0 {
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return strings.TrimRight(view, " ") + "\n"
}
