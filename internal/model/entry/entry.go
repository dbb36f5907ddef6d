package entry

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/presents/internal/grid"
	"github.com/vinser/presents/internal/render"
	"github.com/vinser/presents/internal/route"
	"github.com/vinser/presents/internal/sim"
	"github.com/vinser/presents/internal/style"
)

const charLimit = 4096

// Model lets the user type a route and shows both counts as it grows.
type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	textInput textinput.Model
	moves     []grid.Move
	ignored   int
	single    int
	dual      int
}

// SubmitMsg carries the typed route to the replay.
type SubmitMsg struct {
	Moves []grid.Move
}

func submitCmd(moves []grid.Move) tea.Cmd {
	return func() tea.Msg {
		return SubmitMsg{Moves: moves}
	}
}

// ShowAboutMsg asks the app to open the about page.
type ShowAboutMsg struct{}

func showAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return ShowAboutMsg{}
	}
}

// New returns an empty route editor sized width x height.
func New(width, height int) Model {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}

	ti := textinput.New()
	ti.Prompt = "Route: "
	ti.Placeholder = "^>v<"
	ti.CharLimit = charLimit
	ti.Width = width - lipgloss.Width(ti.Prompt) - 1

	leftAlign := lipgloss.NewStyle().Align(lipgloss.Left)
	ti.PromptStyle = leftAlign
	ti.TextStyle = leftAlign
	ti.PlaceholderStyle = leftAlign
	ti.Focus()

	m := Model{
		width:     width,
		height:    height,
		textInput: ti,
	}
	m.recount()
	return m
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			return m, submitCmd(m.moves)
		case tea.KeyEsc:
			m.textInput.Reset()
			m.recount()
			return m, nil
		case tea.KeyRunes:
			if string(msg.Runes) == "?" {
				return m, showAboutCmd()
			}
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.recount()
	return m, cmd
}

// recount re-runs both policies over the current text. Routes typed by
// hand are short enough to replay on every keystroke.
func (m *Model) recount() {
	steps := route.Translate(m.textInput.Value())
	m.moves = route.Keep(steps)
	m.ignored = route.Ignored(steps)
	m.single = sim.Single(m.moves)
	m.dual = sim.Dual(m.moves)
}

const footer = "enter — replay, esc — clear, ? — about, ctrl+c — quit"

func (m Model) View() string {
	return render.Page(render.Frame{
		Title:   "Type a route",
		Status:  m.status(),
		Content: m.renderContent(),
		Footer:  footer,
		Width:   m.width,
		Height:  m.height,
	}, m.termWidth, m.termHeight)
}

// status shows where a lone courier would finish.
func (m Model) status() string {
	p := grid.Origin
	for _, mv := range m.moves {
		p = grid.Next(p, mv)
	}
	return fmt.Sprintf("ends at %d,%d", p.X, p.Y)
}

func (m Model) renderContent() string {
	content := []string{
		m.textInput.View(),
		"",
		fmt.Sprintf("%s %s", style.Label.Render("moves  "), style.Number.Render(fmt.Sprint(len(m.moves)))),
		fmt.Sprintf("%s %s", style.Label.Render("single "), style.Number.Render(fmt.Sprint(m.single))),
		fmt.Sprintf("%s %s", style.Label.Render("dual   "), style.Number.Render(fmt.Sprint(m.dual))),
	}
	if m.ignored > 0 {
		content = append(content, style.Error.Render(fmt.Sprintf("%d character(s) ignored", m.ignored)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, content...)
}
