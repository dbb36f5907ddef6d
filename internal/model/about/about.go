package about

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/presents/internal/embeddata"
	"github.com/vinser/presents/internal/render"
)

// chrome is the number of page rows that are not viewport: rule, title,
// footer and the two rows lipgloss.Place keeps around a centered page.
const chrome = 5

const footer = "↑ ↓ — scroll, g/G — top/bottom, esc — back, q — quit"

type Model struct {
	width      int
	height     int // requested viewport height
	termWidth  int
	termHeight int

	viewport viewport.Model
}

type CloseAboutMsg struct{}

func closeAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return CloseAboutMsg{}
	}
}

// New builds the about page at width columns with a viewport of height rows.
// A broken embedded page still opens and shows the error text.
func New(width, height int) Model {
	width = max(width, lipgloss.Width(footer))

	vp := viewport.New(width, height)
	vp.Style = lipgloss.NewStyle()
	vp.SetContent(page(width - vp.Style.GetHorizontalFrameSize() - 2))

	return Model{
		width:    width,
		height:   height,
		viewport: vp,
	}
}

// SetSize shrinks the viewport when the terminal cannot hold the full page.
func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
	m.viewport.Height = m.height
	if height > 0 && m.height > height-chrome {
		m.viewport.Height = max(height-chrome, 1)
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "?":
			return m, closeAboutCmd()
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return render.Page(render.Frame{
		Title:   "About",
		Status:  fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100),
		Content: m.viewport.View(),
		Footer:  footer,
		Width:   m.width,
		Height:  m.viewport.Height + 3,
	}, m.termWidth, m.termHeight)
}

// Markdown renders the about page for printing outside the TUI.
func Markdown(width int) string {
	return page(width)
}

func page(wrap int) string {
	md, err := embeddata.ReadAboutMD()
	if err != nil {
		return fmt.Sprintf("about page unavailable: %v\n", err)
	}
	return glamorize(string(md), wrap)
}

// glamorize renders markdown for the terminal, falling back to the raw text.
func glamorize(md string, wrap int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("pink"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
