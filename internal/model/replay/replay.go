package replay

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/presents/internal/agent"
	"github.com/vinser/presents/internal/grid"
	"github.com/vinser/presents/internal/model/motd"
	"github.com/vinser/presents/internal/render"
	"github.com/vinser/presents/internal/sim"
	"github.com/vinser/presents/internal/state"
	"github.com/vinser/presents/internal/style"
)

const (
	headerRows   = 3
	footerRows   = 3
	followMargin = 3
)

type Model struct {
	state    *state.State
	moves    []grid.Move
	sim      *sim.Simulator
	sprites  render.Sprites
	agents   map[agent.Role]sprite
	last     sim.Event
	moved    bool
	paused   bool
	finished bool
	tickID   int
	terminal struct{ Width, Height int }
	window   render.Window
	motd     motd.Model
	sb       *strings.Builder
}

type sprite struct {
	bright []string
	dim    []string
}

// TickMsg advances the replay by one move. Ticks from an older chain,
// e.g. before a pause, carry a stale ID and are dropped.
type TickMsg struct {
	ID   int
	Time time.Time
}

func tick(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

// FinishedMsg is sent once when the last move has been replayed. It carries
// the counts of the run that was on screen.
type FinishedMsg struct {
	Result sim.Result
}

func finishedCmd(r sim.Result) tea.Cmd {
	return func() tea.Msg {
		return FinishedMsg{Result: r}
	}
}

// ShowAboutMsg asks the app to open the about page.
type ShowAboutMsg struct{}

func showAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return ShowAboutMsg{}
	}
}

// ShowSetupMsg asks the app to open the settings page.
type ShowSetupMsg struct{}

func showSetupCmd() tea.Cmd {
	return func() tea.Msg {
		return ShowSetupMsg{}
	}
}

// WindowSizeMsg is used to pass window size information to the replay model.
type WindowSizeMsg struct {
	Width  int
	Height int
}

// New prepares a replay of moves under policy; Init starts it.
func New(st *state.State, moves []grid.Move, policy sim.Policy) Model {
	m := Model{
		state:   st,
		moves:   moves,
		sprites: render.NewSprites(st.SpriteSize),
		agents: map[agent.Role]sprite{
			agent.Primary:   newSprite(st.SpriteSize, agent.Primary),
			agent.Secondary: newSprite(st.SpriteSize, agent.Secondary),
		},
		motd: motd.New(motd.LoadTips(), 0, 2, 5*time.Second, time.Now().UnixNano()),
		sb:   &strings.Builder{},
	}
	m.restart(policy)
	return m
}

func (m *Model) restart(policy sim.Policy) {
	m.sim = sim.New(m.moves, policy)
	m.last = sim.Event{}
	m.moved = false
	m.finished = false
	m.tickID++
	m.resetWindow()
}

func (m Model) Init() tea.Cmd {
	return tick(m.tickID, m.state.Interval())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case motd.TickMsg:
		// Tips only scroll while paused.
		if !m.paused {
			return m, nil
		}
		var cmd tea.Cmd
		m.motd, cmd = m.motd.Update(msg)
		return m, cmd
	case WindowSizeMsg:
		m.terminal.Width = msg.Width
		m.terminal.Height = msg.Height
		m.motd.SetWidth(msg.Width)
		m.resetWindow()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if msg.ID != m.tickID || m.paused || m.finished {
			return m, nil
		}
		if cmd := m.step(); cmd != nil {
			return m, cmd
		}
		return m, tick(m.tickID, m.state.Interval())
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case " ", "p":
		if m.finished {
			return m, nil
		}
		m.paused = !m.paused
		if m.paused {
			var cmd tea.Cmd
			m.motd, cmd = m.motd.Start()
			return m, cmd
		}
		m.motd = m.motd.Stop()
		m.tickID++
		return m, tick(m.tickID, m.state.Interval())
	case "n":
		if m.paused && !m.finished {
			return m, m.step()
		}
	case "+", "=":
		m.state.Faster()
	case "-", "_":
		m.state.Slower()
	case "e":
		if m.finished {
			return m, nil
		}
		for !m.sim.Done() {
			m.step()
		}
		return m, m.step()
	case "tab":
		next := sim.PolicyDual
		if m.sim.Policy() == sim.PolicyDual {
			next = sim.PolicySingle
		}
		m.restart(next)
		if m.paused {
			return m, nil
		}
		return m, tick(m.tickID, m.state.Interval())
	case "?":
		return m, showAboutCmd()
	case "o":
		return m, showSetupCmd()
	}
	return m, nil
}

// Resume starts a new tick chain unless the replay is paused or finished.
func (m Model) Resume() (Model, tea.Cmd) {
	if m.paused || m.finished {
		return m, nil
	}
	m.tickID++
	return m, tick(m.tickID, m.state.Interval())
}

// step replays one move and follows the mover. Once the route is exhausted
// it marks the replay finished and returns the command announcing it.
func (m *Model) step() tea.Cmd {
	ev, ok := m.sim.Step()
	if !ok {
		if m.finished {
			return nil
		}
		m.finished = true
		return finishedCmd(m.sim.Result())
	}
	m.last = ev
	m.moved = true
	m.window = m.window.Follow(ev.Pos, followMargin)
	return nil
}

// resetWindow sizes the window to the terminal and centers it on the last
// mover, or on the origin before the first move.
func (m *Model) resetWindow() {
	cellW, cellH := render.CellDims(m.state.SpriteSize)
	cols := max(m.terminal.Width/cellW, 1)
	rows := max((m.terminal.Height-headerRows-footerRows)/cellH, 1)
	focus := grid.Origin
	if m.moved {
		focus = m.last.Pos
	}
	m.window = render.Centered(focus, cols, rows)
}

// Policy returns the policy being replayed, or "" before New.
func (m Model) Policy() sim.Policy {
	if m.sim == nil {
		return ""
	}
	return m.sim.Policy()
}

func newSprite(size string, role agent.Role) sprite {
	color := "yellow"
	if role == agent.Secondary {
		color = "cyan"
	}
	brightStyle, dimStyle := style.BlinkPair(color)
	var s sprite
	for _, row := range agentSprite(size, role) {
		s.bright = append(s.bright, brightStyle.Render(row))
		s.dim = append(s.dim, dimStyle.Render(row))
	}
	return s
}

func agentSprite(size string, role agent.Role) []string {
	glyph := "@"
	if role == agent.Secondary {
		glyph = "&"
	}
	switch size {
	case state.SpriteSmall:
		return []string{glyph}
	case state.SpriteLarge:
		return []string{" " + glyph + glyph + " ", " /\\ "}
	}
	return []string{glyph + glyph}
}

// markers places agent sprites; the most recent mover is drawn last so it
// stays visible when both agents share a cell.
func (m *Model) markers() map[grid.Position][]string {
	isBright := (time.Now().UnixNano()/int64(time.Millisecond)/500)%2 == 0
	out := make(map[grid.Position][]string)
	agents := m.sim.Agents()
	if m.moved {
		for i, a := range agents {
			if a.Role() == m.last.Role {
				agents = append(append(agents[:i:i], agents[i+1:]...), a)
				break
			}
		}
	}
	for _, a := range agents {
		sp := m.agents[a.Role()]
		if isBright {
			out[a.Pos()] = sp.bright
		} else {
			out[a.Pos()] = sp.dim
		}
	}
	return out
}

func (m *Model) render() {
	m.renderHeader()
	var fresh *grid.Position
	if m.moved && m.last.Fresh {
		fresh = &m.last.Pos
	}
	m.sb.WriteString(render.Grid(m.sim.Visited(), m.sprites, m.window, m.markers(), fresh))
	m.renderMOTD()
	m.renderFooter()
}

func (m *Model) renderHeader() {
	m.sb.WriteString(style.TopPattern.Render(strings.Repeat("/", max(m.terminal.Width, 1))))
	m.sb.WriteString("\n")
	m.sb.WriteString(style.Title.Render(m.headerText()))
	m.sb.WriteString("\n\n")
}

// headerText builds the single status line above the grid.
func (m *Model) headerText() string {
	done, total := m.sim.Progress()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Policy: %s  Move: %d/%d", m.sim.Policy(), done, total))
	if m.moved {
		b.WriteString(fmt.Sprintf(" (%c %s)", m.last.Move.Symbol(), m.last.Role))
	}
	b.WriteString(fmt.Sprintf("  Houses: %d", m.sim.Count()))
	switch {
	case m.finished:
		b.WriteString("  DONE")
	case m.paused:
		b.WriteString("  PAUSED")
	}
	return b.String()
}

// renderMOTD shows the scrolling tip line while paused.
func (m *Model) renderMOTD() {
	if m.paused && !m.finished {
		m.sb.WriteString(m.motd.View())
	}
	m.sb.WriteString("\n")
}

func (m *Model) renderFooter() {
	var footer string
	switch {
	case m.finished:
		footer = "tab — other policy, o — settings, ? — about, q — quit"
	case m.paused:
		footer = "space — resume, n — step, e — end, tab — policy, o — settings, q — quit"
	default:
		footer = fmt.Sprintf("space — pause, +/- — speed (%s), e — end, tab — policy, o — settings, q — quit", m.state.Speed)
	}
	m.sb.WriteString(style.Footer.Render(footer))
	if pad := m.terminal.Width - lipgloss.Width(footer); pad > 0 {
		m.sb.WriteString(style.Footer.Render(strings.Repeat("/", pad)))
	}
}

// View returns the complete screen output.
func (m Model) View() string {
	m.sb.Reset()
	m.render()
	return m.sb.String()
}
