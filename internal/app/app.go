package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/presents/internal/grid"
	"github.com/vinser/presents/internal/model/about"
	"github.com/vinser/presents/internal/model/entry"
	"github.com/vinser/presents/internal/model/quit"
	"github.com/vinser/presents/internal/model/replay"
	"github.com/vinser/presents/internal/model/setup"
	"github.com/vinser/presents/internal/sim"
	"github.com/vinser/presents/internal/state"
)

type status uint

const (
	statusEntry status = iota
	statusReplay
	statusAbout
	statusSetup
	statusQuitting
)

const (
	pageWidth  = 60
	pageHeight = 16
)

type Model struct {
	status   status
	previous status // where the about page returns to
	state    *state.State
	moves    []grid.Move
	finished map[sim.Policy]sim.Result // replays that ran to the end
	// models
	entry  entry.Model
	replay replay.Model
	about  about.Model
	setup  setup.Model
	quit   quit.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

// New starts with the replay of moves, or with the route entry page when
// typed is true.
func New(st *state.State, moves []grid.Move, typed bool) Model {
	m := Model{
		state:    st,
		moves:    moves,
		finished: make(map[sim.Policy]sim.Result),
	}
	if typed {
		m.status = statusEntry
		m.entry = entry.New(pageWidth, pageHeight)
	} else {
		m.status = statusReplay
		m.replay = replay.New(st, moves, startPolicy(st))
	}
	return m
}

// startPolicy picks the first policy to replay; "both" starts with the
// first policy and tab switches to the other.
func startPolicy(st *state.State) sim.Policy {
	policies, err := sim.Select(st.Policy)
	if err != nil {
		return sim.Policies[0]
	}
	return policies[0]
}

func (m Model) Init() tea.Cmd {
	switch m.status {
	case statusEntry:
		return m.entry.Init()
	default:
		return m.replay.Init()
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.status != statusQuitting {
			switch msg.String() {
			case "ctrl+c":
				return m.startQuitting()
			case "q":
				// In the entry page q is just text.
				if m.status != statusEntry {
					return m.startQuitting()
				}
			}
		}
	case tea.WindowSizeMsg:
		// Always remember the latest terminal size
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.resize()
		// Force a full repaint
		return m, tea.ClearScreen
	}

	switch m.status {
	case statusEntry:
		switch msg := msg.(type) {
		case entry.SubmitMsg:
			m.moves = msg.Moves
			clear(m.finished)
			m.status = statusReplay
			m.replay = replay.New(m.state, m.moves, startPolicy(m.state))
			m.resize()
			return m, m.replay.Init()
		case entry.ShowAboutMsg:
			return m.openAbout()
		default:
			m.entry, cmd = m.entry.Update(msg)
		}
	case statusReplay:
		switch msg := msg.(type) {
		case replay.FinishedMsg:
			m.finished[msg.Result.Policy] = msg.Result
			return m, nil
		case replay.ShowAboutMsg:
			return m.openAbout()
		case replay.ShowSetupMsg:
			m.status = statusSetup
			m.setup = setup.New(m.state, pageWidth, pageHeight)
			m.setup.SetSize(m.termWidth, m.termHeight)
			return m, m.setup.Init()
		default:
			m.replay, cmd = m.replay.Update(msg)
		}
	case statusAbout:
		switch msg.(type) {
		case about.CloseAboutMsg:
			m.status = m.previous
			if m.status == statusReplay {
				// Ticks were swallowed while the page was open.
				m.replay, cmd = m.replay.Resume()
			}
			return m, cmd
		default:
			m.about, cmd = m.about.Update(msg)
		}
	case statusSetup:
		switch msg := msg.(type) {
		case setup.SaveSettingsMsg:
			if msg.Reset {
				*m.state = *state.New()
			} else {
				m.state.Policy = msg.Policy
				m.state.Speed = msg.Speed
				m.state.SpriteSize = msg.SpriteSize
			}
			saveState(m.state)
			m.status = statusReplay
			m.replay = replay.New(m.state, m.moves, startPolicy(m.state))
			m.resize()
			return m, m.replay.Init()
		case setup.DiscardSettingsMsg:
			m.status = statusReplay
			m.replay, cmd = m.replay.Resume()
			return m, cmd
		default:
			m.setup, cmd = m.setup.Update(msg)
		}
	case statusQuitting:
		switch msg.(type) {
		case quit.TimedoutMsg:
			return m, tea.Quit
		default:
			m.quit, cmd = m.quit.Update(msg)
		}
	}
	return m, cmd
}

func (m Model) openAbout() (tea.Model, tea.Cmd) {
	m.previous = m.status
	m.status = statusAbout
	m.about = about.New(pageWidth, pageHeight)
	m.about.SetSize(m.termWidth, m.termHeight)
	return m, m.about.Init()
}

func (m Model) startQuitting() (tea.Model, tea.Cmd) {
	m.status = statusQuitting
	m.quit = quit.New(m.farewell()...)
	m.quit.SetSize(m.termWidth, m.termHeight)
	return m, m.quit.Init()
}

// farewell returns the results for the quit screen: every policy when both
// were asked for, otherwise the one on screen. Replays that finished report
// what they counted; the rest are run to the end here.
func (m Model) farewell() []sim.Result {
	policies, err := sim.Select(m.state.Policy)
	if err != nil {
		policies = sim.Policies
	}
	if p := m.replay.Policy(); p != "" && len(policies) == 1 {
		policies = []sim.Policy{p}
	}
	out := make([]sim.Result, 0, len(policies))
	for _, p := range policies {
		r, ok := m.finished[p]
		if !ok {
			r = sim.New(m.moves, p).Result()
		}
		out = append(out, r)
	}
	return out
}

// resize passes the cached terminal size to every model.
func (m *Model) resize() {
	m.entry.SetSize(m.termWidth, m.termHeight)
	m.about.SetSize(m.termWidth, m.termHeight)
	m.setup.SetSize(m.termWidth, m.termHeight)
	m.quit.SetSize(m.termWidth, m.termHeight)
	if m.status == statusReplay || m.status == statusSetup || m.previous == statusReplay {
		m.replay, _ = m.replay.Update(replay.WindowSizeMsg{Width: m.termWidth, Height: m.termHeight})
	}
}

func (m Model) View() string {
	switch m.status {
	case statusEntry:
		return m.entry.View()
	case statusReplay:
		return m.replay.View()
	case statusAbout:
		return m.about.View()
	case statusSetup:
		return m.setup.View()
	case statusQuitting:
		return m.quit.View()
	}
	return ""
}
