package setup

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/presents/internal/render"
	"github.com/vinser/presents/internal/state"
	"github.com/vinser/presents/internal/style"
)

const (
	selectedPolicy = iota
	selectedSpeed
	selectedSpriteSize
	selectedReset
	numSettings
)

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	policy     string // single, dual or both
	speed      string // slow, normal or fast
	spriteSize string // small, medium or large
	reset      bool
	loaded     state.State

	selectedSetting int
}

type SaveSettingsMsg struct {
	Policy     string
	Speed      string
	SpriteSize string
	Reset      bool
}

func saveSettingsCmd(m Model) tea.Cmd {
	return func() tea.Msg {
		return SaveSettingsMsg{
			Policy:     m.policy,
			Speed:      m.speed,
			SpriteSize: m.spriteSize,
			Reset:      m.reset,
		}
	}
}

type DiscardSettingsMsg struct{}

func discardSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		return DiscardSettingsMsg{}
	}
}

// New opens the settings page on a copy of st. st itself is not changed.
func New(st *state.State, width, height int) Model {
	return Model{
		width:      width,
		height:     height,
		policy:     st.Policy,
		speed:      st.Speed,
		spriteSize: st.SpriteSize,
		loaded:     *st,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "s":
		return m, saveSettingsCmd(m)
	case "esc":
		return m, discardSettingsCmd()
	case "up":
		if m.selectedSetting > 0 {
			m.selectedSetting--
		}
	case "down":
		if m.selectedSetting < numSettings-1 {
			m.selectedSetting++
		}
	case "enter", " ":
		switch m.selectedSetting {
		case selectedPolicy:
			m.policy = cycle(m.policy, state.PolicySingle, state.PolicyDual, state.PolicyBoth)
		case selectedSpeed:
			m.speed = cycle(m.speed, state.SpeedSlow, state.SpeedNormal, state.SpeedFast)
		case selectedSpriteSize:
			m.spriteSize = cycle(m.spriteSize, state.SpriteSmall, state.SpriteMedium, state.SpriteLarge)
		case selectedReset:
			m.reset = !m.reset
		}
	}
	return m, nil
}

// cycle returns the value after current in values, wrapping around. An
// unknown current value yields the first one.
func cycle(current string, values ...string) string {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

const footer = "↑ ↓ — select, space — change, s — save, esc — cancel"

func (m Model) View() string {
	return render.Page(render.Frame{
		Title:   "Settings",
		Status:  m.status(),
		Content: m.renderContent(),
		Footer:  footer,
		Width:   m.width,
		Height:  m.height,
	}, m.termWidth, m.termHeight)
}

// status tells whether the page differs from what was loaded.
func (m Model) status() string {
	if m.reset || m.policy != m.loaded.Policy || m.speed != m.loaded.Speed || m.spriteSize != m.loaded.SpriteSize {
		return "modified"
	}
	return ""
}

func (m Model) renderContent() string {
	options := []struct {
		label string
		value string
	}{
		{"Policy", m.policy},
		{"Replay speed", m.speed},
		{"Sprite size", m.spriteSize},
		{"Reset preferences", fmt.Sprintf("%v", m.reset)},
	}

	var b strings.Builder
	for i, opt := range options {
		prefix := "  "
		if i == m.selectedSetting {
			prefix = "➤ "
		}
		line := fmt.Sprintf("%s%s: %s", prefix, opt.label, opt.value)
		if i == m.selectedSetting {
			b.WriteString(style.SetupItemSelected.Render(line))
		} else {
			b.WriteString(style.SetupItem.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
