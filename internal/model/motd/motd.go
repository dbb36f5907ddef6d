package motd

import (
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/presents/internal/embeddata"
)

const fallbackTip = "Every house on the route gets at least one present."

// Model scrolls a random tip through a fixed-width frame. Each tip passes
// repeats times, then the next one is picked once interval has elapsed.
type Model struct {
	tips       []string
	style      lipgloss.Style
	frameWidth int
	repeats    int
	interval   time.Duration

	current   string
	offset    int
	doneCount int
	lastShown time.Time
	rng       *rand.Rand
	chain     int
}

// TickMsg scrolls the tip by one column. Only ticks of the latest chain
// started by Start are honoured.
type TickMsg struct {
	ID int
}

func tick(id int) tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return TickMsg{ID: id}
	})
}

type tipsFile struct {
	Tips []string `json:"tips"`
}

// LoadTips returns the embedded tips, or a single fallback tip.
func LoadTips() []string {
	data, err := embeddata.ReadTips()
	if err == nil {
		var f tipsFile
		if json.Unmarshal(data, &f) == nil && len(f.Tips) > 0 {
			return f.Tips
		}
	}
	return []string{fallbackTip}
}

// New picks the first tip with a generator seeded by seed.
func New(tips []string, frameWidth, repeats int, interval time.Duration, seed int64) Model {
	if len(tips) == 0 {
		tips = []string{fallbackTip}
	}
	rng := rand.New(rand.NewSource(seed))
	return Model{
		tips:       tips,
		style:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		frameWidth: frameWidth,
		repeats:    repeats,
		interval:   interval,
		current:    tips[rng.Intn(len(tips))],
		lastShown:  time.Now(),
		rng:        rng,
	}
}

// Start begins a new tick chain; ticks still in flight from an earlier one
// are dropped.
func (m Model) Start() (Model, tea.Cmd) {
	m.chain++
	return m, tick(m.chain)
}

// Stop ends the current tick chain.
func (m Model) Stop() Model {
	m.chain++
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	t, ok := msg.(TickMsg)
	if !ok || t.ID != m.chain {
		return m, nil
	}
	if m.doneCount >= m.repeats {
		if time.Since(m.lastShown) >= m.interval {
			m.current = m.tips[m.rng.Intn(len(m.tips))]
			m.lastShown = time.Now()
			m.doneCount = 0
			m.offset = 0
		}
		return m, tick(m.chain)
	}
	m.offset++
	if m.offset >= len([]rune(m.current))+m.frameWidth {
		m.offset = 0
		m.doneCount++
	}
	return m, tick(m.chain)
}

func (m Model) View() string {
	if m.frameWidth <= 0 {
		return ""
	}
	spaces := strings.Repeat(" ", m.frameWidth)
	text := []rune(spaces + m.current + spaces)

	start := min(m.offset, len(text))
	end := min(start+m.frameWidth, len(text))
	return m.style.Render(string(text[start:end]))
}

// SetWidth changes the frame width in columns.
func (m *Model) SetWidth(width int) {
	m.frameWidth = width
}
