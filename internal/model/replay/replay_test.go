package replay

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/presents/internal/grid"
	"github.com/vinser/presents/internal/model/motd"
	"github.com/vinser/presents/internal/route"
	"github.com/vinser/presents/internal/sim"
	"github.com/vinser/presents/internal/state"
)

func newModel(t *testing.T, text string, policy sim.Policy) Model {
	t.Helper()
	m := New(state.New(), route.Parse(text), policy)
	m, _ = m.Update(WindowSizeMsg{Width: 40, Height: 20})
	return m
}

// drain feeds ticks until the replay reports it has finished.
func drain(t *testing.T, m Model) (Model, FinishedMsg) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		var cmd tea.Cmd
		m, cmd = m.Update(TickMsg{ID: m.tickID})
		if cmd == nil {
			t.Fatalf("tick %d returned no command", i)
		}
		if fin, ok := cmd().(FinishedMsg); ok {
			return m, fin
		}
	}
	t.Fatal("replay never finished")
	return m, FinishedMsg{}
}

func TestReplayMatchesSimulation(t *testing.T) {
	tests := []struct {
		text   string
		policy sim.Policy
		want   int
	}{
		{"^v^v^v^v^v", sim.PolicySingle, 2},
		{"^v^v^v^v^v", sim.PolicyDual, 11},
		{"^>v<", sim.PolicyDual, 3},
		{"", sim.PolicySingle, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy)+" "+tt.text, func(t *testing.T) {
			m, fin := drain(t, newModel(t, tt.text, tt.policy))
			if fin.Result.Houses != tt.want {
				t.Errorf("FinishedMsg houses = %d; want %d", fin.Result.Houses, tt.want)
			}
			if !m.finished || m.sim.Count() != tt.want {
				t.Errorf("finished = %v, count = %d; want true, %d", m.finished, m.sim.Count(), tt.want)
			}
			if _, cmd := m.Update(TickMsg{ID: m.tickID}); cmd != nil {
				t.Error("tick after finishing returned a command")
			}
		})
	}
}

func TestPauseIgnoresTicks(t *testing.T) {
	m := newModel(t, "^^^", sim.PolicySingle)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	if !m.paused {
		t.Fatal("not paused after p")
	}

	m, cmd := m.Update(TickMsg{ID: m.tickID})
	if cmd != nil || m.sim.Count() != 1 {
		t.Fatalf("paused model moved: count %d, cmd %v", m.sim.Count(), cmd != nil)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if m.sim.Count() != 2 {
		t.Errorf("count after single step = %d; want 2", m.sim.Count())
	}
}

func TestStaleTickIsDropped(t *testing.T) {
	m := newModel(t, "^^^", sim.PolicySingle)
	stale := m.tickID
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil {
		t.Fatal("resume returned no tick")
	}

	m, _ = m.Update(TickMsg{ID: stale})
	if m.sim.Count() != 1 {
		t.Errorf("stale tick advanced the replay to %d houses", m.sim.Count())
	}
}

func TestJumpToEnd(t *testing.T) {
	m := newModel(t, "^v^v^v^v^v", sim.PolicyDual)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	if cmd == nil {
		t.Fatal("e returned no command")
	}
	fin, ok := cmd().(FinishedMsg)
	if !ok {
		t.Fatalf("e produced %T; want FinishedMsg", cmd())
	}
	if fin.Result.Houses != 11 || m.sim.Count() != 11 {
		t.Errorf("houses = %d (model %d); want 11", fin.Result.Houses, m.sim.Count())
	}
}

func TestTabSwitchesPolicy(t *testing.T) {
	m := newModel(t, "^v^v", sim.PolicySingle)
	m, _ = m.Update(TickMsg{ID: m.tickID})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.Policy() != sim.PolicyDual {
		t.Fatalf("Policy() = %q after tab; want dual", m.Policy())
	}
	if m.sim.Count() != 1 {
		t.Errorf("count = %d after switching; want a fresh run", m.sim.Count())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.Policy() != sim.PolicySingle {
		t.Errorf("Policy() = %q after second tab; want single", m.Policy())
	}
}

func TestSpeedKeys(t *testing.T) {
	m := newModel(t, "^", sim.PolicySingle)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")})
	if m.state.Speed != state.SpeedFast {
		t.Errorf("Speed after + = %q; want fast", m.state.Speed)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")})
	if m.state.Speed != state.SpeedSlow {
		t.Errorf("Speed after - - = %q; want slow", m.state.Speed)
	}
}

func TestQuestionMarkAsksForAbout(t *testing.T) {
	m := newModel(t, "^", sim.PolicySingle)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if cmd == nil {
		t.Fatal("? returned no command")
	}
	if _, ok := cmd().(ShowAboutMsg); !ok {
		t.Errorf("? produced %T; want ShowAboutMsg", cmd())
	}
}

func TestWindowFollowsMover(t *testing.T) {
	m := newModel(t, strings.Repeat(">", 100), sim.PolicySingle)
	m, _ = drain(t, m)
	if !m.window.Contains(grid.Position{X: 100, Y: 0}) {
		t.Errorf("window %+v lost the agent at {100 0}", m.window)
	}
}

func TestView(t *testing.T) {
	m := newModel(t, "^v^v^v^v^v", sim.PolicyDual)
	m, _ = drain(t, m)
	out := m.View()
	for _, want := range []string{"Policy: dual", "Move: 10/10", "Houses: 11", "DONE", "q — quit", "@", "&"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() misses %q:\n%s", want, out)
		}
	}
}

func TestResume(t *testing.T) {
	m := newModel(t, "^^", sim.PolicySingle)
	before := m.tickID
	m, cmd := m.Resume()
	if cmd == nil || m.tickID == before {
		t.Fatal("Resume() did not start a new tick chain")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if _, cmd := m.Resume(); cmd != nil {
		t.Error("Resume() ticked while paused")
	}
}

func TestTipsScrollOnlyWhilePaused(t *testing.T) {
	m := newModel(t, "^^", sim.PolicySingle)
	if _, cmd := m.Update(motd.TickMsg{}); cmd != nil {
		t.Error("tip ticked while the replay was running")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil {
		t.Fatal("pausing did not start the tips")
	}
	if _, cmd := m.Update(cmd()); cmd == nil {
		t.Error("tip stopped ticking while paused")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View() does not show PAUSED")
	}
}

func TestOAsksForSettings(t *testing.T) {
	m := newModel(t, "^", sim.PolicySingle)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	if cmd == nil {
		t.Fatal("o returned no command")
	}
	if _, ok := cmd().(ShowSetupMsg); !ok {
		t.Errorf("o produced %T; want ShowSetupMsg", cmd())
	}
}

func TestRepeatedPauseKeepsOneTipChain(t *testing.T) {
	m := newModel(t, "^^^^", sim.PolicySingle)
	space := tea.KeyMsg{Type: tea.KeySpace}

	m, first := m.Update(space)
	m, _ = m.Update(space)
	m, second := m.Update(space)
	if first == nil || second == nil {
		t.Fatal("pausing did not start the tips")
	}

	live := 0
	for _, msg := range []tea.Msg{first(), second()} {
		if _, ok := msg.(motd.TickMsg); !ok {
			t.Fatalf("pause produced %T; want motd.TickMsg", msg)
		}
		if _, cmd := m.Update(msg); cmd != nil {
			live++
		}
	}
	if live != 1 {
		t.Errorf("live tip chains while paused = %d; want 1", live)
	}
}
