package setup

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/presents/internal/state"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m, _ = m.Update(key(k))
	}
	return m
}

func TestChangeAndSave(t *testing.T) {
	m := New(state.New(), 60, 12)
	// policy: both -> single; speed: normal -> fast; sprite: medium -> large
	m = press(m, "enter", "down", "enter", "down", "enter", "down", "enter")

	_, cmd := m.Update(key("s"))
	if cmd == nil {
		t.Fatal("s returned no command")
	}
	got, ok := cmd().(SaveSettingsMsg)
	if !ok {
		t.Fatalf("s produced %T; want SaveSettingsMsg", cmd())
	}
	want := SaveSettingsMsg{Policy: state.PolicySingle, Speed: state.SpeedFast, SpriteSize: state.SpriteLarge, Reset: true}
	if got != want {
		t.Errorf("SaveSettingsMsg = %+v; want %+v", got, want)
	}
}

func TestSelectionStaysInRange(t *testing.T) {
	m := press(New(state.New(), 60, 12), "up", "up")
	if m.selectedSetting != 0 {
		t.Errorf("selectedSetting = %d after up at top; want 0", m.selectedSetting)
	}
	m = press(m, "down", "down", "down", "down", "down", "down")
	if m.selectedSetting != numSettings-1 {
		t.Errorf("selectedSetting = %d after down at bottom; want %d", m.selectedSetting, numSettings-1)
	}
}

func TestEscDiscards(t *testing.T) {
	_, cmd := New(state.New(), 60, 12).Update(key("esc"))
	if _, ok := cmd().(DiscardSettingsMsg); !ok {
		t.Errorf("esc produced %T; want DiscardSettingsMsg", cmd())
	}
}

func TestCycle(t *testing.T) {
	if got := cycle("c", "a", "b", "c"); got != "a" {
		t.Errorf("cycle wraps to %q; want a", got)
	}
	if got := cycle("x", "a", "b"); got != "a" {
		t.Errorf("cycle of unknown = %q; want a", got)
	}
}

func TestViewMarksSelection(t *testing.T) {
	m := press(New(state.New(), 60, 12), "down")
	out := m.View()
	if !strings.Contains(out, "➤ Replay speed: normal") {
		t.Errorf("View() does not mark the selected setting:\n%s", out)
	}
	if !strings.Contains(out, "Settings") {
		t.Error("View() misses the title")
	}
}

func TestStatusMarksChanges(t *testing.T) {
	m := New(state.New(), 60, 12)
	if got := m.status(); got != "" {
		t.Errorf("fresh status() = %q; want empty", got)
	}
	m = press(m, "down", "enter")
	if got := m.status(); got != "modified" {
		t.Errorf("status() after change = %q; want modified", got)
	}
	if !strings.Contains(m.View(), "modified") {
		t.Error("View() does not show the modified mark")
	}
}
