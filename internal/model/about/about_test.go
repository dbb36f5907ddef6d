package about

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestEscClosesAbout(t *testing.T) {
	m := New(60, 20)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Update(esc) returned no command")
	}
	if _, ok := cmd().(CloseAboutMsg); !ok {
		t.Errorf("Update(esc) command produced %T; want CloseAboutMsg", cmd())
	}
}

func TestViewShowsTitleAndFooter(t *testing.T) {
	m := New(60, 20)
	m.SetSize(80, 30)
	out := m.View()
	for _, want := range []string{"About", "esc — back"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() misses %q", want)
		}
	}
}

func TestMarkdownRendersPolicies(t *testing.T) {
	out := Markdown(80)
	for _, want := range []string{"single", "dual", "ignored"} {
		if !strings.Contains(out, want) {
			t.Errorf("Markdown() misses %q", want)
		}
	}
}

func TestJumpToBottomAndTop(t *testing.T) {
	m := New(60, 5)
	m.SetSize(80, 30)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	if !m.viewport.AtBottom() {
		t.Error("G did not scroll to the bottom")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if !m.viewport.AtTop() {
		t.Error("g did not scroll to the top")
	}
}

func TestSetSizeShrinksViewport(t *testing.T) {
	m := New(60, 20)
	m.SetSize(80, 12)
	if got, want := m.viewport.Height, 12-chrome; got != want {
		t.Errorf("viewport height = %d; want %d", got, want)
	}
	m.SetSize(80, 40)
	if got := m.viewport.Height; got != 20 {
		t.Errorf("viewport height = %d; want 20", got)
	}
}
