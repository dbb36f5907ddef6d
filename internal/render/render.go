package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/presents/internal/style"
)

// Frame describes one full-screen page. Content is placed as is, so callers
// style it themselves.
type Frame struct {
	Title   string
	Status  string // optional, right-aligned on the title row
	Content string
	Footer  string
	Width   int
	Height  int
}

// Page draws f as a slashed rule, a title row, the content block centered
// vertically and a footer padded with slashes to the page width. When the
// terminal size is known the page is centered in it.
func Page(f Frame, termWidth, termHeight int) string {
	width := max(f.Width, lipgloss.Width(f.Title)+lipgloss.Width(f.Status)+1, lipgloss.Width(f.Footer))

	rule := style.TopPattern.Render(strings.Repeat("/", width))
	head := titleRow(f.Title, f.Status, width)
	foot := style.Footer.Render(f.Footer)
	if pad := width - lipgloss.Width(f.Footer); pad > 0 {
		foot += style.TopPattern.Render(strings.Repeat("/", pad))
	}

	room := f.Height - lipgloss.Height(rule) - lipgloss.Height(head) - lipgloss.Height(foot)
	body := lipgloss.PlaceVertical(max(room, lipgloss.Height(f.Content)), lipgloss.Center, f.Content)

	view := lipgloss.JoinVertical(lipgloss.Left, rule, head, body, foot)
	if termWidth <= 0 || termHeight <= 0 {
		return view
	}
	return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
}

func titleRow(title, status string, width int) string {
	t := style.Title.Render(title)
	if status == "" {
		return t
	}
	s := style.Label.Render(status)
	gap := max(width-lipgloss.Width(t)-lipgloss.Width(s), 1)
	return t + strings.Repeat(" ", gap) + s
}
