package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/presents/internal/sim"
	"github.com/vinser/presents/internal/style"
)

// Summary is everything the report shows about one input.
type Summary struct {
	Source  string       // where the instructions came from
	Ignored int          // characters that were not moves
	Results []sim.Result // one per policy, in display order
}

// Plain renders one count per line, nothing else.
func Plain(s Summary) string {
	var b strings.Builder
	for _, r := range s.Results {
		b.WriteString(strconv.Itoa(r.Houses))
		b.WriteByte('\n')
	}
	return b.String()
}

// Headline returns the sentence announcing a policy's result.
func Headline(r sim.Result) string {
	switch r.Policy {
	case sim.PolicyDual:
		return fmt.Sprintf("Two couriers taking turns delivered to %d house(s)", r.Houses)
	default:
		return fmt.Sprintf("One courier delivered to %d house(s)", r.Houses)
	}
}

// Report renders the styled result panel.
func Report(s Summary) string {
	var rows []string
	rows = append(rows, style.Title.Render("Deliveries"))
	rows = append(rows, field("source", s.Source))
	if len(s.Results) > 0 {
		rows = append(rows, field("moves", strconv.Itoa(s.Results[0].Moves)))
	}
	if s.Ignored > 0 {
		rows = append(rows, field("ignored", fmt.Sprintf("%d character(s)", s.Ignored)))
	}
	for _, r := range s.Results {
		rows = append(rows, "")
		rows = append(rows, style.Header.Render(string(r.Policy)))
		rows = append(rows, field("houses", style.Number.Render(strconv.Itoa(r.Houses))))
		rows = append(rows, field("farthest", strconv.Itoa(r.Farthest)))
		rows = append(rows, field("area", fmt.Sprintf("%d x %d", r.Width, r.Height)))
		for _, a := range r.Agents {
			rows = append(rows, field(a.Role.String(), fmt.Sprintf("%d move(s), ended at (%d, %d)", a.Moves, a.Final.X, a.Final.Y)))
		}
	}
	return style.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)) + "\n"
}

func field(label, value string) string {
	return style.Label.Render(fmt.Sprintf("%-10s", label)) + value
}
