package flags

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vinser/presents/internal/route"
	"github.com/vinser/presents/internal/sim"
	"github.com/vinser/presents/internal/state"
)

// ErrInvalidValue is returned when a flag holds a value outside its choices.
var ErrInvalidValue = errors.New("invalid flag value")

// Flags stores the parsed command-line options
type Flags struct {
	Input  string
	Policy string
	Watch  bool
	Speed  string
	Sprite string
	Plain  bool
	About  bool
	Reset  bool

	custom map[string]bool
}

// IsCustom reports whether the named long flag was given on the command line.
func (f *Flags) IsCustom(name string) bool {
	return f.custom[name]
}

// Parse parses command-line arguments (without the program name). Usage and
// error messages go to out.
func Parse(name string, args []string, out io.Writer) (*Flags, error) {
	var fl Flags

	fs := NewFlagSetWithVisit(name, out)
	fs.StringVar(&fl.Input, "input", "i", "input.txt", "Instruction file, '-' reads stdin")
	fs.StringVar(&fl.Policy, "policy", "p", sim.BothPolicies, "Delivery policy: single, dual or both")
	fs.BoolVar(&fl.Watch, "watch", "w", false, "Replay the route in the terminal")
	fs.StringVar(&fl.Speed, "speed", "s", state.SpeedNormal, "Replay speed: slow, normal or fast")
	fs.StringVar(&fl.Sprite, "sprite-size", "z", state.SpriteMedium, "Replay cell size: small, medium or large")
	fs.BoolVar(&fl.Plain, "plain", "", false, "Print bare numbers without styling")
	fs.BoolVar(&fl.About, "about", "", false, "Show the about page")
	fs.BoolVar(&fl.Reset, "reset", "r", false, "Reset saved preferences")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if rest := fs.Args(); len(rest) == 1 && !fs.IsCustom("input") {
		// A lone positional argument names the input file.
		fl.Input = rest[0]
		fs.visited["input"] = true
	} else if len(rest) > 0 {
		fmt.Fprintf(out, "Unexpected arguments: %s\n", strings.Join(rest, " "))
		fs.Usage()
		return nil, fmt.Errorf("%w: unexpected arguments %q", ErrInvalidValue, rest)
	}

	checks := []struct {
		flag    string
		value   *string
		choices []string
	}{
		{"policy", &fl.Policy, policyChoices()},
		{"speed", &fl.Speed, []string{state.SpeedSlow, state.SpeedNormal, state.SpeedFast}},
		{"sprite-size", &fl.Sprite, []string{state.SpriteSmall, state.SpriteMedium, state.SpriteLarge}},
	}
	for _, c := range checks {
		// Normalize value
		*c.value = strings.ToLower(*c.value)
		if !contains(c.choices, *c.value) {
			fmt.Fprintf(out, "Invalid %s: %s. Use %s.\n", c.flag, *c.value, quoteChoices(c.choices))
			fs.Usage()
			return nil, fmt.Errorf("%w: -%s=%s", ErrInvalidValue, c.flag, *c.value)
		}
	}

	if fl.Input == "" {
		fl.Input = route.StdinPath
	}
	if fl.Watch && fl.Input == route.StdinPath {
		// The replay reads its keys from stdin.
		fmt.Fprintln(out, "Cannot watch a route read from stdin. Pass a file with -input.")
		fs.Usage()
		return nil, fmt.Errorf("%w: -watch with stdin input", ErrInvalidValue)
	}
	fl.custom = fs.visited
	return &fl, nil
}

// policyChoices lists the accepted -policy values.
func policyChoices() []string {
	var choices []string
	for _, p := range sim.Policies {
		choices = append(choices, string(p))
	}
	return append(choices, sim.BothPolicies)
}

func contains(choices []string, v string) bool {
	for _, c := range choices {
		if c == v {
			return true
		}
	}
	return false
}

func quoteChoices(choices []string) string {
	q := make([]string, len(choices))
	for i, c := range choices {
		q[i] = "'" + c + "'"
	}
	if len(q) < 2 {
		return strings.Join(q, "")
	}
	return strings.Join(q[:len(q)-1], ", ") + " or " + q[len(q)-1]
}
