package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/presents/internal/flags"
	"github.com/vinser/presents/internal/grid"
	"github.com/vinser/presents/internal/model/about"
	"github.com/vinser/presents/internal/render"
	"github.com/vinser/presents/internal/route"
	"github.com/vinser/presents/internal/sim"
	"github.com/vinser/presents/internal/state"
)

const aboutWidth = 80

// Run executes one invocation: print the about page, print the report, or
// open the replay.
func Run(fl *flags.Flags, stdout io.Writer) error {
	st := getState(fl)
	if fl.Reset {
		saveState(st)
	}

	if fl.About {
		_, err := fmt.Fprint(stdout, about.Markdown(aboutWidth))
		return err
	}

	text, err := route.Load(fl.Input)
	typed := false
	if err != nil {
		// Without a file the replay falls back to typing a route, unless
		// the file was asked for by name.
		if !fl.Watch || fl.IsCustom("input") || !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		typed = true
	}
	steps := route.Translate(text)
	moves := route.Keep(steps)

	if fl.Watch {
		p := tea.NewProgram(New(st, moves, typed), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("replay: %w", err)
		}
		saveState(st)
		return nil
	}

	res, err := results(moves, fl.Policy)
	if err != nil {
		return err
	}
	summary := render.Summary{
		Source:  sourceName(fl.Input),
		Ignored: route.Ignored(steps),
		Results: res,
	}
	if fl.Plain {
		_, err = fmt.Fprint(stdout, render.Plain(summary))
	} else {
		_, err = fmt.Fprint(stdout, render.Report(summary))
	}
	return err
}

// getState loads saved preferences, or the defaults with -reset, and applies
// the flags given explicitly.
func getState(fl *flags.Flags) *state.State {
	var st *state.State
	if fl.Reset {
		st = state.New()
	} else {
		st = state.Load()
	}
	if fl.IsCustom("policy") {
		st.Policy = fl.Policy
	}
	if fl.IsCustom("speed") {
		st.Speed = fl.Speed
	}
	if fl.IsCustom("sprite-size") {
		st.SpriteSize = fl.Sprite
	}
	return st
}

func saveState(st *state.State) {
	if err := st.Save(); err != nil {
		log.Printf("save preferences: %v", err)
	}
}

// results runs the policies named by name, each on its own simulator.
func results(moves []grid.Move, name string) ([]sim.Result, error) {
	policies, err := sim.Select(name)
	if err != nil {
		return nil, err
	}
	if len(policies) == 1 {
		return []sim.Result{sim.New(moves, policies[0]).Result()}, nil
	}
	single, dual := sim.Both(moves)
	return []sim.Result{single, dual}, nil
}

func sourceName(path string) string {
	if path == route.StdinPath {
		return "stdin"
	}
	return path
}
