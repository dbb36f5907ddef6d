package flags

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vinser/presents/internal/state"
)

func TestParseDefaults(t *testing.T) {
	var out bytes.Buffer
	fl, err := Parse("presents", nil, &out)
	if err != nil {
		t.Fatal(err)
	}
	if fl.Input != "input.txt" || fl.Policy != state.PolicyBoth || fl.Speed != state.SpeedNormal || fl.Sprite != state.SpriteMedium {
		t.Errorf("unexpected defaults: %+v", fl)
	}
	if fl.Watch || fl.Plain || fl.About || fl.Reset {
		t.Errorf("bool flags set by default: %+v", fl)
	}
	if fl.IsCustom("input") {
		t.Error("IsCustom(input) = true without flags")
	}
}

func TestParseShortAliases(t *testing.T) {
	var out bytes.Buffer
	fl, err := Parse("presents", []string{"-i=route.txt", "-p", "DUAL", "-w", "-s=fast", "-z", "large", "-r"}, &out)
	if err != nil {
		t.Fatal(err)
	}
	if fl.Input != "route.txt" {
		t.Errorf("Input = %q; want route.txt", fl.Input)
	}
	if fl.Policy != state.PolicyDual {
		t.Errorf("Policy = %q; want dual", fl.Policy)
	}
	if !fl.Watch || !fl.Reset {
		t.Errorf("Watch/Reset not set: %+v", fl)
	}
	if fl.Speed != state.SpeedFast || fl.Sprite != state.SpriteLarge {
		t.Errorf("Speed/Sprite = %q/%q", fl.Speed, fl.Sprite)
	}
	for _, name := range []string{"input", "policy", "watch", "speed", "sprite-size", "reset"} {
		if !fl.IsCustom(name) {
			t.Errorf("IsCustom(%q) = false", name)
		}
	}
	if fl.IsCustom("plain") {
		t.Error("IsCustom(plain) = true")
	}
}

func TestParsePositionalInput(t *testing.T) {
	var out bytes.Buffer
	fl, err := Parse("presents", []string{"-plain", "day03.txt"}, &out)
	if err != nil {
		t.Fatal(err)
	}
	if fl.Input != "day03.txt" || !fl.IsCustom("input") {
		t.Errorf("Input = %q custom=%v; want day03.txt from positional argument", fl.Input, fl.IsCustom("input"))
	}
	if !fl.Plain {
		t.Error("Plain = false")
	}
}

func TestParseEmptyInputMeansStdin(t *testing.T) {
	var out bytes.Buffer
	fl, err := Parse("presents", []string{"-input="}, &out)
	if err != nil {
		t.Fatal(err)
	}
	if fl.Input != "-" {
		t.Errorf("Input = %q; want -", fl.Input)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"policy", []string{"-policy", "triple"}, "Invalid policy: triple"},
		{"speed", []string{"-s", "warp"}, "Invalid speed: warp"},
		{"sprite", []string{"-sprite-size=huge"}, "Invalid sprite-size: huge"},
		{"extra args", []string{"-i", "a.txt", "b.txt"}, "Unexpected arguments: b.txt"},
		{"watch stdin", []string{"-w", "-i", "-"}, "Cannot watch a route read from stdin"},
		{"watch empty input", []string{"-watch", "-input="}, "Cannot watch a route read from stdin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := Parse("presents", tt.args, &out)
			if !errors.Is(err, ErrInvalidValue) {
				t.Fatalf("Parse() error = %v; want ErrInvalidValue", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output %q does not contain %q", out.String(), tt.want)
			}
			if !strings.Contains(out.String(), "Usage of presents:") {
				t.Errorf("output does not contain usage: %q", out.String())
			}
		})
	}
}

func TestUsageListsAliases(t *testing.T) {
	var out bytes.Buffer
	fs := NewFlagSetWithVisit("presents", &out)
	var watch bool
	var input string
	fs.BoolVar(&watch, "watch", "w", false, "Replay")
	fs.StringVar(&input, "input", "", "x", "File")
	fs.Usage()

	got := out.String()
	if !strings.Contains(got, "-w, -watch") {
		t.Errorf("usage %q misses alias line", got)
	}
	if !strings.Contains(got, "      -input") {
		t.Errorf("usage %q misses plain line", got)
	}
}

func TestExpandAliasesStopsAtTerminator(t *testing.T) {
	fs := NewFlagSetWithVisit("presents", &bytes.Buffer{})
	var watch bool
	fs.BoolVar(&watch, "watch", "w", false, "Replay")

	got := fs.expandAliases([]string{"-w", "--", "-w"})
	want := []string{"-watch", "--", "-w"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("expandAliases() = %v; want %v", got, want)
	}
}
