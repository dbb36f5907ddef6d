// Package route turns raw instruction text into a sequence of grid moves.
//
// Translation is lossy on purpose: characters that are not one of ^ v > <
// are ignored, so a malformed stream yields a shorter route instead of an
// error. Translate exposes every character with its verdict so the dropped
// ones can be counted; Keep then discards them.
package route

import (
	"fmt"
	"io"
	"os"

	"github.com/vinser/presents/internal/grid"
)

// StdinPath is the input path that reads instructions from standard input.
const StdinPath = "-"

// Step is one character of the instruction text and the move it stands for.
// OK is false when the character is not a move; Move is then meaningless.
type Step struct {
	Rune rune
	Move grid.Move
	OK   bool
}

// MoveOf maps an instruction symbol to its move.
func MoveOf(r rune) (grid.Move, bool) {
	switch r {
	case '^':
		return grid.North, true
	case 'v':
		return grid.South, true
	case '>':
		return grid.East, true
	case '<':
		return grid.West, true
	}
	return 0, false
}

// Translate maps every character of text, recognised or not.
func Translate(text string) []Step {
	steps := make([]Step, 0, len(text))
	for _, r := range text {
		m, ok := MoveOf(r)
		steps = append(steps, Step{Rune: r, Move: m, OK: ok})
	}
	return steps
}

// Keep returns the moves of the recognised steps, in order.
func Keep(steps []Step) []grid.Move {
	moves := make([]grid.Move, 0, len(steps))
	for _, s := range steps {
		if s.OK {
			moves = append(moves, s.Move)
		}
	}
	return moves
}

// Ignored counts the steps Keep would drop.
func Ignored(steps []Step) int {
	n := 0
	for _, s := range steps {
		if !s.OK {
			n++
		}
	}
	return n
}

// Parse returns the moves in text. Non-move characters are ignored.
func Parse(text string) []grid.Move {
	return Keep(Translate(text))
}

// Read returns all instruction text from r.
func Read(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read instructions: %w", err)
	}
	return string(b), nil
}

// Load reads instruction text from the file at path, or from stdin when
// path is StdinPath.
func Load(path string) (string, error) {
	if path == StdinPath {
		return Read(os.Stdin)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load instructions from %s: %w", path, err)
	}
	return string(b), nil
}
