package sim

import (
	"github.com/vinser/presents/internal/agent"
	"github.com/vinser/presents/internal/grid"
)

// AgentSummary is where an agent ended and how far it walked.
type AgentSummary struct {
	Role  agent.Role
	Moves int
	Final grid.Position
}

// Result summarises a finished run.
type Result struct {
	Policy   Policy
	Moves    int // moves in the route
	Houses   int // distinct cells visited, origin included
	Farthest int // largest Manhattan distance from the origin reached
	Width    int // columns of the smallest rectangle holding every visited cell
	Height   int // rows of that rectangle
	Agents   []AgentSummary
}

// Result runs the remaining moves and summarises the run.
func (s *Simulator) Result() Result {
	s.Run()
	r := Result{
		Policy:   s.policy,
		Moves:    len(s.moves),
		Houses:   s.Count(),
		Farthest: s.farthest,
	}
	if lo, hi, ok := s.visited.Bounds(); ok {
		r.Width = hi.X - lo.X + 1
		r.Height = hi.Y - lo.Y + 1
	}
	for _, a := range s.Agents() {
		r.Agents = append(r.Agents, AgentSummary{Role: a.Role(), Moves: a.Moves(), Final: a.Pos()})
	}
	return r
}

// Single returns the distinct visit count of one agent walking moves.
func Single(moves []grid.Move) int {
	return New(moves, PolicySingle).Run()
}

// Dual returns the distinct visit count of two agents alternating over moves.
func Dual(moves []grid.Move) int {
	return New(moves, PolicyDual).Run()
}

// Both runs the route under each policy on separate simulators.
func Both(moves []grid.Move) (single, dual Result) {
	return New(moves, PolicySingle).Result(), New(moves, PolicyDual).Result()
}
