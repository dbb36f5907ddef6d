// Package sim replays a route against one or two agents and counts the
// distinct cells they visit.
package sim

import (
	"fmt"
	"strings"

	"github.com/vinser/presents/internal/agent"
	"github.com/vinser/presents/internal/grid"
	"github.com/vinser/presents/internal/visit"
)

// Policy decides how many agents share a route and whose turn each move is.
type Policy string

const (
	// PolicySingle gives every move to one agent.
	PolicySingle Policy = "single"
	// PolicyDual alternates moves between two agents. The move at
	// zero-based index 0, 2, 4... goes to the secondary agent and the
	// move at 1, 3, 5... to the primary one.
	PolicyDual Policy = "dual"
)

// Policies lists the known policies.
var Policies = []Policy{PolicySingle, PolicyDual}

// ParsePolicy returns the policy named s, ignoring case.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PolicySingle, PolicyDual:
		return p, nil
	}
	return "", fmt.Errorf("unknown policy %q", s)
}

// BothPolicies names every policy at once.
const BothPolicies = "both"

// Select returns the policies named by s: a single one, or all of Policies
// for BothPolicies.
func Select(s string) ([]Policy, error) {
	if strings.EqualFold(strings.TrimSpace(s), BothPolicies) {
		return append([]Policy(nil), Policies...), nil
	}
	p, err := ParsePolicy(s)
	if err != nil {
		return nil, err
	}
	return []Policy{p}, nil
}

// Event describes one replayed move.
type Event struct {
	Index int           // zero-based index of the move in the route
	Move  grid.Move     // the move itself
	Role  agent.Role    // who moved
	Pos   grid.Position // where the mover ended up
	Fresh bool          // the cell had not been visited before
	Count int           // distinct cells after this move
}

// Simulator walks a route once, front to back. It is not safe for
// concurrent use.
type Simulator struct {
	policy   Policy
	moves    []grid.Move
	next     int
	primary  *agent.Agent
	second   *agent.Agent
	visited  *visit.Tracker
	farthest int
}

// New prepares a run of moves under policy and records the origin. Any
// policy other than PolicyDual runs a single agent.
func New(moves []grid.Move, policy Policy) *Simulator {
	if policy != PolicyDual {
		policy = PolicySingle
	}
	s := &Simulator{
		policy:  policy,
		moves:   moves,
		primary: agent.New(agent.Primary),
		visited: visit.New(),
	}
	if policy == PolicyDual {
		s.second = agent.New(agent.Secondary)
	}
	s.visited.Record(grid.Origin)
	return s
}

// mover returns the agent whose turn the move at index i is.
func (s *Simulator) mover(i int) *agent.Agent {
	if s.second != nil && i%2 == 0 {
		return s.second
	}
	return s.primary
}

// Step applies the next move. It returns false once the route is exhausted.
func (s *Simulator) Step() (Event, bool) {
	if s.Done() {
		return Event{}, false
	}
	i := s.next
	m := s.moves[i]
	a := s.mover(i)
	pos := a.Apply(m)
	fresh := s.visited.Record(pos)
	if d := grid.Manhattan(grid.Origin, pos); d > s.farthest {
		s.farthest = d
	}
	s.next++
	return Event{
		Index: i,
		Move:  m,
		Role:  a.Role(),
		Pos:   pos,
		Fresh: fresh,
		Count: s.visited.DistinctCount(),
	}, true
}

// Run applies every remaining move and returns the distinct visit count.
func (s *Simulator) Run() int {
	for {
		if _, ok := s.Step(); !ok {
			break
		}
	}
	return s.Count()
}

// Done reports whether every move has been applied.
func (s *Simulator) Done() bool {
	return s.next >= len(s.moves)
}

// Count returns the number of distinct cells visited so far.
func (s *Simulator) Count() int {
	return s.visited.DistinctCount()
}

// Progress returns how many moves were applied and how many there are.
func (s *Simulator) Progress() (done, total int) {
	return s.next, len(s.moves)
}

// Policy returns the policy the simulator runs.
func (s *Simulator) Policy() Policy {
	return s.policy
}

// Agents returns the primary agent followed by the secondary one, if any.
func (s *Simulator) Agents() []*agent.Agent {
	if s.second == nil {
		return []*agent.Agent{s.primary}
	}
	return []*agent.Agent{s.primary, s.second}
}

// Visited exposes the tracker for rendering. Callers must not record into it.
func (s *Simulator) Visited() *visit.Tracker {
	return s.visited
}
