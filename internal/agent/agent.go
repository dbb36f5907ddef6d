package agent

import "github.com/vinser/presents/internal/grid"

// Role tells the agents of a run apart.
type Role int

const (
	Primary Role = iota
	Secondary
)

func (r Role) String() string {
	if r == Secondary {
		return "secondary"
	}
	return "primary"
}

// Agent is a courier walking the grid one move at a time.
type Agent struct {
	role     Role
	position grid.Position
	moves    int
}

// New returns an agent with the given role standing at the origin.
func New(role Role) *Agent {
	return &Agent{
		role:     role,
		position: grid.Origin,
	}
}

// Role returns the agent's role.
func (a *Agent) Role() Role {
	return a.role
}

// Pos returns the agent's current position.
func (a *Agent) Pos() grid.Position {
	return a.position
}

// Moves returns how many moves the agent has applied.
func (a *Agent) Moves() int {
	return a.moves
}

// Apply advances the agent by m and returns its new position.
func (a *Agent) Apply(m grid.Move) grid.Position {
	a.position = grid.Next(a.position, m)
	a.moves++
	return a.position
}
