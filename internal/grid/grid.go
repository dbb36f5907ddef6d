package grid

// Position represents a cell on the unbounded delivery grid.
type Position struct {
	X, Y int
}

// Origin is the cell every agent starts from.
var Origin = Position{}

// Move represents a unit step in one of the four compass directions.
type Move int

const (
	North Move = iota
	South
	East
	West
)

// Moves lists every Move value in declaration order.
var Moves = []Move{North, South, East, West}

// Next returns the position one step away from p in the direction of m.
func Next(p Position, m Move) Position {
	switch m {
	case North:
		p.Y++
	case South:
		p.Y--
	case East:
		p.X++
	case West:
		p.X--
	}
	return p
}

// Symbol returns the instruction character for m.
func (m Move) Symbol() rune {
	switch m {
	case North:
		return '^'
	case South:
		return 'v'
	case East:
		return '>'
	case West:
		return '<'
	}
	return '?'
}

func (m Move) String() string {
	switch m {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// Manhattan returns the taxicab distance between a and b.
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
