package render

import (
	"strings"

	"github.com/vinser/presents/internal/grid"
	"github.com/vinser/presents/internal/state"
	"github.com/vinser/presents/internal/style"
	"github.com/vinser/presents/internal/visit"
)

// CellKind is what a grid cell shows when no agent stands on it.
type CellKind int

const (
	Unseen CellKind = iota
	Visited
	Fresh
	Origin
)

// Window is the part of the grid on screen. Left and Top are the grid
// coordinates of the top-left cell; Y grows upwards on the grid and
// downwards on screen.
type Window struct {
	Left, Top     int
	Width, Height int
}

// Contains reports whether p is inside the window.
func (w Window) Contains(p grid.Position) bool {
	return p.X >= w.Left && p.X < w.Left+w.Width && p.Y <= w.Top && p.Y > w.Top-w.Height
}

// Follow returns the smallest shift of w that brings p inside, keeping
// margin cells between p and the edge where the window is large enough.
func (w Window) Follow(p grid.Position, margin int) Window {
	mx := min(margin, (w.Width-1)/2)
	my := min(margin, (w.Height-1)/2)
	if p.X < w.Left+mx {
		w.Left = p.X - mx
	}
	if p.X > w.Left+w.Width-1-mx {
		w.Left = p.X - w.Width + 1 + mx
	}
	if p.Y > w.Top-my {
		w.Top = p.Y + my
	}
	if p.Y < w.Top-w.Height+1+my {
		w.Top = p.Y + w.Height - 1 - my
	}
	return w
}

// Centered returns a window of the given size centered on p.
func Centered(p grid.Position, width, height int) Window {
	return Window{
		Left:   p.X - width/2,
		Top:    p.Y + height/2,
		Width:  width,
		Height: height,
	}
}

// Sprites holds the rendered rows of every cell kind for one sprite size.
type Sprites struct {
	Size  string
	Cells map[CellKind][]string
}

// NewSprites renders the cell sprites for size.
func NewSprites(size string) Sprites {
	cells := make(map[CellKind][]string)
	for _, kind := range []CellKind{Unseen, Visited, Fresh, Origin} {
		st := style.Unseen
		switch kind {
		case Visited:
			st = style.Visited
		case Fresh:
			st = style.Fresh
		case Origin:
			st = style.Origin
		}
		var rows []string
		for _, s := range cellSprite(size, kind) {
			rows = append(rows, st.Render(s))
		}
		cells[kind] = rows
	}
	return Sprites{Size: size, Cells: cells}
}

// CellDims returns how many characters wide and rows high one cell is.
func CellDims(size string) (int, int) {
	switch size {
	case state.SpriteSmall:
		return 1, 1
	case state.SpriteLarge:
		return 4, 2
	default:
		return 2, 1
	}
}

func cellSprite(size string, kind CellKind) []string {
	switch size {
	case state.SpriteSmall:
		switch kind {
		case Visited:
			return []string{"•"}
		case Fresh:
			return []string{"◆"}
		case Origin:
			return []string{"⌂"}
		default:
			return []string{"·"}
		}
	case state.SpriteLarge:
		switch kind {
		case Visited:
			return []string{" ▗▖ ", " ▝▘ "}
		case Fresh:
			return []string{" ▛▜ ", " ▙▟ "}
		case Origin:
			return []string{" ◢◣ ", " ▐▌ "}
		default:
			return []string{" ·  ", "    "}
		}
	default:
		switch kind {
		case Visited:
			return []string{"╺╸"}
		case Fresh:
			return []string{"◀▶"}
		case Origin:
			return []string{"◢◣"}
		default:
			return []string{"· "}
		}
	}
}

// Grid renders the cells of win. Markers are drawn on top of cells and the
// later of two markers on one cell wins; fresh marks the most recently
// discovered cell.
func Grid(visited *visit.Tracker, sprites Sprites, win Window, markers map[grid.Position][]string, fresh *grid.Position) string {
	_, rows := CellDims(sprites.Size)
	var sb strings.Builder
	lines := make([]strings.Builder, rows)
	for y := win.Top; y > win.Top-win.Height; y-- {
		for i := range lines {
			lines[i].Reset()
		}
		for x := win.Left; x < win.Left+win.Width; x++ {
			pos := grid.Position{X: x, Y: y}
			sprite, ok := markers[pos]
			if !ok {
				sprite = sprites.Cells[kindAt(visited, pos, fresh)]
			}
			for i := range lines {
				lines[i].WriteString(sprite[i%len(sprite)])
			}
		}
		for i := range lines {
			sb.WriteString(lines[i].String())
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

func kindAt(visited *visit.Tracker, pos grid.Position, fresh *grid.Position) CellKind {
	switch {
	case pos == grid.Origin:
		return Origin
	case fresh != nil && pos == *fresh:
		return Fresh
	case visited.Contains(pos):
		return Visited
	default:
		return Unseen
	}
}
