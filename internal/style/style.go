package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// General UI
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Content    = lipgloss.NewStyle()
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	Header     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")) // Green
	Error      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))             // Bright red

	// Settings
	SetupItem         = lipgloss.NewStyle()
	SetupItemSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true) // Pinkish-reddish purple

	// Report
	Label  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	Number = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")) // Bright yellow
	Panel  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("204")).Padding(0, 1)

	// Grid cells
	Visited = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))  // Green
	Fresh   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))  // Bright green
	Origin  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))   // Bright red
	Unseen  = lipgloss.NewStyle().Foreground(lipgloss.Color("237")) // Dark grey
)

// RGB is a color with 0-255 channels.
type RGB struct {
	R int
	G int
	B int
}

var RGBColor = map[string]RGB{
	"black":   {0, 0, 0},
	"red":     {255, 0, 0},
	"green":   {0, 255, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"magenta": {255, 0, 255},
	"cyan":    {0, 255, 255},
	"white":   {255, 255, 255},
	"grey":    {128, 128, 128},
}

// GenerateHexColor generates hexadecimal string for a given RGB values. r, g, b should be in the range 0-255
// Format: #RRGGBB
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

const (
	brightMin = 128
	dimShift  = 96
)

// BrightDim returns a bright and a dimmed variant of a color channel.
// Zero channels stay zero.
func BrightDim(colorNum int) (int, int) {
	if colorNum == 0 {
		return 0, 0
	}
	bright := colorNum
	if bright > 255 {
		bright = 255
	}
	if bright < brightMin {
		bright = brightMin
	}
	return bright, bright - dimShift
}

// BlinkPair returns bright and dim foreground styles for the named color.
func BlinkPair(name string) (bright, dim lipgloss.Style) {
	c, ok := RGBColor[name]
	if !ok {
		c = RGBColor["white"]
	}
	brightR, dimR := BrightDim(c.R)
	brightG, dimG := BrightDim(c.G)
	brightB, dimB := BrightDim(c.B)

	bright = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(GenerateHexColor(brightR, brightG, brightB)))
	dim = lipgloss.NewStyle().Foreground(lipgloss.Color(GenerateHexColor(dimR, dimG, dimB)))
	return bright, dim
}
