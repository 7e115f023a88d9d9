package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crossing-arcade/internal/core"
)

// palette maps core.Color to ANSI color codes.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// cellStyles holds one lipgloss style per screen color.
type cellStyles map[core.Color]lipgloss.Style

// newCellStyles builds styles bound to a renderer. SSH sessions pass their
// own renderer so colors follow the client's terminal; nil uses the
// default renderer.
func newCellStyles(r *lipgloss.Renderer) cellStyles {
	style := lipgloss.NewStyle
	if r != nil {
		style = r.NewStyle
	}

	styles := cellStyles{core.ColorDefault: style()}
	for c, code := range palette {
		styles[c] = style().Foreground(lipgloss.Color(code))
	}
	return styles
}

var defaultStyles = newCellStyles(nil)

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	return defaultStyles.render(s)
}

// render groups adjacent cells with the same color to minimize ANSI
// escape sequences.
func (cs cellStyles) render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := cs[color]
			if !ok {
				style = cs[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
