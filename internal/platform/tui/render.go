package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hang2323-brian/snake-game/internal/core"
)

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// palette holds the ANSI style of every board colour.
var palette = [...]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         fg("1"),
	core.ColorGreen:       fg("2"),
	core.ColorDarkGreen:   fg("22"),
	core.ColorYellow:      fg("3"),
	core.ColorMagenta:     fg("5"),
	core.ColorWhite:       fg("7"),
	core.ColorBrightGreen: fg("10").Bold(true),
	core.ColorOrange:      fg("208"),
	core.ColorGray:        fg("245"),
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// RenderScreen turns the cell buffer into terminal text, one line per row.
// Each run of same-coloured cells is styled once.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()

	var out strings.Builder
	out.Grow(w*h*2 + h)

	var run strings.Builder
	for y := range h {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x := 0; x < w; {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < w && s.GetCell(x, y).Color == color; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			out.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return out.String()
}
