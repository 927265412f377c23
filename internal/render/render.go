// Package render draws a diagnostic view of generated rows: one text line
// per row, highest row on top, blocks scaled to the screen width.
package render

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/generator"
)

// GutterWidth is the number of columns reserved for the row index.
const GutterWidth = 6

const (
	runeBlock  = '█'
	runeHazard = '◆'
	runeWall   = '│'
)

// patternColors gives each pattern's blocks a distinct color.
var patternColors = map[generator.PatternKind]core.Color{
	generator.PatternGap:         core.ColorWhite,
	generator.PatternRandom:      core.ColorCyan,
	generator.PatternAlternating: core.ColorYellow,
	generator.PatternZigZag:      core.ColorGreen,
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// FieldColumns returns how many columns of a screen of the given width are
// left for the play field.
func FieldColumns(screenWidth int) int {
	return screenWidth - GutterWidth - 2
}

// Rasterize draws rows onto dst. If there are more rows than screen lines,
// the lowest rows are kept.
func Rasterize(dst *core.Screen, g config.GeneratorConfig, rows []generator.Row, obstacles []generator.Obstacle) {
	cols := FieldColumns(dst.Width())
	playWidth := g.PlayWidth()
	if cols <= 0 || playWidth <= 0 || dst.Height() == 0 {
		return
	}
	scale := float64(cols) / playWidth

	sorted := make([]generator.Row, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })
	if len(sorted) > dst.Height() {
		sorted = sorted[:dst.Height()]
	}

	byRow := make(map[int][]generator.Obstacle, len(sorted))
	for _, o := range obstacles {
		byRow[o.RowIndex] = append(byRow[o.RowIndex], o)
	}

	// Highest row on the first line
	for i, row := range sorted {
		y := len(sorted) - 1 - i
		fieldX := GutterWidth + 1

		dst.DrawTextColored(0, y, fmt.Sprintf("%5d ", row.Index), core.ColorGray)
		dst.SetColored(GutterWidth, y, runeWall, core.ColorGray)
		dst.SetColored(fieldX+cols, y, runeWall, core.ColorGray)

		color, ok := patternColors[row.Pattern]
		if !ok {
			color = core.ColorWhite
		}

		// Static blocks first so hazards stay visible on top
		for _, o := range byRow[row.Index] {
			if o.Kind != generator.KindStatic {
				continue
			}
			c0, c1 := span(o, g.GameStartPosition, scale, cols)
			dst.DrawHLine(fieldX+c0, y, c1-c0, runeBlock, color)
		}
		for _, o := range byRow[row.Index] {
			if o.Kind != generator.KindMoving {
				continue
			}
			c0, c1 := span(o, g.GameStartPosition, scale, cols)
			dst.DrawHLine(fieldX+c0, y, max(c1-c0, 1), runeHazard, core.ColorBrightRed)
		}
	}
}

// span converts an obstacle's extent to field columns [c0, c1).
func span(o generator.Obstacle, start, scale float64, cols int) (int, int) {
	c0 := int(math.Round((o.X - start) * scale))
	c1 := int(math.Round((o.Right() - start) * scale))
	return core.Clamp(c0, 0, cols), core.Clamp(c1, 0, cols)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Legend describes the colors used by Rasterize.
func Legend() string {
	parts := make([]string, 0, len(generator.AllPatterns)+1)
	for _, k := range generator.AllPatterns {
		parts = append(parts, colorStyles[patternColors[k]].Render(string(runeBlock)+" "+k.String()))
	}
	parts = append(parts, colorStyles[core.ColorBrightRed].Render(string(runeHazard)+" hazard"))
	return strings.Join(parts, "  ")
}
