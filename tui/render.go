package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/wheel"
)

// Color converts a packed wheel color to a lipgloss hex color.
func Color(c uint32) lipgloss.Color {
	r, g, b, _ := wheel.UnpackRGBA(c)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// RowOf maps a vertical offset in [-radius, radius] to one of rows
// terminal rows, top to bottom.
func RowOf(offset, radius float64, rows int) int {
	if rows <= 1 || radius <= 0 {
		return 0
	}
	t := (offset + radius) / (2 * radius)
	row := int(math.Round(t * float64(rows-1)))
	return max(0, min(rows-1, row))
}

// RenderColumn quantizes slots onto rows lines of the given width. When
// two slots land on the same row the one nearer the center wins. The
// emphasized slot is drawn bold in its color, the rest in theirs.
func RenderColumn(slots []wheel.VisibleSlot[string], radius float64, rows, width int) []string {
	if rows <= 0 {
		return nil
	}
	best := make([]int, rows)
	for i := range best {
		best[i] = -1
	}
	for i, s := range slots {
		if s.Empty {
			continue
		}
		r := RowOf(s.VerticalOffset, radius, rows)
		if best[r] < 0 || math.Abs(s.Angle) < math.Abs(slots[best[r]].Angle) {
			best[r] = i
		}
	}

	cell := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	lines := make([]string, rows)
	for r, i := range best {
		if i < 0 {
			lines[r] = strings.Repeat(" ", width)
			continue
		}
		s := slots[i]
		st := cell.Foreground(Color(s.Color))
		if s.Emphasized {
			st = st.Bold(true)
		}
		lines[r] = st.Render(s.Value)
	}
	return lines
}
