// Package tui runs a time picker in a terminal with bubbletea. Columns are
// dragged with the mouse one row per slot, scrolled with the wheel, or
// stepped with the arrow keys.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/wheel"
	"github.com/go-theft-auto/wheel/timepicker"
)

const (
	wheelWidth   = 4
	dividerWidth = 1
	columnGap    = 1

	// top is the first row of the wheel columns; row 0 holds the title.
	top = 1
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00C8FF")).Bold(true)
	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC800")).Bold(true)
	focusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00C8FF"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// placed is a picker column at a terminal x position.
type placed struct {
	col   timepicker.Column
	x, w  int
	wheel int // index among wheel columns, -1 for dividers
}

// Model is a bubbletea model over a time picker.
type Model struct {
	picker *timepicker.Picker
	title  string

	focus  int
	active *wheel.Wheel[string] // wheel under an open mouse drag
	startY int
}

// New creates a model for p.
func New(p *timepicker.Picker, title string) *Model {
	return &Model{picker: p, title: title}
}

// Picker returns the underlying picker.
func (m *Model) Picker() *timepicker.Picker { return m.picker }

// Focus returns the index of the wheel the arrow keys step.
func (m *Model) Focus() int { return m.focus }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	wheels := m.picker.Wheels()
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		m.abort()
	case "up", "k":
		m.focused(wheels).Scroll(-1)
	case "down", "j":
		m.focused(wheels).Scroll(1)
	case "right", "l", "tab":
		m.focus = (m.focus + 1) % len(wheels)
	case "left", "h", "shift+tab":
		m.focus = (m.focus - 1 + len(wheels)) % len(wheels)
	case "t":
		m.abort()
		if err := m.picker.SetUse24Hour(!m.picker.Use24Hour()); err != nil {
			wheel.Logger().Error("tui: switch hour mode", "err", err)
		}
		if n := len(m.picker.Wheels()); m.focus >= n {
			m.focus = n - 1
		}
	}
	return m, nil
}

func (m *Model) focused(wheels []*wheel.Wheel[string]) *wheel.Wheel[string] {
	if m.focus >= len(wheels) {
		m.focus = 0
	}
	return wheels[m.focus]
}

func (m *Model) abort() {
	if m.active != nil {
		m.active.Abort()
		m.active = nil
	}
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	if m.active != nil {
		dy := float64(msg.Y-m.startY) * m.active.Unit()
		switch msg.Action {
		case tea.MouseActionMotion:
			m.active.Move(dy)
		case tea.MouseActionRelease:
			m.active.Release(dy)
			m.active = nil
		}
		return
	}

	p, ok := m.hit(msg.X, msg.Y)
	if !ok || p.wheel < 0 {
		return
	}
	w := p.col.Wheel
	switch {
	case msg.Action != tea.MouseActionPress:
	case msg.Button == tea.MouseButtonWheelUp:
		w.Scroll(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		w.Scroll(1)
	case msg.Button == tea.MouseButtonLeft:
		if w.Grant() == wheel.OutcomeGranted {
			m.active = w
			m.startY = msg.Y
			m.focus = p.wheel
		}
	}
}

// rows is the height of the wheel columns in terminal rows.
func (m *Model) rows() int {
	return m.picker.Hour().DisplayCount()
}

func (m *Model) layout() []placed {
	var out []placed
	x, n := 0, 0
	for _, c := range m.picker.Columns() {
		p := placed{col: c, x: x, w: dividerWidth, wheel: -1}
		if c.Kind == timepicker.ColumnWheel {
			p.w = wheelWidth
			p.wheel = n
			n++
		}
		out = append(out, p)
		x += p.w + columnGap
	}
	return out
}

func (m *Model) hit(x, y int) (placed, bool) {
	if y < top || y >= top+m.rows() {
		return placed{}, false
	}
	for _, p := range m.layout() {
		if x >= p.x && x < p.x+p.w {
			return p, true
		}
	}
	return placed{}, false
}

// View implements tea.Model.
func (m *Model) View() string {
	rows := m.rows()
	var blocks []string
	for i, p := range m.layout() {
		if i > 0 {
			blocks = append(blocks, strings.Repeat(" ", columnGap))
		}
		if p.wheel < 0 {
			lines := make([]string, rows)
			for r := range lines {
				lines[r] = " "
			}
			lines[rows/2] = dividerStyle.Render(p.col.Text)
			blocks = append(blocks, strings.Join(lines, "\n"))
			continue
		}
		w := p.col.Wheel
		lines := RenderColumn(w.VisibleSlots(), w.Radius(), rows, p.w)
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	b.WriteString("\n")
	b.WriteString(m.focusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("drag/scroll ↑↓ step ←→ focus t 12/24h q quit"))
	return b.String()
}

// focusLine marks the focused wheel with a caret under its column.
func (m *Model) focusLine() string {
	var b strings.Builder
	for _, p := range m.layout() {
		pad := p.w + columnGap
		if p.wheel == m.focus {
			b.WriteString(focusStyle.Render(lipgloss.PlaceHorizontal(p.w, lipgloss.Center, "^")))
			pad = columnGap
		}
		b.WriteString(strings.Repeat(" ", pad))
	}
	return strings.TrimRight(b.String(), " ")
}
