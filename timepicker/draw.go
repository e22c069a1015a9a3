package timepicker

import "github.com/go-theft-auto/wheel"

// Placement is a column positioned inside the picker bounds.
type Placement struct {
	Column Column
	Bounds wheel.Rect
}

// dividerWidth is the width of a ":" column in pixels.
func dividerWidth(style wheel.Style) float32 {
	scale := style.FontScale
	if scale <= 0 {
		scale = 1
	}
	return float32(wheel.BuiltinFont().CellW) * scale * 2
}

// Layout splits bounds into the picker's columns. Dividers get a fixed
// width; wheels share the rest equally.
func Layout(p *Picker, bounds wheel.Rect, style wheel.Style) []Placement {
	cols := p.Columns()
	if len(cols) == 0 {
		return nil
	}

	dw := dividerWidth(style)
	wheels, dividers := 0, 0
	for _, c := range cols {
		if c.Kind == ColumnWheel {
			wheels++
		} else {
			dividers++
		}
	}

	gap := style.ColumnGap
	free := bounds.W - dw*float32(dividers) - gap*float32(len(cols)-1)
	ww := float32(0)
	if wheels > 0 && free > 0 {
		ww = free / float32(wheels)
	}

	out := make([]Placement, len(cols))
	x := bounds.X
	for i, c := range cols {
		w := ww
		if c.Kind == ColumnDivider {
			w = dw
		}
		out[i] = Placement{Column: c, Bounds: wheel.Rect{X: x, Y: bounds.Y, W: w, H: bounds.H}}
		x += w + gap
	}
	return out
}

// DrawPicker draws every column of p inside bounds.
func DrawPicker(dl *wheel.DrawList, p *Picker, bounds wheel.Rect, style wheel.Style) {
	if dl == nil || p == nil {
		return
	}
	scale := style.FontScale
	if scale <= 0 {
		scale = 1
	}
	atlas := wheel.BuiltinFont()

	for _, pl := range Layout(p, bounds, style) {
		switch pl.Column.Kind {
		case ColumnWheel:
			wheel.DrawWheel(dl, pl.Column.Wheel, pl.Bounds, style)
		case ColumnDivider:
			size := atlas.MeasureText(pl.Column.Text, scale, scale)
			c := pl.Bounds.Center()
			dl.AddText(c.X-size.X/2, c.Y-size.Y/2, pl.Column.Text, style.DividerColor, scale, scale)
		}
	}
}

// Controller routes one frame of input to the picker's wheels: each wheel
// column gets a PointerTracker, and Tab or Left/Right move keyboard focus.
type Controller struct {
	picker   *Picker
	trackers []*wheel.PointerTracker
	focus    int
}

// NewController creates a controller for p with focus on the hour wheel.
func NewController(p *Picker) *Controller {
	return &Controller{picker: p}
}

// Focus returns the index of the focused wheel.
func (c *Controller) Focus() int { return c.focus }

// Trackers returns the per-wheel trackers from the last Update.
func (c *Controller) Trackers() []*wheel.PointerTracker { return c.trackers }

// Update lays out the picker and feeds input to every wheel.
func (c *Controller) Update(input *wheel.InputState, bounds wheel.Rect, style wheel.Style) {
	if input == nil {
		return
	}
	var rects []wheel.Rect
	var targets []*wheel.Wheel[string]
	for _, pl := range Layout(c.picker, bounds, style) {
		if pl.Column.Kind == ColumnWheel {
			rects = append(rects, pl.Bounds)
			targets = append(targets, pl.Column.Wheel)
		}
	}
	c.sync(targets, rects)

	if n := len(c.trackers); n > 0 {
		switch {
		case input.KeyPressed(wheel.KeyTab), input.KeyPressed(wheel.KeyRight):
			c.focus = (c.focus + 1) % n
		case input.KeyPressed(wheel.KeyLeft):
			c.focus = (c.focus - 1 + n) % n
		}
	}

	for i, t := range c.trackers {
		t.Focused = i == c.focus
		t.Update(input)
	}
}

// sync rebuilds the trackers when the wheel set changed (12/24-hour switch)
// and refreshes their bounds otherwise.
func (c *Controller) sync(targets []*wheel.Wheel[string], rects []wheel.Rect) {
	same := len(targets) == len(c.trackers)
	for i := 0; same && i < len(targets); i++ {
		same = c.trackers[i].Target == wheel.Gesturer(targets[i])
	}
	if !same {
		for _, t := range c.trackers {
			t.Cancel()
		}
		c.trackers = make([]*wheel.PointerTracker, len(targets))
		for i, w := range targets {
			c.trackers[i] = wheel.NewPointerTracker(w, rects[i])
		}
		if c.focus >= len(targets) {
			c.focus = 0
		}
		return
	}
	for i := range c.trackers {
		c.trackers[i].Bounds = rects[i]
	}
}
