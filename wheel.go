package wheel

import "slices"

// VisibleSlot is one rendered slot of a wheel for the current frame.
type VisibleSlot[T any] struct {
	Value T
	Empty bool // no value at this position; skip drawing

	Angle          float64 // radians on the cylinder
	VerticalOffset float64 // from the wheel center, in [-Radius, Radius]
	Rotation       float64 // degrees in [-90, 90]
	Scale          float64 // apparent height factor

	Emphasized bool   // the slot shows the committed value
	Color      uint32 // SelectedColor when emphasized, DisabledColor otherwise
}

// Wheel is a drag-driven picker over a fixed list of values.
//
// A Wheel is single-threaded: all methods must be called from the goroutine
// that delivers pointer events and renders frames.
type Wheel[T comparable] struct {
	values   []T
	value    T
	index    int
	resolved bool

	cfg         Config
	geom        Geometry
	circular    bool
	renderCount int
	window      []Cell[T] // cached until value, index or list changes

	gesture Gesture

	onCommit func(T)
	onScroll func(bool)
}

// New creates a wheel over values with initial selected.
//
// An empty list or invalid geometry returns an error wrapping
// ErrInvalidConfiguration. An initial value missing from the list is not an
// error: the wheel shows index 0 and SelectionResolved reports false.
func New[T comparable](values []T, initial T, opts ...Option) (*Wheel[T], error) {
	o := applyOptions(opts)
	cfg := configFrom(o)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrEmptyValues
	}

	w := &Wheel[T]{
		values:   slices.Clone(values),
		value:    initial,
		cfg:      cfg,
		geom:     cfg.Geometry(),
		onCommit: GetOpt(o, commitKey[T]()),
		onScroll: GetOpt(o, OptOnScrollStateChange),
	}
	w.recompute()
	w.resolve()
	return w, nil
}

func (w *Wheel[T]) recompute() {
	w.circular = IsCircular(len(w.values), w.cfg.DisplayCount)
	w.renderCount = RenderCount(len(w.values), w.cfg.DisplayCount)
	w.window = nil
}

func (w *Wheel[T]) resolve() {
	idx := IndexOf(w.values, w.value)
	w.resolved = idx >= 0
	if !w.resolved {
		Logger().Warn("wheel: selected value not in list", "value", w.value, "count", len(w.values))
		idx = 0
	}
	w.index = idx
	w.window = nil
}

// Value returns the committed value.
func (w *Wheel[T]) Value() T { return w.value }

// Values returns a copy of the value list.
func (w *Wheel[T]) Values() []T { return slices.Clone(w.values) }

// Index returns the index the wheel is centered on.
func (w *Wheel[T]) Index() int { return w.index }

// SelectionResolved reports whether Value was found in the list.
func (w *Wheel[T]) SelectionResolved() bool { return w.resolved }

// Circular reports whether the list wraps around.
func (w *Wheel[T]) Circular() bool { return w.circular }

// RenderCount returns the number of slots materialized per frame.
func (w *Wheel[T]) RenderCount() int { return w.renderCount }

// DisplayCount returns the configured number of visible slots.
func (w *Wheel[T]) DisplayCount() int { return w.cfg.DisplayCount }

// Radius returns the cylinder radius.
func (w *Wheel[T]) Radius() float64 { return w.geom.Radius }

// Unit returns the drag distance of one slot.
func (w *Wheel[T]) Unit() float64 { return w.geom.Unit() }

// DragOffset returns the live drag displacement.
func (w *Wheel[T]) DragOffset() float64 { return w.gesture.Offset() }

// Dragging reports whether a drag is in progress.
func (w *Wheel[T]) Dragging() bool { return w.gesture.Dragging() }

// Config returns the resolved configuration.
func (w *Wheel[T]) Config() Config { return w.cfg }

// SetOnCommit replaces the commit callback.
func (w *Wheel[T]) SetOnCommit(fn func(T)) { w.onCommit = fn }

// SetOnScrollStateChange replaces the scroll-state observer.
func (w *Wheel[T]) SetOnScrollStateChange(fn func(bool)) { w.onScroll = fn }

// Grant starts a drag. A grant while already dragging is ignored.
func (w *Wheel[T]) Grant() Outcome {
	if !w.gesture.Grant() {
		Logger().Debug("wheel: grant ignored", "phase", w.gesture.Phase())
		return OutcomeIgnored
	}
	Logger().Debug("wheel: grant", "value", w.value)
	w.notifyScroll(true)
	return OutcomeGranted
}

// Move updates the drag with dy, the total displacement since Grant.
func (w *Wheel[T]) Move(dy float64) Outcome {
	if !w.gesture.Move(dy) {
		Logger().Debug("wheel: move ignored", "phase", w.gesture.Phase(), "dy", dy)
		return OutcomeIgnored
	}
	return OutcomeMoved
}

// Release ends the drag with dy, the total displacement since Grant, and
// commits the value it lands on. Landing on the starting value reverts.
func (w *Wheel[T]) Release(dy float64) Outcome {
	delta, ok := w.gesture.Release(dy, w.geom.Unit())
	if !ok {
		Logger().Debug("wheel: release ignored", "phase", w.gesture.Phase())
		return OutcomeIgnored
	}
	w.notifyScroll(false)
	return w.step(delta)
}

// Abort cancels a drag without committing, returning the wheel to rest.
func (w *Wheel[T]) Abort() Outcome {
	if !w.gesture.Abort() {
		return OutcomeIgnored
	}
	Logger().Debug("wheel: abort", "value", w.value)
	w.notifyScroll(false)
	return OutcomeAborted
}

// Scroll moves the selection by steps without a drag. Positive steps move
// toward later values. Ignored while dragging.
func (w *Wheel[T]) Scroll(steps int) Outcome {
	if w.gesture.Dragging() {
		return OutcomeIgnored
	}
	return w.step(steps)
}

// step resolves delta from the current index and commits or reverts.
// A full revolution on a circular list lands on the same value and reverts.
func (w *Wheel[T]) step(delta int) Outcome {
	idx, err := Resolve(len(w.values), w.index, delta, w.circular)
	w.gesture.Settle()
	if err != nil {
		return OutcomeIgnored
	}

	next := w.values[idx]
	if w.resolved && next == w.value {
		Logger().Debug("wheel: revert", "value", w.value, "delta", delta)
		return OutcomeReverted
	}

	prev := w.value
	w.value = next
	w.index = idx
	w.resolved = true
	w.window = nil
	Logger().Debug("wheel: commit", "from", prev, "to", next, "delta", delta)
	if w.onCommit != nil {
		w.onCommit(next)
	}
	return OutcomeCommitted
}

// SetValue changes the selected value from outside without firing the
// commit callback. A live drag keeps running from the new center.
func (w *Wheel[T]) SetValue(v T) {
	w.value = v
	w.gesture.Settle()
	w.resolve()
}

// SetValues replaces the list. Any drag in progress is aborted and the
// selection is resolved against the new list.
func (w *Wheel[T]) SetValues(values []T) error {
	return w.Replace(values, w.value)
}

// Replace swaps the list and the selected value together, as when a
// picker switches between 12- and 24-hour lists. Any drag in progress is
// aborted. The commit callback does not fire.
func (w *Wheel[T]) Replace(values []T, v T) error {
	if len(values) == 0 {
		return ErrEmptyValues
	}
	w.Abort()
	w.gesture.Reset()
	w.values = slices.Clone(values)
	w.value = v
	Logger().Debug("wheel: values replaced", "count", len(w.values))
	w.recompute()
	w.resolve()
	return nil
}

// SetDisplayCount changes the number of visible slots, aborting any drag.
func (w *Wheel[T]) SetDisplayCount(n int) error {
	cfg := w.cfg
	cfg.DisplayCount = n
	if err := cfg.Validate(); err != nil {
		return err
	}
	w.Abort()
	w.cfg = cfg
	w.geom = cfg.Geometry()
	w.recompute()
	return nil
}

// Window returns the cells around the current index. The slice is shared
// with the wheel and must not be modified.
func (w *Wheel[T]) Window() []Cell[T] {
	if w.window == nil {
		w.window = BuildWindow(w.values, w.index, w.renderCount, w.circular)
	}
	return w.window
}

// VisibleSlots returns content and geometry for every materialized slot at
// the current drag offset, top to bottom.
func (w *Wheel[T]) VisibleSlots() []VisibleSlot[T] {
	return w.AppendVisibleSlots(make([]VisibleSlot[T], 0, w.renderCount))
}

// AppendVisibleSlots appends the visible slots to dst, letting renderers
// reuse a buffer between frames.
func (w *Wheel[T]) AppendVisibleSlots(dst []VisibleSlot[T]) []VisibleSlot[T] {
	cells := w.Window()
	mid := CenterSlot(w.renderCount)
	offset := w.gesture.Offset()

	for s, cell := range cells {
		tr := w.geom.SlotTransform(offset, s-mid)
		emphasized := !cell.Empty && cell.Value == w.value
		color := w.cfg.DisabledColor
		if emphasized {
			color = w.cfg.SelectedColor
		}
		dst = append(dst, VisibleSlot[T]{
			Value:          cell.Value,
			Empty:          cell.Empty,
			Angle:          tr.Angle,
			VerticalOffset: tr.VerticalOffset,
			Rotation:       tr.Rotation,
			Scale:          tr.Scale,
			Emphasized:     emphasized,
			Color:          color,
		})
	}
	return dst
}

func (w *Wheel[T]) notifyScroll(scrolling bool) {
	if w.onScroll != nil {
		w.onScroll(scrolling)
	}
}
