package wheel

// Gesturer receives a pointer drag stream. Offsets are totals since Grant.
// *Wheel satisfies it.
type Gesturer interface {
	Grant() Outcome
	Move(dy float64) Outcome
	Release(dy float64) Outcome
	Abort() Outcome
}

// Scroller is implemented by targets that accept discrete steps from a
// mouse wheel or keyboard.
type Scroller interface {
	Scroll(steps int) Outcome
}

// DragState tracks the state of a drag operation.
type DragState struct {
	Active bool    // Currently being dragged
	StartX float32 // Mouse X when drag started
	StartY float32 // Mouse Y when drag started
	LastDY float32 // Total vertical movement at the last frame
}

// Reset clears the drag state.
func (d *DragState) Reset() {
	d.Active = false
	d.StartX = 0
	d.StartY = 0
	d.LastDY = 0
}

// PointerTracker turns per-frame InputState into gesture events for one
// target inside Bounds. A press inside Bounds grants; the drag then follows
// the mouse anywhere until release, Cancel or Escape.
type PointerTracker struct {
	Bounds  Rect
	Target  Gesturer
	Focused bool // arrow keys step the target when set

	drag       DragState
	wheelAccum float32
}

// NewPointerTracker creates a tracker for target over bounds.
func NewPointerTracker(target Gesturer, bounds Rect) *PointerTracker {
	return &PointerTracker{Bounds: bounds, Target: target}
}

// State returns the current drag state.
func (t *PointerTracker) State() DragState { return t.drag }

// IsDragging returns true while a drag started by this tracker is running.
func (t *PointerTracker) IsDragging() bool { return t.drag.Active }

// Update processes one frame of input and returns what the target did.
func (t *PointerTracker) Update(input *InputState) Outcome {
	if input == nil || t.Target == nil {
		return OutcomeIgnored
	}

	if t.drag.Active {
		return t.updateDrag(input)
	}

	mousePos := Vec2{X: input.MouseX, Y: input.MouseY}
	inside := t.Bounds.Contains(mousePos)

	if inside && input.MouseClicked(MouseButtonLeft) && !input.Cancel {
		out := t.Target.Grant()
		if out == OutcomeGranted {
			t.drag.Active = true
			t.drag.StartX = mousePos.X
			t.drag.StartY = mousePos.Y
		}
		return out
	}

	scroller, ok := t.Target.(Scroller)
	if !ok {
		return OutcomeIgnored
	}

	if inside && input.MouseWheelY != 0 {
		t.wheelAccum += input.MouseWheelY
		steps := int(t.wheelAccum)
		if steps != 0 {
			t.wheelAccum -= float32(steps)
			// Wheel up reveals earlier values, like dragging down.
			return scroller.Scroll(-steps)
		}
	}

	if t.Focused {
		if input.KeyPressed(KeyUp) {
			return scroller.Scroll(-1)
		}
		if input.KeyPressed(KeyDown) {
			return scroller.Scroll(1)
		}
	}
	return OutcomeIgnored
}

func (t *PointerTracker) updateDrag(input *InputState) Outcome {
	if input.Cancel || input.KeyPressed(KeyEscape) {
		t.drag.Reset()
		return t.Target.Abort()
	}

	dy := input.MouseY - t.drag.StartY
	if input.MouseDown(MouseButtonLeft) {
		t.drag.LastDY = dy
		return t.Target.Move(float64(dy))
	}

	t.drag.Reset()
	return t.Target.Release(float64(dy))
}

// Cancel aborts a running drag, as when the host reclaims the pointer.
func (t *PointerTracker) Cancel() Outcome {
	if !t.drag.Active {
		return OutcomeIgnored
	}
	t.drag.Reset()
	return t.Target.Abort()
}
