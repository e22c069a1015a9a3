package wheel

import "testing"

// fakeTarget records the gesture stream it receives.
type fakeTarget struct {
	events []string
	moves  []float64
	steps  []int
	grant  Outcome
}

func newFakeTarget() *fakeTarget { return &fakeTarget{grant: OutcomeGranted} }

func (f *fakeTarget) Grant() Outcome {
	f.events = append(f.events, "grant")
	return f.grant
}

func (f *fakeTarget) Move(dy float64) Outcome {
	f.events = append(f.events, "move")
	f.moves = append(f.moves, dy)
	return OutcomeMoved
}

func (f *fakeTarget) Release(dy float64) Outcome {
	f.events = append(f.events, "release")
	f.moves = append(f.moves, dy)
	return OutcomeCommitted
}

func (f *fakeTarget) Abort() Outcome {
	f.events = append(f.events, "abort")
	return OutcomeAborted
}

func (f *fakeTarget) Scroll(steps int) Outcome {
	f.events = append(f.events, "scroll")
	f.steps = append(f.steps, steps)
	return OutcomeCommitted
}

func TestPointerTracker_BasicDrag(t *testing.T) {
	target := newFakeTarget()
	tr := NewPointerTracker(target, Rect{X: 100, Y: 100, W: 80, H: 100})
	input := NewInputState()

	// Press inside the wheel.
	input.SetMousePos(120, 150)
	input.SetMouseButton(MouseButtonLeft, true)
	if got := tr.Update(input); got != OutcomeGranted {
		t.Fatalf("press: got %v, want granted", got)
	}
	if !tr.IsDragging() {
		t.Fatal("Expected tracker to be dragging after press")
	}

	// Drag 30px down, outside the bounds.
	input.Reset()
	input.SetMousePos(130, 230)
	input.SetMouseButton(MouseButtonLeft, true)
	tr.Update(input)
	if st := tr.State(); st.LastDY != 80 {
		t.Errorf("LastDY = %v, want 80", st.LastDY)
	}

	// Release.
	input.Reset()
	input.SetMousePos(130, 190)
	input.SetMouseButton(MouseButtonLeft, false)
	if got := tr.Update(input); got != OutcomeCommitted {
		t.Errorf("release: got %v, want committed", got)
	}
	if tr.IsDragging() {
		t.Error("Expected tracker to stop dragging after release")
	}

	wantEvents := []string{"grant", "move", "release"}
	if len(target.events) != len(wantEvents) {
		t.Fatalf("events = %v, want %v", target.events, wantEvents)
	}
	for i := range wantEvents {
		if target.events[i] != wantEvents[i] {
			t.Errorf("events[%d] = %q, want %q", i, target.events[i], wantEvents[i])
		}
	}
	if target.moves[0] != 80 || target.moves[1] != 40 {
		t.Errorf("offsets = %v, want totals since press [80 40]", target.moves)
	}
}

func TestPointerTracker_ClickOutside(t *testing.T) {
	target := newFakeTarget()
	tr := NewPointerTracker(target, Rect{X: 100, Y: 100, W: 80, H: 100})
	input := NewInputState()

	input.SetMousePos(10, 10)
	input.SetMouseButton(MouseButtonLeft, true)
	if got := tr.Update(input); got != OutcomeIgnored {
		t.Errorf("press outside: got %v, want ignored", got)
	}
	if tr.IsDragging() || len(target.events) != 0 {
		t.Errorf("press outside started a drag: events %v", target.events)
	}
}

func TestPointerTracker_HeldButtonDoesNotGrant(t *testing.T) {
	target := newFakeTarget()
	tr := NewPointerTracker(target, Rect{W: 100, H: 100})
	input := NewInputState()

	input.SetMouseButton(MouseButtonLeft, true)
	input.Reset() // press edge consumed in an earlier frame
	input.SetMousePos(50, 50)
	tr.Update(input)
	if tr.IsDragging() {
		t.Error("a button already held on entry must not grant")
	}
}

func TestPointerTracker_GrantRefused(t *testing.T) {
	target := newFakeTarget()
	target.grant = OutcomeIgnored
	tr := NewPointerTracker(target, Rect{W: 100, H: 100})
	input := NewInputState()
	input.SetMousePos(50, 50)
	input.SetMouseButton(MouseButtonLeft, true)
	tr.Update(input)
	if tr.IsDragging() {
		t.Error("tracker should not drag when the target refuses the grant")
	}
}

func TestPointerTracker_CancelAborts(t *testing.T) {
	for _, name := range []string{"cancel flag", "escape", "Cancel method"} {
		t.Run(name, func(t *testing.T) {
			target := newFakeTarget()
			tr := NewPointerTracker(target, Rect{W: 100, H: 100})
			input := NewInputState()
			input.SetMousePos(50, 50)
			input.SetMouseButton(MouseButtonLeft, true)
			tr.Update(input)

			input.Reset()
			input.SetMousePos(50, 70)
			var got Outcome
			switch name {
			case "cancel flag":
				input.Cancel = true
				got = tr.Update(input)
			case "escape":
				input.SetKey(KeyEscape, true)
				got = tr.Update(input)
			default:
				got = tr.Cancel()
			}
			if got != OutcomeAborted {
				t.Errorf("got %v, want aborted", got)
			}
			if tr.IsDragging() {
				t.Error("still dragging after abort")
			}
			if last := target.events[len(target.events)-1]; last != "abort" {
				t.Errorf("last event = %q, want abort", last)
			}
		})
	}
}

func TestPointerTracker_CancelBlocksGrant(t *testing.T) {
	target := newFakeTarget()
	tr := NewPointerTracker(target, Rect{W: 100, H: 100})
	input := NewInputState()
	input.SetMousePos(50, 50)
	input.SetMouseButton(MouseButtonLeft, true)
	input.Cancel = true
	tr.Update(input)
	if tr.IsDragging() {
		t.Error("press in a cancelled frame must not grant")
	}
	if got := tr.Cancel(); got != OutcomeIgnored {
		t.Errorf("Cancel while idle = %v, want ignored", got)
	}
}

func TestPointerTracker_MouseWheel(t *testing.T) {
	target := newFakeTarget()
	tr := NewPointerTracker(target, Rect{W: 100, H: 100})
	input := NewInputState()
	input.SetMousePos(50, 50)

	input.SetMouseWheel(1)
	tr.Update(input)

	// Fractional deltas accumulate.
	input.Reset()
	input.SetMouseWheel(-0.5)
	tr.Update(input)
	input.Reset()
	input.SetMouseWheel(-0.5)
	tr.Update(input)

	// Outside the bounds nothing happens.
	input.Reset()
	input.SetMousePos(500, 500)
	input.SetMouseWheel(3)
	tr.Update(input)

	if len(target.steps) != 2 || target.steps[0] != -1 || target.steps[1] != 1 {
		t.Errorf("steps = %v, want [-1 1]", target.steps)
	}
}

func TestPointerTracker_ArrowKeysWhenFocused(t *testing.T) {
	target := newFakeTarget()
	tr := NewPointerTracker(target, Rect{W: 100, H: 100})
	input := NewInputState()

	input.SetKey(KeyDown, true)
	tr.Update(input)
	if len(target.steps) != 0 {
		t.Fatalf("unfocused tracker scrolled: %v", target.steps)
	}

	tr.Focused = true
	input.Reset()
	input.SetKey(KeyDown, false)
	input.SetKey(KeyDown, true)
	tr.Update(input)
	input.Reset()
	input.SetKey(KeyUp, true)
	tr.Update(input)

	if len(target.steps) != 2 || target.steps[0] != 1 || target.steps[1] != -1 {
		t.Errorf("steps = %v, want [1 -1]", target.steps)
	}
}

func TestPointerTracker_DrivesWheel(t *testing.T) {
	values := numberedValues(24)
	var committed []string
	w, err := New(values, "9", OnCommit(func(v string) { committed = append(committed, v) }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tr := NewPointerTracker(w, Rect{W: 80, H: 100})
	input := NewInputState()

	input.SetMousePos(40, 20)
	input.SetMouseButton(MouseButtonLeft, true)
	tr.Update(input)

	input.Reset()
	input.SetMousePos(40, 61) // 41px, about two units
	input.SetMouseButton(MouseButtonLeft, true)
	tr.Update(input)
	if w.DragOffset() != 41 {
		t.Errorf("DragOffset = %v, want 41", w.DragOffset())
	}

	input.Reset()
	input.SetMouseButton(MouseButtonLeft, false)
	tr.Update(input)

	if w.Value() != "7" || len(committed) != 1 {
		t.Errorf("value=%q commits=%v, want 7 once", w.Value(), committed)
	}
}

func TestDragState_Reset(t *testing.T) {
	d := DragState{Active: true, StartX: 1, StartY: 2, LastDY: 3}
	d.Reset()
	if d != (DragState{}) {
		t.Errorf("Reset left %+v", d)
	}
}
