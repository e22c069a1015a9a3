package wheel_test

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/go-theft-auto/wheel"
)

func hours24() []string {
	out := make([]string, 24)
	for i := range out {
		out[i] = fmt.Sprintf("%02d", i)
	}
	return out
}

// recorder collects commit and scroll-state callbacks.
type recorder struct {
	commits []string
	scroll  []bool
}

func (r *recorder) options() []wheel.Option {
	return []wheel.Option{
		wheel.OnCommit(func(v string) { r.commits = append(r.commits, v) }),
		wheel.OnScrollStateChange(func(s bool) { r.scroll = append(r.scroll, s) }),
	}
}

// Default geometry: container 100, radius 50, 5 slots, unit 20.
func newHourWheel(t *testing.T, initial string, rec *recorder) *wheel.Wheel[string] {
	t.Helper()
	w, err := wheel.New(hours24(), initial, rec.options()...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func drag(w *wheel.Wheel[string], dy float64) wheel.Outcome {
	w.Grant()
	w.Move(dy / 2)
	w.Move(dy)
	return w.Release(dy)
}

func TestNewDefaults(t *testing.T) {
	rec := &recorder{}
	w := newHourWheel(t, "09", rec)

	if w.Value() != "09" || w.Index() != 9 || !w.SelectionResolved() {
		t.Errorf("value=%q index=%d resolved=%v, want 09/9/true", w.Value(), w.Index(), w.SelectionResolved())
	}
	if !w.Circular() {
		t.Error("24 values with 5 visible should be circular")
	}
	if w.RenderCount() != 21 {
		t.Errorf("RenderCount = %d, want 21", w.RenderCount())
	}
	if w.Radius() != 50 || w.Unit() != 20 {
		t.Errorf("Radius=%v Unit=%v, want 50 and 20", w.Radius(), w.Unit())
	}
	if w.Dragging() || w.DragOffset() != 0 {
		t.Errorf("new wheel should be at rest")
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		opts   []wheel.Option
		empty  bool
	}{
		{"empty values", nil, nil, true},
		{"zero display count", hours24(), []wheel.Option{wheel.WithDisplayCount(0)}, false},
		{"negative display count", hours24(), []wheel.Option{wheel.WithDisplayCount(-3)}, false},
		{"zero radius", hours24(), []wheel.Option{wheel.WithContainerHeight(0)}, false},
		{"negative item height", hours24(), []wheel.Option{wheel.WithItemHeight(-1)}, false},
		{"nan wheel height", hours24(), []wheel.Option{wheel.WithWheelHeight(math.NaN())}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := wheel.New(tt.values, "00", tt.opts...)
			if err == nil {
				t.Fatalf("New succeeded with %+v, want error", w.Config())
			}
			if !errors.Is(err, wheel.ErrInvalidConfiguration) {
				t.Errorf("error %v does not match ErrInvalidConfiguration", err)
			}
			if got := errors.Is(err, wheel.ErrEmptyValues); got != tt.empty {
				t.Errorf("errors.Is(err, ErrEmptyValues) = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestNewUnresolvedSelection(t *testing.T) {
	w, err := wheel.New(hours24(), "99")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if w.SelectionResolved() {
		t.Error("SelectionResolved should be false for a missing value")
	}
	if w.Index() != 0 {
		t.Errorf("Index = %d, want 0", w.Index())
	}
	for _, s := range w.VisibleSlots() {
		if s.Emphasized {
			t.Errorf("no slot should be emphasized, got %q", s.Value)
		}
	}
}

func TestWrapScenarios(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		dy      float64
		want    string
	}{
		{"drag down two slots", "09", 40, "07"},
		{"wrap below zero", "01", 40, "23"},
		{"drag up wraps past end", "22", -60, "01"},
		{"rounds up at half unit", "09", 30, "07"},
		{"rounds down below half unit", "09", 29, "08"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			w := newHourWheel(t, tt.initial, rec)
			if got := drag(w, tt.dy); got != wheel.OutcomeCommitted {
				t.Fatalf("Release = %v, want committed", got)
			}
			if w.Value() != tt.want {
				t.Errorf("Value = %q, want %q", w.Value(), tt.want)
			}
			if !slices.Equal(rec.commits, []string{tt.want}) {
				t.Errorf("commits = %v, want [%s]", rec.commits, tt.want)
			}
			if w.DragOffset() != 0 {
				t.Errorf("offset after commit = %v, want 0", w.DragOffset())
			}
		})
	}
}

func TestRevert(t *testing.T) {
	rec := &recorder{}
	w := newHourWheel(t, "09", rec)

	if got := drag(w, 9); got != wheel.OutcomeReverted {
		t.Fatalf("small drag = %v, want reverted", got)
	}
	if w.Value() != "09" || len(rec.commits) != 0 {
		t.Errorf("value=%q commits=%v, want unchanged and no callback", w.Value(), rec.commits)
	}

	// A full revolution lands on the same value.
	if got := drag(w, 24*w.Unit()); got != wheel.OutcomeReverted {
		t.Errorf("full revolution = %v, want reverted", got)
	}
	if len(rec.commits) != 0 {
		t.Errorf("full revolution fired %v", rec.commits)
	}
}

func TestRoundTripCommits(t *testing.T) {
	rec := &recorder{}
	w := newHourWheel(t, "09", rec)

	drag(w, 2*w.Unit())
	drag(w, -2*w.Unit())
	if w.Value() != "09" {
		t.Errorf("Value after round trip = %q, want 09", w.Value())
	}
	if !slices.Equal(rec.commits, []string{"07", "09"}) {
		t.Errorf("commits = %v, want [07 09]", rec.commits)
	}
}

func TestLinearClamp(t *testing.T) {
	rec := &recorder{}
	w, err := wheel.New([]string{"am", "pm"}, "am", rec.options()...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if w.Circular() {
		t.Fatal("two values with 5 visible should be linear")
	}
	if w.RenderCount() != 9 {
		t.Errorf("RenderCount = %d, want 9", w.RenderCount())
	}

	// Five slots up from "am" clamps at "pm".
	if got := drag(w, -5*w.Unit()); got != wheel.OutcomeCommitted {
		t.Fatalf("Release = %v, want committed", got)
	}
	if w.Value() != "pm" {
		t.Errorf("Value = %q, want pm", w.Value())
	}

	// Further up stays on "pm" and reverts.
	if got := drag(w, -3*w.Unit()); got != wheel.OutcomeReverted {
		t.Errorf("Release past end = %v, want reverted", got)
	}
	if !slices.Equal(rec.commits, []string{"pm"}) {
		t.Errorf("commits = %v, want [pm]", rec.commits)
	}
}

func TestLinearClampHugeDrag(t *testing.T) {
	w, err := wheel.New([]string{"am", "pm"}, "am")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := drag(w, -1e300); got != wheel.OutcomeCommitted {
		t.Fatalf("Release(-1e300) = %v, want committed", got)
	}
	if w.Value() != "pm" {
		t.Errorf("Value = %q, want pm", w.Value())
	}
	if got := drag(w, 1e300); got != wheel.OutcomeCommitted {
		t.Fatalf("Release(1e300) = %v, want committed", got)
	}
	if w.Value() != "am" {
		t.Errorf("Value = %q, want am", w.Value())
	}
}

func TestOutOfOrderEvents(t *testing.T) {
	rec := &recorder{}
	w := newHourWheel(t, "09", rec)

	if got := w.Move(40); got != wheel.OutcomeIgnored {
		t.Errorf("Move before Grant = %v, want ignored", got)
	}
	if got := w.Release(40); got != wheel.OutcomeIgnored {
		t.Errorf("Release before Grant = %v, want ignored", got)
	}
	if got := w.Abort(); got != wheel.OutcomeIgnored {
		t.Errorf("Abort while idle = %v, want ignored", got)
	}
	if got := w.Grant(); got != wheel.OutcomeGranted {
		t.Fatalf("Grant = %v, want granted", got)
	}
	if got := w.Grant(); got != wheel.OutcomeIgnored {
		t.Errorf("second Grant = %v, want ignored", got)
	}
	if w.Value() != "09" || len(rec.commits) != 0 {
		t.Errorf("ignored events changed state: value=%q commits=%v", w.Value(), rec.commits)
	}
	if !slices.Equal(rec.scroll, []bool{true}) {
		t.Errorf("scroll = %v, want [true]", rec.scroll)
	}
}

func TestAbort(t *testing.T) {
	rec := &recorder{}
	w := newHourWheel(t, "09", rec)
	w.Grant()
	w.Move(55)
	if got := w.Abort(); got != wheel.OutcomeAborted {
		t.Fatalf("Abort = %v, want aborted", got)
	}
	if w.Value() != "09" || w.DragOffset() != 0 || w.Dragging() {
		t.Errorf("after abort: value=%q offset=%v dragging=%v", w.Value(), w.DragOffset(), w.Dragging())
	}
	if len(rec.commits) != 0 {
		t.Errorf("abort fired commit %v", rec.commits)
	}
	if !slices.Equal(rec.scroll, []bool{true, false}) {
		t.Errorf("scroll = %v, want [true false]", rec.scroll)
	}
}

func TestScrollStateOnRelease(t *testing.T) {
	rec := &recorder{}
	w := newHourWheel(t, "09", rec)
	drag(w, 20)
	drag(w, 1)
	want := []bool{true, false, true, false}
	if !slices.Equal(rec.scroll, want) {
		t.Errorf("scroll = %v, want %v", rec.scroll, want)
	}
}

func TestScroll(t *testing.T) {
	rec := &recorder{}
	w := newHourWheel(t, "23", rec)
	if got := w.Scroll(1); got != wheel.OutcomeCommitted || w.Value() != "00" {
		t.Errorf("Scroll(1) = %v, value %q; want committed 00", got, w.Value())
	}
	if got := w.Scroll(-2); got != wheel.OutcomeCommitted || w.Value() != "22" {
		t.Errorf("Scroll(-2) = %v, value %q; want committed 22", got, w.Value())
	}
	if got := w.Scroll(0); got != wheel.OutcomeReverted {
		t.Errorf("Scroll(0) = %v, want reverted", got)
	}
	w.Grant()
	if got := w.Scroll(1); got != wheel.OutcomeIgnored {
		t.Errorf("Scroll while dragging = %v, want ignored", got)
	}
}

func TestSetValue(t *testing.T) {
	rec := &recorder{}
	w := newHourWheel(t, "09", rec)
	w.SetValue("15")
	if w.Value() != "15" || w.Index() != 15 {
		t.Errorf("SetValue: value=%q index=%d, want 15/15", w.Value(), w.Index())
	}
	if len(rec.commits) != 0 {
		t.Errorf("SetValue fired commit %v", rec.commits)
	}
	slots := w.VisibleSlots()
	mid := slots[wheel.CenterSlot(len(slots))]
	if mid.Value != "15" || !mid.Emphasized {
		t.Errorf("center slot = %+v, want emphasized 15", mid)
	}
}

func TestSetValuesResetsDrag(t *testing.T) {
	rec := &recorder{}
	w := newHourWheel(t, "09", rec)
	w.Grant()
	w.Move(33)

	twelve := make([]string, 12)
	for i := range twelve {
		twelve[i] = fmt.Sprintf("%02d", i+1)
	}
	if err := w.SetValues(twelve); err != nil {
		t.Fatalf("SetValues: %v", err)
	}
	if w.Dragging() || w.DragOffset() != 0 {
		t.Errorf("SetValues should abort the drag: dragging=%v offset=%v", w.Dragging(), w.DragOffset())
	}
	if !slices.Equal(rec.scroll, []bool{true, false}) {
		t.Errorf("scroll = %v, want [true false]", rec.scroll)
	}
	if w.Value() != "09" || w.Index() != 8 {
		t.Errorf("value=%q index=%d, want 09 at 8", w.Value(), w.Index())
	}
	if w.RenderCount() != 21 || !w.Circular() {
		t.Errorf("RenderCount=%d circular=%v, want 21/true", w.RenderCount(), w.Circular())
	}

	if err := w.SetValues(nil); !errors.Is(err, wheel.ErrEmptyValues) {
		t.Errorf("SetValues(nil) = %v, want ErrEmptyValues", err)
	}
	if len(w.Values()) != 12 {
		t.Errorf("failed SetValues must keep the old list, got %d values", len(w.Values()))
	}
}

func TestReplace(t *testing.T) {
	w := newHourWheel(t, "13", &recorder{})
	if err := w.Replace([]string{"01", "02"}, "02"); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if w.Value() != "02" || w.Index() != 1 || !w.SelectionResolved() {
		t.Errorf("value=%q index=%d resolved=%v", w.Value(), w.Index(), w.SelectionResolved())
	}
	if w.Circular() {
		t.Error("two values should be linear")
	}
}

func TestValuesIsCopy(t *testing.T) {
	src := hours24()
	w, err := wheel.New(src, "00")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	src[0] = "xx"
	got := w.Values()
	got[1] = "yy"
	if v := w.Values(); v[0] != "00" || v[1] != "01" {
		t.Errorf("wheel list shared with caller: %v", v[:2])
	}
}

func TestSetDisplayCount(t *testing.T) {
	w := newHourWheel(t, "09", &recorder{})
	if err := w.SetDisplayCount(3); err != nil {
		t.Fatalf("SetDisplayCount: %v", err)
	}
	if w.DisplayCount() != 3 || w.RenderCount() != 13 {
		t.Errorf("DisplayCount=%d RenderCount=%d, want 3/13", w.DisplayCount(), w.RenderCount())
	}
	if want := 100.0 / 3; math.Abs(w.Unit()-want) > 1e-9 {
		t.Errorf("Unit = %v, want %v", w.Unit(), want)
	}
	if err := w.SetDisplayCount(0); !errors.Is(err, wheel.ErrInvalidConfiguration) {
		t.Errorf("SetDisplayCount(0) = %v, want ErrInvalidConfiguration", err)
	}
	if w.DisplayCount() != 3 {
		t.Errorf("failed SetDisplayCount changed count to %d", w.DisplayCount())
	}
}

func TestVisibleSlotsAtRest(t *testing.T) {
	w := newHourWheel(t, "09", &recorder{})
	slots := w.VisibleSlots()
	if len(slots) != w.RenderCount() {
		t.Fatalf("len(VisibleSlots) = %d, want %d", len(slots), w.RenderCount())
	}
	mid := wheel.CenterSlot(len(slots))
	for i, s := range slots {
		if s.Empty {
			t.Errorf("slot %d empty on a circular list", i)
		}
		if (i == mid) != s.Emphasized {
			t.Errorf("slot %d (%q) emphasized=%v", i, s.Value, s.Emphasized)
		}
		wantColor := w.Config().DisabledColor
		if i == mid {
			wantColor = w.Config().SelectedColor
		}
		if s.Color != wantColor {
			t.Errorf("slot %d color = %#x, want %#x", i, s.Color, wantColor)
		}
	}
	if slots[mid].Value != "09" || slots[mid-1].Value != "08" || slots[mid+1].Value != "10" {
		t.Errorf("neighbors = %q %q %q, want 08 09 10", slots[mid-1].Value, slots[mid].Value, slots[mid+1].Value)
	}
	if slots[mid].VerticalOffset != 0 {
		t.Errorf("center offset = %v, want 0", slots[mid].VerticalOffset)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].VerticalOffset < slots[i-1].VerticalOffset {
			t.Fatalf("offsets not monotonic at %d: %v < %v", i, slots[i].VerticalOffset, slots[i-1].VerticalOffset)
		}
	}
}

func TestVisibleSlotsFollowDrag(t *testing.T) {
	w := newHourWheel(t, "09", &recorder{})
	w.Grant()
	w.Move(w.Unit())
	slots := w.VisibleSlots()
	mid := wheel.CenterSlot(len(slots))
	// The previous value now sits at the center.
	if math.Abs(slots[mid-1].VerticalOffset) > 1e-9 {
		t.Errorf("slot above center offset = %v, want 0 after one-unit drag", slots[mid-1].VerticalOffset)
	}
	if slots[mid].VerticalOffset <= 0 {
		t.Errorf("selected slot should move down, offset %v", slots[mid].VerticalOffset)
	}
}

func TestAppendVisibleSlotsReusesBuffer(t *testing.T) {
	w := newHourWheel(t, "09", &recorder{})
	buf := make([]wheel.VisibleSlot[string], 0, 64)
	buf = w.AppendVisibleSlots(buf[:0])
	first := &buf[0]
	buf = w.AppendVisibleSlots(buf[:0])
	if &buf[0] != first {
		t.Error("AppendVisibleSlots reallocated a large enough buffer")
	}
}

func TestWindowLinearEmpties(t *testing.T) {
	w, err := wheel.New([]string{"am", "pm"}, "pm")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cells := w.Window()
	mid := wheel.CenterSlot(len(cells))
	for i, c := range cells {
		wantEmpty := i != mid && i != mid-1
		if c.Empty != wantEmpty {
			t.Errorf("cell %d empty=%v, want %v", i, c.Empty, wantEmpty)
		}
	}
}

func TestCommitOptionTypeMismatch(t *testing.T) {
	called := false
	w, err := wheel.New([]int{1, 2, 3, 4, 5, 6}, 1, wheel.OnCommit(func(string) { called = true }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w.Scroll(1)
	if called {
		t.Error("a string callback must not fire for an int wheel")
	}
	if w.Value() != 2 {
		t.Errorf("Value = %d, want 2", w.Value())
	}
}
