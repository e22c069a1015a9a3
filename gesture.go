package wheel

import "math"

// Phase is the state of a Gesture.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Outcome describes how a pointer event was handled by a Wheel.
type Outcome int

const (
	// OutcomeIgnored means the event arrived out of order and changed nothing.
	OutcomeIgnored Outcome = iota
	// OutcomeMoved means the drag offset was updated.
	OutcomeMoved
	// OutcomeGranted means a new drag started.
	OutcomeGranted
	// OutcomeReverted means the gesture ended on the value it started from.
	OutcomeReverted
	// OutcomeCommitted means the gesture selected a new value.
	OutcomeCommitted
	// OutcomeAborted means an in-flight drag was cancelled.
	OutcomeAborted
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeMoved:
		return "moved"
	case OutcomeGranted:
		return "granted"
	case OutcomeReverted:
		return "reverted"
	case OutcomeCommitted:
		return "committed"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Gesture tracks one drag session: Idle -> Dragging -> Idle.
// Offsets are totals since the grant, never increments.
type Gesture struct {
	phase  Phase
	offset float64
}

// Phase returns the current phase.
func (g *Gesture) Phase() Phase { return g.phase }

// Dragging reports whether a drag is in progress.
func (g *Gesture) Dragging() bool { return g.phase == PhaseDragging }

// Offset returns the drag displacement since the grant.
func (g *Gesture) Offset() float64 { return g.offset }

// Grant starts a drag. Returns false if one is already running.
func (g *Gesture) Grant() bool {
	if g.phase == PhaseDragging {
		return false
	}
	g.phase = PhaseDragging
	g.offset = 0
	return true
}

// Move records the total displacement since the grant.
// Returns false when no drag is running or dy is not finite.
func (g *Gesture) Move(dy float64) bool {
	if g.phase != PhaseDragging || !finite(dy) {
		return false
	}
	g.offset = dy
	return true
}

// Release ends the drag and returns the slot delta for the final
// displacement. The offset is kept until Settle so the caller can
// decide between commit and revert.
func (g *Gesture) Release(dy, unit float64) (int, bool) {
	if g.phase != PhaseDragging {
		return 0, false
	}
	if finite(dy) {
		g.offset = dy
	}
	g.phase = PhaseIdle
	return StepsFor(g.offset, unit), true
}

// Abort cancels a running drag and zeroes the offset.
func (g *Gesture) Abort() bool {
	if g.phase != PhaseDragging {
		return false
	}
	g.phase = PhaseIdle
	g.offset = 0
	return true
}

// Settle returns the offset to rest without touching the phase.
func (g *Gesture) Settle() {
	g.offset = 0
}

// Reset forces the gesture back to Idle at rest.
func (g *Gesture) Reset() {
	g.phase = PhaseIdle
	g.offset = 0
}

// maxSteps bounds a single release so the conversion to int cannot overflow.
const maxSteps = math.MaxInt32

// StepsFor converts a drag displacement into a signed index delta.
// A downward (positive) drag brings earlier values into view, so the
// delta is the negated slot count, rounded half away from zero.
func StepsFor(offset, unit float64) int {
	if unit <= 0 || !finite(offset) {
		return 0
	}
	steps := math.Round(offset / unit)
	steps = max(-maxSteps, min(maxSteps, steps))
	return -int(steps)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
