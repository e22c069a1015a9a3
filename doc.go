/*
Package wheel implements a scrollable wheel value picker: a vertically
dragged, optionally wrapping list of values drawn on a simulated cylinder
and settling on one selected value.

# Overview

A Wheel owns the selected value and a single drag gesture. The host feeds
it a pointer stream and asks it, every frame, where each visible slot sits:

	w, err := wheel.New(hours, "09",
	    wheel.WithWheelHeight(70),
	    wheel.OnCommit(func(v string) { fmt.Println("picked", v) }),
	)
	if err != nil {
	    return err
	}

	w.Grant()        // pointer down
	w.Move(12)       // total displacement since Grant
	w.Release(31)    // commit or revert

	for _, slot := range w.VisibleSlots() {
	    if slot.Empty {
	        continue
	    }
	    draw(slot.Value, slot.VerticalOffset, slot.Scale, slot.Color)
	}

# Geometry

The wheel is a cylinder of radius R (half the wheel height) showing
DisplayCount slots. One slot corresponds to a drag of

	unit = 2R / DisplayCount

Each slot's angle comes from two remaps of the drag offset: first into the
slot's own range (extended past the domain), then onto [-π/2, π/2]
(clamped). The slot is drawn R·sin(angle) from the center and tilted by a
rotation derived from the same angle.

On release the index moves by -round(offset/unit), rounding half away from
zero. Lists with at least DisplayCount values wrap; shorter ones clamp at
the ends and show empty slots past them.

# Window

Only RenderCount slots are materialized: 4·DisplayCount+1 for lists longer
than twice the display count, 2·DisplayCount-1 otherwise. Per-frame cost is
proportional to RenderCount, not to the list length.

# Pointer Plumbing

PointerTracker converts per-frame InputState into Grant/Move/Release/Abort
for any Gesturer inside a hit rectangle. Mouse wheel and arrow keys step
targets implementing Scroller. InputState.Cancel or Escape aborts a drag.

# Rendering

DrawWheel appends a wheel to a DrawList using the built-in 7x13 glyph atlas
(see BuiltinFont). Surface acquires pooled draw lists and hands them to a
Renderer; backend/opengl and backend/ebitengine provide hosts.

Package timepicker builds an hour, minute, second and am/pm picker on top of
wheels. Package tui draws one in a terminal with bubbletea.

# Logging

The package is silent by default. SetLogger installs a *slog.Logger that
receives gesture lifecycle records at debug level.
*/
package wheel
