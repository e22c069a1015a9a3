package wheel

import "fmt"

// Label returns the display text of a wheel value.
func Label[T any](v T) string {
	switch x := any(v).(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

// DrawWheel draws w inside bounds and returns the number of slots drawn.
//
// Slots are centered on bounds and offset by their VerticalOffset, so the
// wheel's configured height should match bounds.H. Each glyph row is
// squashed by the slot's Scale to fake the rotation about the horizontal
// axis; empty and nearly edge-on slots are skipped.
func DrawWheel[T comparable](dl *DrawList, w *Wheel[T], bounds Rect, style Style) int {
	if dl == nil || w == nil {
		return 0
	}

	dl.AddRect(bounds.X, bounds.Y, bounds.W, bounds.H, style.BackgroundColor)
	if style.BorderWidth > 0 {
		dl.AddRectOutline(bounds.X, bounds.Y, bounds.W, bounds.H, style.BorderColor, style.BorderWidth)
	}

	atlas := BuiltinFont()
	scale := style.FontScale
	if scale <= 0 {
		scale = 1
	}
	center := bounds.Center()

	itemH := float32(w.Config().ItemHeight)
	if itemH <= 0 {
		itemH = float32(atlas.CellH) * scale
	}
	dl.AddRect(bounds.X, center.Y-itemH/2, bounds.W, itemH, style.BandColor)

	dl.PushClipRect(bounds.X, bounds.Y, bounds.X+bounds.W, bounds.Y+bounds.H)
	defer dl.PopClipRect()

	drawn := 0
	for _, slot := range w.VisibleSlots() {
		if slot.Empty || slot.Scale < float64(style.MinScale) {
			continue
		}
		text := Label(slot.Value)
		sy := scale * float32(slot.Scale)
		size := atlas.MeasureText(text, scale, sy)
		x := center.X - size.X/2
		y := center.Y + float32(slot.VerticalOffset) - size.Y/2
		dl.AddText(x, y, text, slot.Color, scale, sy)
		drawn++
	}
	return drawn
}
