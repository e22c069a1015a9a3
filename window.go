package wheel

// Cell is one entry of a visible window. Empty cells stand in for positions
// past either end of a linear list and must not be drawn.
type Cell[T any] struct {
	Value T
	Empty bool
}

// CenterSlot is the window position holding the selected value.
func CenterSlot(renderCount int) int {
	return renderCount / 2
}

// BuildWindow returns renderCount cells centered on values[center].
// Out-of-range positions wrap when circular and are empty otherwise.
// The result depends only on the arguments.
func BuildWindow[T any](values []T, center, renderCount int, circular bool) []Cell[T] {
	if renderCount <= 0 {
		return nil
	}
	cells := make([]Cell[T], renderCount)
	n := len(values)
	mid := CenterSlot(renderCount)

	for s := range cells {
		target := center + s - mid
		switch {
		case target >= 0 && target < n:
			cells[s].Value = values[target]
		case circular && n > 0:
			cells[s].Value = values[((target%n)+n)%n]
		default:
			cells[s].Empty = true
		}
	}
	return cells
}
