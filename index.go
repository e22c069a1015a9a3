package wheel

import "math"

// IndexOf returns the first index i with values[i] == v, or -1.
func IndexOf[T comparable](values []T, v T) int {
	for i := range values {
		if values[i] == v {
			return i
		}
	}
	return -1
}

// Resolve moves delta slots away from base. A circular list wraps into
// [0, n); a linear one clamps to the first/last index.
func Resolve(n, base, delta int, circular bool) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyValues
	}
	if circular {
		return ((base%n+delta%n)%n + n) % n, nil
	}
	switch {
	case delta > 0 && base > math.MaxInt-delta:
		return n - 1, nil
	case delta < 0 && base < math.MinInt-delta:
		return 0, nil
	}
	return clampi(base+delta, 0, n-1), nil
}

// IsCircular reports whether a list of n values wraps for the given
// display count.
func IsCircular(n, displayCount int) bool {
	return n >= displayCount
}

// RenderCount returns how many slots are materialized for a list of n
// values. Lists longer than twice the visible window get a wide buffer
// (4*displayCount+1); shorter ones get 2*displayCount-1.
func RenderCount(n, displayCount int) int {
	if displayCount*2 < n {
		return displayCount*4 + 1
	}
	return displayCount*2 - 1
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
