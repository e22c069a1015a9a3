package wheel

import (
	"errors"
	"math"
	"testing"
)

func TestIndexOf(t *testing.T) {
	values := []string{"a", "b", "c", "b"}
	tests := []struct {
		v    string
		want int
	}{
		{"a", 0},
		{"b", 1}, // first match
		{"c", 2},
		{"z", -1},
	}
	for _, tt := range tests {
		if got := IndexOf(values, tt.v); got != tt.want {
			t.Errorf("IndexOf(%q) = %d, want %d", tt.v, got, tt.want)
		}
	}
	if got := IndexOf([]int(nil), 3); got != -1 {
		t.Errorf("IndexOf(nil) = %d, want -1", got)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		base     int
		delta    int
		circular bool
		want     int
	}{
		{"stay", 24, 9, 0, true, 9},
		{"circular back", 24, 9, -2, true, 7},
		{"circular wrap below zero", 24, 1, -2, true, 23},
		{"circular wrap past end", 24, 22, 5, true, 3},
		{"circular many revolutions", 24, 0, -49, true, 23},
		{"linear clamp high", 2, 0, 5, false, 1},
		{"linear clamp low", 2, 1, -7, false, 0},
		{"linear inside", 3, 1, 1, false, 2},
		{"linear huge delta", 2, 1, math.MaxInt, false, 1},
		{"linear huge negative delta", 2, 0, math.MinInt, false, 0},
		{"circular huge delta", 24, 23, math.MaxInt, true, (23 + math.MaxInt%24) % 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.n, tt.base, tt.delta, tt.circular)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%d, %d, %d, %v) = %d, want %d", tt.n, tt.base, tt.delta, tt.circular, got, tt.want)
			}
		})
	}
}

func TestResolveEmpty(t *testing.T) {
	_, err := Resolve(0, 0, 1, true)
	if !errors.Is(err, ErrEmptyValues) {
		t.Fatalf("Resolve on empty list: got %v, want ErrEmptyValues", err)
	}
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("ErrEmptyValues should match ErrInvalidConfiguration")
	}
}

func TestResolveStaysInRange(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for base := 0; base < n; base++ {
			for delta := -20; delta <= 20; delta++ {
				for _, circular := range []bool{true, false} {
					got, err := Resolve(n, base, delta, circular)
					if err != nil || got < 0 || got >= n {
						t.Fatalf("Resolve(%d, %d, %d, %v) = %d, %v; want index in [0, %d)", n, base, delta, circular, got, err, n)
					}
				}
			}
		}
	}
}

func TestIsCircular(t *testing.T) {
	tests := []struct {
		n, d int
		want bool
	}{
		{24, 5, true},
		{5, 5, true},
		{4, 5, false},
		{2, 5, false},
	}
	for _, tt := range tests {
		if got := IsCircular(tt.n, tt.d); got != tt.want {
			t.Errorf("IsCircular(%d, %d) = %v, want %v", tt.n, tt.d, got, tt.want)
		}
	}
}

func TestRenderCount(t *testing.T) {
	tests := []struct {
		n, d, want int
	}{
		{24, 5, 21},
		{60, 5, 21},
		{11, 5, 21},
		{10, 5, 9}, // 2d == n is not wide
		{2, 5, 9},
		{12, 3, 13},
	}
	for _, tt := range tests {
		got := RenderCount(tt.n, tt.d)
		if got != tt.want {
			t.Errorf("RenderCount(%d, %d) = %d, want %d", tt.n, tt.d, got, tt.want)
		}
		if got%2 != 1 {
			t.Errorf("RenderCount(%d, %d) = %d, want odd", tt.n, tt.d, got)
		}
	}
}
