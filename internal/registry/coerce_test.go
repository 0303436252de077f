// ABOUTME: Tests for the parse-or-zero coercion functions.
// ABOUTME: Malformed and negative input must coerce, never error.
package registry

import "testing"

func TestNonNegativeFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5.2", 5.2},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-3", 0},
		{"10", 10},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NonNegativeFloat(tt.in); got != tt.want {
				t.Errorf("NonNegativeFloat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNonNegativeInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"45", 45},
		{"", 0},
		{"4.5", 0},
		{"-10", 0},
		{"not a number", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NonNegativeInt(tt.in); got != tt.want {
				t.Errorf("NonNegativeInt(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRPE(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"7", 7},
		{"1", 1},
		{"10", 10},
		{"0", 1},
		{"15", 10},
		{"", 5},
		{"hard", 5},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := RPE(tt.in); got != tt.want {
				t.Errorf("RPE(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
