// ABOUTME: Total parse-or-zero coercion for raw form values.
// ABOUTME: Applied once at the registry boundary; never surfaces an error.
package registry

import "strconv"

// NonNegativeFloat parses s as a non-negative decimal. Malformed or negative
// input coerces to 0, favoring availability over strict validation.
func NonNegativeFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// NonNegativeInt parses s as a non-negative integer, coercing to 0 on
// malformed or negative input.
func NonNegativeInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// RPE parses a Rate of Perceived Exertion value and clamps it to [1,10].
// Malformed input falls back to 5, the entry form's neutral default.
func RPE(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 5
	}
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}
