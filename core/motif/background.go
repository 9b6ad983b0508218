package motif

import (
	"fmt"
	"strconv"
	"strings"
)

// Background holds the null-model base composition (A, C, G, T order) every
// motif's PWM is scored against.
type Background [4]float64

// UniformBackground is used when neither the user nor the motif file
// supplies one.
var UniformBackground = Background{0.25, 0.25, 0.25, 0.25}

// ParseUserBackground parses a "-b A,C,G,T" comma-separated background
// string, e.g. "0.29,0.21,0.21,0.29".
func ParseUserBackground(s string) (Background, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Background{}, fmt.Errorf("background %q: need exactly 4 comma-separated values", s)
	}
	var b Background
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Background{}, fmt.Errorf("background %q: bad value %q: %w", s, p, err)
		}
		b[i] = v
	}
	return b, nil
}

// Normalize clamps every value below MinBackground up to MinBackground, then
// rescales the four values to sum to 1; clamped values stay at MinBackground
// and only the others are rescaled. warn, if non-nil, is called with a
// human-readable message whenever clamping or rescaling changes the input.
func Normalize(b Background, warn func(string)) Background {
	min := b[0]
	for _, v := range b[1:] {
		if v < min {
			min = v
		}
	}
	var clamped [4]bool
	if min < MinBackground {
		if warn != nil {
			warn(fmt.Sprintf("background values smaller than allowed minimum, adjusting (%.2g<%.2g)", min, MinBackground))
		}
		for i := range b {
			if b[i] < MinBackground {
				b[i] = MinBackground
				clamped[i] = true
			}
		}
	}
	sum := b[0] + b[1] + b[2] + b[3]
	if d := sum - 1.0; d > 0.001 || d < -0.001 {
		if warn != nil {
			warn(fmt.Sprintf("background values don't add up to 1.0, adjusting (sum=%.3g)", sum))
		}
	}
	var fixed, free float64
	for i := range b {
		if clamped[i] {
			fixed += b[i]
		} else {
			free += b[i]
		}
	}
	for i := range b {
		if free == 0 {
			b[i] /= sum
		} else if !clamped[i] {
			b[i] *= (1 - fixed) / free
		}
	}
	return b
}
