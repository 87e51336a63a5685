// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

import (
	"fmt"
	"regexp"
	"strconv"
)

// notationPattern matches "NdM", "NdM+K", or "NdM-K" with no internal
// whitespace. N and M must be positive integers; K is an optional signed
// integer modifier.
var notationPattern = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// Spec is a parsed "NdM[+K]" dice expression: roll Count dice of Size sides
// and add Modifier to the sum.
type Spec struct {
	Count    int
	Size     int
	Modifier int
}

// ParseNotation parses a dice notation string such as "2d6", "1d4+2", or
// "3d8-1". N must be >= 1 and M must be >= 1.
func ParseNotation(notation string) (Spec, error) {
	m := notationPattern.FindStringSubmatch(notation)
	if m == nil {
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
	}

	count, err := strconv.Atoi(m[1])
	if err != nil || count < 1 {
		return Spec{}, fmt.Errorf("%w: count in %q", ErrInvalidDieCount, notation)
	}
	size, err := strconv.Atoi(m[2])
	if err != nil || size < 1 {
		return Spec{}, fmt.Errorf("%w: size in %q", ErrInvalidDieSize, notation)
	}

	modifier := 0
	if m[3] != "" {
		modifier, err = strconv.Atoi(m[3])
		if err != nil {
			return Spec{}, fmt.Errorf("%w: modifier in %q", ErrInvalidNotation, notation)
		}
	}

	return Spec{Count: count, Size: size, Modifier: modifier}, nil
}

// String renders the Spec back to "NdM[+K]" notation.
func (s Spec) String() string {
	if s.Modifier == 0 {
		return fmt.Sprintf("%dd%d", s.Count, s.Size)
	}
	if s.Modifier > 0 {
		return fmt.Sprintf("%dd%d+%d", s.Count, s.Size, s.Modifier)
	}
	return fmt.Sprintf("%dd%d%d", s.Count, s.Size, s.Modifier)
}

// Min returns the lowest possible roll for this Spec without rolling.
func (s Spec) Min() int {
	return s.Count + s.Modifier
}

// Max returns the highest possible roll for this Spec without rolling.
func (s Spec) Max() int {
	return s.Count*s.Size + s.Modifier
}

// Average returns the arithmetic mean result, useful for configuration-time
// balance estimates without consuming any randomness.
func (s Spec) Average() float64 {
	return float64(s.Count)*(float64(s.Size)+1)/2 + float64(s.Modifier)
}
