// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

import "fmt"

// Roller rolls individual dice using an injected Source. It is the building
// block ParseNotation's Pool rolls through.
type Roller struct {
	src Source
}

// NewRoller wraps a Source in a Roller.
func NewRoller(src Source) (*Roller, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	return &Roller{src: src}, nil
}

// Roll returns a single die result in [1, size], computed as
// 1 + floor(src.Float64() * size).
func (r *Roller) Roll(size int) (int, error) {
	if size < 1 {
		return 0, fmt.Errorf("%w: size %d", ErrInvalidDieSize, size)
	}
	return 1 + int(r.src.Float64()*float64(size)), nil
}

// RollN rolls count dice of the given size and returns each individual
// result.
func (r *Roller) RollN(count, size int) ([]int, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidDieSize, size)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: count %d", ErrInvalidDieCount, count)
	}
	results := make([]int, count)
	for i := range results {
		results[i] = 1 + int(r.src.Float64()*float64(size))
	}
	return results, nil
}

// Source returns the underlying Source.
func (r *Roller) Source() Source {
	return r.src
}
