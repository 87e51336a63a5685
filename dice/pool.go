// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

// Result is the outcome of rolling a Pool once: the individual die results
// plus the Spec's flat modifier.
type Result struct {
	Spec  Spec
	Rolls []int
	Total int
}

// Pool is a reusable, re-rollable dice expression: a parsed Spec bound to a
// Roller. Callers that need to roll the same expression repeatedly (a
// weapon's damage dice across many swings, a condition's DoT payload across
// many ticks) construct a Pool once and call Roll on it each time, rather
// than re-parsing the notation string.
type Pool struct {
	spec   Spec
	roller *Roller
}

// NewPool parses notation and binds it to roller, ready to be rolled
// repeatedly.
func NewPool(notation string, roller *Roller) (*Pool, error) {
	spec, err := ParseNotation(notation)
	if err != nil {
		return nil, err
	}
	if roller == nil {
		return nil, ErrNilSource
	}
	return &Pool{spec: spec, roller: roller}, nil
}

// Roll rolls the pool's dice and returns the individual results and total.
func (p *Pool) Roll() (Result, error) {
	rolls, err := p.roller.RollN(p.spec.Count, p.spec.Size)
	if err != nil {
		return Result{}, err
	}
	total := p.spec.Modifier
	for _, r := range rolls {
		total += r
	}
	return Result{Spec: p.spec, Rolls: rolls, Total: total}, nil
}

// Spec returns the parsed notation backing this pool.
func (p *Pool) Spec() Spec {
	return p.spec
}

// RollNotation is a convenience one-shot: parse notation, roll it once
// against roller, and return the total. Most callers that roll an
// expression only once (a single damage step, a single save-check bonus)
// use this instead of constructing a Pool.
func RollNotation(notation string, roller *Roller) (int, error) {
	spec, err := ParseNotation(notation)
	if err != nil {
		return 0, err
	}
	rolls, err := roller.RollN(spec.Count, spec.Size)
	if err != nil {
		return 0, err
	}
	total := spec.Modifier
	for _, r := range rolls {
		total += r
	}
	return total, nil
}
