// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package sim

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DuelSpec describes a two-sided encounter to run Iterations times.
// Every entry in SideA should share a Team distinct from every entry in
// SideB (typically Player vs. Hostile) so Team.IsHostileTo resolves
// targeting correctly; RunDuel does not enforce this, since a Neutral-vs-
// Neutral "duel" that never fights is itself a legitimate (if useless)
// balance question to ask.
type DuelSpec struct {
	SideA      []RosterEntry
	SideB      []RosterEntry
	Iterations int
	Seed       int64
	MaxTurns   int // 0 means defaultMaxTurns
}

// RunDuel runs spec.Iterations independent seeded encounters of SideA vs.
// SideB and returns the aggregate. Iteration i seeds its dice.Source from
// spec.Seed+i, so the aggregate is identical whether iterations are
// computed sequentially or, as RunDuel does internally, across a bounded
// worker pool.
func RunDuel(ctx context.Context, spec DuelSpec) (AggregateReport, error) {
	if spec.Iterations <= 0 {
		return AggregateReport{}, fmt.Errorf("sim: iterations must be > 0, got %d", spec.Iterations)
	}
	if len(spec.SideA) == 0 || len(spec.SideB) == 0 {
		return AggregateReport{}, fmt.Errorf("sim: both sides must have at least one combatant")
	}

	results := make([]IterationResult, spec.Iterations)

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(workerLimit())

	for i := 0; i < spec.Iterations; i++ {
		i := i
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = runIteration(spec.SideA, spec.SideB, spec.Seed+int64(i), spec.MaxTurns)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return AggregateReport{}, fmt.Errorf("sim: duel run canceled: %w", err)
	}

	return Aggregate(results), nil
}

// GroupSpec generalizes DuelSpec to more than two rosters: every roster
// in Rosters faces every other (their Teams determine who is hostile to
// whom); the run still reports a two-way aggregate, Rosters[0] as SideA
// against every other roster as SideB, and outcomes are not tracked
// per team.
// Callers that need finer per-team breakdowns should call RunDuel
// pairwise instead (see RunMatrix).
type GroupSpec struct {
	Rosters    [][]RosterEntry
	Iterations int
	Seed       int64
	MaxTurns   int
}

// RunGroup runs an N-roster free-for-all Iterations times. Internally it
// treats Rosters[0] as "SideA" and the concatenation of every other
// roster as "SideB" for win/loss accounting, while still simulating every
// individual roster's combatants as distinct scheduler participants.
func RunGroup(ctx context.Context, spec GroupSpec) (AggregateReport, error) {
	if len(spec.Rosters) < 2 {
		return AggregateReport{}, fmt.Errorf("sim: group run needs at least 2 rosters, got %d", len(spec.Rosters))
	}
	sideA := spec.Rosters[0]
	var sideB []RosterEntry
	for _, r := range spec.Rosters[1:] {
		sideB = append(sideB, r...)
	}
	return RunDuel(ctx, DuelSpec{SideA: sideA, SideB: sideB, Iterations: spec.Iterations, Seed: spec.Seed, MaxTurns: spec.MaxTurns})
}

// Variation names one change applied to a baseline roster entry before a
// duel is run against it: a stat delta, an equipment swap, or both.
// Mutate receives a copy of the baseline RosterEntry and returns the
// varied entry.
type Variation struct {
	Name   string
	Mutate func(RosterEntry) RosterEntry
}

// VariationSpec holds Fixed steady on one side and runs one duel per
// Variations entry against it, reporting one AggregateReport per
// variation name.
type VariationSpec struct {
	Fixed      []RosterEntry
	Baseline   RosterEntry
	Variations []Variation
	Iterations int
	Seed       int64
	MaxTurns   int
}

// VariationResult pairs a variation's name with the AggregateReport of
// running it against Fixed.
type VariationResult struct {
	Name   string
	Report AggregateReport
}

// RunVariation runs one duel per entry in spec.Variations, each pitting
// the mutated baseline against spec.Fixed, and returns one result per
// variation in declared order.
func RunVariation(ctx context.Context, spec VariationSpec) ([]VariationResult, error) {
	results := make([]VariationResult, len(spec.Variations))
	for i, v := range spec.Variations {
		varied := v.Mutate(spec.Baseline)
		report, err := RunDuel(ctx, DuelSpec{
			SideA:      []RosterEntry{varied},
			SideB:      spec.Fixed,
			Iterations: spec.Iterations,
			Seed:       spec.Seed,
			MaxTurns:   spec.MaxTurns,
		})
		if err != nil {
			return nil, fmt.Errorf("sim: variation %q: %w", v.Name, err)
		}
		results[i] = VariationResult{Name: v.Name, Report: report}
	}
	return results, nil
}

// MatrixSpec runs every distinct pairing within Entries against each
// other, one duel per pairing.
type MatrixSpec struct {
	Entries    []RosterEntry
	Iterations int
	Seed       int64
	MaxTurns   int
}

// MatrixCell is one pairing's result within a RunMatrix call.
type MatrixCell struct {
	A, B   string // RosterEntry.Definition.Name for each side
	Report AggregateReport
}

// RunMatrix runs every unordered pair of distinct entries in
// spec.Entries against each other once (N*(N-1)/2 duels), skipping
// self-pairings.
func RunMatrix(ctx context.Context, spec MatrixSpec) ([]MatrixCell, error) {
	var cells []MatrixCell
	for i := 0; i < len(spec.Entries); i++ {
		for j := i + 1; j < len(spec.Entries); j++ {
			a, b := spec.Entries[i], spec.Entries[j]
			report, err := RunDuel(ctx, DuelSpec{
				SideA:      []RosterEntry{a},
				SideB:      []RosterEntry{b},
				Iterations: spec.Iterations,
				Seed:       spec.Seed,
				MaxTurns:   spec.MaxTurns,
			})
			if err != nil {
				return nil, fmt.Errorf("sim: matrix pairing %s vs %s: %w", a.Definition.Name, b.Definition.Name, err)
			}
			cells = append(cells, MatrixCell{A: a.Definition.Name, B: b.Definition.Name, Report: report})
		}
	}
	return cells, nil
}

// workerLimit bounds concurrent iterations to the host's available CPUs;
// each iteration owns its own combatants and dice.Source so there is
// nothing to contend over beyond scheduler time.
func workerLimit() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 1
}
