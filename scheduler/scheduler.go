// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
	"github.com/spetersoncode/pits-of-despair-sub006/dice"
)

// Scheduler constants.
const (
	AverageSpeed        = 10
	MinDelay            = 6
	StandardActionDelay = 10
)

// CalculateDelay converts a combatant's speed and an action's base cost
// into an integer scheduler-time delay:
//
//	max(MIN_DELAY, weightedRound(baseCost * 10 / max(1, speed), rng))
func CalculateDelay(speed int, baseCost float64, rng dice.Source) int {
	divisor := speed
	if divisor < 1 {
		divisor = 1
	}
	raw := baseCost * 10 / float64(divisor)
	rounded := dice.WeightedRound(raw, rng)
	if rounded < MinDelay {
		return MinDelay
	}
	return rounded
}

// AdvanceTime adds delta to AccumulatedTime for every living combatant.
func AdvanceTime(combatants []*combatant.Combatant, delta int) {
	for _, c := range combatants {
		if c.IsAlive() {
			c.AccumulatedTime += delta
		}
	}
}

// GetNextReady returns the living, ready (AccumulatedTime >= its own
// CalculateDelay) combatant with the highest Speed, breaking ties by
// lowest ID for determinism, along with the delay that made it ready.
// Reports false if nobody is ready.
//
// rng is consumed once per candidate to compute that candidate's delay.
// The caller must pass the returned delay on to DeductTime rather than
// recomputing it — CalculateDelay draws from rng, so a second call would
// debit a different, independently-rolled delay than the one that just
// decided readiness.
func GetNextReady(combatants []*combatant.Combatant, baseCost float64, rng dice.Source) (*combatant.Combatant, int, bool) {
	var best *combatant.Combatant
	var bestDelay int

	for _, c := range combatants {
		if !c.IsAlive() {
			continue
		}
		delay := CalculateDelay(c.Speed, baseCost, rng)
		if c.AccumulatedTime < delay {
			continue
		}
		if best == nil || c.Speed > best.Speed || (c.Speed == best.Speed && c.ID < best.ID) {
			best = c
			bestDelay = delay
		}
	}

	return best, bestDelay, best != nil
}

// DeductTime subtracts delay from actor's AccumulatedTime. Negative
// accumulated time is legal — it represents an early or free action
// carried over to the next check. delay should be the value GetNextReady
// returned for this actor, not a freshly recomputed one.
func DeductTime(actor *combatant.Combatant, delay int) {
	actor.AccumulatedTime -= delay
}
