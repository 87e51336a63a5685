// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
	"github.com/spetersoncode/pits-of-despair-sub006/dice"
)

// TurnOrder is a lazy sequence yielding the next actor to act. It owns no
// goroutines: Next mutates the combatants' AccumulatedTime in place
// through the caller-supplied slice and returns synchronously. It
// terminates — Next returns (nil, false) — once only one team has living
// members, the sole termination criterion.
type TurnOrder struct {
	combatants []*combatant.Combatant
	baseCost   float64
	rng        dice.Source
}

// NewTurnOrder builds a TurnOrder over combatants. baseCost is the
// standard per-step action cost passed to CalculateDelay; callers
// typically pass StandardActionDelay-derived costs of 1.0.
func NewTurnOrder(combatants []*combatant.Combatant, baseCost float64, rng dice.Source) *TurnOrder {
	return &TurnOrder{combatants: combatants, baseCost: baseCost, rng: rng}
}

// Next advances the scheduler by one unit at a time until a combatant is
// ready, then debits that combatant's delay and returns it. It returns
// (nil, false) if combat has ended (one team victory) before any further
// actor becomes ready.
func (t *TurnOrder) Next() (*combatant.Combatant, bool) {
	for {
		if teamsRemaining(t.combatants) <= 1 {
			return nil, false
		}

		if next, delay, ok := GetNextReady(t.combatants, t.baseCost, t.rng); ok {
			DeductTime(next, delay)
			return next, true
		}

		AdvanceTime(t.combatants, 1)
	}
}

// teamsRemaining counts the number of distinct teams with at least one
// living member.
func teamsRemaining(combatants []*combatant.Combatant) int {
	seen := make(map[combatant.Team]struct{})
	for _, c := range combatants {
		if c.IsAlive() {
			seen[c.Team] = struct{}{}
		}
	}
	return len(seen)
}
