// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package regen

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
)

// TestHP_NeverExceedsMaxHealth checks, across arbitrary starting health,
// max health, and regen bonus, that repeated HP calls never push
// CurrentHealth above MaxHealth and never heal a dead combatant.
func TestHP_NeverExceedsMaxHealth(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		maxHealth := rapid.IntRange(1, 500).Draw(rt, "maxHealth")
		current := rapid.IntRange(0, maxHealth).Draw(rt, "current")
		bonus := rapid.IntRange(0, 200).Draw(rt, "regenBonus")
		turns := rapid.IntRange(0, 50).Draw(rt, "turns")

		c := &combatant.Combatant{MaxHealth: maxHealth, CurrentHealth: current, RegenBonus: bonus}
		wasDead := !c.IsAlive()

		for i := 0; i < turns; i++ {
			HP(c)
			if c.CurrentHealth > c.MaxHealth {
				rt.Fatalf("CurrentHealth %d exceeded MaxHealth %d", c.CurrentHealth, c.MaxHealth)
			}
		}

		if wasDead && c.CurrentHealth != 0 {
			rt.Fatalf("dead combatant regenerated from %d", current)
		}
	})
}

// TestHP_FullHealthNeverAccumulatesPoints checks that once a combatant
// reaches full health, RegenPoints resets to zero rather than
// stockpiling work that can never be spent.
func TestHP_FullHealthNeverAccumulatesPoints(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		maxHealth := rapid.IntRange(1, 500).Draw(rt, "maxHealth")
		bonus := rapid.IntRange(0, 200).Draw(rt, "regenBonus")

		c := &combatant.Combatant{MaxHealth: maxHealth, CurrentHealth: maxHealth, RegenBonus: bonus}
		HP(c)
		if c.RegenPoints != 0 {
			rt.Fatalf("full-health combatant accumulated %d regen points", c.RegenPoints)
		}
	})
}
