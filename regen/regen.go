// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package regen

import "github.com/spetersoncode/pits-of-despair-sub006/combatant"

// pointsPerHeal is the accumulator threshold: every 100 accumulated
// points converts to 1 healed point of the underlying pool.
const pointsPerHeal = 100

// baseRate is the flat component of the health regen-rate formula.
const baseRate = 20

// HP applies one turn of health regeneration to c and returns the number
// of HP healed (zero if dead or already full).
//
//	regenRate = 20 + floor(maxHealth/6) + regenBonus
func HP(c *combatant.Combatant) int {
	if !c.IsAlive() {
		c.RegenPoints = 0
		return 0
	}
	if c.CurrentHealth >= c.MaxHealth {
		c.RegenPoints = 0
		return 0
	}

	rate := baseRate + c.MaxHealth/6 + c.RegenBonus
	c.RegenPoints += rate

	healed := 0
	for c.RegenPoints >= pointsPerHeal && c.CurrentHealth < c.MaxHealth {
		c.RegenPoints -= pointsPerHeal
		healed += c.Heal(1)
	}

	if c.CurrentHealth >= c.MaxHealth {
		c.RegenPoints = 0
	}

	return healed
}

// WP applies one turn of willpower regeneration to c and returns the
// amount of willpower restored, analogous to HP but against
// MaxWillpower/CurrentWillpower/WPRegenPoints. Dead combatants do not
// regenerate willpower.
func WP(c *combatant.Combatant) int {
	if !c.IsAlive() {
		c.WPRegenPoints = 0
		return 0
	}
	if c.CurrentWillpower >= c.MaxWillpower {
		c.WPRegenPoints = 0
		return 0
	}

	rate := baseRate + c.MaxWillpower/6 + c.RegenBonus
	c.WPRegenPoints += rate

	restored := 0
	for c.WPRegenPoints >= pointsPerHeal && c.CurrentWillpower < c.MaxWillpower {
		c.WPRegenPoints -= pointsPerHeal
		restored += c.RestoreWillpower(1)
	}

	if c.CurrentWillpower >= c.MaxWillpower {
		c.WPRegenPoints = 0
	}

	return restored
}
