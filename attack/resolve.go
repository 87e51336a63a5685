// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package attack

import (
	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
	"github.com/spetersoncode/pits-of-despair-sub006/dice"
)

// decorationDefenseModifier is the near-auto-hit defense modifier used for
// a target without real combat stats (destructible scenery).
const decorationDefenseModifier = -10

// AttackModifier returns the attacker's bonus to an opposed attack roll:
// Strength for melee, Agility for ranged.
func AttackModifier(c *combatant.Combatant, isMelee bool) int {
	if isMelee {
		return c.Stats.Strength
	}
	return c.Stats.Agility
}

// DefenseModifier returns a target's bonus to an opposed defense roll:
// Agility + Evasion, or -10 for a Decoration target (near auto-hit).
func DefenseModifier(c *combatant.Combatant) int {
	if c.Decoration {
		return decorationDefenseModifier
	}
	return c.Stats.Agility + c.Evasion
}

// Roll2d6 rolls two six-sided dice and returns their sum, the shared
// primitive behind every opposed roll and save check in the combat core.
func Roll2d6(rng dice.Source) (int, error) {
	roller, err := dice.NewRoller(rng)
	if err != nil {
		return 0, err
	}
	rolls, err := roller.RollN(2, 6)
	if err != nil {
		return 0, err
	}
	return rolls[0] + rolls[1], nil
}

// ResolveHit performs the opposed-roll hit check: attackRoll
// = 2d6 + attackModifier + bonus vs. defenseRoll = 2d6 + defenseModifier.
// bonus is the attacker's prepared-attack hit bonus, if any (0 otherwise).
// The attacker wins ties.
func ResolveHit(attacker, defender *combatant.Combatant, isMelee bool, bonus int, rng dice.Source) (hit bool, err error) {
	attackBase, err := Roll2d6(rng)
	if err != nil {
		return false, err
	}
	defenseBase, err := Roll2d6(rng)
	if err != nil {
		return false, err
	}

	attackRoll := attackBase + AttackModifier(attacker, isMelee) + bonus
	defenseRoll := defenseBase + DefenseModifier(defender)

	return attackRoll >= defenseRoll, nil
}

// RawDamage computes pre-resistance damage from a rolled dice total, the
// attacker's strength bonus (if melee, capped per the attack definition),
// a prepared-attack damage bonus (0 if none active), and the target's
// armor, clamped to >= 0.
func RawDamage(diceTotal int, strengthBonus int, preparedBonus int, targetArmor int) int {
	raw := diceTotal + strengthBonus + preparedBonus - targetArmor
	if raw < 0 {
		return 0
	}
	return raw
}
