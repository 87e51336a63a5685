// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package attack

import (
	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
	"github.com/spetersoncode/pits-of-despair-sub006/damage"
	"github.com/spetersoncode/pits-of-despair-sub006/dice"
)

// ApplyDamage looks up target's resistance modifier for damageType,
// applies it to amount, then applies the result to target's health pool.
// It returns the amount actually dealt (post-modifier, post-clamp), per
// the same applyDamage contract as a direct attack.
func ApplyDamage(target *combatant.Combatant, amount int, damageType damage.Type) int {
	modifier := target.Damage.Lookup(damageType)
	adjusted := modifier.Apply(amount)
	return target.ApplyDamage(adjusted)
}

// ResolveSave performs the opposed save roll: saveStat +
// 2d6 + modifier vs. attackStat + 2d6, where the defender (the one
// saving) wins ties.
func ResolveSave(saveStat, attackStat, modifier int, rng dice.Source) (bool, error) {
	saveBase, err := Roll2d6(rng)
	if err != nil {
		return false, err
	}
	attackBase, err := Roll2d6(rng)
	if err != nil {
		return false, err
	}

	saveRoll := saveBase + saveStat + modifier
	attackRoll := attackBase + attackStat

	return saveRoll >= attackRoll, nil
}
