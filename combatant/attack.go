// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

import "github.com/spetersoncode/pits-of-despair-sub006/damage"

// AttackKind distinguishes melee from ranged attacks, which use different
// attack stats and default ranges.
type AttackKind string

const (
	Melee  AttackKind = "melee"
	Ranged AttackKind = "ranged"
)

// DefaultRange returns the default Chebyshev range for k when an
// AttackDefinition does not specify one: 1 for melee, 6 for ranged.
func (k AttackKind) DefaultRange() int {
	if k == Ranged {
		return 6
	}
	return 1
}

// AttackDefinition is a value type describing one way a combatant can
// attack: a natural weapon, an equipped weapon, or a monster's innate
// strike.
type AttackDefinition struct {
	Name string
	Kind AttackKind
	// Dice is the damage notation, e.g. "1d4" or "2d6+1".
	Dice       string
	DamageType damage.Type
	// Range is the maximum Chebyshev distance this attack can be used
	// from. Zero means "use Kind.DefaultRange()".
	Range int
	// AmmoType, if non-empty, names the ammo pool this attack consumes
	// one unit of per use.
	AmmoType string
	// Delay is a multiplier applied to STANDARD_ACTION_DELAY when this
	// attack is the chosen action's base cost driver. Zero means 1.0.
	Delay float64
	// MaxStrBonus caps how much of the attacker's strength can be added
	// to raw damage; nil means uncapped.
	MaxStrBonus *int
}

// EffectiveRange returns Range if set, else Kind's default.
func (a AttackDefinition) EffectiveRange() int {
	if a.Range > 0 {
		return a.Range
	}
	return a.Kind.DefaultRange()
}

// EffectiveDelay returns Delay if set, else 1.0.
func (a AttackDefinition) EffectiveDelay() float64 {
	if a.Delay == 0 {
		return 1.0
	}
	return a.Delay
}

// StrengthBonus clamps raw to this attack's MaxStrBonus, if configured.
func (a AttackDefinition) StrengthBonus(raw int) int {
	if a.MaxStrBonus == nil {
		return raw
	}
	if raw > *a.MaxStrBonus {
		return *a.MaxStrBonus
	}
	return raw
}
