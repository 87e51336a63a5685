// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

// Stats are the four primary attributes. They are small signed integers,
// typically in -5..+5, and drive every derived attribute and modifier in
// the combat core.
type Stats struct {
	Strength  int
	Agility   int
	Endurance int
	Will      int
}

// Add returns the component-wise sum of s and other, used when equipment
// grants a flat stat bonus.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Strength:  s.Strength + other.Strength,
		Agility:   s.Agility + other.Agility,
		Endurance: s.Endurance + other.Endurance,
		Will:      s.Will + other.Will,
	}
}

// HealthBonus implements the formula relating Endurance to bonus max
// health: 0 for e <= 0, else floor((e^2 + 9e) / 2) for e >= 1.
func HealthBonus(endurance int) int {
	if endurance <= 0 {
		return 0
	}
	return (endurance*endurance + 9*endurance) / 2
}

// WillpowerBonus implements the same curve as HealthBonus, relating Will
// to bonus max willpower: 0 for w <= 0, else floor((w^2 + 9w) / 2) for
// w >= 1.
func WillpowerBonus(will int) int {
	if will <= 0 {
		return 0
	}
	return (will*will + 9*will) / 2
}
