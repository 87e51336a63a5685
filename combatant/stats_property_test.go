// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

import (
	"testing"

	"pgregory.net/rapid"
)

// TestHealthBonus_MonotonicNonNegative checks that HealthBonus never
// returns a negative value and never decreases as endurance increases.
func TestHealthBonus_MonotonicNonNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := rapid.IntRange(-10, 30).Draw(rt, "endurance")
		bonus := HealthBonus(e)
		if bonus < 0 {
			rt.Fatalf("HealthBonus(%d) = %d, want >= 0", e, bonus)
		}
		if HealthBonus(e+1) < bonus {
			rt.Fatalf("HealthBonus(%d)=%d exceeds HealthBonus(%d)=%d", e, bonus, e+1, HealthBonus(e+1))
		}
	})
}

// TestBuild_MaxHealthReflectsEnduranceAndBaseHealth checks Build's
// maxHealth computation against HealthBonus directly, across arbitrary
// base health and endurance values, with no equipment involved.
func TestBuild_MaxHealthReflectsEnduranceAndBaseHealth(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		baseHealth := rapid.IntRange(1, 200).Draw(rt, "baseHealth")
		endurance := rapid.IntRange(-5, 20).Draw(rt, "endurance")

		def := CreatureDefinition{
			Name:   "test",
			Team:   Hostile,
			Stats:  Stats{Endurance: endurance},
			Speed:  5,
			Health: baseHealth,
		}
		c := Build(def, nil, Position{})

		want := baseHealth + HealthBonus(endurance)
		if c.MaxHealth != want {
			rt.Fatalf("MaxHealth = %d, want %d", c.MaxHealth, want)
		}
		if c.CurrentHealth != c.MaxHealth {
			rt.Fatalf("freshly built combatant should start at full health: %d != %d", c.CurrentHealth, c.MaxHealth)
		}
	})
}

// TestBuild_SpeedNeverBelowOne checks Build's speed clamp holds for any
// combination of base speed and equipment speed bonuses.
func TestBuild_SpeedNeverBelowOne(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		baseSpeed := rapid.IntRange(-20, 20).Draw(rt, "baseSpeed")
		bonus := rapid.IntRange(-20, 20).Draw(rt, "speedBonus")

		def := CreatureDefinition{Name: "test", Team: Hostile, Speed: baseSpeed, Health: 10}
		equipment := []EquipmentItem{{Name: "gear", SpeedBonus: bonus}}
		c := Build(def, equipment, Position{})

		if c.Speed < 1 {
			rt.Fatalf("Speed = %d, want >= 1", c.Speed)
		}
	})
}
