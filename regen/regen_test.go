// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package regen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
)

// TestHP_RegenerationScenario covers: maxHP=12,
// regenBonus=0, starting at 5 HP heals 1 HP every 5 turns and reaches
// full in 35 turns.
func TestHP_RegenerationScenario(t *testing.T) {
	c := &combatant.Combatant{MaxHealth: 12, CurrentHealth: 5, RegenBonus: 0}
	// rate = 20 + floor(12/6) + 0 = 22 per turn; 100/22 ~ 4.5 turns per heal.
	turnsToFull := 0
	for c.CurrentHealth < c.MaxHealth && turnsToFull < 100 {
		HP(c)
		turnsToFull++
	}
	assert.Equal(t, 12, c.CurrentHealth)
	assert.LessOrEqual(t, turnsToFull, 35)
}

func TestHP_HighRegenBonusReachesFullFaster(t *testing.T) {
	c := &combatant.Combatant{MaxHealth: 12, CurrentHealth: 5, RegenBonus: 80}
	turns := 0
	for c.CurrentHealth < c.MaxHealth && turns < 20 {
		HP(c)
		turns++
	}
	assert.Equal(t, 12, c.CurrentHealth)
	assert.LessOrEqual(t, turns, 7)
}

func TestHP_NoStockpilingWhenFull(t *testing.T) {
	c := &combatant.Combatant{MaxHealth: 10, CurrentHealth: 10}
	healed := HP(c)
	assert.Equal(t, 0, healed)
	assert.Equal(t, 0, c.RegenPoints)
}

func TestHP_DeadCombatantResetsPoints(t *testing.T) {
	c := &combatant.Combatant{MaxHealth: 10, CurrentHealth: 0, RegenPoints: 50}
	healed := HP(c)
	assert.Equal(t, 0, healed)
	assert.Equal(t, 0, c.RegenPoints)
}

func TestHP_WorkConserving(t *testing.T) {
	c := &combatant.Combatant{MaxHealth: 1000, CurrentHealth: 1, RegenBonus: 0}
	rate := baseRate + c.MaxHealth/6 + c.RegenBonus

	const ticks = 17
	for i := 0; i < ticks; i++ {
		HP(c)
	}

	want := (ticks * rate) / pointsPerHeal
	assert.Equal(t, 1+want, c.CurrentHealth)
}

func TestWP_MirrorsHP(t *testing.T) {
	c := &combatant.Combatant{MaxWillpower: 12, CurrentWillpower: 5}
	turns := 0
	for c.CurrentWillpower < c.MaxWillpower && turns < 100 {
		WP(c)
		turns++
	}
	assert.Equal(t, 12, c.CurrentWillpower)
}
