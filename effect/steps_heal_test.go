// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
	"github.com/spetersoncode/pits-of-despair-sub006/dice"
	"github.com/spetersoncode/pits-of-despair-sub006/message"
)

func TestHealStepFlatAndPercent(t *testing.T) {
	step, err := buildHeal(StepDefinition{Flat: 2, Percent: 0.1})
	require.NoError(t, err)

	target := newTestCombatant("target", combatant.Player)
	target.MaxHealth = 20
	target.CurrentHealth = 5

	ctx := &Context{Target: target, RNG: dice.NewFixedSource(1, 0.0)}
	state := NewState()

	step.Execute(ctx, state, message.NewCollector())

	// 2 flat + 10% of 20 = 2+2 = 4.
	assert.Equal(t, 9, target.CurrentHealth)
	assert.True(t, state.Success)
}

func TestHealStepClampsToMax(t *testing.T) {
	step, err := buildHeal(StepDefinition{Flat: 1000})
	require.NoError(t, err)

	target := newTestCombatant("target", combatant.Player)
	target.MaxHealth = 20
	target.CurrentHealth = 18

	ctx := &Context{Target: target, RNG: dice.NewFixedSource(1, 0.0)}
	state := NewState()

	step.Execute(ctx, state, message.NewCollector())

	assert.Equal(t, 20, target.CurrentHealth)
}

func TestHealCasterStepIsVampiric(t *testing.T) {
	step, err := buildHealCaster(StepDefinition{VampiricFraction: 0.5})
	require.NoError(t, err)

	caster := newTestCombatant("caster", combatant.Player)
	caster.MaxHealth = 20
	caster.CurrentHealth = 10

	ctx := &Context{Caster: caster}
	state := NewState()
	state.DamageDealt = 8

	step.Execute(ctx, state, message.NewCollector())

	assert.Equal(t, 14, caster.CurrentHealth)
}

func TestHealCasterStepNoDamageDealtIsNoop(t *testing.T) {
	step, err := buildHealCaster(StepDefinition{VampiricFraction: 0.5})
	require.NoError(t, err)

	caster := newTestCombatant("caster", combatant.Player)
	caster.CurrentHealth = 10

	ctx := &Context{Caster: caster}
	state := NewState()

	step.Execute(ctx, state, message.NewCollector())

	assert.Equal(t, 10, caster.CurrentHealth)
	assert.False(t, state.Success)
}
