// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
	"github.com/spetersoncode/pits-of-despair-sub006/damage"
	"github.com/spetersoncode/pits-of-despair-sub006/dice"
	"github.com/spetersoncode/pits-of-despair-sub006/external"
	"github.com/spetersoncode/pits-of-despair-sub006/message"
)

func TestDamageStepAppliesArmorAndDamageType(t *testing.T) {
	step, err := buildDamage(StepDefinition{Flat: 10, DamageType: damage.Piercing})
	require.NoError(t, err)

	target := newTestCombatant("target", combatant.Hostile)
	target.Armor = 3
	target.Damage.AddResistance(damage.Piercing)

	ctx := &Context{Target: target, RNG: dice.NewFixedSource(1, 0.0)}
	state := NewState()

	step.Execute(ctx, state, message.NewCollector())

	// (10-3)=7 raw, halved for resistance = 3.
	assert.Equal(t, 3, state.DamageDealt)
	assert.Equal(t, 17, target.CurrentHealth)
	assert.True(t, state.Success)
}

func TestDamageStepArmorPiercingSkipsArmor(t *testing.T) {
	step, err := buildDamage(StepDefinition{Flat: 5, DamageType: damage.Fire, ArmorPiercing: true})
	require.NoError(t, err)

	target := newTestCombatant("target", combatant.Hostile)
	target.Armor = 100

	ctx := &Context{Target: target, RNG: dice.NewFixedSource(1, 0.0)}
	state := NewState()

	step.Execute(ctx, state, message.NewCollector())

	assert.Equal(t, 5, state.DamageDealt)
}

func TestDamageStepHalfOnSave(t *testing.T) {
	step, err := buildDamage(StepDefinition{Flat: 10, DamageType: damage.Fire, ArmorPiercing: true, HalfOnSave: true})
	require.NoError(t, err)

	target := newTestCombatant("target", combatant.Hostile)

	ctx := &Context{Target: target, RNG: dice.NewFixedSource(1, 0.0)}
	state := NewState()
	state.SaveSucceeded = true

	step.Execute(ctx, state, message.NewCollector())

	assert.Equal(t, 5, state.DamageDealt)
}

func TestDamageStepEmitsSkillDamageSignal(t *testing.T) {
	step, err := buildDamage(StepDefinition{Flat: 4, DamageType: damage.Fire, ArmorPiercing: true})
	require.NoError(t, err)

	caster := newTestCombatant("caster", combatant.Player)
	target := newTestCombatant("target", combatant.Hostile)

	var received []external.Signal
	broadcaster := external.NewBroadcaster()
	broadcaster.Register(recordingObserver(func(s external.Signal) { received = append(received, s) }))

	ctx := &Context{Caster: caster, Target: target, Observers: broadcaster, RNG: dice.NewFixedSource(1, 0.0)}
	state := NewState()

	step.Execute(ctx, state, message.NewCollector())

	require.Len(t, received, 1)
	assert.Equal(t, external.SignalSkillDamageDealt, received[0].Kind)
	assert.Equal(t, 4, received[0].Amount)
}

func TestWeaponDamageStepSkippedOnMiss(t *testing.T) {
	step, err := buildWeaponDamage(StepDefinition{})
	require.NoError(t, err)

	caster := newTestCombatant("caster", combatant.Player)
	caster.Attacks = []combatant.AttackDefinition{{Name: "claw", Kind: combatant.Melee, Dice: "1d4", DamageType: damage.Slashing}}
	target := newTestCombatant("target", combatant.Hostile)

	ctx := &Context{Caster: caster, Target: target, RNG: dice.NewFixedSource(1, 0.0)}
	state := NewState()
	state.AttackMissed = true

	step.Execute(ctx, state, message.NewCollector())

	assert.Equal(t, 0, state.DamageDealt)
	assert.Equal(t, target.MaxHealth, target.CurrentHealth)
}

func TestWeaponDamageStepNoMeleeWeaponIsPrecondition(t *testing.T) {
	step, err := buildWeaponDamage(StepDefinition{})
	require.NoError(t, err)

	caster := newTestCombatant("caster", combatant.Player)
	target := newTestCombatant("target", combatant.Hostile)

	ctx := &Context{Caster: caster, Target: target, RNG: dice.NewFixedSource(1, 0.0)}
	state := NewState()

	outcome := step.Execute(ctx, state, message.NewCollector())

	assert.Equal(t, OutcomePreconditionFailed, outcome.Kind)
}

// recordingObserver adapts a func into an external.CombatObserver.
type recordingObserver func(s external.Signal)

func (f recordingObserver) OnSignal(s external.Signal) { f(s) }
