// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
	"github.com/spetersoncode/pits-of-despair-sub006/condition"
	"github.com/spetersoncode/pits-of-despair-sub006/message"
	"github.com/spetersoncode/pits-of-despair-sub006/rpgerr"
)

func newTestCombatant(id string, team combatant.Team) *combatant.Combatant {
	return &combatant.Combatant{
		ID:            id,
		Name:          id,
		Team:          team,
		Stats:         combatant.Stats{Strength: 2, Agility: 2, Endurance: 2, Will: 2},
		MaxHealth:     20,
		CurrentHealth: 20,
		MaxWillpower:  10,
		CurrentWillpower: 10,
		Conditions:    condition.NewManager(),
		Ammo:          combatant.NewAmmoPool(),
	}
}

// stubStep is a Step whose behaviour is injected for pipeline-driver tests.
type stubStep struct {
	fn func(ctx *Context, state *State, messages *message.Collector) Outcome
}

func (s *stubStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	return s.fn(ctx, state, messages)
}

func TestPipelineRunStopsOnContinueFalse(t *testing.T) {
	var ran []int
	steps := []Step{
		&stubStep{fn: func(ctx *Context, state *State, messages *message.Collector) Outcome {
			ran = append(ran, 1)
			state.Continue = false
			return Ok()
		}},
		&stubStep{fn: func(ctx *Context, state *State, messages *message.Collector) Outcome {
			ran = append(ran, 2)
			return Ok()
		}},
	}

	p := &Pipeline{Steps: steps}
	state := NewState()
	p.Run(&Context{}, state, message.NewCollector())

	assert.Equal(t, []int{1}, ran)
}

func TestPipelineRunExecutesAllStepsWhenContinuing(t *testing.T) {
	var ran []int
	steps := []Step{
		&stubStep{fn: func(ctx *Context, state *State, messages *message.Collector) Outcome {
			ran = append(ran, 1)
			return Ok()
		}},
		&stubStep{fn: func(ctx *Context, state *State, messages *message.Collector) Outcome {
			ran = append(ran, 2)
			return Ok()
		}},
	}

	p := &Pipeline{Steps: steps}
	state := NewState()
	p.Run(&Context{}, state, message.NewCollector())

	assert.Equal(t, []int{1, 2}, ran)
}

func TestRunSubDoesNotLeakStateIntoOuterState(t *testing.T) {
	outer := NewState()
	outer.SaveSucceeded = false

	sub := []Step{
		&stubStep{fn: func(ctx *Context, state *State, messages *message.Collector) Outcome {
			state.SaveSucceeded = true
			state.DamageDealt = 7
			return Ok()
		}},
	}

	messages := message.NewCollector()
	messages.SetCurrentEntity("outer-entity")

	subState := RunSub(sub, &Context{}, messages, "sub-entity")

	assert.True(t, subState.SaveSucceeded)
	assert.Equal(t, 7, subState.DamageDealt)
	assert.False(t, outer.SaveSucceeded)
	assert.Equal(t, 0, outer.DamageDealt)
}

func TestRunSubRestoresMessageCursor(t *testing.T) {
	messages := message.NewCollector()
	messages.SetCurrentEntity("outer-entity")

	sub := []Step{
		&stubStep{fn: func(ctx *Context, state *State, messages *message.Collector) Outcome {
			messages.Log(message.ColourNone, "sub line")
			return Ok()
		}},
	}

	RunSub(sub, &Context{}, messages, "sub-entity")

	assert.Equal(t, "outer-entity", messages.CurrentEntity())
	entries := messages.Entries()
	assert.Len(t, entries, 1)
	assert.Equal(t, "sub-entity", entries[0].EntityID)
}

func TestRegistryBuildUnknownTypeIsValidationError(t *testing.T) {
	r := NewRegistry()
	_, err := r.Build(StepDefinition{Type: "not_a_real_step"})
	assert.Error(t, err)
	assert.Equal(t, rpgerr.KindValidation, rpgerr.KindOf(err))
}

func TestRegistryBuildPipelineBuildsAllKnownSteps(t *testing.T) {
	r := NewRegistry()
	defs := []StepDefinition{
		{Type: TypeSaveCheck, SaveStat: "will"},
		{Type: TypeAttackRoll},
		{Type: TypeDamage, Dice: "1d4"},
		{Type: TypeHeal, Flat: 1},
		{Type: TypeApplyCondition, ConditionTypeID: "poisoned"},
		{Type: TypeWeaponDamage},
		{Type: TypeHealCaster, VampiricFraction: 0.5},
		{Type: TypeApplyBrand, Slot: "weapon", PropertyName: "flaming"},
		{Type: TypeApplyPrepare, ConditionTypeID: "primed_smite"},
		{Type: TypeKnockback, Distance: 1},
		{Type: TypeBlink},
		{Type: TypeTeleport},
		{Type: TypeMoveTiles, Amount: 1},
		{Type: TypeSpawnHazard, HazardType: "fire_patch"},
		{Type: TypeMagicMapping, Range: 3},
		{Type: TypeChainDamage, Dice: "1d4"},
		{Type: TypeClone},
		{Type: TypeCharm},
		{Type: TypeModifyWillpower, Amount: 1},
	}
	p, err := r.BuildPipeline(defs)
	assert.NoError(t, err)
	assert.Len(t, p.Steps, len(defs))
}
