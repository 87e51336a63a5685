// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package effect

import (
	"strings"

	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
	"github.com/spetersoncode/pits-of-despair-sub006/condition"
	"github.com/spetersoncode/pits-of-despair-sub006/message"
)

// preparePrefix marks a condition TypeID as an ApplyPrepare "next attack"
// modifier rather than an ordinary condition.
const preparePrefix = "prepare:"

// consumePrepare looks up the first active prepare condition on c and, if
// found and not Arc, removes it (a one-shot bonus is spent on the next
// attack regardless of hit or miss). Arc prepares persist for their full
// duration instead of being consumed by a single attack.
func consumePrepare(c *combatant.Combatant) (condition.Condition, bool) {
	if c == nil || c.Conditions == nil {
		return condition.Condition{}, false
	}
	for _, cond := range c.Conditions.GetAll() {
		if !strings.HasPrefix(cond.TypeID, preparePrefix) {
			continue
		}
		if !cond.Arc {
			c.Conditions.Remove(cond.TypeID)
		}
		return cond, true
	}
	return condition.Condition{}, false
}

// applyConditionStep implements ApplyCondition: instantiate a condition
// from a typeId, gated by RequireSaveFailed or RequireDamageDealt.
type applyConditionStep struct {
	def StepDefinition
}

func buildApplyCondition(def StepDefinition) (Step, error) {
	return &applyConditionStep{def: def}, nil
}

func (s *applyConditionStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Target == nil {
		return Diagnostic("apply condition has no target")
	}
	if ctx.Target.Conditions == nil {
		return Diagnostic("target has no condition manager")
	}

	if s.def.RequireSaveFailed && !state.SaveFailed {
		return Ok()
	}
	if s.def.RequireDamageDealt && state.DamageDealt <= 0 {
		return Ok()
	}

	c := condition.Condition{
		TypeID:         s.def.ConditionTypeID,
		Name:           s.def.ConditionName,
		RemainingTurns: s.def.ConditionDuration,
	}
	if s.def.TickDice != "" {
		c.Tick = &condition.DoT{
			Dice:          s.def.TickDice,
			DamageType:    s.def.TickDamageType,
			ArmorPiercing: s.def.TickArmorPiercing,
		}
	}
	if ctx.Caster != nil {
		c.SourceID = ctx.Caster.ID
	}

	ctx.Target.Conditions.Add(c)
	state.Success = true
	messages.Log(message.ColourCondition, ctx.Target.Name+" is afflicted with "+c.Name+".")

	return Ok()
}

// applyBrandStep implements ApplyBrand/ApplyProperty: attach a
// time-bounded property to the caster's weapon in a named slot. Properties
// are modeled as Conditions keyed by slot+name on the caster, since the
// combat core has no separate item-state store (back-references
// resolve through stable ids, not owning references).
type applyBrandStep struct {
	def StepDefinition
}

func buildApplyBrand(def StepDefinition) (Step, error) {
	return &applyBrandStep{def: def}, nil
}

func (s *applyBrandStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Caster == nil {
		return Diagnostic("apply brand has no caster")
	}
	if ctx.Caster.Conditions == nil {
		return Diagnostic("caster has no condition manager")
	}

	typeID := "brand:" + s.def.Slot + ":" + s.def.PropertyName
	ctx.Caster.Conditions.Add(condition.Condition{
		TypeID:         typeID,
		Name:           s.def.PropertyName,
		RemainingTurns: s.def.Duration,
	})
	state.Success = true
	messages.Log(message.ColourCondition, ctx.Caster.Name+"'s "+s.def.Slot+" is branded with "+s.def.PropertyName+".")

	return Ok()
}

// applyPrepareStep implements ApplyPrime/ApplyPrepare: a "next attack"
// modifier condition on the caster. Re-applying the same named prepare
// is a no-op with a user-visible message (the Manager's replace-not-stack
// semantics would silently refresh duration instead, which this
// explicitly calls out as wrong for this step).
type applyPrepareStep struct {
	def StepDefinition
}

func buildApplyPrepare(def StepDefinition) (Step, error) {
	return &applyPrepareStep{def: def}, nil
}

func (s *applyPrepareStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Caster == nil {
		return Diagnostic("apply prepare has no caster")
	}
	if ctx.Caster.Conditions == nil {
		return Diagnostic("caster has no condition manager")
	}

	typeID := "prepare:" + s.def.ConditionTypeID
	if ctx.Caster.Conditions.HasCondition(typeID) {
		messages.Log(message.ColourCondition, ctx.Caster.Name+" is already prepared.")
		return Ok()
	}

	ctx.Caster.Conditions.Add(condition.Condition{
		TypeID:         typeID,
		Name:           s.def.ConditionName,
		RemainingTurns: s.def.Duration,
		HitBonus:       s.def.HitBonus,
		DamageBonus:    s.def.DamageBonus,
		Arc:            s.def.Arc,
	})
	state.Success = true
	messages.Log(message.ColourCondition, ctx.Caster.Name+" prepares "+s.def.ConditionName+".")

	return Ok()
}
