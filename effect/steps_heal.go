// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package effect

import (
	"github.com/spetersoncode/pits-of-despair-sub006/dice"
	"github.com/spetersoncode/pits-of-despair-sub006/message"
)

// healStep implements the Heal step: dice + flat + stat scaling, or
// percent-of-max.
type healStep struct {
	def StepDefinition
}

func buildHeal(def StepDefinition) (Step, error) {
	return &healStep{def: def}, nil
}

func (s *healStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Target == nil {
		return Diagnostic("heal step has no target")
	}

	amount := s.def.Flat
	if s.def.Dice != "" {
		roller, err := dice.NewRoller(ctx.RNG)
		if err != nil {
			return Diagnostic("heal step roller error: %v", err)
		}
		rolled, err := dice.RollNotation(s.def.Dice, roller)
		if err != nil {
			return Diagnostic("heal step invalid dice: %v", err)
		}
		amount += rolled
	}

	if s.def.StatScale != "" && ctx.Caster != nil {
		if v, ok := statValue(ctx.Caster, s.def.StatScale); ok {
			amount += int(float64(v) * s.def.StatMultiplier)
		}
	}

	if s.def.Percent > 0 {
		amount += int(float64(ctx.Target.MaxHealth) * s.def.Percent)
	}

	healed := ctx.Target.Heal(amount)
	if healed > 0 {
		state.Success = true
		messages.Log(message.ColourHeal, ctx.Target.Name+" is healed.")
	}

	return Ok()
}

// healCasterStep implements HealCaster: vampiric healing proportional to
// state.DamageDealt so far.
type healCasterStep struct {
	def StepDefinition
}

func buildHealCaster(def StepDefinition) (Step, error) {
	return &healCasterStep{def: def}, nil
}

func (s *healCasterStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Caster == nil {
		return Diagnostic("heal caster step has no caster")
	}

	amount := int(float64(state.DamageDealt) * s.def.VampiricFraction)
	healed := ctx.Caster.Heal(amount)
	if healed > 0 {
		state.Success = true
		messages.Log(message.ColourHeal, ctx.Caster.Name+" drains life from the attack.")
	}

	return Ok()
}
