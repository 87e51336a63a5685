// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package effect

import (
	"github.com/spetersoncode/pits-of-despair-sub006/attack"
	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
	"github.com/spetersoncode/pits-of-despair-sub006/message"
)

func statValue(c *combatant.Combatant, name string) (int, bool) {
	switch name {
	case "strength":
		return c.Stats.Strength, true
	case "agility":
		return c.Stats.Agility, true
	case "endurance":
		return c.Stats.Endurance, true
	case "will":
		return c.Stats.Will, true
	default:
		return 0, false
	}
}

// saveCheckStep implements the SaveCheck step.
type saveCheckStep struct {
	def StepDefinition
}

func buildSaveCheck(def StepDefinition) (Step, error) {
	return &saveCheckStep{def: def}, nil
}

func (s *saveCheckStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Target == nil {
		return Diagnostic("save check has no target")
	}

	saveStat, ok := statValue(ctx.Target, s.def.SaveStat)
	if !ok {
		// Missing saveStat means the effect always lands (automatic
		// fail).
		state.SaveFailed = true
		state.SaveSucceeded = false
		return Ok()
	}

	attackStat := 0
	if ctx.Caster != nil {
		attackStat, _ = statValue(ctx.Caster, s.def.AttackStat)
	}

	success, err := attack.ResolveSave(saveStat, attackStat, s.def.Modifier, ctx.RNG)
	if err != nil {
		return Diagnostic("save check roll failed: %v", err)
	}

	state.SaveSucceeded = success
	state.SaveFailed = !success

	if success {
		messages.Log(message.ColourNone, ctx.Target.Name+" resists the effect.")
		if s.def.StopOnSuccess {
			state.Continue = false
		}
	} else {
		messages.Log(message.ColourNone, ctx.Target.Name+" fails to resist.")
	}

	return Ok()
}

// attackRollStep implements the AttackRoll step.
type attackRollStep struct {
	def     StepDefinition
	isMelee bool
}

func buildAttackRoll(def StepDefinition) (Step, error) {
	return &attackRollStep{def: def, isMelee: def.AttackKind != "ranged"}, nil
}

func (s *attackRollStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Caster == nil || ctx.Target == nil {
		return Diagnostic("attack roll requires both caster and target")
	}

	hitBonus := 0
	if prepared, ok := consumePrepare(ctx.Caster); ok {
		hitBonus = prepared.HitBonus
		state.PreparedDamageBonus = prepared.DamageBonus
	}

	hit, err := attack.ResolveHit(ctx.Caster, ctx.Target, s.isMelee, hitBonus, ctx.RNG)
	if err != nil {
		return Diagnostic("attack roll failed: %v", err)
	}

	state.AttackHit = hit
	state.AttackMissed = !hit

	if hit {
		messages.Log(message.ColourNone, ctx.Caster.Name+" hits "+ctx.Target.Name+".")
		if ctx.Observers != nil {
			ctx.Observers.Emit(attackHitSignal(ctx))
		}
	} else {
		messages.Log(message.ColourNone, ctx.Caster.Name+" misses "+ctx.Target.Name+".")
		if s.def.StopOnMiss {
			state.Continue = false
		}
	}

	return Ok()
}
