// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package effect

import (
	"github.com/spetersoncode/pits-of-despair-sub006/attack"
	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
	"github.com/spetersoncode/pits-of-despair-sub006/dice"
	"github.com/spetersoncode/pits-of-despair-sub006/message"
)

// damageStep implements the Damage step.
type damageStep struct {
	def StepDefinition
}

func buildDamage(def StepDefinition) (Step, error) {
	return &damageStep{def: def}, nil
}

func (s *damageStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Target == nil {
		return Diagnostic("damage step has no target")
	}

	amount := s.def.Flat
	if s.def.Dice != "" {
		roller, err := dice.NewRoller(ctx.RNG)
		if err != nil {
			return Diagnostic("damage step roller error: %v", err)
		}
		rolled, err := dice.RollNotation(s.def.Dice, roller)
		if err != nil {
			return Diagnostic("damage step invalid dice: %v", err)
		}
		amount += rolled
	}

	if s.def.StatScale != "" && ctx.Caster != nil {
		if v, ok := statValue(ctx.Caster, s.def.StatScale); ok {
			amount += int(float64(v) * s.def.StatMultiplier)
		}
	}

	amount += state.PreparedDamageBonus

	if !s.def.ArmorPiercing {
		amount -= ctx.Target.Armor
	}
	if amount < 0 {
		amount = 0
	}

	if s.def.HalfOnSave && state.SaveSucceeded {
		amount /= 2
	}

	dealt := attack.ApplyDamage(ctx.Target, amount, s.def.DamageType)
	state.DamageDealt += dealt
	if dealt > 0 {
		state.Success = true
		messages.Log(message.ColourDamage, ctx.Target.Name+" takes damage.")
		if ctx.Observers != nil {
			ctx.Observers.Emit(skillDamageSignal(ctx, ctx.Target.ID, dealt))
		}
	}

	return Ok()
}

// weaponDamageStep implements the WeaponDamage step: a melee weapon
// attack using the caster's primary melee AttackDefinition.
type weaponDamageStep struct {
	def StepDefinition
}

func buildWeaponDamage(def StepDefinition) (Step, error) {
	return &weaponDamageStep{def: def}, nil
}

func (s *weaponDamageStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Caster == nil || ctx.Target == nil {
		return Diagnostic("weapon damage requires caster and target")
	}
	if state.AttackMissed {
		return Ok()
	}

	weapon, ok := ctx.Caster.PrimaryMeleeAttack()
	if !ok {
		messages.Log(message.ColourDiagnostic, ctx.Caster.Name+" has no melee weapon.")
		return PreconditionFailed("no melee weapon available")
	}

	roller, err := dice.NewRoller(ctx.RNG)
	if err != nil {
		return Diagnostic("weapon damage roller error: %v", err)
	}
	rolled, err := dice.RollNotation(weapon.Dice, roller)
	if err != nil {
		return Diagnostic("weapon damage invalid dice %q: %v", weapon.Dice, err)
	}

	strBonus := weapon.StrengthBonus(ctx.Caster.Stats.Strength)
	raw := attack.RawDamage(rolled, strBonus, state.PreparedDamageBonus, ctx.Target.Armor)
	dealt := attack.ApplyDamage(ctx.Target, raw, weapon.DamageType)
	state.DamageDealt += dealt

	if dealt > 0 {
		state.Success = true
		messages.Log(message.ColourDamage, ctx.Caster.Name+" hits "+ctx.Target.Name+" with "+weapon.Name+".")
		if ctx.Observers != nil {
			ctx.Observers.Emit(skillDamageSignal(ctx, ctx.Target.ID, dealt))
		}
	} else if ctx.Observers != nil {
		ctx.Observers.Emit(attackBlockedSignal(ctx))
	}

	return Ok()
}

// chainDamageStep implements lightning-style chain damage.
type chainDamageStep struct {
	def StepDefinition
}

func buildChainDamage(def StepDefinition) (Step, error) {
	return &chainDamageStep{def: def}, nil
}

func (s *chainDamageStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Target == nil || ctx.Entities == nil {
		return Diagnostic("chain damage requires a target and entity manager")
	}

	roller, err := dice.NewRoller(ctx.RNG)
	if err != nil {
		return Diagnostic("chain damage roller error: %v", err)
	}
	baseDamage, err := dice.RollNotation(s.def.Dice, roller)
	if err != nil {
		return Diagnostic("chain damage invalid dice: %v", err)
	}

	hitIDs := map[string]struct{}{ctx.Target.ID: {}}
	current := ctx.Target
	falloff := 1.0
	bounces := 0

	for {
		hopDamage := max(1, int(float64(baseDamage)*falloff))
		dealt := attack.ApplyDamage(current, hopDamage, s.def.DamageType)
		state.DamageDealt += dealt
		state.Success = state.Success || dealt > 0
		messages.Log(message.ColourDamage, current.Name+" is struck by the chain.")

		if bounces >= s.def.MaxBounces {
			break
		}

		next, found := nearestUnhitHostile(ctx, current, hitIDs, s.def.BounceRange)
		if !found {
			break
		}

		hitIDs[next.ID] = struct{}{}
		falloff *= s.def.DamageFalloff
		if falloff < 0 {
			falloff = 0
		}
		current = next
		bounces++
	}

	return Ok()
}

func nearestUnhitHostile(ctx *Context, from *combatant.Combatant, hit map[string]struct{}, maxRange int) (*combatant.Combatant, bool) {
	var best *combatant.Combatant
	bestDist := maxRange + 1

	for _, e := range ctx.Entities.AllEntities() {
		if !e.IsAlive() {
			continue
		}
		if _, already := hit[e.ID]; already {
			continue
		}
		if from.Team != "" && !from.Team.IsHostileTo(e.Team) {
			continue
		}
		dist := from.Pos.ChebyshevDistance(e.Pos)
		if dist > maxRange {
			continue
		}
		if dist < bestDist || (dist == bestDist && best != nil && e.ID < best.ID) {
			best = e
			bestDist = dist
		}
	}

	return best, best != nil
}
