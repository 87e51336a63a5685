// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package effect

import (
	"github.com/google/uuid"

	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
	"github.com/spetersoncode/pits-of-despair-sub006/condition"
	"github.com/spetersoncode/pits-of-despair-sub006/message"
)

// spawnHazardStep implements SpawnHazard: creates a persistent tile hazard
// via the host's EntityFactory. The hazard itself (its per-turn tick) is
// the host's responsibility once spawned; the pipeline only requests its
// creation (item/hazard ownership lives past this process's
// control at the interface boundary).
type spawnHazardStep struct {
	def StepDefinition
}

func buildSpawnHazard(def StepDefinition) (Step, error) {
	return &spawnHazardStep{def: def}, nil
}

func (s *spawnHazardStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Factory == nil {
		return Diagnostic("spawn hazard requires an entity factory")
	}

	pos := combatant.Position{}
	switch {
	case ctx.TargetPosition != nil:
		pos = *ctx.TargetPosition
	case ctx.Target != nil:
		pos = ctx.Target.Pos
	default:
		return Diagnostic("spawn hazard has no position")
	}

	_, ok := ctx.Factory.CreateItem(s.def.HazardType, pos)
	if !ok {
		return Diagnostic("spawn hazard: unknown hazard type %q", s.def.HazardType)
	}

	state.Success = true
	messages.Log(message.ColourNone, "a hazard forms on the ground.")

	return Ok()
}

// magicMappingStep implements MagicMapping: reveals an area as explored
// via the vision system.
type magicMappingStep struct {
	def StepDefinition
}

func buildMagicMapping(def StepDefinition) (Step, error) {
	return &magicMappingStep{def: def}, nil
}

func (s *magicMappingStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Vision == nil {
		return Diagnostic("magic mapping requires a vision system")
	}

	center := combatant.Position{}
	switch {
	case ctx.TargetPosition != nil:
		center = *ctx.TargetPosition
	case ctx.Caster != nil:
		center = ctx.Caster.Pos
	case ctx.Target != nil:
		center = ctx.Target.Pos
	}

	ctx.Vision.RevealAreaAsExplored(center, s.def.Range)
	state.Success = true
	messages.Log(message.ColourNone, "the surrounding area is revealed.")

	return Ok()
}

// cloneStep implements Clone: duplicates a clonable target at an adjacent
// walkable, unoccupied tile. The clone inherits faction (Team); glyph
// color and protection target are host-rendered concerns not modeled by
// Combatant and are left to the caller's EntityFactory/host layer.
type cloneStep struct {
	def StepDefinition
}

func buildClone(def StepDefinition) (Step, error) {
	return &cloneStep{def: def}, nil
}

var cloneOffsets = []combatant.Position{
	{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
	{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
}

func (s *cloneStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Target == nil || ctx.Map == nil || ctx.Entities == nil {
		return Diagnostic("clone requires target, map, and entity manager")
	}

	var spot combatant.Position
	found := false
	for _, off := range cloneOffsets {
		candidate := combatant.Position{X: ctx.Target.Pos.X + off.X, Y: ctx.Target.Pos.Y + off.Y}
		if !ctx.Map.IsInBounds(candidate) || !ctx.Map.IsWalkable(candidate) {
			continue
		}
		if ctx.Entities.IsPositionOccupied(candidate) {
			continue
		}
		spot = candidate
		found = true
		break
	}
	if !found {
		return PreconditionFailed("no room to clone %s", ctx.Target.Name)
	}

	clone := *ctx.Target
	clone.ID = uuid.NewString()
	clone.Pos = spot
	clone.CurrentHealth = clone.MaxHealth
	clone.CurrentWillpower = clone.MaxWillpower
	clone.AccumulatedTime = 0
	clone.RegenPoints = 0
	clone.WPRegenPoints = 0
	clone.FleeTurnsRemaining = 0
	clone.FleeTargetDistance = 0
	clone.Conditions = condition.NewManager()
	clone.Attacks = append([]combatant.AttackDefinition(nil), ctx.Target.Attacks...)
	clone.Skills = append([]combatant.Skill(nil), ctx.Target.Skills...)
	clone.Ammo = combatant.NewAmmoPool()
	for ammoType, n := range ctx.Target.Ammo {
		clone.Ammo.Add(ammoType, n)
	}

	ctx.Entities.AddEntity(&clone)
	state.Success = true
	messages.Log(message.ColourNone, "a copy of "+ctx.Target.Name+" appears.")

	return Ok()
}

// charmStep implements Charm: converts the target's faction to Player;
// idempotent when already player-factioned (explicit
// no-op-with-message testable property).
type charmStep struct {
	def StepDefinition
}

func buildCharm(def StepDefinition) (Step, error) {
	return &charmStep{def: def}, nil
}

func (s *charmStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Target == nil {
		return Diagnostic("charm step has no target")
	}

	if ctx.Target.Team == combatant.Player {
		messages.Log(message.ColourNone, ctx.Target.Name+" is already friendly.")
		return Ok()
	}

	ctx.Target.Team = combatant.Player
	state.Success = true
	messages.Log(message.ColourCondition, ctx.Target.Name+" is charmed.")

	return Ok()
}

// modifyWillpowerStep implements ModifyWillpower: positive amounts
// restore, negative amounts drain, respecting pool bounds.
type modifyWillpowerStep struct {
	def StepDefinition
}

func buildModifyWillpower(def StepDefinition) (Step, error) {
	return &modifyWillpowerStep{def: def}, nil
}

func (s *modifyWillpowerStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Target == nil {
		return Diagnostic("modify willpower step has no target")
	}

	changed := ctx.Target.RestoreWillpower(s.def.Amount)
	if changed != 0 {
		state.Success = true
		if changed > 0 {
			messages.Log(message.ColourHeal, ctx.Target.Name+" regains willpower.")
		} else {
			messages.Log(message.ColourDamage, ctx.Target.Name+" loses willpower.")
		}
	}

	return Ok()
}
