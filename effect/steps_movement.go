// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package effect

import (
	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
	"github.com/spetersoncode/pits-of-despair-sub006/message"
)

func sign(n int) int {
	if n > 0 {
		return 1
	}
	if n < 0 {
		return -1
	}
	return 0
}

// knockbackStep implements Knockback.
type knockbackStep struct {
	def      StepDefinition
	registry *Registry
}

func buildKnockback(def StepDefinition) (Step, error) {
	return &knockbackStep{def: def, registry: NewRegistry()}, nil
}

func (s *knockbackStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Caster == nil || ctx.Target == nil || ctx.Map == nil || ctx.Entities == nil {
		return Diagnostic("knockback requires caster, target, map, and entity manager")
	}

	dx := sign(ctx.Target.Pos.X - ctx.Caster.Pos.X)
	dy := sign(ctx.Target.Pos.Y - ctx.Caster.Pos.Y)
	if dx == 0 && dy == 0 {
		messages.Log(message.ColourNone, ctx.Target.Name+" cannot be pushed.")
		return Ok()
	}

	distance := s.def.Distance
	pos := ctx.Target.Pos
	moved := 0

	var collidedEntity *combatant.Combatant
	wallCollision := false

	for i := 0; i < distance; i++ {
		next := combatant.Position{X: pos.X + dx, Y: pos.Y + dy}

		if !ctx.Map.IsInBounds(next) || !ctx.Map.IsWalkable(next) {
			wallCollision = true
			break
		}
		if entity, occupied := ctx.Entities.EntityAtPosition(next); occupied {
			collidedEntity = entity
			break
		}

		pos = next
		moved++
	}

	if moved == 0 && collidedEntity == nil && !wallCollision {
		messages.Log(message.ColourNone, ctx.Target.Name+" cannot be pushed.")
		return Ok()
	}

	ctx.Target.Pos = pos
	if moved > 0 {
		state.Success = true
		messages.Log(message.ColourNone, ctx.Target.Name+" is knocked back.")
	}

	if len(s.def.OnCollision) == 0 {
		return Ok()
	}

	subSteps := make([]Step, 0, len(s.def.OnCollision))
	for _, subDef := range s.def.OnCollision {
		step, err := s.registry.Build(subDef)
		if err != nil {
			return Diagnostic("knockback onCollision build error: %v", err)
		}
		subSteps = append(subSteps, step)
	}

	if collidedEntity != nil {
		RunSub(subSteps, &Context{
			Caster: ctx.Caster, Target: ctx.Target, Map: ctx.Map, Entities: ctx.Entities,
			Factory: ctx.Factory, Vision: ctx.Vision, Projectile: ctx.Projectile,
			Visual: ctx.Visual, Observers: ctx.Observers, SkillName: ctx.SkillName, RNG: ctx.RNG,
		}, messages, ctx.Target.ID)
		RunSub(subSteps, &Context{
			Caster: ctx.Caster, Target: collidedEntity, Map: ctx.Map, Entities: ctx.Entities,
			Factory: ctx.Factory, Vision: ctx.Vision, Projectile: ctx.Projectile,
			Visual: ctx.Visual, Observers: ctx.Observers, SkillName: ctx.SkillName, RNG: ctx.RNG,
		}, messages, collidedEntity.ID)
	} else if wallCollision {
		RunSub(subSteps, &Context{
			Caster: ctx.Caster, Target: ctx.Target, Map: ctx.Map, Entities: ctx.Entities,
			Factory: ctx.Factory, Vision: ctx.Vision, Projectile: ctx.Projectile,
			Visual: ctx.Visual, Observers: ctx.Observers, SkillName: ctx.SkillName, RNG: ctx.RNG,
		}, messages, ctx.Target.ID)
	}

	return Ok()
}

// blinkStep implements Blink: teleport to a random walkable, unoccupied
// tile within Chebyshev range.
type blinkStep struct {
	def StepDefinition
}

func buildBlink(def StepDefinition) (Step, error) {
	return &blinkStep{def: def}, nil
}

func (s *blinkStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Target == nil || ctx.Map == nil || ctx.Entities == nil {
		return Diagnostic("blink requires target, map, and entity manager")
	}

	rangeLimit := s.def.Range
	if rangeLimit <= 0 {
		rangeLimit = 5
	}

	candidates := make([]combatant.Position, 0)
	for _, tile := range ctx.Map.AllWalkableTiles() {
		if ctx.Target.Pos.ChebyshevDistance(tile) > rangeLimit {
			continue
		}
		if ctx.Entities.IsPositionOccupied(tile) {
			continue
		}
		candidates = append(candidates, tile)
	}

	if len(candidates) == 0 {
		messages.Log(message.ColourNone, ctx.Target.Name+" has nowhere to blink to.")
		return Ok()
	}

	dest := candidates[ctx.RNG.Intn(len(candidates))]
	ctx.Target.Pos = dest
	state.Success = true
	messages.Log(message.ColourNone, ctx.Target.Name+" blinks away.")

	return Ok()
}

// teleportStep implements Teleport: range <= 0 means anywhere on the map;
// otherwise range-limited. Player teleports with TeleportCompanions bring
// every player-faction entity within 3 tiles of the new position.
type teleportStep struct {
	def StepDefinition
}

func buildTeleport(def StepDefinition) (Step, error) {
	return &teleportStep{def: def}, nil
}

func (s *teleportStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Target == nil || ctx.Map == nil || ctx.Entities == nil {
		return Diagnostic("teleport requires target, map, and entity manager")
	}

	candidates := make([]combatant.Position, 0)
	for _, tile := range ctx.Map.AllWalkableTiles() {
		if s.def.Range > 0 && ctx.Target.Pos.ChebyshevDistance(tile) > s.def.Range {
			continue
		}
		if ctx.Entities.IsPositionOccupied(tile) {
			continue
		}
		candidates = append(candidates, tile)
	}

	if len(candidates) == 0 {
		messages.Log(message.ColourNone, ctx.Target.Name+" cannot be teleported.")
		return Ok()
	}

	dest := candidates[ctx.RNG.Intn(len(candidates))]
	ctx.Target.Pos = dest
	state.Success = true
	messages.Log(message.ColourNone, ctx.Target.Name+" teleports away.")

	if s.def.TeleportCompanions && ctx.Target.Team == combatant.Player {
		for _, e := range ctx.Entities.AllEntities() {
			if e.ID == ctx.Target.ID || e.Team != combatant.Player || !e.IsAlive() {
				continue
			}
			companionCandidates := make([]combatant.Position, 0)
			for _, tile := range ctx.Map.AllWalkableTiles() {
				if dest.ChebyshevDistance(tile) > 3 {
					continue
				}
				if ctx.Entities.IsPositionOccupied(tile) {
					continue
				}
				companionCandidates = append(companionCandidates, tile)
			}
			if len(companionCandidates) == 0 {
				continue
			}
			e.Pos = companionCandidates[ctx.RNG.Intn(len(companionCandidates))]
		}
	}

	return Ok()
}

// moveTilesStep implements MoveTiles: moves the caster toward
// TargetPosition, swapping with a friendly on the first tile, blocking on
// a hostile first tile, and stopping early on any non-first-tile entity.
type moveTilesStep struct {
	def StepDefinition
}

func buildMoveTiles(def StepDefinition) (Step, error) {
	return &moveTilesStep{def: def}, nil
}

func (s *moveTilesStep) Execute(ctx *Context, state *State, messages *message.Collector) Outcome {
	if ctx.Caster == nil || ctx.TargetPosition == nil || ctx.Map == nil || ctx.Entities == nil {
		return Diagnostic("move tiles requires caster, target position, map, and entity manager")
	}

	dx := sign(ctx.TargetPosition.X - ctx.Caster.Pos.X)
	dy := sign(ctx.TargetPosition.Y - ctx.Caster.Pos.Y)
	if dx == 0 && dy == 0 {
		return Ok()
	}

	pos := ctx.Caster.Pos
	for i := 0; i < s.def.Amount; i++ {
		next := combatant.Position{X: pos.X + dx, Y: pos.Y + dy}
		if !ctx.Map.IsInBounds(next) || !ctx.Map.IsWalkable(next) {
			break
		}

		entity, occupied := ctx.Entities.EntityAtPosition(next)
		if occupied {
			if i == 0 {
				if entity.Team.IsHostileTo(ctx.Caster.Team) {
					return PreconditionFailed("%s is blocked by %s", ctx.Caster.Name, entity.Name)
				}
				// Swap with the friendly entity on the first tile.
				entity.Pos = pos
				pos = next
				continue
			}
			break
		}

		pos = next
	}

	if pos != ctx.Caster.Pos {
		ctx.Caster.Pos = pos
		state.Success = true
	}

	return Ok()
}
