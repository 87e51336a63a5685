// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package sim

import (
	"github.com/spetersoncode/pits-of-despair-sub006/attack"
	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
	"github.com/spetersoncode/pits-of-despair-sub006/dice"
	"github.com/spetersoncode/pits-of-despair-sub006/effect"
	"github.com/spetersoncode/pits-of-despair-sub006/message"
	"github.com/spetersoncode/pits-of-despair-sub006/regen"
	"github.com/spetersoncode/pits-of-despair-sub006/scheduler"
)

// defaultMaxTurns bounds an iteration that never reaches one-team
// victory (a draw neither side's attacks can resolve, e.g. from
// pacifistic stat spreads). Exceeding it reports the iteration as a
// capped draw rather than looping the scheduler forever.
const defaultMaxTurns = 200

// basicAttackSteps is the fixed two-step pipeline ("does this hit,
// then how much does it deal") every combatant's turn runs. Creatures
// with richer skills route through their own StepDefinitions elsewhere;
// the simulator's baseline turn only exercises a creature's primary
// attack, matching a duel/group scenario's "who wins a straight fight"
// question.
var basicAttackSteps = []effect.StepDefinition{
	{Type: effect.TypeAttackRoll, StopOnMiss: true},
	{Type: effect.TypeWeaponDamage},
}

// runIteration drives one complete encounter from a fresh build of
// sideA/sideB to one-team victory, a draw, or maxTurns, whichever comes
// first.
func runIteration(sideA, sideB []RosterEntry, seed int64, maxTurns int) IterationResult {
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}

	rng := dice.NewSource(seed)
	roller, _ := dice.NewRoller(rng) // rng is never nil; error path unreachable

	combatantsA := buildRoster(sideA)
	combatantsB := buildRoster(sideB)
	all := append(append([]*combatant.Combatant{}, combatantsA...), combatantsB...)

	registry := effect.NewRegistry()
	pipeline, err := registry.BuildPipeline(basicAttackSteps)
	if err != nil {
		// basicAttackSteps is a fixed, known-good definition; a build
		// failure here means a Registry constructor was removed without
		// updating this package.
		panic("sim: basic attack pipeline failed to build: " + err.Error())
	}

	order := scheduler.NewTurnOrder(all, 1.0, rng)
	messages := message.NewCollector()

	result := IterationResult{Seed: seed}

	for turns := 0; ; turns++ {
		if turns >= maxTurns {
			result.Winner = WinnerDraw
			result.Capped = true
			break
		}

		actor, ok := order.Next()
		if !ok {
			result.Winner = winnerOf(combatantsA, combatantsB)
			break
		}

		regen.HP(actor)
		regen.WP(actor)
		applyConditionTicks(actor, roller)

		if !actor.IsAlive() {
			continue
		}

		target := nearestLivingHostile(actor, all)
		if target == nil {
			continue
		}

		state := effect.NewState()
		ctx := &effect.Context{Caster: actor, Target: target, RNG: rng}
		pipeline.Run(ctx, state, messages)

		if sideOf(actor, combatantsA) {
			result.DamageDealtA += state.DamageDealt
		} else {
			result.DamageDealtB += state.DamageDealt
		}

		result.Turns = turns + 1
	}

	result.SurvivorsA = countLiving(combatantsA)
	result.SurvivorsB = countLiving(combatantsB)
	return result
}

// applyConditionTicks ticks every active condition on c, applying any due
// DoT through the same damage-modifier path an attack step uses.
func applyConditionTicks(c *combatant.Combatant, roller *dice.Roller) {
	for _, tr := range c.Conditions.Tick(c.ID) {
		if !tr.DoTDue || tr.Condition.Tick == nil {
			continue
		}
		dot := tr.Condition.Tick
		total, err := dice.RollNotation(dot.Dice, roller)
		if err != nil {
			continue
		}
		// DoT ticks have no armor to pierce or not; ArmorPiercing only
		// distinguishes weapon attacks that do subtract armor first.
		attack.ApplyDamage(c, total, dot.DamageType)
	}
}

// nearestLivingHostile finds the closest living combatant actor is
// hostile to, breaking ties by earliest position in all (stable, not
// randomized — target selection is not itself a source of
// nondeterminism beyond the RNG already flowing through attack rolls).
func nearestLivingHostile(actor *combatant.Combatant, all []*combatant.Combatant) *combatant.Combatant {
	var best *combatant.Combatant
	bestDist := -1
	for _, c := range all {
		if c == actor || !c.IsAlive() || !actor.Team.IsHostileTo(c.Team) {
			continue
		}
		d := actor.Pos.ChebyshevDistance(c.Pos)
		if best == nil || d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

func sideOf(c *combatant.Combatant, side []*combatant.Combatant) bool {
	for _, s := range side {
		if s == c {
			return true
		}
	}
	return false
}

func winnerOf(sideA, sideB []*combatant.Combatant) Winner {
	aAlive := countLiving(sideA) > 0
	bAlive := countLiving(sideB) > 0
	switch {
	case aAlive && !bAlive:
		return WinnerSideA
	case bAlive && !aAlive:
		return WinnerSideB
	default:
		return WinnerDraw
	}
}

func countLiving(side []*combatant.Combatant) int {
	n := 0
	for _, c := range side {
		if c.IsAlive() {
			n++
		}
	}
	return n
}
