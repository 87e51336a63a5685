// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package effect

import (
	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
	"github.com/spetersoncode/pits-of-despair-sub006/dice"
	"github.com/spetersoncode/pits-of-despair-sub006/external"
	"github.com/spetersoncode/pits-of-despair-sub006/message"
)

// Context is the per-pipeline-execution bundle of collaborators: the
// caster and target, an optional target position for AoE, back-references
// to the host's external systems, the originating skill name, and the
// shared randomness source.
type Context struct {
	Caster         *combatant.Combatant // optional; nil for environmental effects
	Target         *combatant.Combatant
	TargetPosition *combatant.Position // optional; set for AoE-centered effects

	Map        external.MapSystem
	Entities   external.EntityManager
	Factory    external.EntityFactory
	Vision     external.VisionSystem
	Projectile external.ProjectileSystem
	Visual     external.VisualEffectSystem // optional
	Observers  *external.Broadcaster       // optional

	SkillName string
	RNG       dice.Source
}

// State is the per-execution mutable record shared by every step in one
// pipeline. A fresh State is created for each
// top-level pipeline and for each independently-scoped sub-pipeline.
type State struct {
	Success bool
	// Continue defaults to true; a step that sets it false terminates
	// the pipeline after that step returns.
	Continue bool

	AttackHit    bool
	AttackMissed bool

	SaveSucceeded bool
	SaveFailed    bool

	DamageDealt int

	// PreparedDamageBonus carries the DamageBonus of a prepare condition
	// the attack-roll step consumed off the caster this execution, for a
	// later damage step in the same pipeline to add in. Zero when no
	// prepare condition was active.
	PreparedDamageBonus int
}

// NewState returns a State with Continue initialized to true, ready for a
// fresh pipeline execution.
func NewState() *State {
	return &State{Continue: true}
}
