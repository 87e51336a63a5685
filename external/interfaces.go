// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package external

import "github.com/spetersoncode/pits-of-despair-sub006/combatant"

// MapSystem answers walkability and bounds queries. The pipeline treats
// the map as read-only except where a step explicitly creates a hazard or
// reveals exploration bits (via VisionSystem).
type MapSystem interface {
	IsInBounds(pos combatant.Position) bool
	IsWalkable(pos combatant.Position) bool
	AllWalkableTiles() []combatant.Position
}

// EntityManager owns every live Combatant. Pipeline steps borrow
// combatants mutably one at a time; EntityManager itself never mutates a
// Combatant on the pipeline's behalf.
type EntityManager interface {
	EntityAtPosition(pos combatant.Position) (*combatant.Combatant, bool)
	IsPositionOccupied(pos combatant.Position) bool
	AllEntities() []*combatant.Combatant
	AddEntity(c *combatant.Combatant)
}

// EntityFactory creates new creatures and items by definition id, e.g. the
// hazard SpawnHazard places. A nil return with ok=false
// means the id was not recognized — a ValidationError-kind failure at the
// caller's discretion.
type EntityFactory interface {
	CreateCreature(defID string, pos combatant.Position) (*combatant.Combatant, bool)
	CreateItem(defID string, pos combatant.Position) (*combatant.Combatant, bool)
}

// VisionSystem exposes exploration-bit mutation for the MagicMapping step.
type VisionSystem interface {
	RevealAreaAsExplored(center combatant.Position, radius int)
}

// ProjectileKind names the visual/logical kind of a spawned projectile;
// the core does not interpret it beyond passing it to the host.
type ProjectileKind string

// ImpactCallback is invoked synchronously when a projectile notionally
// arrives. Hosts without a real flight animation call it immediately; the
// combat core never awaits it ("callbacks must run synchronously
// on the same thread").
type ImpactCallback func(impactPos combatant.Position)

// ProjectileSystem spawns a projectile whose arrival triggers a callback.
type ProjectileSystem interface {
	SpawnProjectileWithCallback(from, to combatant.Position, kind ProjectileKind, onImpact ImpactCallback, sourceID string)
}

// VisualEffectSystem is an optional, fire-and-forget sink for purely
// cosmetic output. The core never awaits it and a nil VisualEffectSystem
// is always safe to skip (callers should guard with a nil check rather
// than requiring a no-op implementation).
type VisualEffectSystem interface {
	SpawnProjectile(from, to combatant.Position, kind ProjectileKind)
	SpawnExplosion(center combatant.Position, radius int)
}

// Signal is one combat-event notification broadcast to CombatObservers.
// Kind is one of the constants below; Amount and SourceLabel are
// populated according to Kind.
type Signal struct {
	Kind        SignalKind
	AttackerID  string
	TargetID    string
	Amount      int
	SourceLabel string
}

// SignalKind enumerates the signals a CombatObserver can receive.
type SignalKind string

const (
	SignalAttackHit        SignalKind = "attack_hit"
	SignalAttackBlocked    SignalKind = "attack_blocked"
	SignalSkillDamageDealt SignalKind = "skill_damage_dealt"
)

// CombatObserver is a pure sink: it must not mutate combat state. The
// pipeline broadcasts Signals to every registered observer and never
// inspects a return value (signal-style
// notification).
type CombatObserver interface {
	OnSignal(s Signal)
}
