// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

import (
	"github.com/spetersoncode/pits-of-despair-sub006/condition"
	"github.com/spetersoncode/pits-of-despair-sub006/damage"
)

// Position is an integer grid coordinate.
type Position struct {
	X, Y int
}

// ChebyshevDistance returns max(|dx|, |dy|), the distance metric used for
// every range check in the combat core.
func (p Position) ChebyshevDistance(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// Skill is an opaque-to-the-core descriptor naming an ability a combatant
// can use; the effect pipeline looks up a Skill's pipeline definition by
// ID elsewhere (see effect.Registry). The combat core does not interpret
// Skill beyond carrying it.
type Skill struct {
	ID   string
	Name string
}

// Combatant is the unit of combat: identity, position, stats, derived
// attributes, pools, scheduler bookkeeping, and equipment-derived data.
type Combatant struct {
	// Identity.
	ID   string
	Name string
	Team Team

	// Position.
	Pos Position

	// Primary stats.
	Stats Stats

	// Derived attributes.
	Armor      int
	Evasion    int
	Speed      int
	RegenBonus int

	// Pools.
	MaxHealth        int
	CurrentHealth    int
	MaxWillpower     int
	CurrentWillpower int

	// Scheduler bookkeeping.
	AccumulatedTime int
	RegenPoints     int
	WPRegenPoints   int

	// Inventory-derived.
	Attacks []AttackDefinition
	Ammo    AmmoPool
	Skills  []Skill

	// Damage-type sets.
	Damage damage.Profile

	// Active conditions, keyed by TypeID inside the Manager.
	Conditions *condition.Manager

	// AI bookkeeping, opaque to the combat core beyond reset-on-respawn.
	FleeTurnsRemaining int
	FleeTargetDistance int

	// Decoration marks a target with no real combat stats (destructible
	// scenery routed through the Combatant shape for uniform handling).
	// Attack resolution treats a Decoration target's defense modifier as
	// -10 regardless of its zero-valued Stats/Evasion (near auto-hit).
	Decoration bool
}

// GetID returns the combatant's unique identifier.
func (c *Combatant) GetID() string { return c.ID }

// GetType returns the combatant's entity category, for callers that key
// behavior off a type tag rather than a concrete struct.
func (c *Combatant) GetType() string { return "combatant" }

// IsAlive reports whether the combatant has health remaining:
// currentHealth == 0 iff dead.
func (c *Combatant) IsAlive() bool {
	return c.CurrentHealth > 0
}

// Heal increases CurrentHealth by amount, clamped to MaxHealth, and
// returns the amount actually healed.
func (c *Combatant) Heal(amount int) int {
	if amount <= 0 || !c.IsAlive() {
		return 0
	}
	before := c.CurrentHealth
	c.CurrentHealth += amount
	if c.CurrentHealth > c.MaxHealth {
		c.CurrentHealth = c.MaxHealth
	}
	return c.CurrentHealth - before
}

// ApplyDamage reduces CurrentHealth by amount, never below zero, and
// returns the amount actually dealt (no overkill in the return).
func (c *Combatant) ApplyDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := c.CurrentHealth
	c.CurrentHealth -= amount
	if c.CurrentHealth < 0 {
		c.CurrentHealth = 0
	}
	return before - c.CurrentHealth
}

// RestoreWillpower increases CurrentWillpower by amount (amount may be
// negative to drain), clamped to [0, MaxWillpower], returning the signed
// change actually applied.
func (c *Combatant) RestoreWillpower(amount int) int {
	before := c.CurrentWillpower
	c.CurrentWillpower += amount
	if c.CurrentWillpower > c.MaxWillpower {
		c.CurrentWillpower = c.MaxWillpower
	}
	if c.CurrentWillpower < 0 {
		c.CurrentWillpower = 0
	}
	return c.CurrentWillpower - before
}

// PrimaryMeleeAttack returns the first Melee-kind AttackDefinition, if
// any. WeaponDamage steps use this to resolve the caster's weapon.
func (c *Combatant) PrimaryMeleeAttack() (AttackDefinition, bool) {
	for _, a := range c.Attacks {
		if a.Kind == Melee {
			return a, true
		}
	}
	return AttackDefinition{}, false
}
