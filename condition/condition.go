// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package condition

import "github.com/spetersoncode/pits-of-despair-sub006/damage"

// DoT is the optional per-turn tick payload a Condition carries: damage
// dice and type, plus an armor-piercing flag. Empty Dice means no DoT.
type DoT struct {
	Dice          string
	DamageType    damage.Type
	ArmorPiercing bool
}

// Condition is a time-bounded behavioural modifier. Durations are always
// stored as resolved integer turns at application time, never as raw
// dice strings.
type Condition struct {
	// TypeID identifies the kind of condition ("poisoned", "primed_smite",
	// "hexed"). At most one instance per TypeID is active on a bearer at
	// once; re-application replaces rather than stacks.
	TypeID string
	// Name is the display name shown in messages.
	Name string
	// RemainingTurns counts down to zero. A Condition with RemainingTurns
	// <= 0 is expired and removed on the next Tick.
	RemainingTurns int
	// Tick is the optional damage-over-time payload, applied each turn
	// boundary before RemainingTurns is decremented.
	Tick *DoT
	// SourceID is the stable entity id of whoever applied this condition,
	// for kill attribution. Empty if the condition has no attributable
	// source (e.g. an environmental hazard).
	SourceID string
	// OnExpired, if set, is invoked once when RemainingTurns reaches zero
	// and the condition is removed. It receives the bearer's entity id.
	OnExpired func(bearerID string)

	// HitBonus and DamageBonus are added to the bearer's next attack
	// roll and damage roll respectively, for "prepare" style conditions
	// (e.g. primed smite). Zero for conditions that carry no such bonus.
	HitBonus    int
	DamageBonus int
	// Arc marks a prepare condition as applying to every attack for the
	// remainder of its duration rather than being consumed by the first.
	Arc bool
}

// Expired reports whether the condition's duration has run out.
func (c Condition) Expired() bool {
	return c.RemainingTurns <= 0
}
