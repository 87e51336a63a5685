// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

import (
	"github.com/google/uuid"

	"github.com/spetersoncode/pits-of-despair-sub006/condition"
	"github.com/spetersoncode/pits-of-despair-sub006/damage"
)

// CreatureDefinition is the external, data-driven shape a Combatant is
// built from: base stats and attacks before any equipment is
// applied.
type CreatureDefinition struct {
	ID      string
	Name    string
	Team    Team
	Stats   Stats
	Speed   int
	Health  int
	Attacks []AttackDefinition
	Skills  []Skill
	Damage  damage.ProfileDefinition
}

// EquipmentItem contributes flat stat bonuses, optional replacement
// attacks, ammo stock, and damage-type set membership when equipped.
type EquipmentItem struct {
	Name string

	ArmorBonus   int
	EvasionBonus int
	SpeedBonus   int
	RegenBonus   int
	AmmoType     string
	AmmoCount    int

	// Attacks, if non-empty, replace the combatant's natural attacks
	// entirely: "merge... replacing natural attacks if at
	// least one weapon attack is provided, else retain natural attacks".
	Attacks []AttackDefinition

	Damage damage.ProfileDefinition
}

// baseWillpower is the willpower pool every combatant starts with before
// WillpowerBonus is added, mirroring the way maxHealth starts from
// def.Health. There is no per-definition willpower field to play that
// role, since every creature in this system shares the same baseline
// pool and only Will varies it.
const baseWillpower = 10

// Build constructs a Combatant from def and an equipment list, following
// the construction steps applying equipment on top of base stats.
func Build(def CreatureDefinition, equipment []EquipmentItem, pos Position) *Combatant {
	// Step 1: clone base stats (def.Stats is a value type, so assignment
	// below already copies).
	stats := def.Stats
	speed := def.Speed
	armor, evasion, regenBonus := 0, 0, 0
	ammo := NewAmmoPool()
	profile := damage.NewProfile()
	def.Damage.ApplyTo(&profile)

	attacks := def.Attacks
	replaced := false

	// Step 2: aggregate equipment.
	for _, item := range equipment {
		armor += item.ArmorBonus
		evasion += item.EvasionBonus
		speed += item.SpeedBonus
		regenBonus += item.RegenBonus
		if item.AmmoType != "" {
			ammo.Add(item.AmmoType, item.AmmoCount)
		}
		if len(item.Attacks) > 0 {
			if !replaced {
				attacks = nil
				replaced = true
			}
			attacks = append(attacks, item.Attacks...)
		}
		item.Damage.ApplyTo(&profile)
	}

	// Step 3: clamp speed >= 1.
	if speed < 1 {
		speed = 1
	}

	// Step 4: compute maxHealth and maxWillpower.
	maxHealth := def.Health + HealthBonus(stats.Endurance)
	maxWillpower := baseWillpower + WillpowerBonus(stats.Will)

	id := def.ID
	if id == "" {
		id = uuid.NewString()
	}

	return &Combatant{
		ID:               id,
		Name:             def.Name,
		Team:             def.Team,
		Pos:              pos,
		Stats:            stats,
		Armor:            armor,
		Evasion:          evasion,
		Speed:            speed,
		RegenBonus:       regenBonus,
		MaxHealth:        maxHealth,
		CurrentHealth:    maxHealth,
		MaxWillpower:     maxWillpower,
		CurrentWillpower: maxWillpower,
		Attacks:          attacks,
		Ammo:             ammo,
		Skills:           def.Skills,
		Damage:           profile,
		Conditions:       condition.NewManager(),
		// Step 5: scheduler counters reset to zero by the struct's zero
		// value; position supplied by the caller.
	}
}
