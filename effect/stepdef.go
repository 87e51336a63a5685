// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package effect

import "github.com/spetersoncode/pits-of-despair-sub006/damage"

// Step type strings, the Registry's lookup keys.
const (
	TypeSaveCheck       = "save_check"
	TypeAttackRoll      = "attack_roll"
	TypeDamage          = "damage"
	TypeWeaponDamage    = "weapon_damage"
	TypeHeal            = "heal"
	TypeHealCaster      = "heal_caster"
	TypeApplyCondition  = "apply_condition"
	TypeApplyBrand      = "apply_brand"
	TypeApplyPrepare    = "apply_prepare"
	TypeKnockback       = "knockback"
	TypeBlink           = "blink"
	TypeTeleport        = "teleport"
	TypeMoveTiles       = "move_tiles"
	TypeSpawnHazard     = "spawn_hazard"
	TypeMagicMapping    = "magic_mapping"
	TypeChainDamage     = "chain_damage"
	TypeClone           = "clone"
	TypeCharm           = "charm"
	TypeModifyWillpower = "modify_willpower"
)

// StepDefinition is the declarative, data-driven description of one
// pipeline step. Every field beyond Type is optional and interpreted
// according to Type; a field a given step type doesn't use is ignored.
type StepDefinition struct {
	Type string

	// SaveCheck / shared opposed-roll fields.
	SaveStat      string // "strength" | "agility" | "endurance" | "will"
	AttackStat    string
	Modifier      int
	StopOnSuccess bool
	HalfOnSuccess bool
	StopOnMiss    bool

	// AttackRoll.
	AttackKind string // "melee" | "ranged", defaults to "melee"

	// Damage / Heal.
	Dice          string
	Flat          int
	DamageType    damage.Type
	StatScale     string
	StatMultiplier float64
	ArmorPiercing bool
	HalfOnSave    bool
	Percent       float64

	// HealCaster.
	VampiricFraction float64

	// ApplyCondition.
	ConditionTypeID       string
	ConditionName         string
	ConditionDuration     int
	RequireSaveFailed     bool
	RequireDamageDealt    bool
	TickDice              string
	TickDamageType        damage.Type
	TickArmorPiercing     bool

	// ApplyBrand / ApplyPrepare.
	Slot         string
	PropertyName string
	Duration     int
	HitBonus     int
	DamageBonus  int
	Arc          bool

	// Knockback / Blink / Teleport / MoveTiles.
	Distance           int
	Range              int
	TeleportCompanions bool
	Amount             int

	// SpawnHazard.
	HazardType   string
	HazardRadius int

	// ChainDamage.
	BounceRange    int
	MaxBounces     int
	DamageFalloff  float64

	// Sub-pipeline, used by Knockback's onCollision.
	OnCollision []StepDefinition
}
