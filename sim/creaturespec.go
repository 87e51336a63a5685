// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package sim

import (
	"fmt"

	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
	"github.com/spetersoncode/pits-of-despair-sub006/damage"
)

// CreatureSpec is the data-file shape a roster entry is parsed from —
// YAML roster files and inline JSON creatures both decode into this same
// struct, so validation and resolution run exactly once regardless of
// source.
type CreatureSpec struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Team   string `yaml:"team" json:"team"`
	Health int    `yaml:"health" json:"health"`
	Speed  int    `yaml:"speed" json:"speed"`

	Strength  int `yaml:"strength" json:"strength"`
	Agility   int `yaml:"agility" json:"agility"`
	Endurance int `yaml:"endurance" json:"endurance"`
	Will      int `yaml:"will" json:"will"`

	Attacks []AttackSpec `yaml:"attacks" json:"attacks"`

	Immunities      []string `yaml:"immunities" json:"immunities"`
	Vulnerabilities []string `yaml:"vulnerabilities" json:"vulnerabilities"`
	Resistances     []string `yaml:"resistances" json:"resistances"`

	// Threat is reporting-only: the simulator's aggregate output may
	// group by it, but no combat-core calculation reads it.
	Threat string `yaml:"threat" json:"threat"`
}

// AttackSpec is the data-file shape of one AttackDefinition.
type AttackSpec struct {
	Name       string `yaml:"name" json:"name"`
	Kind       string `yaml:"kind" json:"kind"`
	Dice       string `yaml:"dice" json:"dice"`
	DamageType string `yaml:"damageType" json:"damageType"`
	Range      int    `yaml:"range" json:"range"`
}

// Resolve validates s and converts it into a combatant.CreatureDefinition.
// Every field is checked regardless of whether s came from a YAML roster
// file or an inline JSON creature.
func (s CreatureSpec) Resolve() (combatant.CreatureDefinition, error) {
	if s.Name == "" {
		return combatant.CreatureDefinition{}, fmt.Errorf("creature %q: name is required", s.ID)
	}
	if s.Health <= 0 {
		return combatant.CreatureDefinition{}, fmt.Errorf("creature %q: health must be > 0, got %d", s.Name, s.Health)
	}
	if s.Speed <= 0 {
		return combatant.CreatureDefinition{}, fmt.Errorf("creature %q: speed must be > 0, got %d", s.Name, s.Speed)
	}

	team, err := resolveTeam(s.Team)
	if err != nil {
		return combatant.CreatureDefinition{}, fmt.Errorf("creature %q: %w", s.Name, err)
	}

	attacks := make([]combatant.AttackDefinition, len(s.Attacks))
	for i, a := range s.Attacks {
		resolved, err := a.resolve()
		if err != nil {
			return combatant.CreatureDefinition{}, fmt.Errorf("creature %q: attack %d: %w", s.Name, i, err)
		}
		attacks[i] = resolved
	}

	profile, err := resolveProfile(s.Immunities, s.Vulnerabilities, s.Resistances)
	if err != nil {
		return combatant.CreatureDefinition{}, fmt.Errorf("creature %q: %w", s.Name, err)
	}

	return combatant.CreatureDefinition{
		ID:   s.ID,
		Name: s.Name,
		Team: team,
		Stats: combatant.Stats{
			Strength:  s.Strength,
			Agility:   s.Agility,
			Endurance: s.Endurance,
			Will:      s.Will,
		},
		Speed:   s.Speed,
		Health:  s.Health,
		Attacks: attacks,
		Damage:  profile,
	}, nil
}

func (a AttackSpec) resolve() (combatant.AttackDefinition, error) {
	if a.Dice == "" {
		return combatant.AttackDefinition{}, fmt.Errorf("dice notation is required")
	}
	kind := combatant.Melee
	if a.Kind == string(combatant.Ranged) {
		kind = combatant.Ranged
	} else if a.Kind != "" && a.Kind != string(combatant.Melee) {
		return combatant.AttackDefinition{}, fmt.Errorf("unknown attack kind %q", a.Kind)
	}
	dmgType, err := damage.ParseType(a.DamageType)
	if err != nil {
		return combatant.AttackDefinition{}, err
	}
	return combatant.AttackDefinition{
		Name:       a.Name,
		Kind:       kind,
		Dice:       a.Dice,
		DamageType: dmgType,
		Range:      a.Range,
	}, nil
}

func resolveTeam(raw string) (combatant.Team, error) {
	switch combatant.Team(raw) {
	case combatant.Player, combatant.Hostile, combatant.Neutral:
		return combatant.Team(raw), nil
	case "":
		return combatant.Hostile, nil
	default:
		return "", fmt.Errorf("unknown team %q", raw)
	}
}

func resolveProfile(immunities, vulnerabilities, resistances []string) (damage.ProfileDefinition, error) {
	imm, err := parseTypes(immunities)
	if err != nil {
		return damage.ProfileDefinition{}, err
	}
	vuln, err := parseTypes(vulnerabilities)
	if err != nil {
		return damage.ProfileDefinition{}, err
	}
	res, err := parseTypes(resistances)
	if err != nil {
		return damage.ProfileDefinition{}, err
	}
	return damage.ProfileDefinition{Immunities: imm, Vulnerabilities: vuln, Resistances: res}, nil
}

func parseTypes(raw []string) ([]damage.Type, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	types := make([]damage.Type, len(raw))
	for i, r := range raw {
		t, err := damage.ParseType(r)
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return types, nil
}
