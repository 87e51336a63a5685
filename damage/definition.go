// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package damage

// ProfileDefinition is the data-file shape for a creature or item's
// damage-type sets (unresolved Type strings are validated with ParseType
// at load time, before a ProfileDefinition is ever constructed). It
// exists so CreatureDefinition and EquipmentItem in the combatant package
// can express damage-type membership without importing the Profile's
// internal map representation directly, and so combatant.Build can union
// several definitions into one aggregate Profile via ApplyTo.
type ProfileDefinition struct {
	Immunities      []Type
	Vulnerabilities []Type
	Resistances     []Type
}

// ApplyTo unions d's sets into p in place.
func (d ProfileDefinition) ApplyTo(p *Profile) {
	for _, t := range d.Immunities {
		p.AddImmunity(t)
	}
	for _, t := range d.Vulnerabilities {
		p.AddVulnerability(t)
	}
	for _, t := range d.Resistances {
		p.AddResistance(t)
	}
}
