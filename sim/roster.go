// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package sim

import (
	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
)

// RosterEntry pairs a CreatureDefinition with the equipment it enters the
// encounter wearing and its starting position. Build turns it into a live
// Combatant.
type RosterEntry struct {
	Definition combatant.CreatureDefinition
	Equipment  []combatant.EquipmentItem
	Pos        combatant.Position
}

// Build constructs a fresh Combatant for this entry. Called once per
// iteration so no mutable state survives between iterations.
func (e RosterEntry) Build() *combatant.Combatant {
	return combatant.Build(e.Definition, e.Equipment, e.Pos)
}

// buildRoster constructs one Combatant per entry, in order.
func buildRoster(entries []RosterEntry) []*combatant.Combatant {
	roster := make([]*combatant.Combatant, len(entries))
	for i, e := range entries {
		roster[i] = e.Build()
	}
	return roster
}
