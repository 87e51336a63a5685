// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package combatant defines the Combatant state model — identity, stats,
// derived attributes, pools, scheduler bookkeeping, and equipment-derived
// data — and the factory that builds a Combatant from a CreatureDefinition
// plus an equipment list.
//
// A Combatant is mutated exclusively by the scheduler, regeneration, and
// effect pipeline packages; this package only defines the shape and the
// construction-time aggregation rules.
package combatant
