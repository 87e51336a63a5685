// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

import "errors"

// ErrNoMeleeAttack indicates a WeaponDamage step was invoked on a
// combatant with no melee AttackDefinition available.
var ErrNoMeleeAttack = errors.New("combatant: no melee attack available")
