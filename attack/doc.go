// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package attack implements opposed-roll attack resolution:
// attacker/defense modifiers, the 2d6 opposed roll with attacker-wins-ties,
// raw damage calculation with strength bonus and armor, and damage
// application through the target's resistance profile.
package attack
