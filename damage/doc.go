// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package damage defines the closed set of damage types the combat core
// understands, the Category grouping used for display and loot filtering,
// and the resistance/vulnerability/immunity modifier lookup every attack
// and condition tick goes through.
//
// Unlike a rulebook-agnostic placeholder, this package's Type is a closed
// Go enum: the combat core is a single game with a fixed list of damage
// types, so validation can reject unknown types at load time instead of
// accepting any string a data file happens to contain.
package damage
