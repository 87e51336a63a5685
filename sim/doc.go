// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package sim is the offline Monte Carlo balance simulator: it drives the
// scheduler/attack/effect/condition/regen stack to completion across many
// seeded iterations of a duel, group fight, stat variation sweep, or
// roster matrix, and aggregates the results.
//
// Every iteration builds fresh Combatants and a fresh dice.Source from
// RunDuel's seed, so results are identical whether iterations run
// sequentially or across the bounded worker pool RunDuel uses internally.
package sim
