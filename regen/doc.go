// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package regen implements the threshold-based health and willpower
// regeneration accumulators: a per-turn rate is
// added to a points counter, and every full 100 points converts to 1
// point of the underlying pool, with no stockpiling once the pool is
// full.
package regen
