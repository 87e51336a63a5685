// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dice provides deterministic, seeded random number generation and
// dice-notation parsing for the combat core.
//
// Purpose:
// Every roll in the combat core — attack rolls, damage, saves, scheduler
// delay rounding — flows through a single Source. Two
// Sources constructed with the same seed produce identical sequences
// indefinitely, which is what lets the Monte Carlo balance simulator
// reproduce a run bit-for-bit from a seed.
//
// Scope:
//   - Source: the seeded, reproducible uniform random primitive
//   - Roller: integer die rolls built on a Source
//   - Notation parsing for "NdM+K" strings
//   - Pool/Result for reusable, re-rollable dice expressions
//   - WeightedRound, the zero-bias fractional rounding used by the scheduler
//
// Non-Goals:
//   - Cryptographic randomness: reproducibility is the point, not security
//   - Roll interpretation (criticals, exploding dice): that is attack-layer logic
//   - Probability analysis: use an external statistics package for that
package dice
