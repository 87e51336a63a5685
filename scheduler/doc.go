// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler implements the turn scheduler: per-combatant speed
// converted to a weighted-rounded action delay, time accumulation, and
// deterministic next-ready selection.
//
// Scheduling is single-threaded and cooperative: there are no
// worker goroutines, a step never suspends mid-execution, and all
// randomness flows through an injected dice.Source so a run is fully
// reproducible from its seed.
package scheduler
