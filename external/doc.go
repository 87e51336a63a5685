// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package external defines the capability interfaces the combat core
// consumes from its host: map queries, entity lookup/creation,
// vision, projectiles, visual effects, and a combat-signal observer. The
// core never implements these — it only calls through them — so the host
// game (level generation, rendering, AI) stays entirely outside this
// module's scope.
package external
