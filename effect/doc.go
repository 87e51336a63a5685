// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package effect implements the composable effect pipeline:
// an ordered list of steps sharing a mutable EffectState, driven by a
// Pipeline that honours state.Continue and supports isolated
// sub-pipelines for things like Knockback collisions.
//
// Steps are data-driven: a StepDefinition declares a step's Type string
// and parameters, and Build looks up a constructor in a static Registry
// keyed by that string — no reflection, no dictionary-of-types walking.
// Unknown step types are a ValidationError at Build time, not a runtime
// surprise.
package effect
