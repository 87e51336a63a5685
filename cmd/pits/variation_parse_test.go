// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
	"github.com/spetersoncode/pits-of-despair-sub006/sim"
)

func TestParseVariationAppliesNamedDeltas(t *testing.T) {
	v, err := parseVariation("tankier:health=5,endurance=2")
	require.NoError(t, err)
	assert.Equal(t, "tankier", v.Name)

	base := sim.RosterEntry{Definition: combatant.CreatureDefinition{Health: 10, Stats: combatant.Stats{Endurance: 1}}}
	varied := v.Mutate(base)
	assert.Equal(t, 15, varied.Definition.Health)
	assert.Equal(t, 3, varied.Definition.Stats.Endurance)
	// Mutate must not have touched the original.
	assert.Equal(t, 10, base.Definition.Health)
}

func TestParseVariationRejectsMalformedSpec(t *testing.T) {
	_, err := parseVariation("missing-colon")
	assert.Error(t, err)
}

func TestParseVariationRejectsUnknownField(t *testing.T) {
	_, err := parseVariation("x:luck=1")
	assert.Error(t, err)
}

func TestParseVariationRejectsNonIntegerDelta(t *testing.T) {
	_, err := parseVariation("x:health=abc")
	assert.Error(t, err)
}
