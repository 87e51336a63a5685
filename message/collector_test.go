// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollector_LogTagsCurrentEntity(t *testing.T) {
	c := NewCollector()
	c.SetCurrentEntity("goblin-1")
	c.Log(ColourDamage, "The goblin takes 4 damage.")

	entries := c.Entries()
	assert.Len(t, entries, 1)
	assert.Equal(t, "goblin-1", entries[0].EntityID)
	assert.Equal(t, ColourDamage, entries[0].Colour)
}

func TestCollector_SetCurrentEntity_SaveRestore(t *testing.T) {
	c := NewCollector()
	c.SetCurrentEntity("caster-1")

	previous := c.SetCurrentEntity("sub-target-1")
	c.Log(ColourNone, "sub-pipeline line")
	c.SetCurrentEntity(previous)
	c.Log(ColourNone, "back to caster")

	entries := c.Entries()
	assert.Equal(t, "sub-target-1", entries[0].EntityID)
	assert.Equal(t, "caster-1", entries[1].EntityID)
}

func TestCollector_LogFor_BypassesCursor(t *testing.T) {
	c := NewCollector()
	c.SetCurrentEntity("caster-1")
	c.LogFor("bystander-1", ColourDiagnostic, "bystander takes splash damage")

	entries := c.Entries()
	assert.Equal(t, "bystander-1", entries[0].EntityID)
}
