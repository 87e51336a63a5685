// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Add_ReplacesNotStacks(t *testing.T) {
	m := NewManager()
	m.Add(Condition{TypeID: "poisoned", RemainingTurns: 3})
	m.Add(Condition{TypeID: "poisoned", RemainingTurns: 5})

	c, ok := m.Get("poisoned")
	require.True(t, ok)
	assert.Equal(t, 5, c.RemainingTurns)
	assert.Len(t, m.GetAll(), 1)
}

func TestManager_HasCondition(t *testing.T) {
	m := NewManager()
	assert.False(t, m.HasCondition("hexed"))
	m.Add(Condition{TypeID: "hexed", RemainingTurns: 1})
	assert.True(t, m.HasCondition("hexed"))
}

func TestManager_Tick_DecrementsAndExpires(t *testing.T) {
	m := NewManager()
	m.Add(Condition{TypeID: "hexed", RemainingTurns: 1})

	results := m.Tick("target-1")
	require.Len(t, results, 1)
	assert.True(t, results[0].Expired)
	assert.False(t, m.HasCondition("hexed"))
}

func TestManager_Tick_OnExpiredCallback(t *testing.T) {
	m := NewManager()
	var expiredFor string
	m.Add(Condition{
		TypeID:         "hexed",
		RemainingTurns: 1,
		OnExpired:      func(bearerID string) { expiredFor = bearerID },
	})

	m.Tick("target-1")
	assert.Equal(t, "target-1", expiredFor)
}

func TestManager_Tick_DoTDueReportedWithoutExpiry(t *testing.T) {
	m := NewManager()
	m.Add(Condition{
		TypeID:         "poisoned",
		RemainingTurns: 3,
		Tick:           &DoT{Dice: "1d4"},
	})

	results := m.Tick("target-1")
	require.Len(t, results, 1)
	assert.True(t, results[0].DoTDue)
	assert.False(t, results[0].Expired)

	c, ok := m.Get("poisoned")
	require.True(t, ok)
	assert.Equal(t, 2, c.RemainingTurns)
}

func TestManager_Remove(t *testing.T) {
	m := NewManager()
	m.Add(Condition{TypeID: "hexed", RemainingTurns: 5})
	m.Remove("hexed")
	assert.False(t, m.HasCondition("hexed"))
}

func TestManager_Clear(t *testing.T) {
	m := NewManager()
	m.Add(Condition{TypeID: "hexed", RemainingTurns: 5})
	m.Add(Condition{TypeID: "poisoned", RemainingTurns: 2})
	m.Clear()
	assert.Empty(t, m.GetAll())
}
