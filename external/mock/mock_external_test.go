// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package mock

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/stretchr/testify/assert"

	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
)

func TestMockMapSystem_IsWalkable(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockMapSystem(ctrl)

	pos := combatant.Position{X: 1, Y: 1}
	m.EXPECT().IsWalkable(pos).Return(true)

	assert.True(t, m.IsWalkable(pos))
}

func TestMockEntityManager_EntityAtPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockEntityManager(ctrl)

	pos := combatant.Position{X: 2, Y: 3}
	want := &combatant.Combatant{ID: "goblin-1"}
	m.EXPECT().EntityAtPosition(pos).Return(want, true)

	got, ok := m.EntityAtPosition(pos)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}
