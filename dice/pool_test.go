// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool_InvalidNotation(t *testing.T) {
	roller, err := NewRoller(NewSource(1))
	require.NoError(t, err)

	_, err = NewPool("bogus", roller)
	require.ErrorIs(t, err, ErrInvalidNotation)
}

func TestPool_Roll_WithinBounds(t *testing.T) {
	roller, err := NewRoller(NewSource(3))
	require.NoError(t, err)

	pool, err := NewPool("3d6+2", roller)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		result, err := pool.Roll()
		require.NoError(t, err)
		assert.Len(t, result.Rolls, 3)
		assert.GreaterOrEqual(t, result.Total, pool.Spec().Min())
		assert.LessOrEqual(t, result.Total, pool.Spec().Max())
	}
}

func TestRollNotation_DeterministicUnderFixedSource(t *testing.T) {
	roller, err := NewRoller(NewFixedSource(0, 0.0))
	require.NoError(t, err)

	total, err := RollNotation("2d6+1", roller)
	require.NoError(t, err)
	assert.Equal(t, 3, total) // two minimum (1+1) faces plus modifier 1
}
