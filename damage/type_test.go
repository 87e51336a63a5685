// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package damage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType_Valid(t *testing.T) {
	tp, err := ParseType("fire")
	require.NoError(t, err)
	assert.Equal(t, Fire, tp)
}

func TestParseType_Unknown(t *testing.T) {
	_, err := ParseType("sonic")
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestType_Category(t *testing.T) {
	assert.Equal(t, CategoryPhysical, Slashing.Category())
	assert.Equal(t, CategoryElemental, Fire.Category())
	assert.Equal(t, CategoryMagical, Psychic.Category())
}

func TestAll_CoversEveryDefinedType(t *testing.T) {
	for _, tp := range All() {
		assert.True(t, tp.Valid())
	}
	assert.Len(t, All(), len(all))
}
