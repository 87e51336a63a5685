// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotation_Valid(t *testing.T) {
	tests := []struct {
		notation string
		want     Spec
	}{
		{"2d6", Spec{Count: 2, Size: 6, Modifier: 0}},
		{"1d4+2", Spec{Count: 1, Size: 4, Modifier: 2}},
		{"3d8-1", Spec{Count: 3, Size: 8, Modifier: -1}},
		{"1d20", Spec{Count: 1, Size: 20, Modifier: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			got, err := ParseNotation(tt.notation)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNotation_Invalid(t *testing.T) {
	invalid := []string{"", "d6", "2d", "2x6", "0d6", "2d0", "2d6+", "2d6++1", " 2d6"}
	for _, notation := range invalid {
		t.Run(notation, func(t *testing.T) {
			_, err := ParseNotation(notation)
			assert.Error(t, err)
		})
	}
}

func TestSpec_MinMaxAverage(t *testing.T) {
	s, err := ParseNotation("2d6+1")
	require.NoError(t, err)

	assert.Equal(t, 3, s.Min())
	assert.Equal(t, 13, s.Max())
	assert.InDelta(t, 8.0, s.Average(), 0.001)
}

func TestSpec_String_RoundTrip(t *testing.T) {
	tests := []string{"2d6", "1d4+2", "3d8-1"}
	for _, notation := range tests {
		t.Run(notation, func(t *testing.T) {
			s, err := ParseNotation(notation)
			require.NoError(t, err)
			assert.Equal(t, notation, s.String())
		})
	}
}
