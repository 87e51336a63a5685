// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterYAML = `
creatures:
  - id: goblin
    name: Goblin
    team: hostile
    health: 14
    speed: 10
    attacks:
      - name: Shortsword
        kind: melee
        dice: 1d6+1
        damageType: slashing
  - name: Giant Rat
    team: hostile
    health: 7
    speed: 9
    attacks:
      - name: Bite
        dice: 1d4
        damageType: piercing
`

func TestLoadRosterFileParsesEveryCreature(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rosterYAML), 0o644))

	specs, warnings, err := LoadRosterFile(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, specs, 2)
	assert.Equal(t, "Goblin", specs[0].Name)
	assert.Equal(t, "Giant Rat", specs[1].Name)
}

func TestLoadRosterFileWarnsOnUnknownField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yaml")
	content := `
creatures:
  - name: Goblin
    team: hostile
    health: 14
    speed: 10
    loot: gold
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	specs, warnings, err := LoadRosterFile(path)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "loot")
}

func TestLoadRosterFileErrorsOnMissingFile(t *testing.T) {
	_, _, err := LoadRosterFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseInlineCreatureDecodesJSON(t *testing.T) {
	raw := []byte(`{"name": "Orc", "team": "hostile", "health": 20, "speed": 8}`)
	spec, warnings, err := ParseInlineCreature(raw)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "Orc", spec.Name)
}

func TestParseInlineCreatureWarnsOnUnknownField(t *testing.T) {
	raw := []byte(`{"name": "Orc", "team": "hostile", "health": 20, "speed": 8, "loot": "gold"}`)
	_, warnings, err := ParseInlineCreature(raw)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "loot")
}

func TestParseInlineCreatureErrorsOnInvalidJSON(t *testing.T) {
	_, _, err := ParseInlineCreature([]byte(`not json`))
	assert.Error(t, err)
}
