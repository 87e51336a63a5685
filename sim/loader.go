// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package sim

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RosterFile is the top-level shape of a YAML roster file: a list of
// creatures, each carrying its own team. It holds no equipment or
// starting positions.
type RosterFile struct {
	Creatures []CreatureSpec `yaml:"creatures"`
}

// LoadRosterFile reads and parses a YAML roster file from path,
// returning its CreatureSpecs (not yet passed through Resolve) and any
// unknown-field warnings encountered (warnings never fail the load, matching the
// forward-compatible warn-don't-fail convention used elsewhere in this
// codebase's config loading).
func LoadRosterFile(path string) ([]CreatureSpec, []string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("sim: read roster file: %w", err)
	}

	var file RosterFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, nil, fmt.Errorf("sim: parse roster file %s: %w", path, err)
	}

	warnings := unknownYAMLFields(raw, rosterFileKnownFields)
	return file.Creatures, warnings, nil
}

// ParseInlineCreature parses a single creature from an inline JSON
// document (the shape used by the CLI's variation-inline subcommand).
// Like LoadRosterFile it does not call Resolve; the returned spec goes
// through the same Resolve validation a roster-file entry does.
func ParseInlineCreature(raw []byte) (CreatureSpec, []string, error) {
	var spec CreatureSpec
	dec := json.NewDecoder(bytesReader(raw))
	if err := dec.Decode(&spec); err != nil {
		return CreatureSpec{}, nil, fmt.Errorf("sim: parse inline creature: %w", err)
	}

	warnings := unknownJSONFields(raw, creatureSpecKnownFields)
	return spec, warnings, nil
}
