// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"log/slog"

	"github.com/spetersoncode/pits-of-despair-sub006/combatant"
	"github.com/spetersoncode/pits-of-despair-sub006/sim"
)

// loadRoster loads and resolves every creature in a YAML roster file into
// RosterEntries, logging any unknown-field warnings at Debug rather than
// failing the load.
func loadRoster(logger *slog.Logger, path string) ([]sim.RosterEntry, error) {
	specs, warnings, err := sim.LoadRosterFile(path)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		logger.Debug("unknown field in roster file", "path", path, "warning", w)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("pits: roster file %s has no creatures", path)
	}

	entries := make([]sim.RosterEntry, len(specs))
	for i, spec := range specs {
		def, err := spec.Resolve()
		if err != nil {
			return nil, fmt.Errorf("pits: roster file %s: %w", path, err)
		}
		entries[i] = sim.RosterEntry{
			Definition: def,
			Pos:        combatant.Position{X: i, Y: 0},
		}
	}
	return entries, nil
}

// loadInlineCreature parses a single creature from an inline JSON string
// (the --creature flag) into one RosterEntry.
func loadInlineCreature(logger *slog.Logger, raw string) (sim.RosterEntry, error) {
	spec, warnings, err := sim.ParseInlineCreature([]byte(raw))
	if err != nil {
		return sim.RosterEntry{}, err
	}
	for _, w := range warnings {
		logger.Debug("unknown field in inline creature", "warning", w)
	}
	def, err := spec.Resolve()
	if err != nil {
		return sim.RosterEntry{}, fmt.Errorf("pits: inline creature: %w", err)
	}
	return sim.RosterEntry{Definition: def}, nil
}
