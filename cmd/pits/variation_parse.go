// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spetersoncode/pits-of-despair-sub006/sim"
)

// parseVariation parses a "-vary" flag value of the form
// "name:field=delta[,field=delta...]" into a sim.Variation that applies
// the named integer deltas to a copy of the baseline RosterEntry's stats.
func parseVariation(raw string) (sim.Variation, error) {
	name, rest, ok := strings.Cut(raw, ":")
	if !ok || name == "" || rest == "" {
		return sim.Variation{}, fmt.Errorf("pits: invalid -vary %q, want \"name:field=delta[,...]\"", raw)
	}

	deltas := map[string]int{}
	for _, pair := range strings.Split(rest, ",") {
		field, valueStr, ok := strings.Cut(pair, "=")
		if !ok {
			return sim.Variation{}, fmt.Errorf("pits: invalid -vary field %q in %q", pair, raw)
		}
		value, err := strconv.Atoi(valueStr)
		if err != nil {
			return sim.Variation{}, fmt.Errorf("pits: invalid -vary delta %q in %q: %w", valueStr, raw, err)
		}
		field = strings.ToLower(strings.TrimSpace(field))
		if !variationFields[field] {
			return sim.Variation{}, fmt.Errorf("pits: unknown -vary field %q (want one of health,speed,strength,agility,endurance,will)", field)
		}
		deltas[field] = value
	}

	return sim.Variation{
		Name: name,
		Mutate: func(r sim.RosterEntry) sim.RosterEntry {
			def := r.Definition
			def.Health += deltas["health"]
			def.Speed += deltas["speed"]
			def.Stats.Strength += deltas["strength"]
			def.Stats.Agility += deltas["agility"]
			def.Stats.Endurance += deltas["endurance"]
			def.Stats.Will += deltas["will"]
			r.Definition = def
			return r
		},
	}, nil
}

var variationFields = map[string]bool{
	"health": true, "speed": true, "strength": true,
	"agility": true, "endurance": true, "will": true,
}
