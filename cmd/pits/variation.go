// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/spetersoncode/pits-of-despair-sub006/sim"
)

// runVariationCmd varies a baseline creature's stats by named integer
// deltas and runs each variant against a fixed roster. Deltas are passed
// as repeated -vary "name:statDeltaSpec" flags, e.g.
// -vary "+2 endurance:endurance=2" -vary "-2 speed:speed=-2".
func runVariationCmd(args []string) error {
	fs := flag.NewFlagSet("variation", flag.ExitOnError)
	base, err := LoadConfig(peekConfigFlag(args))
	if err != nil {
		return err
	}
	flags := bindCommonFlags(fs, base)
	baselinePath := fs.String("baseline", "", "roster YAML file with exactly one creature to vary")
	fixedPath := fs.String("fixed", "", "roster YAML file the variants are run against")
	var varySpecs stringList
	fs.Var(&varySpecs, "vary", `variation as "name:field=delta[,field=delta...]"; fields: health,speed,strength,agility,endurance,will`)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *baselinePath == "" || *fixedPath == "" {
		return fmt.Errorf("variation requires -baseline and -fixed")
	}

	logger := newLogger(flags.verbose)
	baselineRoster, err := loadRoster(logger, *baselinePath)
	if err != nil {
		return err
	}
	if len(baselineRoster) != 1 {
		return fmt.Errorf("variation: -baseline must name a roster file with exactly one creature, got %d", len(baselineRoster))
	}
	fixed, err := loadRoster(logger, *fixedPath)
	if err != nil {
		return err
	}

	variations := make([]sim.Variation, 0, len(varySpecs)+1)
	variations = append(variations, sim.Variation{Name: "baseline", Mutate: func(r sim.RosterEntry) sim.RosterEntry { return r }})
	for _, raw := range varySpecs {
		v, err := parseVariation(raw)
		if err != nil {
			return err
		}
		variations = append(variations, v)
	}

	results, err := sim.RunVariation(context.Background(), sim.VariationSpec{
		Fixed: fixed, Baseline: baselineRoster[0], Variations: variations,
		Iterations: flags.iterations, Seed: flags.seed, MaxTurns: flags.maxTurns,
	})
	if err != nil {
		return err
	}
	return renderVariations(os.Stdout, flags.output, results)
}

// runVariationInlineCmd runs one inline JSON creature (passed via
// -creature) against a fixed roster — the CLI path for trying out a
// single stat block without writing a roster file.
func runVariationInlineCmd(args []string) error {
	fs := flag.NewFlagSet("variation-inline", flag.ExitOnError)
	base, err := LoadConfig(peekConfigFlag(args))
	if err != nil {
		return err
	}
	flags := bindCommonFlags(fs, base)
	creatureJSON := fs.String("creature", "", "inline creature JSON, e.g. {\"name\":\"Ogre\",\"health\":30,\"speed\":8,...}")
	fixedPath := fs.String("fixed", "", "roster YAML file the creature is run against")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *creatureJSON == "" || *fixedPath == "" {
		return fmt.Errorf("variation-inline requires -creature and -fixed")
	}

	logger := newLogger(flags.verbose)
	entry, err := loadInlineCreature(logger, *creatureJSON)
	if err != nil {
		return err
	}
	fixed, err := loadRoster(logger, *fixedPath)
	if err != nil {
		return err
	}

	report, err := sim.RunDuel(context.Background(), sim.DuelSpec{
		SideA: []sim.RosterEntry{entry}, SideB: fixed,
		Iterations: flags.iterations, Seed: flags.seed, MaxTurns: flags.maxTurns,
	})
	if err != nil {
		return err
	}
	return renderReport(os.Stdout, flags.output, entry.Definition.Name, report)
}
