// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"os"
)

// runListCmd prints every creature in a roster file, one per line, as its
// id, name, health and speed.
func runListCmd(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	rosterPath := fs.String("roster", "", "roster YAML file")
	verbose := fs.Bool("verbose", false, "log unknown-field warnings")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *rosterPath == "" {
		return fmt.Errorf("list requires -roster")
	}

	logger := newLogger(*verbose)
	entries, err := loadRoster(logger, *rosterPath)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%s\t%s\thealth=%d speed=%d\n", e.Definition.ID, e.Definition.Name, e.Definition.Health, e.Definition.Speed)
	}
	return nil
}

// runInfoCmd prints one resolved creature's name, team, health, speed,
// stats and attacks, as Resolve produced them and before Build runs. The
// damage profile is not printed.
func runInfoCmd(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	rosterPath := fs.String("roster", "", "roster YAML file")
	name := fs.String("name", "", "creature name to print")
	verbose := fs.Bool("verbose", false, "log unknown-field warnings")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *rosterPath == "" || *name == "" {
		return fmt.Errorf("info requires -roster and -name")
	}

	logger := newLogger(*verbose)
	entries, err := loadRoster(logger, *rosterPath)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Definition.Name != *name {
			continue
		}
		def := e.Definition
		fmt.Fprintf(os.Stdout, "name: %s\nteam: %s\nhealth: %d\nspeed: %d\nstats: str=%d agi=%d end=%d will=%d\n",
			def.Name, def.Team, def.Health, def.Speed,
			def.Stats.Strength, def.Stats.Agility, def.Stats.Endurance, def.Stats.Will)
		for _, a := range def.Attacks {
			fmt.Fprintf(os.Stdout, "attack: %s (%s) %s %s, range=%d\n", a.Name, a.Kind, a.Dice, a.DamageType, a.Range)
		}
		return nil
	}
	return fmt.Errorf("info: no creature named %q in %s", *name, *rosterPath)
}
