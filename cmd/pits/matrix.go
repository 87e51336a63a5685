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

// runMatrixCmd runs every distinct pairing among a set of single-creature
// roster files against each other once.
func runMatrixCmd(args []string) error {
	fs := flag.NewFlagSet("matrix", flag.ExitOnError)
	base, err := LoadConfig(peekConfigFlag(args))
	if err != nil {
		return err
	}
	flags := bindCommonFlags(fs, base)
	var rosterPaths stringList
	fs.Var(&rosterPaths, "roster", "single-creature roster YAML file; repeat for each entrant")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(rosterPaths) < 2 {
		return fmt.Errorf("matrix requires at least two -roster flags")
	}

	logger := newLogger(flags.verbose)
	entries := make([]sim.RosterEntry, 0, len(rosterPaths))
	for _, p := range rosterPaths {
		roster, err := loadRoster(logger, p)
		if err != nil {
			return err
		}
		entries = append(entries, roster...)
	}

	cells, err := sim.RunMatrix(context.Background(), sim.MatrixSpec{
		Entries: entries, Iterations: flags.iterations, Seed: flags.seed, MaxTurns: flags.maxTurns,
	})
	if err != nil {
		return err
	}
	return renderMatrix(os.Stdout, flags.output, cells)
}
