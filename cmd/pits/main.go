// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Command pits runs the Pits of Despair balance simulator: seeded,
// repeatable encounters between data-driven creature rosters, reported
// as a console table, JSON, or CSV.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/spetersoncode/pits-of-despair-sub006/sim"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "duel":
		err = runDuelCmd(args)
	case "group":
		err = runGroupCmd(args)
	case "variation":
		err = runVariationCmd(args)
	case "variation-inline":
		err = runVariationInlineCmd(args)
	case "matrix":
		err = runMatrixCmd(args)
	case "list":
		err = runListCmd(args)
	case "info":
		err = runInfoCmd(args)
	case "-version", "--version", "version":
		fmt.Printf("pits version %s\n", version)
		return
	case "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "pits: unknown subcommand %q\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "pits: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: pits <subcommand> [flags]

Subcommands:
  duel              run sideA's roster against sideB's roster
  group             run roster[0] against every other roster combined
  variation         vary a baseline creature and run each variant against a fixed roster
  variation-inline  run one inline JSON creature against a fixed roster
  matrix            run every pairing among a set of single-creature rosters
  list              print every creature's id, name, health and speed in a roster file
  info              print one resolved creature's stats

Run 'pits <subcommand> -help' for subcommand-specific flags.`)
}

// commonFlags are accepted by every subcommand that runs one or more
// Monte Carlo batches.
type commonFlags struct {
	config     string
	iterations int
	seed       int64
	maxTurns   int
	output     string
	verbose    bool
}

func bindCommonFlags(fs *flag.FlagSet, cfg Config) *commonFlags {
	c := &commonFlags{}
	fs.StringVar(&c.config, "config", "", "optional YAML config file")
	fs.IntVar(&c.iterations, "iterations", cfg.Iterations, "number of seeded iterations to run")
	fs.Int64Var(&c.seed, "seed", cfg.Seed, "base seed; iteration i uses seed+i")
	fs.IntVar(&c.maxTurns, "max-turns", cfg.MaxTurns, "turns before an iteration is reported as a capped draw (0 = simulator default)")
	fs.StringVar(&c.output, "output", cfg.Output, "output format: console, json, or csv")
	fs.BoolVar(&c.verbose, "verbose", false, "log unknown-field warnings and loader diagnostics")
	return c
}

func runDuelCmd(args []string) error {
	fs := flag.NewFlagSet("duel", flag.ExitOnError)
	base, err := LoadConfig(peekConfigFlag(args))
	if err != nil {
		return err
	}
	flags := bindCommonFlags(fs, base)
	sideAPath := fs.String("sideA", "", "roster YAML file for side A")
	sideBPath := fs.String("sideB", "", "roster YAML file for side B")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *sideAPath == "" || *sideBPath == "" {
		return fmt.Errorf("duel requires -sideA and -sideB")
	}

	logger := newLogger(flags.verbose)
	sideA, err := loadRoster(logger, *sideAPath)
	if err != nil {
		return err
	}
	sideB, err := loadRoster(logger, *sideBPath)
	if err != nil {
		return err
	}

	report, err := sim.RunDuel(context.Background(), sim.DuelSpec{
		SideA: sideA, SideB: sideB,
		Iterations: flags.iterations, Seed: flags.seed, MaxTurns: flags.maxTurns,
	})
	if err != nil {
		return err
	}
	return renderReport(os.Stdout, flags.output, fmt.Sprintf("%s vs %s", *sideAPath, *sideBPath), report)
}

func runGroupCmd(args []string) error {
	fs := flag.NewFlagSet("group", flag.ExitOnError)
	base, err := LoadConfig(peekConfigFlag(args))
	if err != nil {
		return err
	}
	flags := bindCommonFlags(fs, base)
	var rosterPaths stringList
	fs.Var(&rosterPaths, "roster", "roster YAML file; repeat for each team (at least 2 required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(rosterPaths) < 2 {
		return fmt.Errorf("group requires at least two -roster flags")
	}

	logger := newLogger(flags.verbose)
	rosters := make([][]sim.RosterEntry, len(rosterPaths))
	for i, p := range rosterPaths {
		entries, err := loadRoster(logger, p)
		if err != nil {
			return err
		}
		rosters[i] = entries
	}

	report, err := sim.RunGroup(context.Background(), sim.GroupSpec{
		Rosters: rosters, Iterations: flags.iterations, Seed: flags.seed, MaxTurns: flags.maxTurns,
	})
	if err != nil {
		return err
	}
	return renderReport(os.Stdout, flags.output, "group", report)
}

// peekConfigFlag scans args for "-config"/"--config" ahead of the full
// flag.Parse pass, since LoadConfig's result seeds bindCommonFlags'
// defaults and so must run before flag parsing begins.
func peekConfigFlag(args []string) string {
	for i, a := range args {
		if (a == "-config" || a == "--config") && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// stringList is a flag.Value accumulating repeated -flag occurrences.
type stringList []string

func (s *stringList) String() string { return fmt.Sprint([]string(*s)) }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}
