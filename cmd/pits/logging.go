// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"log/slog"
	"os"
)

// newLogger builds the CLI's structured logger, writing to stderr so
// stdout stays reserved for whichever --output renderer the subcommand
// selected. verbose raises the level to Debug; otherwise the CLI only
// logs Warn and above, matching the combat core's own "never decide the
// application is unhealthy" discipline.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
