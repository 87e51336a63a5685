// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration a subcommand can load via
// --config. Unknown keys are ignored without a warning, unlike the
// roster loader. Any value a flag also sets is overridden by that flag,
// matching the seed-override convention the CLI's subcommands follow.
type Config struct {
	Iterations int    `yaml:"iterations"`
	Seed       int64  `yaml:"seed"`
	MaxTurns   int    `yaml:"maxTurns"`
	Output     string `yaml:"output"`
}

// defaultConfig returns the zero-value Config with every optional field
// explicitly defaulted, rather than leaving zero values (0 iterations, 0
// max turns) to propagate silently into a run.
func defaultConfig() Config {
	return Config{
		Iterations: 1000,
		Seed:       1,
		MaxTurns:   0, // 0 delegates to sim's own defaultMaxTurns
		Output:     "console",
	}
}

// LoadConfig reads and validates a YAML config file. A missing path is
// not an error — callers pass "" to mean "use defaults."
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pits: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("pits: parse config %s: %w", path, err)
	}
	if cfg.Iterations <= 0 {
		cfg.Iterations = defaultConfig().Iterations
	}
	if cfg.Output == "" {
		cfg.Output = defaultConfig().Output
	}
	return cfg, nil
}
