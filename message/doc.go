// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package message implements the append-only, entity-tagged message log
// handed to every effect step. It is output
// only: the combat core never reads from it to make decisions.
package message
