// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

import "errors"

// Common errors returned by the dice package.
var (
	// ErrInvalidNotation indicates the dice notation string is malformed.
	ErrInvalidNotation = errors.New("dice: invalid notation")

	// ErrInvalidDieSize indicates a die size that is not >= 1.
	ErrInvalidDieSize = errors.New("dice: invalid die size")

	// ErrInvalidDieCount indicates a die count that is not >= 1.
	ErrInvalidDieCount = errors.New("dice: invalid die count")

	// ErrNilSource indicates a nil Source was provided where one is required.
	ErrNilSource = errors.New("dice: source cannot be nil")
)
