// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

// AmmoPool tracks remaining count per named ammo type (e.g. "arrow",
// "bolt"). It is a small count-with-floor tracker in the spirit of the
// toolkit's resource Counter: consumption never drives a count negative,
// and querying an unknown ammo type reports zero rather than panicking.
type AmmoPool map[string]int

// NewAmmoPool returns an empty pool.
func NewAmmoPool() AmmoPool {
	return make(AmmoPool)
}

// Add increases the count for ammoType by n (n may be negative to remove
// stock directly, e.g. when unequipping a quiver).
func (p AmmoPool) Add(ammoType string, n int) {
	p[ammoType] += n
	if p[ammoType] < 0 {
		p[ammoType] = 0
	}
}

// Count returns the remaining count for ammoType, zero if never set.
func (p AmmoPool) Count(ammoType string) int {
	return p[ammoType]
}

// Consume removes one unit of ammoType if available, reporting whether it
// succeeded. An attack with an AmmoType set must check this before
// resolving; failure is a PreconditionFailure (no charges available).
func (p AmmoPool) Consume(ammoType string) bool {
	if ammoType == "" {
		return true
	}
	if p[ammoType] <= 0 {
		return false
	}
	p[ammoType]--
	return true
}
