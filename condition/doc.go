// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package condition implements time-bounded status effects attached to
// combatants (and, via the same Condition shape, to equipped items as
// brands/properties). Unlike the toolkit's event-subscription-driven
// conditions package, ticking here is synchronous: the scheduler calls
// Manager.Tick once per turn boundary of the bearer, rather than conditions
// subscribing to a shared event bus. This matches the combat core's
// single-threaded cooperative model: there is no bus to
// subscribe to, and a condition's only externally visible behavior is its
// tick and its expiry.
package condition
