// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package condition

// TickResult reports what happened to a single condition during a Tick
// call: whether it carries a DoT payload due this turn, and whether it
// expired as a result of this tick's decrement. The caller (the effect
// package, which has access to the damage-modifier pipeline and the
// bearer's Combatant) is responsible for actually applying any DoT
// damage; Manager only owns duration bookkeeping.
type TickResult struct {
	Condition Condition
	DoTDue    bool
	Expired   bool
}

// Manager owns the set of active conditions for a single bearer (a
// combatant or an item slot), keyed by TypeID so at most one instance per
// type can be active.
type Manager struct {
	conditions map[string]Condition
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{conditions: make(map[string]Condition)}
}

// Add installs c, replacing any existing condition with the same TypeID.
// This is the only application path; there is no stacking.
func (m *Manager) Add(c Condition) {
	m.conditions[c.TypeID] = c
}

// Remove deletes the condition with the given TypeID, if present, without
// invoking OnExpired (used for dispel-type effects, not natural expiry).
func (m *Manager) Remove(typeID string) {
	delete(m.conditions, typeID)
}

// Get returns the condition with the given TypeID and whether it exists.
func (m *Manager) Get(typeID string) (Condition, bool) {
	c, ok := m.conditions[typeID]
	return c, ok
}

// HasCondition reports whether a condition with the given TypeID is
// active.
func (m *Manager) HasCondition(typeID string) bool {
	_, ok := m.conditions[typeID]
	return ok
}

// GetAll returns every active condition. The returned slice is a snapshot;
// mutating it does not affect the Manager.
func (m *Manager) GetAll() []Condition {
	all := make([]Condition, 0, len(m.conditions))
	for _, c := range m.conditions {
		all = append(all, c)
	}
	return all
}

// Clear removes every active condition without invoking any OnExpired
// callbacks (used when an encounter ends or a combatant is reset).
func (m *Manager) Clear() {
	m.conditions = make(map[string]Condition)
}

// Tick decrements every active condition's RemainingTurns by one, removing
// and reporting any that expire, and reporting (without removing) any
// whose DoT payload is due this turn. Conditions with RemainingTurns <= 0
// before decrementing are treated as already expired and skipped — Add
// should never install such a condition, but Tick is defensive about it.
func (m *Manager) Tick(bearerID string) []TickResult {
	results := make([]TickResult, 0, len(m.conditions))

	for typeID, c := range m.conditions {
		if c.Expired() {
			delete(m.conditions, typeID)
			continue
		}

		result := TickResult{Condition: c, DoTDue: c.Tick != nil}

		c.RemainingTurns--
		if c.RemainingTurns <= 0 {
			result.Expired = true
			delete(m.conditions, typeID)
			if c.OnExpired != nil {
				c.OnExpired(bearerID)
			}
		} else {
			m.conditions[typeID] = c
		}

		results = append(results, result)
	}

	return results
}
