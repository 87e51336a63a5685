// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package message

// Colour is a display colour key for a logged line ("red" for damage,
// "green" for healing, "gray" for diagnostics). The combat core never
// interprets these beyond passing them through; a host renderer maps them
// to actual colours.
type Colour string

// Common colour keys used by the built-in effect steps.
const (
	ColourNone       Colour = ""
	ColourDamage     Colour = "red"
	ColourHeal       Colour = "green"
	ColourCondition  Colour = "purple"
	ColourDiagnostic Colour = "gray"
)

// Entry is a single logged line.
type Entry struct {
	// EntityID is the entity this line is grouped under for display
	// (typically the step's current target, via Collector's cursor).
	EntityID string
	Text     string
	Colour   Colour
}

// Collector is an append-only log of Entry values. Its zero value is
// ready to use. currentEntity is a cursor steps implicitly log against;
// sub-pipelines temporarily swap it and restore the previous value when
// done.
type Collector struct {
	entries       []Entry
	currentEntity string
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// SetCurrentEntity sets the cursor entity new log lines are tagged with,
// returning the previous value so the caller can restore it (the
// save/restore pattern sub-pipelines rely on).
func (c *Collector) SetCurrentEntity(id string) (previous string) {
	previous = c.currentEntity
	c.currentEntity = id
	return previous
}

// CurrentEntity returns the cursor's current entity id.
func (c *Collector) CurrentEntity() string {
	return c.currentEntity
}

// Log appends a line tagged with the current cursor entity.
func (c *Collector) Log(colour Colour, text string) {
	c.entries = append(c.entries, Entry{EntityID: c.currentEntity, Text: text, Colour: colour})
}

// LogFor appends a line explicitly tagged with entityID, bypassing the
// cursor; used when a step must attribute a line to a different entity
// than the current cursor (e.g. a Knockback collision message attributed
// to the entity that got bumped into).
func (c *Collector) LogFor(entityID string, colour Colour, text string) {
	c.entries = append(c.entries, Entry{EntityID: entityID, Text: text, Colour: colour})
}

// Entries returns every logged line in order. The returned slice must not
// be mutated by the caller.
func (c *Collector) Entries() []Entry {
	return c.entries
}
