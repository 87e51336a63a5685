// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package external

// Broadcaster is the thin observer list the pipeline broadcasts Signals
// to. It holds no other state and makes no guarantee about
// observer execution order beyond registration order.
type Broadcaster struct {
	observers []CombatObserver
}

// NewBroadcaster returns an empty Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Register adds an observer. Nil observers are ignored.
func (b *Broadcaster) Register(o CombatObserver) {
	if o == nil {
		return
	}
	b.observers = append(b.observers, o)
}

// Emit broadcasts s to every registered observer, in registration order.
// A nil Broadcaster is safe to call Emit on (no-op), so pipeline code
// need not special-case the no-observers case.
func (b *Broadcaster) Emit(s Signal) {
	if b == nil {
		return
	}
	for _, o := range b.observers {
		o.OnSignal(s)
	}
}
