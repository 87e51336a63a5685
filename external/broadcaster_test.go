// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package external

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingObserver struct {
	signals []Signal
}

func (r *recordingObserver) OnSignal(s Signal) {
	r.signals = append(r.signals, s)
}

func TestBroadcaster_EmitsToAllObservers(t *testing.T) {
	b := NewBroadcaster()
	a := &recordingObserver{}
	c := &recordingObserver{}
	b.Register(a)
	b.Register(c)

	b.Emit(Signal{Kind: SignalAttackHit, AttackerID: "x", TargetID: "y", Amount: 4})

	assert.Len(t, a.signals, 1)
	assert.Len(t, c.signals, 1)
	assert.Equal(t, SignalAttackHit, a.signals[0].Kind)
}

func TestBroadcaster_NilObserverIgnored(t *testing.T) {
	b := NewBroadcaster()
	b.Register(nil)
	assert.NotPanics(t, func() { b.Emit(Signal{Kind: SignalAttackBlocked}) })
}

func TestBroadcaster_NilBroadcasterEmitIsNoop(t *testing.T) {
	var b *Broadcaster
	assert.NotPanics(t, func() { b.Emit(Signal{Kind: SignalAttackBlocked}) })
}
