package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeepRunning(t *testing.T) {
	assert.True(t, KeepRunning(nil))
	assert.True(t, KeepRunning([]Event{{Kind: EventKey}, {Kind: EventFocus}, {Kind: EventRefresh}}))
	assert.False(t, KeepRunning([]Event{{Kind: EventKey}, {Kind: EventClose}}))
	assert.False(t, KeepRunning([]Event{{Kind: EventClose}}))
}

func TestEventQueueDrain(t *testing.T) {
	q := &eventQueue{}
	q.push(Event{Kind: EventKey})
	q.push(Event{Kind: EventClose})

	events := q.drain()
	assert.Len(t, events, 2)
	assert.False(t, KeepRunning(events))
	assert.Empty(t, q.drain())
}

func TestEventQueueOverflowKeepsClose(t *testing.T) {
	q := &eventQueue{}
	q.push(Event{Kind: EventClose})
	for k := 0; k < 3*maxPending; k++ {
		q.push(Event{Kind: EventKey})
	}
	assert.Len(t, q.pending, maxPending)
	assert.False(t, KeepRunning(q.drain()))

	for k := 0; k < 3*maxPending; k++ {
		q.push(Event{Kind: EventRefresh})
	}
	q.push(Event{Kind: EventClose})
	events := q.drain()
	assert.Len(t, events, maxPending)
	assert.Equal(t, EventClose, events[len(events)-1].Kind)
}
