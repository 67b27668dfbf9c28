package main

import "github.com/go-gl/glfw/v3.3/glfw"

// EventKind identifies a window event. Only EventClose has any effect.
type EventKind int

const (
	EventClose EventKind = iota
	EventKey
	EventFocus
	EventRefresh
)

// Event is a window event as seen by the render loop.
type Event struct {
	Kind EventKind
}

// maxPending bounds the events buffered between two polls.
const maxPending = 64

// KeepRunning reports whether the render loop should continue after the
// given events. Anything but a close request is ignored.
func KeepRunning(events []Event) bool {
	for _, e := range events {
		if e.Kind == EventClose {
			return false
		}
	}
	return true
}

// eventQueue collects events from GLFW callbacks between polls.
type eventQueue struct {
	pending []Event
}

func newEventQueue(window *glfw.Window) *eventQueue {
	q := &eventQueue{}
	window.SetCloseCallback(func(*glfw.Window) {
		q.push(Event{Kind: EventClose})
	})
	window.SetKeyCallback(func(_ *glfw.Window, _ glfw.Key, _ int, _ glfw.Action, _ glfw.ModifierKey) {
		q.push(Event{Kind: EventKey})
	})
	window.SetFocusCallback(func(*glfw.Window, bool) {
		q.push(Event{Kind: EventFocus})
	})
	window.SetRefreshCallback(func(*glfw.Window) {
		q.push(Event{Kind: EventRefresh})
	})
	return q
}

// push appends e, dropping the oldest non-close event once the queue is full.
func (q *eventQueue) push(e Event) {
	if len(q.pending) < maxPending {
		q.pending = append(q.pending, e)
		return
	}
	for i, old := range q.pending {
		if old.Kind != EventClose {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			q.pending = append(q.pending, e)
			return
		}
	}
	// Full of close requests already; one more changes nothing.
}

// drain returns and clears the pending events.
func (q *eventQueue) drain() []Event {
	events := q.pending
	q.pending = nil
	return events
}

// Poll processes pending window events and reports whether to keep running.
func (q *eventQueue) Poll() bool {
	glfw.PollEvents()
	return KeepRunning(q.drain())
}
