package core

import "sync"

// Queue is an EventSource fed by a front end. Push may be called from a
// different goroutine than Poll.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// Push appends events in arrival order.
func (q *Queue) Push(events ...Event) {
	q.mu.Lock()
	q.events = append(q.events, events...)
	q.mu.Unlock()
}

// Poll returns and clears everything queued since the previous call.
func (q *Queue) Poll() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
