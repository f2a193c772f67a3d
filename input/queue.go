package input

// EventQueue is a FIFO of pending input events. It is not safe for
// concurrent use; a runtime owns its queue.
type EventQueue struct {
	events []Event
}

// NewEventQueue returns an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// PushAll appends events in order.
func (q *EventQueue) PushAll(evs ...Event) {
	q.events = append(q.events, evs...)
}

// PushFront prepends a high-priority event.
func (q *EventQueue) PushFront(ev Event) {
	q.events = append([]Event{ev}, q.events...)
}

// PushText pushes one Char key press per rune of s.
func (q *EventQueue) PushText(s string) {
	for _, r := range s {
		q.Push(Char(r))
	}
}

// Pop removes and returns the oldest event, or false when empty.
func (q *EventQueue) Pop() (Event, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}

// Peek returns the oldest event without removing it.
func (q *EventQueue) Peek() (Event, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	return q.events[0], true
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int { return len(q.events) }

// IsEmpty reports whether the queue is empty.
func (q *EventQueue) IsEmpty() bool { return len(q.events) == 0 }

// Clear drops all queued events.
func (q *EventQueue) Clear() { q.events = nil }
