package input

// Queue is the pending-event queue. It preserves arrival order except
// that, when a coalescable event is dequeued, all later events of the
// same kind are drained and only the newest survives; everything else
// keeps its original order. This keeps drag scrolling from chewing
// through stale motion deltas after a burst of pointer events.
//
// The queue is filled and drained from the dispatch goroutine only.
type Queue struct {
	events []Event
}

// Push appends an event to the queue.
func (q *Queue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Clear drops all pending events.
func (q *Queue) Clear() {
	q.events = nil
}

// Next dequeues the next event to process. For coalescable kinds the
// returned event is the newest queued event of that kind, and all older
// ones are discarded.
func (q *Queue) Next() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}

	ev := q.events[0]
	rest := q.events[1:]

	if !ev.Kind.Coalescable() {
		q.events = rest
		return ev, true
	}

	remaining := make([]Event, 0, len(rest))
	for _, e := range rest {
		if e.Kind == ev.Kind {
			ev = e
		} else {
			remaining = append(remaining, e)
		}
	}
	q.events = remaining
	return ev, true
}
