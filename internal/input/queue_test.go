package input

import "testing"

func move(x, y float64) Event {
	return Event{Kind: KindPointerMove, X: x, Y: y, ButtonsHeld: HoldMask(ButtonLeft)}
}

func wheel(dy float64) Event {
	return Event{Kind: KindWheel, WheelY: dy}
}

func TestQueueOrder(t *testing.T) {
	var q Queue
	q.Push(wheel(1))
	q.Push(Event{Kind: KindKeyPress})
	q.Push(wheel(-1))

	kinds := []Kind{KindWheel, KindKeyPress, KindWheel}
	for i, want := range kinds {
		ev, ok := q.Next()
		if !ok {
			t.Fatalf("event %d: queue empty", i)
		}
		if ev.Kind != want {
			t.Errorf("event %d: kind = %v, want %v", i, ev.Kind, want)
		}
	}
	if _, ok := q.Next(); ok {
		t.Error("queue should be drained")
	}
}

func TestQueueCoalescesMotion(t *testing.T) {
	var q Queue
	q.Push(move(10, 10))
	q.Push(move(20, 20))
	q.Push(move(30, 30))

	ev, ok := q.Next()
	if !ok {
		t.Fatal("queue empty")
	}
	if ev.X != 30 || ev.Y != 30 {
		t.Errorf("got move(%v, %v), want newest move(30, 30)", ev.X, ev.Y)
	}
	if q.Len() != 0 {
		t.Errorf("Len = %d after coalesce, want 0", q.Len())
	}
}

func TestQueueCoalescePreservesOtherEvents(t *testing.T) {
	var q Queue
	q.Push(move(10, 10))
	q.Push(wheel(1))
	q.Push(move(20, 20))
	q.Push(Event{Kind: KindPointerRelease, Button: ButtonLeft})
	q.Push(move(30, 30))

	ev, _ := q.Next()
	if ev.Kind != KindPointerMove || ev.X != 30 {
		t.Fatalf("first event = %v at %v, want newest move", ev.Kind, ev.X)
	}

	ev, _ = q.Next()
	if ev.Kind != KindWheel {
		t.Errorf("second event = %v, want wheel", ev.Kind)
	}
	ev, _ = q.Next()
	if ev.Kind != KindPointerRelease {
		t.Errorf("third event = %v, want pointer-release", ev.Kind)
	}
	if _, ok := q.Next(); ok {
		t.Error("queue should be drained")
	}
}

func TestQueueDoesNotCoalesceWheel(t *testing.T) {
	// Each wheel tick carries one debounce count; collapsing them would
	// break press-before-turn accounting.
	var q Queue
	q.Push(wheel(1))
	q.Push(wheel(1))
	q.Push(wheel(1))

	var n int
	for {
		if _, ok := q.Next(); !ok {
			break
		}
		n++
	}
	if n != 3 {
		t.Errorf("dequeued %d wheel events, want 3", n)
	}
}

func TestQueueClear(t *testing.T) {
	var q Queue
	q.Push(wheel(1))
	q.Push(move(1, 1))
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Len = %d after Clear, want 0", q.Len())
	}
}
