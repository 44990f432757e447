package sched

import "container/heap"

// Event is a single scheduled state transition: at Clock, ProcID undergoes
// Transition. Seq is the insertion-order tie-break mandated by §3/§4.2 —
// two events sharing a Clock must dequeue in the order they were inserted.
type Event struct {
	Clock      int
	Seq        int64
	ProcID     int
	Transition Transition
}

// eventHeap is a container/heap min-heap ordered by (Clock, Seq), the same
// shape as the teacher's timerHeap in eventloop/loop.go (a min-heap of
// timer{when, task} ordered by `when`), generalized with an explicit
// sequence tie-break since multiple Events legitimately share a Clock.
type eventHeap []Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].Clock != h[j].Clock {
		return h[i].Clock < h[j].Clock
	}
	return h[i].Seq < h[j].Seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(Event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// EventQueue is the ordered container over Events described in §4.2: a
// stable time-ordered priority queue supporting insert, pop-min, peek, and
// cancellation of the single live event for a given process (used by
// PREPRIO preemption, §4.5).
type EventQueue struct {
	heap eventHeap
	next int64
}

// NewEventQueue returns an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Insert adds a transition for proc at clock, assigning it the next
// insertion sequence number. Returns the inserted Event (callers that
// later need to Cancel it keep ProcID, which is all Cancel needs).
func (q *EventQueue) Insert(clock, procID int, transition Transition) Event {
	e := Event{Clock: clock, Seq: q.next, ProcID: procID, Transition: transition}
	q.next++
	heap.Push(&q.heap, e)
	return e
}

// Pop removes and returns the earliest event, ok=false if the queue is
// empty.
func (q *EventQueue) Pop() (Event, bool) {
	if q.heap.Len() == 0 {
		return Event{}, false
	}
	return heap.Pop(&q.heap).(Event), true
}

// PeekTime returns the clock of the earliest pending event, ok=false if
// empty.
func (q *EventQueue) PeekTime() (int, bool) {
	if q.heap.Len() == 0 {
		return 0, false
	}
	return q.heap[0].Clock, true
}

// Len reports the number of pending events.
func (q *EventQueue) Len() int { return q.heap.Len() }

// hasEventAt reports whether procID already has a pending event scheduled
// for exactly clock, the PREPRIO wakeup race guard from §4.5 (Cond2).
func (q *EventQueue) hasEventAt(procID, clock int) bool {
	for _, e := range q.heap {
		if e.ProcID == procID && e.Clock == clock {
			return true
		}
	}
	return false
}

// Cancel removes the unique live event for procID, if any. Per the DES
// single-future-event rule (§3), at most one match can exist; the scan is
// the O(n) removal the spec explicitly permits (§4.2/§9).
func (q *EventQueue) Cancel(procID int) (Event, bool) {
	for i, e := range q.heap {
		if e.ProcID == procID {
			removed := heap.Remove(&q.heap, i).(Event)
			return removed, true
		}
	}
	return Event{}, false
}
