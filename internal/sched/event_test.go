package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueue_PopOrdersByClockThenSeq(t *testing.T) {
	q := NewEventQueue()
	q.Insert(10, 0, CreatedToReady)
	q.Insert(5, 1, CreatedToReady)
	q.Insert(5, 2, ReadyToRunning) // same clock as above, inserted later

	e1, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 5, e1.Clock)
	assert.Equal(t, 1, e1.ProcID)

	e2, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 5, e2.Clock)
	assert.Equal(t, 2, e2.ProcID)

	e3, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 10, e3.Clock)
}

func TestEventQueue_PopEmpty(t *testing.T) {
	q := NewEventQueue()
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestEventQueue_PeekTime(t *testing.T) {
	q := NewEventQueue()
	_, ok := q.PeekTime()
	assert.False(t, ok)

	q.Insert(7, 0, CreatedToReady)
	clock, ok := q.PeekTime()
	require.True(t, ok)
	assert.Equal(t, 7, clock)
}

func TestEventQueue_CancelRemovesUniqueLiveEvent(t *testing.T) {
	q := NewEventQueue()
	q.Insert(3, 0, RunningToReady)
	q.Insert(4, 1, RunningToBlock)

	removed, ok := q.Cancel(0)
	require.True(t, ok)
	assert.Equal(t, 3, removed.Clock)

	_, ok = q.Cancel(0)
	assert.False(t, ok, "cancelling an already-cancelled process must fail")

	assert.Equal(t, 1, q.Len())
}

func TestEventQueue_HasEventAt(t *testing.T) {
	q := NewEventQueue()
	q.Insert(8, 5, BlockToReady)

	assert.True(t, q.hasEventAt(5, 8))
	assert.False(t, q.hasEventAt(5, 9))
	assert.False(t, q.hasEventAt(6, 8))
}

// Stability: independent inputs sharing no timestamps must dequeue in the
// same relative order regardless of how they were interleaved at insert
// time (spec.md §8 property 8, restricted to the event-queue layer).
func TestEventQueue_StableAcrossInterleavedInserts(t *testing.T) {
	q1 := NewEventQueue()
	q1.Insert(1, 0, CreatedToReady)
	q1.Insert(2, 1, CreatedToReady)
	q1.Insert(3, 2, CreatedToReady)

	q2 := NewEventQueue()
	q2.Insert(3, 2, CreatedToReady)
	q2.Insert(1, 0, CreatedToReady)
	q2.Insert(2, 1, CreatedToReady)

	for i := 0; i < 3; i++ {
		e1, _ := q1.Pop()
		e2, _ := q2.Pop()
		assert.Equal(t, e1.Clock, e2.Clock)
		assert.Equal(t, e1.ProcID, e2.ProcID)
	}
}
