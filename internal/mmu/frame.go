package mmu

// Frame is one entry of the global frame table. PID/VPage identify the
// owning PTE while Present; Age and LastUsed are scratch fields used only
// by the aging and working-set pagers respectively (§3, §9: "model as
// extensions to the frame record rather than side tables").
type Frame struct {
	Free     bool
	PID      int
	VPage    int
	PTE      *PTE
	Age      uint32
	LastUsed int
}

// frameRing is the circular eviction hand shared by every scan-based
// pager (FIFO/clock/NRU/aging/working-set, §4.7). It is a simplified
// descendant of catrate/ring.go's ringBuffer: that type buffers a window
// of values behind a read/write cursor pair; this one has no buffered
// payload at all, just a single wrapping cursor over a fixed frame count,
// since every pager already owns the frame data itself.
type frameRing struct {
	size int
	hand int
}

func newFrameRing(size int) *frameRing {
	return &frameRing{size: size}
}

// Hand returns the current eviction cursor.
func (r *frameRing) Hand() int { return r.hand }

// SetHand moves the cursor to idx (mod size); pagers call this with
// chosenVictim+1 once they've picked a frame.
func (r *frameRing) SetHand(idx int) { r.hand = ((idx % r.size) + r.size) % r.size }

// Order returns the frame indices for one full revolution starting at
// the current hand, the scan order every NRU/aging/working-set pass
// (and the clock lookup) uses; FIFO reads the hand directly.
func (r *frameRing) Order() []int {
	order := make([]int, r.size)
	for i := range order {
		order[i] = (r.hand + i) % r.size
	}
	return order
}

// FrameTable owns the frame array, the free list, and the shared
// eviction ring.
type FrameTable struct {
	Frames []Frame
	free   []int
	ring   *frameRing
}

// NewFrameTable allocates n frames, all initially free.
func NewFrameTable(n int) *FrameTable {
	frames := make([]Frame, n)
	free := make([]int, n)
	for i := range frames {
		frames[i].Free = true
		free[i] = i
	}
	return &FrameTable{Frames: frames, free: free, ring: newFrameRing(n)}
}

// PopFree removes and returns the front of the free list (§4.6's "free
// list non-empty: pop front").
func (t *FrameTable) PopFree() (int, bool) {
	if len(t.free) == 0 {
		return 0, false
	}
	idx := t.free[0]
	t.free = t.free[1:]
	t.Frames[idx].Free = false
	return idx, true
}

// PushFree returns idx to the free list.
func (t *FrameTable) PushFree(idx int) {
	t.Frames[idx].Free = true
	t.free = append(t.free, idx)
}

func (t *FrameTable) Hand() int       { return t.ring.Hand() }
func (t *FrameTable) SetHand(idx int) { t.ring.SetHand(idx) }
func (t *FrameTable) Order() []int    { return t.ring.Order() }
func (t *FrameTable) Len() int        { return len(t.Frames) }
