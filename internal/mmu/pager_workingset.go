package mmu

// wsTau is the working-set age threshold τ from §4.7.
const wsTau = 49

// workingSetPager scans from the hand; a frame is immediately evictable
// once its age (current instruction count minus LastUsed) exceeds wsTau
// and it is unreferenced. Referenced frames are "used" in passing: their
// referenced bit clears and LastUsed resets to now. If a full revolution
// finds nothing evictable, the frame with the oldest LastUsed is chosen
// instead (§4.7).
type workingSetPager struct{}

func (workingSetPager) Name() string { return "working-set" }

func (workingSetPager) SelectVictim(m *MMU) int {
	now := m.InstCount
	oldestIdx := -1
	oldestLast := 0

	for _, idx := range m.Frames.Order() {
		f := &m.Frames.Frames[idx]
		if f.PTE.Referenced {
			f.PTE.Referenced = false
			f.LastUsed = now
			continue
		}
		if now-f.LastUsed > wsTau {
			m.Frames.SetHand(idx + 1)
			return idx
		}
		if oldestIdx == -1 || f.LastUsed < oldestLast {
			oldestIdx = idx
			oldestLast = f.LastUsed
		}
	}

	if oldestIdx == -1 {
		panicInvariant("working-set: no victim found out of %d", m.Frames.Len())
	}
	m.Frames.SetHand(oldestIdx + 1)
	return oldestIdx
}
