package mmu

// clockPager advances the hand until it finds a frame whose owning PTE
// is unreferenced, clearing the referenced bit of everything it passes
// over on the way (§4.7). Unlike NRU/aging/working-set it may need more
// than one revolution, so it walks Order() repeatedly rather than taking
// a single pass.
type clockPager struct{}

func (clockPager) Name() string { return "clock" }

func (clockPager) SelectVictim(m *MMU) int {
	for {
		for _, idx := range m.Frames.Order() {
			f := &m.Frames.Frames[idx]
			if !f.PTE.Referenced {
				m.Frames.SetHand(idx + 1)
				return idx
			}
			f.PTE.Referenced = false
		}
	}
}
