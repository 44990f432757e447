package mmu

// fifoPager evicts whichever frame the hand currently points at: since
// frames are only ever handed out in hand order and the hand always
// advances past the frame it just gave out, this is exactly
// first-in-first-out over the frame table (§4.7).
type fifoPager struct{}

func (fifoPager) Name() string { return "FIFO" }

func (fifoPager) SelectVictim(m *MMU) int {
	idx := m.Frames.Hand()
	m.Frames.SetHand(idx + 1)
	return idx
}
