package mmu

// nruPager classifies every frame into one of four classes by
// (referenced, modified) and evicts the first frame, in hand order,
// belonging to the lowest non-empty class (§4.7). The referenced bits it
// inspects are reset globally every 48 instructions by the driver
// (mmu.go), gated on this pager being the active one.
type nruPager struct{}

func (nruPager) Name() string { return "NRU" }

func (nruPager) SelectVictim(m *MMU) int {
	var classes [4][]int
	for _, idx := range m.Frames.Order() {
		f := &m.Frames.Frames[idx]
		class := 0
		if f.PTE.Referenced {
			class |= 2
		}
		if f.PTE.Modified {
			class |= 1
		}
		classes[class] = append(classes[class], idx)
	}
	for class := 0; class < 4; class++ {
		if len(classes[class]) > 0 {
			idx := classes[class][0]
			m.Frames.SetHand(idx + 1)
			return idx
		}
	}
	panicInvariant("NRU: no frame classified out of %d", m.Frames.Len())
	return -1
}
