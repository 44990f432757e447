package mmu

// randomPager draws a victim from the shared RandGen, bound by the frame
// count (§4.7). It does not use the eviction hand at all.
type randomPager struct{}

func (randomPager) Name() string { return "random" }

func (randomPager) SelectVictim(m *MMU) int {
	return m.Rand.Next(m.Frames.Len()) - 1
}
