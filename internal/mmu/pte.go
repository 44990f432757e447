package mmu

// NumPages is the fixed per-process page-table size (§3).
const NumPages = 64

// MaxFrames is the hard ceiling on the simulated frame table (§3: F ≤ 128).
const MaxFrames = 128

// PTE is one page-table entry: present/referenced/modified/pagedout are
// the bits the fault handler and pagers mutate; file_mapped and
// write_protected are fixed at VMA-construction time. FrameIdx is valid
// iff Present (§3's invariant).
type PTE struct {
	Present        bool
	Referenced     bool
	Modified       bool
	PagedOut       bool
	FileMapped     bool
	WriteProtected bool
	FrameIdx       int
}
