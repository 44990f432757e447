package mmu

// ProcessSpec is one process's VMA list as parsed from the reference
// file (§6); internal/input builds these, mmu.NewMMU turns them into
// runtime Process records.
type ProcessSpec struct {
	VMAs []VMA
}

// Instruction is one `op value` line of the reference trace (§4.6):
// op ∈ {c, r, w, e}.
type Instruction struct {
	Op    byte
	Value int
}

// Reference is the fully parsed reference file: the process/VMA table
// and the instruction stream, in file order.
type Reference struct {
	Processes    []ProcessSpec
	Instructions []Instruction
}
