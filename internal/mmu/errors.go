package mmu

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to callers (CLI-reportable, never panics).
var (
	// ErrNoProcesses is returned when a reference file declares zero
	// processes.
	ErrNoProcesses = errors.New("mmu: no processes in reference file")

	// ErrTooManyFrames is returned by NewMMU when the requested frame count
	// exceeds the simulator's hard limit, and also when it is 0 or less.
	ErrTooManyFrames = errors.New("mmu: frame count exceeds maximum of 128")
)

// ErrInvalidConfig reports an unknown `-a` algorithm letter (from NewPager);
// malformed `-f`/`-o` arguments are reported by internal/cliparse instead.
type ErrInvalidConfig struct {
	Value string
}

func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("Invalid MMU configuration: %s.", e.Value)
}

// invariantViolation mirrors sched.invariantViolation: a panic payload for
// defects the spec designates as "must never occur" test oracles, distinct
// from reportable input errors. cmd/mmu recovers these at the top level.
type invariantViolation struct {
	Detail string
}

func (v invariantViolation) Error() string {
	return "mmu: internal invariant violated: " + v.Detail
}

func panicInvariant(format string, args ...any) {
	panic(invariantViolation{Detail: fmt.Sprintf(format, args...)})
}
