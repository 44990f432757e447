package sched

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to callers (CLI-reportable, never panics).
var (
	// ErrEmptyRandFile describes a random-number file with zero draws. No
	// function in this module returns it; internal/input reports that case
	// as an *input.ErrMalformed.
	ErrEmptyRandFile = errors.New("sched: random file contains no numbers")

	// ErrNoProcesses describes an empty process input file. No function in
	// this module returns it; internal/input reports that case as an
	// *input.ErrMalformed.
	ErrNoProcesses = errors.New("sched: no processes in input")
)

// ErrInvalidSpec reports a scheduler specification string that does not
// match the grammar `F | L | S | R<q> | P<q>[:<maxprio>] | E<q>[:<maxprio>]`.
// Its Error text is the exact diagnostic mandated by spec §7.
type ErrInvalidSpec struct {
	Value string
}

func (e *ErrInvalidSpec) Error() string {
	return fmt.Sprintf("Invalid scheduler specification: %s.", e.Value)
}

// invariantViolation is the panic payload for defects the spec designates
// as "must never occur" test oracles rather than runtime conditions (§7):
// e.g. dispatching an event for a process already DONE, or more than one
// RUNNING process at a time. cmd/scheduler recovers these at the top level
// and reports them distinctly from malformed-input errors.
type invariantViolation struct {
	Detail string
}

func (v invariantViolation) Error() string {
	return "sched: internal invariant violated: " + v.Detail
}

func panicInvariant(format string, args ...any) {
	panic(invariantViolation{Detail: fmt.Sprintf(format, args...)})
}
