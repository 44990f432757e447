// Package sched implements the discrete-event process scheduler: a
// deterministic event queue, the five ready-queue disciplines (FCFS, LCFS,
// SRTF, RR, PRIO/PREPRIO), and the fixed dispatch loop that drives process
// state transitions from CREATED through DONE.
//
// Correctness here is almost entirely about ordering: events at identical
// timestamps must dequeue in insertion order, the scheduler must only be
// consulted once all same-timestamp events have drained, and every
// non-deterministic choice (burst lengths, static priority) must draw from
// a single observable random stream in a fixed order. See SPEC_FULL.md §4
// for the full state machine this package implements.
package sched
