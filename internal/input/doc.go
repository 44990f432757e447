// Package input parses the three on-disk file formats the two simulator
// cores are driven by: the process-list file and random-number file for
// the scheduler, and the VMA/instruction reference file for the MMU.
//
// These are the "external collaborator" parsers spec.md §1 deliberately
// scopes out of the core: the cores themselves never read a file or hold
// a *os.File. Everything here is pure text-to-struct translation with no
// simulation semantics.
package input
