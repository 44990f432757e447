// Package mmu implements the memory-management-unit core: demand-paged
// virtual memory over a fixed frame table, a pluggable page-replacement
// Pager, and the fault handler / instruction driver that execute a
// reference trace of (op, value) instructions.
//
// Per-process virtual memory is modeled as 64 page-table entries plus a
// list of VMAs describing which virtual pages are valid and how. The
// frame table is a single shared array of size F ≤ 128. When a reference
// hits an absent PTE, the fault handler obtains a frame (from the free
// list or by evicting a victim chosen by the active Pager) and populates
// it, emitting the UNMAP/OUT/FOUT/IN/FIN/ZERO/MAP event stream and
// updating the running cost total.
package mmu
