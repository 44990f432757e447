// Package report renders the two cores' final, human-readable summaries
// (spec.md §6): the scheduler's per-process table plus SUM line, and the
// MMU's page-table/frame-table dumps plus TOTALCOST line. Nothing here
// participates in simulation; it only formats data the cores already
// computed.
package report
