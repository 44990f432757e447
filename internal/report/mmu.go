package report

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/joeycumines/go-ossim/internal/mmu"
)

// PrintPageTable renders the `P` option's per-process page-table dump
// (spec.md §6): one line per process, one token per virtual page. A
// present page shows its frame index plus R/M/S flags (reference,
// modified, paged-out-to-swap); an absent page shows '#' if it falls
// outside every VMA (would SEGV) or '*' if it is merely not yet mapped.
func PrintPageTable(w io.Writer, procs []*mmu.Process) {
	for _, p := range procs {
		fmt.Fprintf(w, "PT[%d]:", p.PID)
		for vpage := 0; vpage < mmu.NumPages; vpage++ {
			pte := p.PTEs[vpage]
			switch {
			case pte.Present:
				flags := "-"
				if pte.Referenced {
					flags = "R"
				}
				if pte.Modified {
					flags += "M"
				}
				if pte.PagedOut {
					flags += "S"
				}
				fmt.Fprintf(w, " %d:%s", pte.FrameIdx, flags)
			case p.PageValid(vpage):
				fmt.Fprint(w, " *")
			default:
				fmt.Fprint(w, " #")
			}
		}
		fmt.Fprintln(w)
	}
}

// PrintFrameTable renders the `F` option's frame-table dump: one token
// per frame, '*' for free, "pid:vpage" for owned.
func PrintFrameTable(w io.Writer, frames *mmu.FrameTable) {
	fmt.Fprint(w, "FT:")
	for i := 0; i < frames.Len(); i++ {
		f := frames.Frames[i]
		if f.Free {
			fmt.Fprint(w, " *")
		} else {
			fmt.Fprintf(w, " %d:%d", f.PID, f.VPage)
		}
	}
	fmt.Fprintln(w)
}

// PrintProcessSummary renders the `P` option's per-process event-count
// summary: counts mirroring mmu.Stats but scoped to the one process.
func PrintProcessSummary(w io.Writer, procs []*mmu.Process) {
	for _, p := range procs {
		s := p.Stats
		fmt.Fprintf(w, "PROC[%d]: U=%d M=%d I=%d O=%d FI=%d FO=%d Z=%d SV=%d SP=%d\n",
			p.PID, s.Unmaps, s.Maps, s.Ins, s.Outs, s.Fins, s.Fouts, s.Zeros, s.Segvs, s.Segprots)
	}
}

// PrintMMUSummary renders the `S` option's closing line (spec.md §6),
// which cmd/mmu prints only when `S` is among the `-o` selectors:
// TOTALCOST plus the instruction count, context-switch count,
// process-exit count, accumulated cost, and the runtime's PTE struct
// size (`unsafe.Sizeof`, matching the reference labs' convention of
// reporting the host-language PTE footprint alongside the cost total).
func PrintMMUSummary(w io.Writer, instCount int, stats mmu.Stats) {
	fmt.Fprintf(w, "TOTALCOST %d %d %d %d %d\n",
		instCount, stats.CtxSwitches, stats.ProcessExits, stats.Cost, unsafe.Sizeof(mmu.PTE{}))
}
