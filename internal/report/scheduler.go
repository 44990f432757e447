package report

import (
	"fmt"
	"io"

	"github.com/joeycumines/go-ossim/internal/sched"
)

// PrintSchedulerSummary renders the scheduler's final summary (spec.md
// §6): the policy name (and quantum, if finite), one line per process,
// and the closing SUM line. It is grounded on
// original_source/scheduler/src/pScheduler.py's print_summary, translated
// from Python's `%`-percent/float formatting to Go's `%.2f`/`%.3f`
// verbs with identical precision.
func PrintSchedulerSummary(w io.Writer, policy sched.Policy, procs []*sched.Process, state sched.SimulatorState) {
	if q := policy.Quantum(); q > 0 {
		fmt.Fprintf(w, "%s %d\n", policy.Name(), q)
	} else {
		fmt.Fprintln(w, policy.Name())
	}

	for _, p := range procs {
		fmt.Fprintf(w, "%04d: %4d %4d %4d %4d %d | %4d %4d %4d %4d\n",
			p.ID, p.AT, p.TC, p.CB, p.IO, p.StaticPrio,
			p.Finish, p.TAT, p.IOTime, p.CW)
	}

	finish := state.LastFinish
	n := len(procs)
	var cpuPct, ioPct, avgTAT, avgCW, throughput float64
	if finish > 0 {
		cpuPct = 100 * float64(state.CPUTime) / float64(finish)
		ioPct = 100 * float64(state.TotalIOTime) / float64(finish)
		throughput = 100 * float64(n) / float64(finish)
	}
	if n > 0 {
		var sumTAT, sumCW int
		for _, p := range procs {
			sumTAT += p.TAT
			sumCW += p.CW
		}
		avgTAT = float64(sumTAT) / float64(n)
		avgCW = float64(sumCW) / float64(n)
	}

	fmt.Fprintf(w, "SUM: %d %.2f %.2f %.2f %.2f %.3f\n",
		finish, cpuPct, ioPct, avgTAT, avgCW, throughput)
}
