package sched

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSim(t *testing.T, policy Policy, specs []ProcessSpec, rand []int) (*Simulator, []*Process, string) {
	t.Helper()
	rg := NewRandGen(rand)
	maxPrio := PolicyMaxPrio(policy)
	procs := make([]*Process, len(specs))
	for i, spec := range specs {
		procs[i] = NewProcess(i, spec, maxPrio, rg)
	}
	var buf bytes.Buffer
	sim := NewSimulator(procs, policy, rg, &buf, nil)
	sim.Run()
	for _, p := range procs {
		require.Equal(t, Done, p.State, "process %d did not terminate", p.ID)
	}
	return sim, procs, buf.String()
}

// S1: FCFS with two processes — property 1 (total tc consumed equals
// cpu_time) and property 2 (tat decomposition) from spec.md §8.
func TestSimulator_S1_FCFS(t *testing.T) {
	policy, err := ParseSpec("F")
	require.NoError(t, err)

	specs := []ProcessSpec{
		{AT: 0, TC: 100, CB: 10, IO: 10},
		{AT: 0, TC: 100, CB: 20, IO: 10},
	}
	sim, procs, _ := runSim(t, policy, specs, []int{3, 5, 2, 7})

	var totalTC int
	for _, s := range specs {
		totalTC += s.TC
	}
	assert.Equal(t, totalTC, sim.State.CPUTime, "property 1: sum(tc) == cpu_time")

	for _, p := range procs {
		assert.Equal(t, p.Finish-p.AT, p.TAT, "tat == finish - at")
		assert.Equal(t, p.TAT, (p.TC-p.Remaining)+p.IOTime+p.CW, "property 2: tat decomposition (remaining should be 0)")
		assert.Equal(t, 0, p.Remaining)
	}
}

// S2: RR q=2, single process (0,5,5,5) — a 5-unit burst sliced at
// quantum 2 takes three RUNNING periods (2+2+1) separated by exactly two
// quantum-expiry preemptions before the final slice reaches DONE
// (spec.md §8 scenario S2).
func TestSimulator_S2_RoundRobinSlicing(t *testing.T) {
	policy, err := ParseSpec("R2")
	require.NoError(t, err)

	specs := []ProcessSpec{{AT: 0, TC: 5, CB: 5, IO: 5}}
	// rand[0] seeds static priority (discarded by RR); rand[1] must draw a
	// full 5-unit burst: 1+(4 mod 5) == 5.
	_, procs, trace := runSim(t, policy, specs, []int{0, 4})

	preemptCount := strings.Count(trace, RunningToReady.String())
	assert.Equal(t, 2, preemptCount)
	assert.True(t, strings.Contains(trace, TransitionDone.String()))
	assert.Equal(t, 5, procs[0].TC-procs[0].Remaining+0) // fully consumed
}

// S3: PRIO with a quantum larger than either process's whole burst, so
// no quantum-expiry preemption ever happens — the higher static-priority
// process must finish first purely on priority ordering (spec.md §8
// scenario S3).
func TestSimulator_S3_PrioHigherFinishesFirst(t *testing.T) {
	policy, err := ParseSpec("P100:4")
	require.NoError(t, err)

	specs := []ProcessSpec{
		{AT: 0, TC: 20, CB: 20, IO: 1},
		{AT: 0, TC: 20, CB: 20, IO: 1},
	}
	// rand[0] -> static prio for proc0 = 1+(0 mod 4) = 1 (low).
	// rand[1] -> static prio for proc1 = 1+(3 mod 4) = 4 (high).
	// rand[2],rand[3] -> each process draws a full-length (20) CPU burst,
	// exactly equal to its own remaining time, so it runs once to DONE
	// with no IO blocking and no quantum slicing (quantum=100 > 20).
	_, procs, _ := runSim(t, policy, specs, []int{0, 3, 19, 19})

	assert.Greater(t, procs[1].StaticPrio, procs[0].StaticPrio)
	assert.Less(t, procs[1].Finish, procs[0].Finish,
		"higher static-priority process must finish strictly before the lower one")
}

// S4: PREPRIO — a high-priority process returning from IO preempts a
// running low-priority process on the same clock (spec.md §8 scenario
// S4, §4.5). Hand-traced: both processes arrive at clock 0; PRIO picks
// the high-priority one first, it takes a short CPU burst then blocks on
// IO; while it's blocked the low-priority process is picked and starts a
// long quantum-sliced burst; the high-priority process's IO completes
// before the low-priority process's quantum would otherwise expire,
// triggering a same-clock PREPRIO preemption.
func TestSimulator_S4_PreprioPreemptsOnSameClock(t *testing.T) {
	policy, err := ParseSpec("E2:4")
	require.NoError(t, err)

	specs := []ProcessSpec{
		{AT: 0, TC: 50, CB: 50, IO: 5}, // low prio (static=1), long burst
		{AT: 0, TC: 5, CB: 2, IO: 3},   // high prio (static=4), short burst
	}
	rand := []int{
		0,  // idx0: proc0 static prio = 1+(0 mod 4) = 1
		3,  // idx1: proc1 static prio = 1+(3 mod 4) = 4
		1,  // idx2: proc1's first CPU burst, bound 2 -> 1+(1 mod 2) = 2
		0,  // idx3: proc1's IO burst, bound 3 -> 1+(0 mod 3) = 1
		49, // idx4: proc0's CPU burst, bound 50 -> 1+(49 mod 50) = 50
	}
	_, procs, trace := runSim(t, policy, specs, rand)

	assert.Greater(t, procs[1].StaticPrio, procs[0].StaticPrio)
	// proc1 (pid 1) runs [0,2) then blocks on IO [2,3); proc0 (pid 0) is
	// picked at clock 2 and starts a quantum=2 burst due at clock 4; proc1
	// wakes at clock 3, strictly before that, and Cond1 (4-1>1-1 dynprio
	// comparison) holds, so proc0 is preempted at clock 3 with
	// time_in_state=1 (it started running at clock 2).
	assert.Contains(t, trace, "3 0 1: RUNNG -> READY")
}
