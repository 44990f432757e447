package sched

// DefaultMaxPrio is the MAXPRIO used when a scheduler spec omits it (§4.3).
const DefaultMaxPrio = 4

// Policy is the shared dispatch surface for every ready-queue discipline
// (§4.3, §9): "encode as a tagged variant ... avoid a deep hierarchy". Each
// concrete policy below is one small struct implementing this interface,
// rather than a class hierarchy.
type Policy interface {
	// Add enqueues p, which just became READY at clock.
	Add(p *Process, clock int)
	// Next dequeues the process that should run next, or nil if empty.
	Next() *Process
	// Name is the policy label used in the summary output (§6).
	Name() string
	// Quantum is the maximum contiguous CPU slice, or 0 for "infinite"
	// (FCFS/LCFS/SRTF never slice a burst).
	Quantum() int
	// Preemptive reports whether BLOCK_TO_READY wakeups may preempt a
	// running process (true only for PREPRIO, §4.5).
	Preemptive() bool
}

// --- FCFS -------------------------------------------------------------

type fcfsPolicy struct{ q []*Process }

func NewFCFS() Policy { return &fcfsPolicy{} }

func (p *fcfsPolicy) Add(proc *Process, _ int) { p.q = append(p.q, proc) }

func (p *fcfsPolicy) Next() *Process {
	if len(p.q) == 0 {
		return nil
	}
	proc := p.q[0]
	p.q = p.q[1:]
	return proc
}

func (p *fcfsPolicy) Name() string     { return "FCFS" }
func (p *fcfsPolicy) Quantum() int     { return 0 }
func (p *fcfsPolicy) Preemptive() bool { return false }

// --- LCFS -------------------------------------------------------------

type lcfsPolicy struct{ q []*Process }

func NewLCFS() Policy { return &lcfsPolicy{} }

func (p *lcfsPolicy) Add(proc *Process, _ int) { p.q = append(p.q, proc) }

func (p *lcfsPolicy) Next() *Process {
	n := len(p.q)
	if n == 0 {
		return nil
	}
	proc := p.q[n-1]
	p.q = p.q[:n-1]
	return proc
}

func (p *lcfsPolicy) Name() string     { return "LCFS" }
func (p *lcfsPolicy) Quantum() int     { return 0 }
func (p *lcfsPolicy) Preemptive() bool { return false }

// --- SRTF ---------------------------------------------------------------

type srtfPolicy struct{ q []*Process }

func NewSRTF() Policy { return &srtfPolicy{} }

// Add keeps the queue ascending by Remaining; a newly inserted process with
// Remaining equal to an existing entry is placed after it (FIFO among
// ties), per §4.3's discipline.
func (p *srtfPolicy) Add(proc *Process, _ int) {
	i := 0
	for i < len(p.q) && p.q[i].Remaining <= proc.Remaining {
		i++
	}
	p.q = append(p.q, nil)
	copy(p.q[i+1:], p.q[i:])
	p.q[i] = proc
}

func (p *srtfPolicy) Next() *Process {
	if len(p.q) == 0 {
		return nil
	}
	proc := p.q[0]
	p.q = p.q[1:]
	return proc
}

func (p *srtfPolicy) Name() string     { return "SRTF" }
func (p *srtfPolicy) Quantum() int     { return 0 }
func (p *srtfPolicy) Preemptive() bool { return false }

// --- RR -------------------------------------------------------------

type rrPolicy struct {
	q       []*Process
	quantum int
}

func NewRR(quantum int) Policy { return &rrPolicy{quantum: quantum} }

func (p *rrPolicy) Add(proc *Process, _ int) { p.q = append(p.q, proc) }

func (p *rrPolicy) Next() *Process {
	if len(p.q) == 0 {
		return nil
	}
	proc := p.q[0]
	p.q = p.q[1:]
	return proc
}

func (p *rrPolicy) Name() string     { return "RR" }
func (p *rrPolicy) Quantum() int     { return p.quantum }
func (p *rrPolicy) Preemptive() bool { return false }

// --- PRIO / PREPRIO -------------------------------------------------------

// prioPolicy implements both PRIO and PREPRIO (§4.3): two MAXPRIO-banded
// FIFO queue arrays, "active" and "expired". Next drains the highest
// non-empty active band; once all active bands are empty, active and
// expired swap. preemptive selects PREPRIO's wakeup-preemption behavior
// (§4.5), evaluated by the simulator via Preemptive(), not by this type.
type prioPolicy struct {
	quantum    int
	maxPrio    int
	preemptive bool
	active     [][]*Process
	expired    [][]*Process
}

func newPrioPolicy(quantum, maxPrio int, preemptive bool) *prioPolicy {
	return &prioPolicy{
		quantum:    quantum,
		maxPrio:    maxPrio,
		preemptive: preemptive,
		active:     make([][]*Process, maxPrio),
		expired:    make([][]*Process, maxPrio),
	}
}

// NewPRIO builds the non-preemptive PRIO policy.
func NewPRIO(quantum, maxPrio int) Policy { return newPrioPolicy(quantum, maxPrio, false) }

// NewPREPRIO builds the preemptive PREPRIO policy.
func NewPREPRIO(quantum, maxPrio int) Policy { return newPrioPolicy(quantum, maxPrio, true) }

// Add enqueues proc into active[dyn_prio], per §4.3. Processes coming
// back from RUNNING_TO_READY do not go through Add: the simulator's
// handler (§4.4) decrements dyn_prio and appends them to the active or
// expired band itself, re-seeding dyn_prio when it reaches -1, so Add
// never sees dyn_prio == -1.
func (p *prioPolicy) Add(proc *Process, _ int) {
	lvl := proc.DynPrio
	if lvl < 0 || lvl >= p.maxPrio {
		panicInvariant("PRIO.Add: dyn_prio %d out of band [0,%d)", lvl, p.maxPrio)
	}
	p.active[lvl] = append(p.active[lvl], proc)
}

func (p *prioPolicy) Next() *Process {
	if proc := p.popActive(); proc != nil {
		return proc
	}
	p.active, p.expired = p.expired, p.active
	return p.popActive()
}

func (p *prioPolicy) popActive() *Process {
	for lvl := p.maxPrio - 1; lvl >= 0; lvl-- {
		if len(p.active[lvl]) > 0 {
			proc := p.active[lvl][0]
			p.active[lvl] = p.active[lvl][1:]
			return proc
		}
	}
	return nil
}

func (p *prioPolicy) Name() string {
	if p.preemptive {
		return "PREPRIO"
	}
	return "PRIO"
}

func (p *prioPolicy) Quantum() int     { return p.quantum }
func (p *prioPolicy) Preemptive() bool { return p.preemptive }
func (p *prioPolicy) MaxPrio() int     { return p.maxPrio }

// maxPrioPolicy is implemented by policies that carry their own MAXPRIO
// band count (PRIO/PREPRIO). PolicyMaxPrio uses it to find the bound
// every process's static-priority draw must use (§4.1), falling back to
// DefaultMaxPrio for policies that don't band priorities at all.
type maxPrioPolicy interface {
	MaxPrio() int
}

// PolicyMaxPrio returns the MAXPRIO bound the static-priority draw
// (§3, §4.1) should use for processes running under p: PRIO/PREPRIO's own
// band count if p carries one, else DefaultMaxPrio. Every process draws a
// static priority regardless of policy — FCFS/LCFS/SRTF/RR never read it,
// but it is still part of the process record and the draw still consumes
// one slot of the random stream.
func PolicyMaxPrio(p Policy) int {
	if mp, ok := p.(maxPrioPolicy); ok {
		return mp.MaxPrio()
	}
	return DefaultMaxPrio
}
