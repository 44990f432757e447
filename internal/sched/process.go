package sched

// State is a process's current scheduler state.
type State int

const (
	Created State = iota
	Ready
	Running
	Blocked
	Done
)

func (s State) String() string {
	switch s {
	case Created:
		return "CREATED"
	case Ready:
		return "READY"
	case Running:
		return "RUNNING"
	case Blocked:
		return "BLOCKED"
	case Done:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// Transition identifies a state-machine edge; it doubles as the Event
// payload driving the dispatch loop (§3).
type Transition int

const (
	CreatedToReady Transition = iota
	ReadyToRunning
	RunningToReady // preemption or quantum expiry
	RunningToBlock
	BlockToReady
	TransitionDone
)

func (t Transition) String() string {
	switch t {
	case CreatedToReady:
		return "CREATED -> READY"
	case ReadyToRunning:
		return "READY -> RUNNG"
	case RunningToReady:
		return "RUNNG -> READY"
	case RunningToBlock:
		return "RUNNG -> BLOCK"
	case BlockToReady:
		return "BLOCK -> READY"
	case TransitionDone:
		return "RUNNG -> DONE"
	default:
		return "UNKNOWN"
	}
}

// ProcessSpec is the static, input-file-derived description of a process,
// before RandGen has drawn its static priority. internal/input produces
// these; Process construction draws the priority.
type ProcessSpec struct {
	AT int // arrival time
	TC int // total CPU time
	CB int // CPU-burst bound
	IO int // IO-burst bound
}

// Process is the mutable runtime record for one simulated process. Per
// SPEC_FULL.md's arena-plus-integer-id note (§9), the simulator owns a
// slice of these; the event queue refers to a process only by ID,
// dereferencing through the arena, while the run queues hold pointers
// into that same slice.
type Process struct {
	ID int

	// Static.
	AT, TC, CB, IO int
	StaticPrio     int

	// Dynamic.
	Remaining    int
	DynPrio      int
	State        State
	StateTS      int
	CurrentBurst int // in-flight CPU burst, cut on each RUNNING->READY; reused on dispatch iff Preempted
	Preempted    bool

	CW     int // cumulative time spent READY
	IOTime int // cumulative time spent BLOCKED
	Finish int
	TAT    int
}

// NewProcess draws this process's static priority from rg (the one
// construction-time random draw mandated by §4.1) and initializes its
// dynamic fields.
func NewProcess(id int, spec ProcessSpec, maxPrio int, rg *RandGen) *Process {
	prio := rg.Next(maxPrio)
	return &Process{
		ID:         id,
		AT:         spec.AT,
		TC:         spec.TC,
		CB:         spec.CB,
		IO:         spec.IO,
		StaticPrio: prio,
		Remaining:  spec.TC,
		DynPrio:    prio - 1,
		State:      Created,
		StateTS:    spec.AT,
	}
}

// TimeInState returns how long p has been in its current state as of
// clock, the quantity every transition handler needs first (§4.4 step 1).
func (p *Process) TimeInState(clock int) int {
	return clock - p.StateTS
}

// enterState transitions p into s at clock, updating StateTS. It never
// validates the edge: the simulator's dispatch switch is the sole source
// of truth for which edges are legal.
func (p *Process) enterState(s State, clock int) {
	p.State = s
	p.StateTS = clock
}
