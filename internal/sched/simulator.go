package sched

import (
	"fmt"
	"io"

	"github.com/joeycumines/go-ossim/internal/obslog"
)

// SimulatorState folds the dispatch loop's global mutable counters into one
// record (§9's "no process-wide singletons" note), owned exclusively by
// Simulator.
type SimulatorState struct {
	CPUTime      int
	TotalIOTime  int
	NIOBlocked   int
	IOStart      int
	LastFinish   int
}

// Simulator is the fixed event-dispatch loop (§4.4): it owns the process
// arena, the event queue, the active Policy, and the SimulatorState, and
// translates each popped Event into state updates and at most one new
// Event.
type Simulator struct {
	Procs  []*Process
	Policy Policy
	Events *EventQueue
	Rand   *RandGen
	State  SimulatorState

	currentRunning *Process
	trace          io.Writer
	log            *obslog.Logger
}

// NewSimulator seeds the event queue with a CREATED_TO_READY event for
// every process at its arrival time, per §4.2's DES construction.
func NewSimulator(procs []*Process, policy Policy, rg *RandGen, trace io.Writer, log *obslog.Logger) *Simulator {
	if log == nil {
		log = obslog.Discard()
	}
	s := &Simulator{
		Procs:  procs,
		Policy: policy,
		Events: NewEventQueue(),
		Rand:   rg,
		trace:  trace,
		log:    log,
	}
	for _, p := range procs {
		s.Events.Insert(p.AT, p.ID, CreatedToReady)
	}
	return s
}

// Run drains the event queue to completion, per §4.4's loop.
func (s *Simulator) Run() {
	for {
		evt, ok := s.Events.Pop()
		if !ok {
			return
		}
		p := s.Procs[evt.ProcID]
		timeInState := p.TimeInState(evt.Clock)

		callScheduler := s.dispatch(evt.Clock, p, timeInState, evt.Transition)

		if callScheduler && s.currentRunning == nil {
			if nextTime, has := s.Events.PeekTime(); !has || nextTime > evt.Clock {
				if next := s.Policy.Next(); next != nil {
					s.Events.Insert(evt.Clock, next.ID, ReadyToRunning)
				}
			}
		}
	}
}

// dispatch applies one transition's effects and returns whether the
// scheduler should be consulted once same-clock events finish draining.
func (s *Simulator) dispatch(clock int, p *Process, timeInState int, t Transition) (callScheduler bool) {
	switch t {
	case CreatedToReady:
		p.enterState(Ready, clock)
		s.Policy.Add(p, clock)
		s.emit(clock, p.ID, timeInState, t, "")
		return true

	case ReadyToRunning:
		return s.dispatchReadyToRunning(clock, p, timeInState)

	case RunningToReady:
		return s.dispatchRunningToReady(clock, p, timeInState)

	case RunningToBlock:
		return s.dispatchRunningToBlock(clock, p, timeInState)

	case BlockToReady:
		return s.dispatchBlockToReady(clock, p, timeInState)

	case TransitionDone:
		p.Remaining -= timeInState
		if p.Remaining != 0 {
			panicInvariant("process %d reached DONE with remaining=%d", p.ID, p.Remaining)
		}
		s.currentRunning = nil
		p.enterState(Done, clock)
		p.Finish = clock
		p.TAT = clock - p.AT
		if clock > s.State.LastFinish {
			s.State.LastFinish = clock
		}
		s.emit(clock, p.ID, timeInState, t, "")
		return true

	default:
		panicInvariant("unknown transition %d for process %d", t, p.ID)
		return false
	}
}

func (s *Simulator) dispatchReadyToRunning(clock int, p *Process, timeInState int) bool {
	if p.State == Done {
		panicInvariant("READY_TO_RUNNING dispatched for DONE process %d", p.ID)
	}
	s.currentRunning = p
	p.CW += timeInState

	var burst int
	if !p.Preempted {
		burst = min(s.Rand.Next(p.CB), p.Remaining)
		p.CurrentBurst = burst
	} else {
		burst = p.CurrentBurst
	}
	p.Preempted = false
	remBefore := p.Remaining
	p.enterState(Running, clock)

	quantum := s.Policy.Quantum()
	extra := fmt.Sprintf(" cb=%d rem=%d prio=%d", burst, remBefore, p.DynPrio)
	s.emit(clock, p.ID, timeInState, ReadyToRunning, extra)

	if quantum > 0 && burst > quantum {
		s.State.CPUTime += quantum
		p.Remaining -= quantum
		s.Events.Insert(clock+quantum, p.ID, RunningToReady)
		return false
	}

	s.State.CPUTime += burst
	if burst >= remBefore {
		s.Events.Insert(clock+burst, p.ID, TransitionDone)
	} else {
		s.Events.Insert(clock+burst, p.ID, RunningToBlock)
	}
	return false
}

func (s *Simulator) dispatchRunningToReady(clock int, p *Process, timeInState int) bool {
	s.currentRunning = nil
	p.CurrentBurst -= timeInState
	if p.CurrentBurst <= 0 {
		panicInvariant("process %d preempted with non-positive residual burst %d", p.ID, p.CurrentBurst)
	}
	p.Preempted = true

	if prio, ok := s.Policy.(*prioPolicy); ok {
		p.DynPrio--
		if p.DynPrio < 0 {
			p.DynPrio = p.StaticPrio - 1
			prio.expired[p.DynPrio] = append(prio.expired[p.DynPrio], p)
		} else {
			prio.active[p.DynPrio] = append(prio.active[p.DynPrio], p)
		}
	} else {
		s.Policy.Add(p, clock)
	}

	p.enterState(Ready, clock)
	extra := fmt.Sprintf(" cb=%d rem=%d prio=%d", p.CurrentBurst, p.Remaining, p.DynPrio)
	s.emit(clock, p.ID, timeInState, RunningToReady, extra)
	return true
}

func (s *Simulator) dispatchRunningToBlock(clock int, p *Process, timeInState int) bool {
	s.currentRunning = nil
	p.Remaining -= timeInState
	if p.Remaining <= 0 {
		panicInvariant("process %d blocked with non-positive remaining %d", p.ID, p.Remaining)
	}
	ioburst := s.Rand.Next(p.IO)
	if s.State.NIOBlocked == 0 {
		s.State.IOStart = clock
	}
	s.State.NIOBlocked++
	p.enterState(Blocked, clock)

	extra := fmt.Sprintf(" ib=%d rem=%d", ioburst, p.Remaining)
	s.emit(clock, p.ID, timeInState, RunningToBlock, extra)
	s.Events.Insert(clock+ioburst, p.ID, BlockToReady)
	return true
}

func (s *Simulator) dispatchBlockToReady(clock int, p *Process, timeInState int) bool {
	s.State.NIOBlocked--
	if s.State.NIOBlocked == 0 {
		s.State.TotalIOTime += clock - s.State.IOStart
	}
	p.DynPrio = p.StaticPrio - 1
	p.IOTime += timeInState
	p.enterState(Ready, clock)
	s.Policy.Add(p, clock)

	s.emit(clock, p.ID, timeInState, BlockToReady, "")

	if s.Policy.Preemptive() && s.currentRunning != nil {
		s.checkPreemption(clock, p, s.currentRunning)
	}

	return true
}

// checkPreemption implements §4.5: PREPRIO preempts the running process r
// iff Cond1 (the newly-ready p outranks r) and Cond2 (r has no event
// already pending at this exact clock) both hold.
func (s *Simulator) checkPreemption(clock int, p, r *Process) {
	cond1 := p.DynPrio > r.DynPrio
	cond2 := !s.Events.hasEventAt(r.ID, clock)

	s.log.Debug().
		Int("clock", clock).
		Int("waking_pid", p.ID).
		Int("running_pid", r.ID).
		Bool("cond1", cond1).
		Bool("cond2", cond2).
		Bool("preempt", cond1 && cond2).
		Log("PrioPreempt")

	if cond1 && cond2 {
		cancelled, ok := s.Events.Cancel(r.ID)
		if !ok {
			panicInvariant("PREPRIO: running process %d had no pending event to cancel", r.ID)
		}
		// Dispatch charged CPUTime for the whole slice up front; give back
		// the part r will not run. A quantum slice also charged Remaining up
		// front, while a slice ending in BLOCK/DONE charges it only when that
		// event fires, so charge the time r actually ran here instead.
		unrun := cancelled.Clock - clock
		s.State.CPUTime -= unrun
		if cancelled.Transition == RunningToReady {
			r.Remaining += unrun
		} else {
			r.Remaining -= r.TimeInState(clock)
		}
		r.Preempted = true
		s.Events.Insert(clock, r.ID, RunningToReady)
	}
}

// emit writes one canonical transition line to the trace writer, per §6's
// output contract. extra is the pre-formatted, already-space-prefixed
// bracket group (or empty).
func (s *Simulator) emit(clock, pid, timeInState int, t Transition, extra string) {
	if s.trace == nil {
		return
	}
	fmt.Fprintf(s.trace, "%d %d %d: %s%s\n", clock, pid, timeInState, t, extra)
}
