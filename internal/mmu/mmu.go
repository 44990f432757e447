package mmu

import (
	"fmt"
	"io"

	"github.com/joeycumines/go-ossim/internal/obslog"
	"github.com/joeycumines/go-ossim/internal/sched"
)

// nruResetInterval is the instruction count after which NRU's reference
// bits are reset globally (§4.7). Scoped to NRU alone: clock, aging, and
// working-set all read PTE.Referenced as load-bearing algorithm state
// (clock clears it only as its hand passes, aging OR-ins it into the age
// register, working-set uses it to mark a frame used-in-passing), so a
// global clear every 48 instructions would corrupt their victim selection.
const nruResetInterval = 48

// Stats accumulates the MMU's reportable counters (§4.6, §6's TOTALCOST
// line): one record owned by the driver, mirroring sched.SimulatorState's
// "fold globals into one struct, no singletons" shape (§9).
type Stats struct {
	CtxSwitches  int
	ProcessExits int
	Cost         int
	Maps, Unmaps int
	Ins, Outs    int
	Fins, Fouts  int
	Zeros        int
	Segvs        int
	Segprots     int
}

// Per-instruction and per-event costs (§4.6).
const (
	costContextSwitch = 130
	costExit          = 1230
	costMemRef        = 1
	costMap           = 350
	costUnmap         = 410
	costIn            = 3200
	costOut           = 2750
	costFin           = 2350
	costFout          = 2800
	costZero          = 150
	costSegv          = 440
	costSegprot       = 410
)

// MMU drives the fault handler over a reference trace, owning the frame
// table, the per-process page tables, the active Pager, and the shared
// RandGen (the same type sched uses for its own draws, per SPEC_FULL's
// domain-stack note: both cores draw from the same file format via
// internal/input.LoadRandFile).
type MMU struct {
	Procs     []*Process
	Current   *Process
	Frames    *FrameTable
	Pager     Pager
	Rand      *sched.RandGen
	InstCount int
	Stats     Stats

	trace io.Writer
	log   *obslog.Logger
}

// NewMMU builds the runtime process table and frame table from a parsed
// Reference and Config.
func NewMMU(ref *Reference, cfg Config, pager Pager, rg *sched.RandGen, trace io.Writer, log *obslog.Logger) (*MMU, error) {
	if len(ref.Processes) == 0 {
		return nil, ErrNoProcesses
	}
	if cfg.NumFrames <= 0 || cfg.NumFrames > MaxFrames {
		return nil, ErrTooManyFrames
	}
	if log == nil {
		log = obslog.Discard()
	}

	procs := make([]*Process, len(ref.Processes))
	for i, spec := range ref.Processes {
		procs[i] = NewProcess(i, spec.VMAs)
	}

	return &MMU{
		Procs:  procs,
		Frames: NewFrameTable(cfg.NumFrames),
		Pager:  pager,
		Rand:   rg,
		trace:  trace,
		log:    log,
	}, nil
}

// Run executes every instruction in order, per §4.6.
func (m *MMU) Run(instructions []Instruction) {
	for _, inst := range instructions {
		m.step(inst)
	}
}

func (m *MMU) step(inst Instruction) {
	m.InstCount++
	if _, ok := m.Pager.(nruPager); ok && m.InstCount%nruResetInterval == 0 {
		m.resetReferencedBits()
	}

	m.emit("inst: %c %d", inst.Op, inst.Value)

	switch inst.Op {
	case 'c':
		m.Stats.Cost += costContextSwitch
		m.Current = m.Procs[inst.Value]
		m.Stats.CtxSwitches++
		m.Current.Stats.CtxSwitches++

	case 'r', 'w':
		m.Stats.Cost += costMemRef
		m.reference(inst.Value, inst.Op == 'w')

	case 'e':
		m.Stats.Cost += costExit
		m.exit(inst.Value)

	default:
		panicInvariant("unknown instruction opcode %q", inst.Op)
	}
}

// resetReferencedBits clears the referenced bit of every present PTE
// across every process, NRU's periodic aging reset (§4.7). Only called
// while NRU is the active pager.
func (m *MMU) resetReferencedBits() {
	for _, p := range m.Procs {
		for i := range p.PTEs {
			p.PTEs[i].Referenced = false
		}
	}
}

// reference handles one `r`/`w` instruction against the current process
// (§4.6).
func (m *MMU) reference(vpage int, write bool) {
	if m.Current == nil {
		panicInvariant("memory reference with no current process (missing leading 'c')")
	}
	if vpage < 0 || vpage >= NumPages {
		m.emit(" SEGV")
		m.Stats.Segvs++
		m.Current.Stats.Segvs++
		m.Stats.Cost += costSegv
		return
	}
	pte := &m.Current.PTEs[vpage]

	if !pte.Present {
		if !m.fault(vpage, pte) {
			return // SEGV: no frame bound, referenced/modified untouched
		}
	}

	pte.Referenced = true
	if write {
		if pte.WriteProtected {
			m.emit(" SEGPROT")
			m.Stats.Segprots++
			m.Current.Stats.Segprots++
			m.Stats.Cost += costSegprot
			return
		}
		pte.Modified = true
	}
}

// fault implements §4.6's absent-PTE handling. Returns false on SEGV.
func (m *MMU) fault(vpage int, pte *PTE) bool {
	if _, ok := findVMA(m.Current.VMAs, vpage); !ok {
		m.emit(" SEGV")
		m.Stats.Segvs++
		m.Current.Stats.Segvs++
		m.Stats.Cost += costSegv
		return false
	}

	idx, ok := m.Frames.PopFree()
	if !ok {
		idx = m.evict()
	}

	frame := &m.Frames.Frames[idx]
	vma, _ := findVMA(m.Current.VMAs, vpage)

	switch {
	case vma.FileMapped:
		m.emit(" FIN")
		m.Stats.Fins++
		m.Current.Stats.Fins++
		m.Stats.Cost += costFin
	case pte.PagedOut:
		m.emit(" IN")
		m.Stats.Ins++
		m.Current.Stats.Ins++
		m.Stats.Cost += costIn
	default:
		m.emit(" ZERO")
		m.Stats.Zeros++
		m.Current.Stats.Zeros++
		m.Stats.Cost += costZero
	}
	m.emit(" MAP %d", idx)
	m.Stats.Maps++
	m.Current.Stats.Maps++
	m.Stats.Cost += costMap

	pte.FileMapped = vma.FileMapped
	pte.WriteProtected = vma.WriteProtected
	pte.Present = true
	pte.FrameIdx = idx

	frame.Free = false
	frame.PID = m.Current.PID
	frame.VPage = vpage
	frame.PTE = pte
	frame.LastUsed = m.InstCount
	return true
}

// evict selects and reclaims a victim frame, per §4.6 step 2.
func (m *MMU) evict() int {
	idx := m.Pager.SelectVictim(m)
	frame := &m.Frames.Frames[idx]
	victim := frame.PTE
	victimProc := m.Procs[frame.PID]

	m.emit(" UNMAP %d:%d", frame.PID, frame.VPage)
	m.Stats.Unmaps++
	victimProc.Stats.Unmaps++
	m.Stats.Cost += costUnmap

	if victim.Modified {
		if victim.FileMapped {
			m.emit(" FOUT")
			m.Stats.Fouts++
			victimProc.Stats.Fouts++
			m.Stats.Cost += costFout
		} else {
			m.emit(" OUT")
			m.Stats.Outs++
			victimProc.Stats.Outs++
			m.Stats.Cost += costOut
			victim.PagedOut = true
		}
	}

	victim.Present = false
	victim.Referenced = false
	victim.Modified = false
	return idx
}

// exit handles an `e pid` instruction, per §4.6's final bullet.
func (m *MMU) exit(pid int) {
	p := m.Procs[pid]
	for vpage := range p.PTEs {
		pte := &p.PTEs[vpage]
		if !pte.Present {
			continue
		}
		m.emit(" UNMAP %d:%d", pid, vpage)
		m.Stats.Unmaps++
		p.Stats.Unmaps++
		m.Stats.Cost += costUnmap

		if pte.Modified && pte.FileMapped {
			m.emit(" FOUT")
			m.Stats.Fouts++
			p.Stats.Fouts++
			m.Stats.Cost += costFout
		}

		m.Frames.PushFree(pte.FrameIdx)
		*pte = PTE{}
	}
	p.Exited = true
	if p == m.Current {
		m.Current = nil
	}
	m.Stats.ProcessExits++
}

func (m *MMU) emit(format string, args ...any) {
	if m.trace == nil {
		return
	}
	fmt.Fprintf(m.trace, format+"\n", args...)
}
