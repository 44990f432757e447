package input

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/joeycumines/go-ossim/internal/mmu"
)

// lineScanner wraps bufio.Scanner to skip blank and comment-only lines
// transparently, per spec.md §6: "optional #-prefixed comments" may
// appear anywhere in the reference file — before the process count,
// before any VMA-count line, or interleaved with the instruction stream.
// Grounded on original_source/mmu/src/pyMMU.py's read_input_file, which
// skips comment lines at each of those three points; this generalizes
// that to "any line, anywhere" since the original's hardcoded
// skip-exactly-3-lines preamble does not match spec.md's looser contract.
type lineScanner struct {
	sc   *bufio.Scanner
	line int
}

func newLineScanner(f *os.File) *lineScanner {
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &lineScanner{sc: sc}
}

// next returns the next non-blank, non-comment line, or ok=false at EOF.
func (s *lineScanner) next() (string, bool) {
	for s.sc.Scan() {
		s.line++
		if text := stripComment(s.sc.Text()); text != "" {
			return text, true
		}
	}
	return "", false
}

// LoadReference parses the MMU reference file (spec.md §6): a process
// count, per-process VMA tables, then the instruction stream `op value`
// until EOF.
func LoadReference(path string) (*mmu.Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ls := newLineScanner(f)

	countLine, ok := ls.next()
	if !ok {
		return nil, &ErrMalformed{File: path, Err: errBadCount}
	}
	numProcs, err := strconv.Atoi(countLine)
	if err != nil {
		return nil, &ErrMalformed{File: path, Line: ls.line, Err: errBadCount}
	}

	procs := make([]mmu.ProcessSpec, numProcs)
	for i := 0; i < numProcs; i++ {
		spec, err := readProcessVMAs(ls, path)
		if err != nil {
			return nil, err
		}
		procs[i] = spec
	}

	var instructions []mmu.Instruction
	for {
		line, ok := ls.next()
		if !ok {
			break
		}
		fields := strings.Fields(line)
		if len(fields) != 2 || len(fields[0]) != 1 {
			return nil, &ErrMalformed{File: path, Line: ls.line, Err: errBadOpcode}
		}
		op := fields[0][0]
		switch op {
		case 'c', 'r', 'w', 'e':
		default:
			return nil, &ErrMalformed{File: path, Line: ls.line, Err: errBadOpcode}
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, &ErrMalformed{File: path, Line: ls.line, Err: errBadInt}
		}
		instructions = append(instructions, mmu.Instruction{Op: op, Value: v})
	}
	if err := ls.sc.Err(); err != nil {
		return nil, err
	}

	return &mmu.Reference{Processes: procs, Instructions: instructions}, nil
}

func readProcessVMAs(ls *lineScanner, path string) (mmu.ProcessSpec, error) {
	countLine, ok := ls.next()
	if !ok {
		return mmu.ProcessSpec{}, &ErrMalformed{File: path, Line: ls.line, Err: errTruncated}
	}
	numVMAs, err := strconv.Atoi(countLine)
	if err != nil {
		return mmu.ProcessSpec{}, &ErrMalformed{File: path, Line: ls.line, Err: errBadCount}
	}

	vmas := make([]mmu.VMA, numVMAs)
	prevEnd := -1
	for i := 0; i < numVMAs; i++ {
		line, ok := ls.next()
		if !ok {
			return mmu.ProcessSpec{}, &ErrMalformed{File: path, Line: ls.line, Err: errTruncated}
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return mmu.ProcessSpec{}, &ErrMalformed{File: path, Line: ls.line, Err: errWrongFieldCnt}
		}
		vals := make([]int, 4)
		for j, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return mmu.ProcessSpec{}, &ErrMalformed{File: path, Line: ls.line, Err: errBadInt}
			}
			vals[j] = v
		}
		start, end := vals[0], vals[1]
		if start > end || start <= prevEnd {
			return mmu.ProcessSpec{}, &ErrMalformed{File: path, Line: ls.line, Err: errOverlappingVMA}
		}
		prevEnd = end
		vmas[i] = mmu.VMA{StartPage: start, EndPage: end, WriteProtected: vals[2] != 0, FileMapped: vals[3] != 0}
	}
	return mmu.ProcessSpec{VMAs: vmas}, nil
}
