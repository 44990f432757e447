package input

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/joeycumines/go-ossim/internal/sched"
)

// LoadProcesses parses the scheduler's process-input file (spec.md §6):
// whitespace-tokenized `at tc cb io` lines, one per process, in arrival
// order. Static priority is deliberately absent — it is drawn from
// RandGen at Process construction (spec.md §4.1), never read from disk.
func LoadProcesses(path string) ([]sched.ProcessSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var specs []sched.ProcessSpec
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := stripComment(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 4 {
			return nil, &ErrMalformed{File: path, Line: line, Err: errWrongFieldCnt}
		}
		vals := make([]int, 4)
		for i, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &ErrMalformed{File: path, Line: line, Err: errBadInt}
			}
			vals[i] = v
		}
		specs = append(specs, sched.ProcessSpec{AT: vals[0], TC: vals[1], CB: vals[2], IO: vals[3]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return nil, &ErrMalformed{File: path, Err: errTruncated}
	}
	return specs, nil
}
