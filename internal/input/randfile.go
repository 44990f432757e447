package input

import (
	"bufio"
	"os"
	"strconv"

	"github.com/joeycumines/go-ossim/internal/sched"
)

// LoadRandFile parses the random-number file format shared by both cores
// (spec.md §4.1/§6): a first line giving the draw count n, followed by n
// lines each holding one integer. Both the scheduler and the MMU build a
// *sched.RandGen from it — the MMU never defines its own random type, per
// SPEC_FULL.md's domain-stack note that both cores draw from the same
// file format.
func LoadRandFile(path string) (*sched.RandGen, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	nextLine := func() (string, bool) {
		for sc.Scan() {
			line++
			return sc.Text(), true
		}
		return "", false
	}

	countLine, ok := nextLine()
	if !ok {
		return nil, &ErrMalformed{File: path, Line: line, Err: errBadCount}
	}
	n, err := strconv.Atoi(trimToken(countLine))
	if err != nil {
		return nil, &ErrMalformed{File: path, Line: line, Err: errBadCount}
	}

	values := make([]int, 0, n)
	for i := 0; i < n; i++ {
		l, ok := nextLine()
		if !ok {
			return nil, &ErrMalformed{File: path, Line: line, Err: errTruncated}
		}
		v, err := strconv.Atoi(trimToken(l))
		if err != nil {
			return nil, &ErrMalformed{File: path, Line: line, Err: errBadInt}
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, &ErrMalformed{File: path, Err: errEmptyRandFile}
	}
	return sched.NewRandGen(values), nil
}
