package sched

import (
	"strconv"
	"strings"
)

// ParseSpec parses the `-s` scheduler specification grammar from §6:
//
//	F | L | S | R<q> | P<q>[:<maxprio>] | E<q>[:<maxprio>]
//
// F/L/S select FCFS/LCFS/SRTF. R<q> selects Round Robin with quantum q.
// P<q>[:<maxprio>] selects PRIO; E<q>[:<maxprio>] selects PREPRIO. maxprio
// defaults to DefaultMaxPrio when omitted. Returns *ErrInvalidSpec (with
// the exact diagnostic text mandated by §7) on any grammar mismatch.
func ParseSpec(s string) (Policy, error) {
	if s == "" {
		return nil, &ErrInvalidSpec{Value: s}
	}

	switch s[0] {
	case 'F':
		if len(s) != 1 {
			return nil, &ErrInvalidSpec{Value: s}
		}
		return NewFCFS(), nil
	case 'L':
		if len(s) != 1 {
			return nil, &ErrInvalidSpec{Value: s}
		}
		return NewLCFS(), nil
	case 'S':
		if len(s) != 1 {
			return nil, &ErrInvalidSpec{Value: s}
		}
		return NewSRTF(), nil
	case 'R':
		q, err := parseInt(s[1:])
		if err != nil || q <= 0 {
			return nil, &ErrInvalidSpec{Value: s}
		}
		return NewRR(q), nil
	case 'P', 'E':
		q, maxPrio, err := parseQuantumMaxPrio(s[1:])
		if err != nil {
			return nil, &ErrInvalidSpec{Value: s}
		}
		if s[0] == 'P' {
			return NewPRIO(q, maxPrio), nil
		}
		return NewPREPRIO(q, maxPrio), nil
	default:
		return nil, &ErrInvalidSpec{Value: s}
	}
}

func parseQuantumMaxPrio(rest string) (quantum, maxPrio int, err error) {
	maxPrio = DefaultMaxPrio
	parts := strings.SplitN(rest, ":", 2)
	quantum, err = parseInt(parts[0])
	if err != nil || quantum <= 0 {
		return 0, 0, strconv.ErrSyntax
	}
	if len(parts) == 2 {
		maxPrio, err = parseInt(parts[1])
		if err != nil || maxPrio <= 0 {
			return 0, 0, strconv.ErrSyntax
		}
	}
	return quantum, maxPrio, nil
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(s)
}
