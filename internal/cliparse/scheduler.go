package cliparse

import (
	"github.com/joeycumines/go-ossim/internal/sched"
)

// SchedulerArgs is the parsed `-s <spec> --inputfile <path> --rfile
// <path>` command line (spec.md §6).
type SchedulerArgs struct {
	Policy    sched.Policy
	InputFile string
	RFile     string
}

// ParseSchedulerArgs walks the scheduler CLI's three required flags. All
// three are mandatory; any other token, or a missing value, is reported
// as ErrInvalidOption.
func ParseSchedulerArgs(args []string) (SchedulerArgs, error) {
	var specStr, inputFile, rfile string
	var haveSpec, haveInput, haveRFile bool

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-s":
			if i+1 >= len(args) {
				return SchedulerArgs{}, &ErrInvalidOption{Value: arg}
			}
			i++
			specStr = args[i]
			haveSpec = true
		case "--inputfile":
			if i+1 >= len(args) {
				return SchedulerArgs{}, &ErrInvalidOption{Value: arg}
			}
			i++
			inputFile = args[i]
			haveInput = true
		case "--rfile":
			if i+1 >= len(args) {
				return SchedulerArgs{}, &ErrInvalidOption{Value: arg}
			}
			i++
			rfile = args[i]
			haveRFile = true
		default:
			return SchedulerArgs{}, &ErrInvalidOption{Value: arg}
		}
	}
	if !haveSpec || !haveInput || !haveRFile {
		return SchedulerArgs{}, &ErrInvalidOption{Value: "missing -s/--inputfile/--rfile"}
	}

	policy, err := ParseSchedSpec(specStr)
	if err != nil {
		return SchedulerArgs{}, err
	}
	return SchedulerArgs{Policy: policy, InputFile: inputFile, RFile: rfile}, nil
}

// ParseSchedSpec delegates to sched.ParseSpec; it exists so callers only
// ever import cliparse for CLI-grammar concerns, keeping sched itself free
// of CLI-layer error types.
func ParseSchedSpec(s string) (sched.Policy, error) {
	return sched.ParseSpec(s)
}
