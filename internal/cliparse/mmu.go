package cliparse

import (
	"strconv"
	"strings"

	"github.com/joeycumines/go-ossim/internal/mmu"
)

// MMUArgs is the parsed `-f<N> -a<alg> -o<opts> <inputfile> <rfile>`
// command line (spec.md §6).
type MMUArgs struct {
	Config    mmu.Config
	InputFile string
	RFile     string
}

// ParseMMUArgs parses the MMU CLI's concatenated-flag grammar: `-f` and
// `-a` are required with their value glued directly to the flag letter
// (`-f16`, `-af`), `-o` is optional (defaults to "OPFS", matching
// original_source/mmu/src/pyMMU.py's argparse default) and its value is
// a string of single-letter options drawn from `OPFSxyaf`. Exactly two
// positional arguments (inputfile, rfile) must follow the flags.
func ParseMMUArgs(args []string) (MMUArgs, error) {
	var (
		numFrames    int
		haveFrames   bool
		algByte      byte
		haveAlg      bool
		opts         = "OPFS"
		positionals  []string
	)

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "-f"):
			n, err := strconv.Atoi(arg[2:])
			if err != nil || n <= 0 {
				return MMUArgs{}, &ErrInvalidOption{Value: arg}
			}
			numFrames = n
			haveFrames = true
		case strings.HasPrefix(arg, "-a"):
			if len(arg) != 3 {
				return MMUArgs{}, &ErrInvalidOption{Value: arg}
			}
			algByte = arg[2]
			haveAlg = true
		case strings.HasPrefix(arg, "-o"):
			opts = arg[2:]
		case strings.HasPrefix(arg, "-"):
			return MMUArgs{}, &ErrInvalidOption{Value: arg}
		default:
			positionals = append(positionals, arg)
		}
	}

	if !haveFrames || !haveAlg {
		return MMUArgs{}, &ErrInvalidOption{Value: "missing -f/-a"}
	}
	if len(positionals) != 2 {
		return MMUArgs{}, &ErrInvalidOption{Value: "expected <inputfile> <rfile>"}
	}

	cfg := mmu.Config{NumFrames: numFrames, Algorithm: algByte}
	for _, c := range opts {
		switch c {
		case 'O':
			cfg.TraceInstructions = true
		case 'P':
			cfg.PerProcessSummary = true
		case 'F':
			cfg.FrameTable = true
		case 'S':
			cfg.Summary = true
		case 'x':
			cfg.DebugEvents = true
		case 'y':
			cfg.DebugFrames = true
		case 'a':
			cfg.DebugAging = true
		case 'f':
			cfg.DebugSummary = true
		default:
			return MMUArgs{}, &ErrInvalidOption{Value: "-o" + opts}
		}
	}

	return MMUArgs{Config: cfg, InputFile: positionals[0], RFile: positionals[1]}, nil
}
