// Command scheduler runs the discrete-event process scheduler against a
// process-input file and random-number file under one of the five
// scheduling policies (spec.md §6).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/joeycumines/go-ossim/internal/cliparse"
	"github.com/joeycumines/go-ossim/internal/input"
	"github.com/joeycumines/go-ossim/internal/obslog"
	"github.com/joeycumines/go-ossim/internal/report"
	"github.com/joeycumines/go-ossim/internal/sched"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var invariant invariantError
		if errors.As(err, &invariant) {
			fmt.Fprintf(os.Stderr, "internal error: %s\n", invariant.detail)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// invariantError is the type cmd recover()s into from internal/sched's
// unexported panic payload, per SPEC_FULL.md §7: invariant violations
// exit 2, malformed input exits 1.
type invariantError struct{ detail string }

func (e invariantError) Error() string { return e.detail }

func run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	_ = ctx // the single-threaded DES loop never observes cancellation mid-run

	parsed, err := cliparse.ParseSchedulerArgs(args)
	if err != nil {
		return err
	}

	rg, err := input.LoadRandFile(parsed.RFile)
	if err != nil {
		return err
	}

	specs, err := input.LoadProcesses(parsed.InputFile)
	if err != nil {
		return err
	}

	maxPrio := sched.PolicyMaxPrio(parsed.Policy)
	procs := make([]*sched.Process, len(specs))
	for i, spec := range specs {
		procs[i] = sched.NewProcess(i, spec, maxPrio, rg)
	}

	log := obslog.Discard()
	defer func() {
		if r := recover(); r != nil {
			err = invariantError{detail: fmt.Sprint(r)}
		}
	}()

	sim := sched.NewSimulator(procs, parsed.Policy, rg, stdout, log)
	sim.Run()

	report.PrintSchedulerSummary(stdout, parsed.Policy, procs, sim.State)
	return nil
}
