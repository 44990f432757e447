// Command mmu executes a reference trace against the memory-management
// unit core under one of six page-replacement algorithms (spec.md §6).
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
	"github.com/joeycumines/go-ossim/internal/mmu"
	"github.com/joeycumines/go-ossim/internal/obslog"
	"github.com/joeycumines/go-ossim/internal/report"
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

// invariantError mirrors cmd/scheduler's: it is what a recovered
// internal/mmu panic payload is translated into so the exit code
// distinguishes it from a malformed-input error (§7).
type invariantError struct{ detail string }

func (e invariantError) Error() string { return e.detail }

func run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	_ = ctx

	parsed, err := cliparse.ParseMMUArgs(args)
	if err != nil {
		return err
	}

	rg, err := input.LoadRandFile(parsed.RFile)
	if err != nil {
		return err
	}

	ref, err := input.LoadReference(parsed.InputFile)
	if err != nil {
		return err
	}

	pager, err := mmu.NewPager(parsed.Config.Algorithm)
	if err != nil {
		return err
	}

	var trace io.Writer
	if parsed.Config.TraceInstructions {
		trace = stdout
	}

	log := obslog.Discard()
	m, err := mmu.NewMMU(ref, parsed.Config, pager, rg, trace, log)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = invariantError{detail: fmt.Sprint(r)}
		}
	}()

	m.Run(ref.Instructions)

	if parsed.Config.FrameTable {
		report.PrintFrameTable(stdout, m.Frames)
	}
	if parsed.Config.PerProcessSummary {
		report.PrintPageTable(stdout, m.Procs)
		report.PrintProcessSummary(stdout, m.Procs)
	}
	if parsed.Config.Summary {
		report.PrintMMUSummary(stdout, m.InstCount, m.Stats)
	}
	return nil
}
