package obslog

import (
	"io"
	"log/slog"

	"github.com/joeycumines/logiface"
)

// Logger is the facade every other package logs through. It is a thin
// alias over logiface.Logger so that internal/sched and internal/mmu never
// need to name the pooled Event type themselves.
type Logger = logiface.Logger[*Event]

// New builds a Logger that writes structured records to w via a
// slog.TextHandler. debug raises the minimum level from Info to Trace,
// surfacing Debug records such as internal/sched's PrioPreempt decision.
// Neither command calls New; both use Discard.
func New(w io.Writer, debug bool) *Logger {
	handlerLevel := slog.LevelInfo
	facadeLevel := logiface.LevelInformational
	if debug {
		handlerLevel = slog.LevelDebug
		facadeLevel = logiface.LevelTrace
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: handlerLevel})
	writer := &slogWriter{handler: handler}

	return logiface.New[*Event](
		logiface.WithWriter[*Event](writer),
		logiface.WithEventFactory[*Event](writer),
		logiface.WithEventReleaser[*Event](writer),
		logiface.WithLevel[*Event](facadeLevel),
	)
}

// Discard returns a Logger whose output is never written anywhere; used by
// tests and by both CLIs, which have no flag that enables log output.
func Discard() *Logger {
	return New(io.Discard, false)
}
