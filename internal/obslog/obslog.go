// Package obslog wires the two simulator cores to a structured logger.
//
// It adapts github.com/joeycumines/logiface to a log/slog backend. The
// logiface-slog adapter retrieved alongside this codebase declares two
// different package names across its own files (some files say
// "package slog", others "package islog") and so cannot be imported as a
// coherent unit; this package implements the same adapter shape directly
// against logiface's documented Event/Writer contracts instead of
// depending on that broken package. See DESIGN.md for the full note.
package obslog

import (
	"context"
	"log/slog"
	"time"

	"github.com/joeycumines/logiface"
)

// Event is the logiface event type backing Logger, accumulating fields
// until it is flushed to the underlying slog.Handler.
type Event struct {
	logiface.UnimplementedEvent

	level logiface.Level
	msg   string
	attrs []slog.Attr
}

func (e *Event) Level() logiface.Level { return e.level }

func (e *Event) AddField(key string, val any) {
	e.attrs = append(e.attrs, slog.Any(key, val))
}

func (e *Event) AddMessage(msg string) bool {
	e.msg = msg
	return true
}

func (e *Event) AddError(err error) bool {
	e.attrs = append(e.attrs, slog.Any("error", err))
	return true
}

func (e *Event) AddString(key string, val string) bool {
	e.attrs = append(e.attrs, slog.String(key, val))
	return true
}

func (e *Event) AddInt(key string, val int) bool {
	e.attrs = append(e.attrs, slog.Int(key, val))
	return true
}

func (e *Event) AddBool(key string, val bool) bool {
	e.attrs = append(e.attrs, slog.Bool(key, val))
	return true
}

func (e *Event) reset() {
	e.level = logiface.LevelDisabled
	e.msg = ""
	e.attrs = e.attrs[:0]
}

// slogWriter bridges logiface's pooled Event model onto a slog.Handler.
type slogWriter struct {
	handler slog.Handler
}

func levelToSlog(l logiface.Level) slog.Level {
	switch {
	case l >= logiface.LevelDebug:
		return slog.LevelDebug
	case l >= logiface.LevelInformational || l == logiface.LevelNotice:
		return slog.LevelInfo
	case l >= logiface.LevelWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func (w *slogWriter) NewEvent(level logiface.Level) *Event {
	return &Event{level: level}
}

func (w *slogWriter) ReleaseEvent(event *Event) {
	event.reset()
}

func (w *slogWriter) Write(event *Event) error {
	if !w.handler.Enabled(context.Background(), levelToSlog(event.level)) {
		return logiface.ErrDisabled
	}
	rec := slog.NewRecord(time.Now(), levelToSlog(event.level), event.msg, 0)
	rec.AddAttrs(event.attrs...)
	return w.handler.Handle(context.Background(), rec)
}
