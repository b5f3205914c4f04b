package logging

import (
	"context"
	"log/slog"
)

// teeHandler writes every record to the terminal handler and, when the
// record's level passes its own filter, to the log file handler. The two
// sides share one LevelVar today, but the file side is checked separately so
// a quieter terminal never hides records from the file.
type teeHandler struct {
	terminal slog.Handler
	file     slog.Handler
}

// newTeeHandler pairs the terminal and file handlers. A nil side collapses
// the tee to the other handler.
func newTeeHandler(terminal, file slog.Handler) slog.Handler {
	switch {
	case terminal == nil && file == nil:
		return NoopHandler{}
	case file == nil:
		return terminal
	case terminal == nil:
		return file
	}
	return &teeHandler{terminal: terminal, file: file}
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.terminal.Enabled(ctx, level) || h.file.Enabled(ctx, level)
}

func (h *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var termErr, fileErr error
	if h.terminal.Enabled(ctx, record.Level) {
		termErr = h.terminal.Handle(ctx, record.Clone())
	}
	if h.file.Enabled(ctx, record.Level) {
		fileErr = h.file.Handle(ctx, record)
	}
	if termErr != nil {
		return termErr
	}
	return fileErr
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &teeHandler{terminal: h.terminal.WithAttrs(attrs), file: h.file.WithAttrs(attrs)}
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	return &teeHandler{terminal: h.terminal.WithGroup(name), file: h.file.WithGroup(name)}
}
