package logging

import "log/slog"

// FieldSessionID keys the per-invocation identifier. History rows store the
// same value, so `grep <id> wordoverlap.log` finds the run behind an entry.
const FieldSessionID = "session_id"

// withSessionID binds the session ID to base before any caller attributes or
// groups, keeping it at the top level of every record.
func withSessionID(base slog.Handler, sessionID string) slog.Handler {
	if base == nil {
		return NoopHandler{}
	}
	if sessionID == "" {
		return base
	}
	return base.WithAttrs([]slog.Attr{slog.String(FieldSessionID, sessionID)})
}
