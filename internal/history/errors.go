package history

import "errors"

var (
	// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
	ErrSchemaMismatch = errors.New("schema version mismatch")
	// ErrLocked is returned when the history lock could not be acquired before the context ended.
	ErrLocked = errors.New("history database is locked by another process")
)
