package testsupport

import (
	"context"
	"testing"

	"wordoverlap/internal/config"
	"wordoverlap/internal/history"
)

// MustOpenHistory opens the history store configured in cfg and registers cleanup.
func MustOpenHistory(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()

	store, err := history.Open(context.Background(), cfg.History.Path)
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// RecordComparison stores a matched comparison for tests and returns the stored entry.
func RecordComparison(t testing.TB, store *history.Store, first, second, word string, count int) history.Entry {
	t.Helper()

	entry, err := store.Record(context.Background(), history.Entry{
		Policy:  "normalized",
		First:   first,
		Second:  second,
		Matched: word != "",
		Word:    word,
		Count:   count,
	})
	if err != nil {
		t.Fatalf("store.Record: %v", err)
	}
	return entry
}
