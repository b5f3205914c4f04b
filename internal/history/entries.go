package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded comparison.
type Entry struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	Policy     string    `json:"policy"`
	FoldCase   bool      `json:"fold_case"`
	Stem       bool      `json:"stem"`
	First      string    `json:"first"`
	Second     string    `json:"second"`
	Matched    bool      `json:"matched"`
	Word       string    `json:"word,omitempty"`
	Count      int       `json:"count"`
	Similarity float64   `json:"similarity"`
}

const entryColumns = "id, session_id, created_at, policy, fold_case, stem, first_text, second_text, matched, word, count, similarity"

// Record stores e, assigning an ID and creation time when they are unset.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.CreatedAt = e.CreatedAt.UTC()
	if e.Policy == "" {
		return Entry{}, errors.New("history entry requires a policy")
	}

	_, err := s.execWithRetry(ctx,
		"INSERT INTO comparisons ("+entryColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		e.ID,
		e.SessionID,
		e.CreatedAt.Format(time.RFC3339Nano),
		e.Policy,
		boolToInt(e.FoldCase),
		boolToInt(e.Stem),
		e.First,
		e.Second,
		boolToInt(e.Matched),
		e.Word,
		e.Count,
		e.Similarity,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert comparison: %w", err)
	}
	return e, nil
}

// List returns up to limit entries, newest first. A limit <= 0 returns all entries.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	ctx = ensureContext(ctx)
	query := "SELECT " + entryColumns + " FROM comparisons ORDER BY seq DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var entries []Entry
	err := retryOnBusy(ctx, func() error {
		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		entries = entries[:0]
		for rows.Next() {
			e, err := scanEntry(rows)
			if err != nil {
				return err
			}
			entries = append(entries, e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list comparisons: %w", err)
	}
	return entries, nil
}

// Get returns the entry with the given ID, or nil when it does not exist.
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, "SELECT "+entryColumns+" FROM comparisons WHERE id = ?", id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get comparison %s: %w", id, err)
	}
	return &e, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	ctx = ensureContext(ctx)
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM comparisons").Scan(&n); err != nil {
		return 0, fmt.Errorf("count comparisons: %w", err)
	}
	return n, nil
}

// Clear removes every entry and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	ctx = ensureContext(ctx)
	var removed int64
	err := s.withLock(ctx, func(ctx context.Context) error {
		res, err := s.execWithRetry(ctx, "DELETE FROM comparisons")
		if err != nil {
			return fmt.Errorf("clear comparisons: %w", err)
		}
		removed, err = res.RowsAffected()
		return err
	})
	return removed, err
}

// Prune keeps the newest keep entries and deletes the rest. keep <= 0 is a no-op.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}
	res, err := s.execWithRetry(ctx,
		"DELETE FROM comparisons WHERE seq NOT IN (SELECT seq FROM comparisons ORDER BY seq DESC LIMIT ?)",
		keep,
	)
	if err != nil {
		return 0, fmt.Errorf("prune comparisons: %w", err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var (
		e                       Entry
		createdAt               string
		foldCase, stem, matched int
	)
	if err := row.Scan(
		&e.ID,
		&e.SessionID,
		&createdAt,
		&e.Policy,
		&foldCase,
		&stem,
		&e.First,
		&e.Second,
		&matched,
		&e.Word,
		&e.Count,
		&e.Similarity,
	); err != nil {
		return Entry{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Entry{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	e.CreatedAt = ts
	e.FoldCase = foldCase != 0
	e.Stem = stem != 0
	e.Matched = matched != 0
	return e, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
