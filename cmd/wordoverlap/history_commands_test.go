package main

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"wordoverlap/internal/history"
	"wordoverlap/internal/testsupport"
)

func TestCompareRecordsHistory(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"compare", "This is a test of my code.", "I hope there's not bugs in this code."}, env.configPath); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if _, _, err := runCLI(t, []string{"compare", "--no-history", "skip me", "skip me"}, env.configPath); err != nil {
		t.Fatalf("compare --no-history: %v", err)
	}
	if _, _, err := runCLI(t, []string{"compare", "--policy", "literal", "alpha", "beta"}, env.configPath); err != nil {
		t.Fatalf("compare literal: %v", err)
	}

	store := testsupport.MustOpenHistory(t, env.cfg)
	entries, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 recorded comparisons, got %d", len(entries))
	}
	if entries[0].Policy != "literal" || entries[0].Matched {
		t.Fatalf("unexpected newest entry: %+v", entries[0])
	}
	if entries[1].Word != "code." || entries[1].Count != 2 || entries[1].SessionID == "" {
		t.Fatalf("unexpected oldest entry: %+v", entries[1])
	}

	out, _, err := runCLI(t, []string{"history", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, out, "code.")
	requireContains(t, out, "No matching words")
	requireContains(t, out, "Showing 2 of 2 comparisons in "+env.cfg.History.Path)
	if strings.Contains(out, "skip me") {
		t.Fatalf("--no-history comparison was recorded: %q", out)
	}

	out, _, err = runCLI(t, []string{"history", "list", "--json", "--limit", "1"}, env.configPath)
	if err != nil {
		t.Fatalf("history list --json: %v", err)
	}
	var listed []history.Entry
	if err := json.Unmarshal([]byte(out), &listed); err != nil {
		t.Fatalf("decode json: %v (%s)", err, out)
	}
	if len(listed) != 1 || listed[0].ID != entries[0].ID {
		t.Fatalf("unexpected json listing: %+v", listed)
	}
}

func TestCompareJSONReportsHistoryID(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"compare", "--json", "a", "a"}, env.configPath)
	if err != nil {
		t.Fatalf("compare --json: %v", err)
	}
	var payload compareJSON
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if payload.HistoryID == "" {
		t.Fatal("expected history id")
	}
	store := testsupport.MustOpenHistory(t, env.cfg)
	entry, err := store.Get(context.Background(), payload.HistoryID)
	if err != nil || entry == nil {
		t.Fatalf("Get(%s) = %v, %v", payload.HistoryID, entry, err)
	}
}

func TestHistoryPrunesToMaxEntries(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithMaxEntries(2))

	for _, word := range []string{"one", "two", "three"} {
		if _, _, err := runCLI(t, []string{"compare", word, word}, env.configPath); err != nil {
			t.Fatalf("compare %s: %v", word, err)
		}
	}

	store := testsupport.MustOpenHistory(t, env.cfg)
	entries, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 || entries[0].Word != "three" || entries[1].Word != "two" {
		t.Fatalf("unexpected entries after pruning: %+v", entries)
	}
}

func TestHistoryClear(t *testing.T) {
	env := setupCLITestEnv(t)

	store := testsupport.MustOpenHistory(t, env.cfg)
	testsupport.RecordComparison(t, store, "a b", "b", "b", 2)
	testsupport.RecordComparison(t, store, "x", "y", "", 0)

	out, _, err := runCLI(t, []string{"history", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	requireContains(t, out, "Cleared 2 comparisons from "+env.cfg.History.Path)

	out, _, err = runCLI(t, []string{"history", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, out, "No comparisons recorded")
}

func TestHistoryDisabled(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutHistory())

	_, _, err := runCLI(t, []string{"history", "list"}, env.configPath)
	if !errors.Is(err, errHistoryDisabled) {
		t.Fatalf("expected errHistoryDisabled, got %v", err)
	}
}

func TestHistoryShow(t *testing.T) {
	env := setupCLITestEnv(t)

	store := testsupport.MustOpenHistory(t, env.cfg)
	entry := testsupport.RecordComparison(t, store, "Far out of the", "north of the", " of", 2)

	out, _, err := runCLI(t, []string{"history", "show", entry.ID}, env.configPath)
	if err != nil {
		t.Fatalf("history show: %v", err)
	}
	requireContains(t, out, "ID:         "+entry.ID)
	requireContains(t, out, `Result:     " of" (2)`)
	requireContains(t, out, `Text 1:     "Far out of the"`)

	out, _, err = runCLI(t, []string{"history", "show", "--json", entry.ID}, env.configPath)
	if err != nil {
		t.Fatalf("history show --json: %v", err)
	}
	var shown history.Entry
	if err := json.Unmarshal([]byte(out), &shown); err != nil {
		t.Fatalf("decode json: %v (%s)", err, out)
	}
	if shown.ID != entry.ID || shown.Word != " of" || shown.Second != "north of the" {
		t.Fatalf("unexpected json entry: %+v", shown)
	}

	_, _, err = runCLI(t, []string{"history", "show", "missing-id"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "no comparison with id") {
		t.Fatalf("expected missing id error, got %v", err)
	}
}
