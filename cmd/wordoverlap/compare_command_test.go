package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordoverlap/internal/testsupport"
	"wordoverlap/internal/textsource"
	"wordoverlap/internal/wordcount"
)

func TestCompareScenarios(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutHistory())

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "no shared words",
			args: []string{"compare", "I love Practical Data Science.", "Who is Nick Eubank?"},
			want: wordcount.NoMatch,
		},
		{
			name: "shared trailing word",
			args: []string{"compare", "This is a test of my code.", "I hope there's not bugs in this code."},
			want: "code.",
		},
		{
			name: "literal drops trailing words",
			args: []string{"compare", "--policy", "literal", "This is a test of my code.", "I hope there's not bugs in this code."},
			want: wordcount.NoMatch,
		},
		{
			name: "empty texts",
			args: []string{"compare", "", ""},
			want: wordcount.NoMatch,
		},
		{
			name: "fold case",
			args: []string{"compare", "--fold-case", "This is a test of my code.", "I hope THIS works"},
			want: "this",
		},
		{
			name: "stem",
			args: []string{"compare", "--stem", "dogs running", "dog runs"},
			want: "dog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, tt.args, env.configPath)
			if err != nil {
				t.Fatalf("compare: %v", err)
			}
			if got := strings.TrimSuffix(out, "\n"); got != tt.want {
				t.Fatalf("compare = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompareJSON(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutHistory())

	out, _, err := runCLI(t, []string{"compare", "--json", "a b b c", "b c c"}, env.configPath)
	if err != nil {
		t.Fatalf("compare --json: %v", err)
	}
	var payload compareJSON
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode json: %v (%s)", err, out)
	}
	// b and c both total 3; the tie resolves to "b".
	if !payload.Matched || payload.Word != "b" || payload.Count != 3 || payload.Result != "b" {
		t.Fatalf("unexpected result: %+v", payload)
	}
	if payload.Policy != "normalized" {
		t.Fatalf("policy = %q", payload.Policy)
	}
	if len(payload.Collective) != 2 || payload.Collective[0].Word != "b" || payload.Collective[1].Word != "c" {
		t.Fatalf("unexpected collective: %+v", payload.Collective)
	}
	if payload.HistoryID != "" {
		t.Fatalf("history disabled but got id %q", payload.HistoryID)
	}
}

func TestCompareDetails(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutHistory())

	out, _, err := runCLI(t, []string{"compare", "--details", "--policy", "literal", "Far out of the way of it", "north of the galaxy"}, env.configPath)
	if err != nil {
		t.Fatalf("compare --details: %v", err)
	}
	requireContains(t, out, "Result:")
	requireContains(t, out, `" of" (3)`)
	requireContains(t, out, "Policy: literal")
	requireContains(t, out, "Similarity:")
	requireContains(t, out, "TEXT 1")
	requireContains(t, out, "WORD")
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("color codes written to non-terminal output: %q", out)
	}
}

func TestCompareFilesAndStdin(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutHistory())

	path := filepath.Join(env.baseDir, "first.txt")
	if err := os.WriteFile(path, []byte("the cat sat on the mat\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, _, err := runCLIWithInput(t, []string{"compare", "--files", path, "-"}, env.configPath, strings.NewReader("on the mat\n"))
	if err != nil {
		t.Fatalf("compare --files: %v", err)
	}
	if out != "the\n" {
		t.Fatalf("compare --files = %q", out)
	}

	_, _, err = runCLIWithInput(t, []string{"compare", "--files", "-", "-"}, env.configPath, strings.NewReader("x"))
	if !errors.Is(err, textsource.ErrStdinReused) {
		t.Fatalf("expected ErrStdinReused, got %v", err)
	}

	_, _, err = runCLI(t, []string{"compare", "--files", filepath.Join(env.baseDir, "missing.txt"), path}, env.configPath)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected missing file error, got %v", err)
	}
}

func TestCompareRejectsBadInput(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutHistory())

	if _, _, err := runCLI(t, []string{"compare", "only-one"}, env.configPath); err == nil {
		t.Fatal("expected argument count error")
	}
	_, _, err := runCLI(t, []string{"compare", "--policy", "fuzzy", "a", "a"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "--policy") {
		t.Fatalf("expected policy error, got %v", err)
	}
}

func TestCompareUsesConfiguredPolicy(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutHistory(), testsupport.WithPolicy("literal"))

	out, _, err := runCLI(t, []string{"compare", "one", "one"}, env.configPath)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if strings.TrimSpace(out) != wordcount.NoMatch {
		t.Fatalf("literal policy should yield no tokens for single words, got %q", out)
	}

	out, _, err = runCLI(t, []string{"compare", "--policy", "normalized", "one", "one"}, env.configPath)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if out != "one\n" {
		t.Fatalf("flag should override config policy, got %q", out)
	}
}
