package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordoverlap/internal/config"
	"wordoverlap/internal/logging"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewConsoleFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record should be filtered: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "visible") {
		t.Fatalf("expected warn record: %q", out)
	}
}

func TestNewJSONRenamesKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf, SessionID: "abc"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hello", logging.String("policy", "literal"))

	out := buf.String()
	for _, want := range []string{`"ts":`, `"level":"info"`, `"msg":"hello"`, `"policy":"literal"`, `"session_id":"abc"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "info"
	cfg.Logging.LogDir = filepath.Join(t.TempDir(), "logs")

	logger, err := logging.NewFromConfig(&cfg, "session-1")
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("written to file")

	content, err := os.ReadFile(filepath.Join(cfg.Logging.LogDir, logging.LogFileName))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "written to file") {
		t.Fatalf("log file missing record: %s", content)
	}
	if !strings.Contains(string(content), `"session_id":"session-1"`) {
		t.Fatalf("log file missing session id: %s", content)
	}
}

func TestNewFromConfigNil(t *testing.T) {
	logger, err := logging.NewFromConfig(nil, "")
	if err != nil || logger == nil {
		t.Fatalf("NewFromConfig(nil) = %v, %v", logger, err)
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "history disabled", "history_unavailable", logging.String(logging.FieldImpact, "comparison not recorded"))

	out := buf.String()
	if !strings.Contains(out, `"event_type":"history_unavailable"`) {
		t.Errorf("missing event_type: %s", out)
	}
	if !strings.Contains(out, `"error_hint":"check logs for details"`) {
		t.Errorf("missing default hint: %s", out)
	}
	if !strings.Contains(out, `"impact":"comparison not recorded"`) || strings.Count(out, `"impact"`) != 1 {
		t.Errorf("expected caller impact only: %s", out)
	}
}
