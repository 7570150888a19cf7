package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"eventdeck/internal/platform/logging"
)

func TestNewWriterFiltersByLevel(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	log := logging.NewWriter("warn", buf)
	log.Info("hidden")
	log.Warn("shown", "event_id", "1")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "event_id=1") {
		t.Fatalf("warn line missing: %s", out)
	}
}

func TestNewWritesToFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logs", "eventdeck.log")
	log, closer, err := logging.New("bogus", path)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	log.Info("deck entered", "events", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("close log: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(raw), "deck entered") {
		t.Fatalf("log file missing entry: %s", raw)
	}
}

func TestOrNull(t *testing.T) {
	t.Parallel()
	if logging.OrNull(nil) == nil {
		t.Fatalf("expected null logger")
	}
}
