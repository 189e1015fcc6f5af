package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"timetable/internal/platform/logging"
)

func TestNewWritesToFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logs", "timetable.log")
	logger, err := logging.New("debug", path)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("grid built")
	_ = logger.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "grid built") {
		t.Fatalf("expected log line in file, got %s", b)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()
	if _, err := logging.New("loud", ""); err == nil {
		t.Fatalf("expected unknown level to fail")
	}
}
