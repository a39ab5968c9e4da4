package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useLogFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "pick.log")
	prev := Path()
	Configure(path)
	t.Cleanup(func() {
		Configure(prev)
		SetTraceEnabled(false)
	})
	return path
}

func TestConfigureCreatesDirectory(t *testing.T) {
	path := useLogFile(t)
	if Path() != path {
		t.Fatalf("expected path %q, got %q", path, Path())
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Fatalf("expected log directory created: %v", err)
	}
}

func TestConfigureEmptyFallsBack(t *testing.T) {
	useLogFile(t)
	Configure("  ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %q", Path())
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := useLogFile(t)
	SetTraceEnabled(false)
	Trace("key.text", map[string]interface{}{"text": "a"})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file, stat returned %v", err)
	}
}

func TestTraceWritesJSONLines(t *testing.T) {
	path := useLogFile(t)
	SetTraceEnabled(true)
	Trace("session.start", map[string]interface{}{"items": 3})
	Trace("session.resolve", nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 entries, got %d: %q", len(lines), data)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if entry.Event != "session.start" || entry.Payload["items"] != float64(3) {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if strings.Contains(lines[1], "payload") {
		t.Fatalf("expected empty payload omitted, got %q", lines[1])
	}
}

func TestErrorAppends(t *testing.T) {
	path := useLogFile(t)
	Error(nil)
	Error(errors.New("first"))
	Error(errors.New("second"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !bytes.Contains(data, []byte("first")) || !bytes.Contains(data, []byte("second")) {
		t.Fatalf("expected both errors logged, got %q", data)
	}
	if n := bytes.Count(data, []byte("\n")); n != 2 {
		t.Fatalf("expected 2 lines, got %d", n)
	}
}

func TestUnwritablePathReportsOnStderr(t *testing.T) {
	useLogFile(t)
	var buf bytes.Buffer
	prev := stderr
	stderr = &buf
	t.Cleanup(func() { stderr = prev })

	Configure(t.TempDir())
	Error(errors.New("lost"))
	if !strings.Contains(buf.String(), "logging failed") {
		t.Fatalf("expected failure reported, got %q", buf.String())
	}
}
