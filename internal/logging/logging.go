package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "tty-pick.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	// stderr receives logging failures; the picker's own UI never sees them.
	stderr io.Writer = os.Stderr
)

// Error appends err to the log file. Nothing is written to the terminal, which
// may be in raw mode while a session is active.
func Error(err error) {
	if err == nil {
		return
	}
	withLogFile(func(f *os.File) {
		logger := log.New(f, "", log.LstdFlags)
		logger.Println(err)
	})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace currently writes entries.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	withLogFile(func(f *os.File) {
		if err := json.NewEncoder(f).Encode(entry); err != nil {
			fmt.Fprintf(stderr, "trace encoding failed: %v\n", err)
		}
	})
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Path returns the current log destination.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

func withLogFile(fn func(*os.File)) {
	path := Path()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()
	fn(f)
}
