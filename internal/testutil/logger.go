// Package testutil holds helpers shared by the leapstyle tests: loggers that
// write through the test, and shortcuts for running a single rule.
package testutil

import (
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// NewTestLogger returns a debug logger that writes to t.Log, so its output
// only shows for failing tests or with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	logger, _ := NewLogRecorder(t)
	return logger
}

// LogRecorder keeps the records written through the logger returned with it.
type LogRecorder struct {
	mu      sync.Mutex
	records []string
}

// NewLogRecorder returns a debug logger that writes to t.Log and records
// every line, for tests that assert on what was logged.
func NewLogRecorder(t testing.TB) (*slog.Logger, *LogRecorder) {
	t.Helper()
	rec := &LogRecorder{}
	handler := slog.NewTextHandler(&testWriter{t: t, rec: rec}, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), rec
}

// Records returns the lines logged so far.
func (r *LogRecorder) Records() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.records...)
}

// Contains reports whether a logged line contains substr.
func (r *LogRecorder) Contains(substr string) bool {
	for _, line := range r.Records() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// testWriter receives one text record per Write.
type testWriter struct {
	t   testing.TB
	rec *LogRecorder
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	line := strings.TrimSuffix(string(p), "\n")
	w.rec.mu.Lock()
	w.rec.records = append(w.rec.records, line)
	w.rec.mu.Unlock()
	w.t.Log(line)
	return len(p), nil
}
