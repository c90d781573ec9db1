// Package logging writes the tabdeck log: one JSON object per line. Errors
// are always recorded; trace entries only when tracing is enabled.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "tabdeck.log"

// Entry is one log line. Tab and drag events fill the named fields so that a
// tab can be followed across containers by its Tab identifier; anything else
// goes in Detail.
type Entry struct {
	Time      time.Time              `json:"time"`
	Event     string                 `json:"event"`
	Container string                 `json:"container,omitempty"`
	From      string                 `json:"from,omitempty"`
	Tab       string                 `json:"tab,omitempty"`
	Index     *int                   `json:"index,omitempty"`
	Count     *int                   `json:"count,omitempty"`
	Error     string                 `json:"error,omitempty"`
	Detail    map[string]interface{} `json:"detail,omitempty"`
}

// At boxes an index or count for an Entry. -1 is a valid value ("none").
func At(v int) *int {
	return &v
}

type sink struct {
	mu    sync.Mutex
	path  string
	trace bool
	now   func() time.Time
}

var std = &sink{path: defaultLogFile, now: time.Now}

func (s *sink) write(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.Time = s.now().UTC()
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(e); err != nil {
		fmt.Fprintf(os.Stderr, "log encoding failed: %v\n", err)
	}
}

func (s *sink) tracing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trace
}

// Error records err whether or not tracing is enabled.
func Error(err error) {
	if err == nil {
		return
	}
	std.write(Entry{Event: "error", Error: err.Error()})
}

// Emit records e when tracing is enabled. Time is filled in here.
func Emit(e Entry) {
	if !std.tracing() {
		return
	}
	std.write(e)
}

// Trace records an event whose data does not fit the named fields.
func Trace(event string, detail map[string]interface{}) {
	Emit(Entry{Event: event, Detail: detail})
}

// SetTraceEnabled toggles Emit and Trace.
func SetTraceEnabled(enabled bool) {
	std.mu.Lock()
	std.trace = enabled
	std.mu.Unlock()
}

// TraceEnabled reports whether Emit writes anything.
func TraceEnabled() bool {
	return std.tracing()
}

// Configure sets the log destination. An empty path restores the default;
// missing directories are created.
func Configure(path string) {
	std.mu.Lock()
	defer std.mu.Unlock()
	if strings.TrimSpace(path) == "" {
		std.path = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		std.path = defaultLogFile
		return
	}
	std.path = path
}

// Path returns the current log destination.
func Path() string {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.path
}
