// Package debuglog writes structured JSON debug entries to a file when --debug is set.
package debuglog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// DefaultPath is the fixed path for debug logs.
const DefaultPath = "horario-debug.log"

// Logger writes one JSON object per line.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	closer  io.Closer
	enabled bool
	seq     int
}

// Global logger instance; a disabled logger until Init is called.
var std = &Logger{}

// Init enables the global logger, writing to path. A no-op when enabled is false.
func Init(enabled bool, path string) error {
	if !enabled {
		std = &Logger{}
		return nil
	}
	if path == "" {
		path = DefaultPath
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	std = &Logger{w: f, closer: f, enabled: true}
	std.log("DEBUG_START", map[string]any{
		"log_file": path,
		"time":     time.Now().Format(time.RFC3339),
	})
	return nil
}

// SetOutput enables the global logger on an arbitrary writer.
func SetOutput(w io.Writer) {
	std = &Logger{w: w, enabled: w != nil}
}

// Close flushes the end marker and closes the log file.
func Close() {
	if std == nil || !std.enabled {
		return
	}
	std.log("DEBUG_END", map[string]any{
		"time": time.Now().Format(time.RFC3339),
	})
	if std.closer != nil {
		_ = std.closer.Close()
	}
	std = &Logger{}
}

// Enabled reports whether entries are being written.
func Enabled() bool {
	return std != nil && std.enabled
}

// Log writes a structured entry to the global logger.
func Log(event string, data map[string]any) {
	std.log(event, data)
}

// LogError logs an error with the operation it came from.
func LogError(context string, err error) {
	if !Enabled() || err == nil {
		return
	}
	std.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}

func (d *Logger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.w == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.w, "%s\n", b)
}
