package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LogFilePath is the path to the simulation log file, relative to the working
// directory (project root when run via go run ./cmd/sim).
const LogFilePath = "logs/sim.txt"

// Logger appends timestamped lines to a file on disk. It records startup
// parameters, resets, and placement warnings; it is not on the frame hot path.
type Logger struct {
	path string
}

// New returns a Logger writing to LogFilePath and ensures the logs directory exists.
func New() *Logger {
	dir := filepath.Dir(LogFilePath)
	_ = os.MkdirAll(dir, 0755)
	return &Logger{path: LogFilePath}
}

// Log appends a line to the log file, prefixed with a [timestamp]. Write errors
// are swallowed: logging must never take the simulation down.
func (l *Logger) Log(line string) {
	if l == nil {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05")
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString("[" + ts + "] " + line + "\n")
	_ = f.Close()
}

// Logf formats and logs a line. Safe to call on a nil logger (no-op), so callers
// without a logger wired in don't need to guard.
func (l *Logger) Logf(format string, args ...any) {
	if l == nil {
		return
	}
	l.Log(fmt.Sprintf(format, args...))
}
