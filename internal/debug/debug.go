package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "SCENE_DEBUG"

var (
	mu      sync.Mutex
	logger  *log.Logger
	logFile *os.File
	envOnce sync.Once
)

// New builds a logger in the format used across the project.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Init initializes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	logFile = f
	logger = New(f, log.DebugLevel).WithPrefix("scene")
	return nil
}

// SetLogger routes debug output to l. Passing nil disables logging.
func SetLogger(l *log.Logger) {
	envOnce.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	logger = l
}

// Close closes the debug log file, if one was opened by Init.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

func current() *log.Logger {
	envOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" {
			mu.Lock()
			_ = initLocked(path)
			mu.Unlock()
		}
	})
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Enabled reports whether debug output goes anywhere.
func Enabled() bool {
	return current() != nil
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	if l := current(); l != nil {
		l.Debugf(format, args...)
	}
}

// Event writes a structured debug message with key/value pairs.
func Event(msg string, keyvals ...any) {
	if l := current(); l != nil {
		l.Debug(msg, keyvals...)
	}
}

// Warn writes a structured warning.
func Warn(msg string, keyvals ...any) {
	if l := current(); l != nil {
		l.Warn(msg, keyvals...)
	}
}
