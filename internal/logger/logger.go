// Package logger provides verbose logging for the hgurn CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are written to stderr to show how identifiers are classified and
// which namespace translates them.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	verbose bool
	log     = newLogger(os.Stderr)
)

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	})
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(w)
}

// Logger returns the underlying structured logger, or a disabled logger
// when verbose mode is off.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return zerolog.Nop()
	}
	return log
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write(zerolog.DebugLevel, format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	write(zerolog.InfoLevel, "=== %s ===", name)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write(zerolog.InfoLevel, format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	write(zerolog.WarnLevel, format, args...)
}

func write(level zerolog.Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		log.WithLevel(level).Msg(fmt.Sprintf(format, args...))
	}
}
